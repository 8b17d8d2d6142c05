// Package model provides the data types shared by every stage of outline
// extraction.
//
// # Runs, Lines and Pages
//
// The page extractor produces [Page] values. Each page holds [Line] values,
// and each line holds [TextRun] values in reading order. A run carries its
// text, font name, size, style [Flags] and bounding box.
//
// # Blocks
//
// A [Block] is a style-homogeneous unit made from one or more runs on one
// page. Blocks are values: [Block.Append] returns a new block.
//
// # Outline
//
// Classification yields a [Title] and an ordered list of [Heading] values,
// which [NewOutline] turns into the final [Outline] record.
//
// # Geometry
//
// [Rect] uses a top-left origin. [Rect.Intersects] treats touching edges as
// overlapping.
package model
