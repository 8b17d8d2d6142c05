// Package layout turns the text runs of rendered pages into a document
// outline: a title and a leveled list of headings.
//
// # Pipeline
//
// The stages run in a fixed order:
//
//  1. [MergeRuns] merges same-style runs within one line into spans.
//  2. [MergeBlocks] sorts a page's spans top to bottom and merges
//     consecutive same-style spans into blocks. [MergePages] does this for
//     every page, optionally in parallel, then merges the flat sequence once
//     more.
//  3. [NoiseFilter] drops blocks in the header/footer margin bands and
//     blocks that touch a table region.
//  4. [TitleSelector] picks the largest early block as the title.
//  5. [HeadingClassifier] thresholds by font size, clusters the surviving
//     sizes into levels and enforces the hierarchy constraint.
//
// [Analyzer] wires the stages together.
//
// # OCR
//
// The title and every heading candidate can be re-read by a [Recognizer].
// Recognition errors and timeouts are logged and treated as "no text".
package layout
