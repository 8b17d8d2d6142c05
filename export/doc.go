// Package export writes extraction results: the outline as JSON or an HTML
// table of contents, the surviving blocks as a text listing, and both
// together as an Excel workbook for inspection.
package export
