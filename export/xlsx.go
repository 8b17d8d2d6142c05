package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/docoutline/model"
)

// Sheet names in the diagnostic workbook
const (
	OutlineSheet = "Outline"
	BlocksSheet  = "Blocks"
)

var (
	outlineHeaders = []string{"Level", "Text", "Page"}
	blockHeaders   = []string{"Page", "Text", "Font", "Size", "Bold", "Italic", "X0", "Y0", "X1", "Y1"}
)

// WriteWorkbook writes an .xlsx file with the outline on the first sheet
// (title in A1) and one row per block on the second.
func WriteWorkbook(w io.Writer, blocks []model.Block, outline model.Outline) error {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with "Sheet1"
	if err := f.SetSheetName("Sheet1", OutlineSheet); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}
	if _, err := f.NewSheet(BlocksSheet); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}

	if err := writeOutlineSheet(f, outline); err != nil {
		return err
	}
	if err := writeBlocksSheet(f, blocks); err != nil {
		return err
	}

	idx, _ := f.GetSheetIndex(OutlineSheet)
	f.SetActiveSheet(idx)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

func writeOutlineSheet(f *excelize.File, outline model.Outline) error {
	if err := f.SetCellValue(OutlineSheet, "A1", "Title"); err != nil {
		return fmt.Errorf("xlsx outline: %w", err)
	}
	if err := f.SetCellValue(OutlineSheet, "B1", outline.Title); err != nil {
		return fmt.Errorf("xlsx outline: %w", err)
	}

	rows := [][]any{toRow(outlineHeaders)}
	for _, h := range outline.Headings {
		rows = append(rows, []any{h.Level, h.Text, h.Page})
	}
	if err := writeRows(f, OutlineSheet, 3, rows); err != nil {
		return fmt.Errorf("xlsx outline: %w", err)
	}

	_ = f.SetColWidth(OutlineSheet, "A", "A", 10)
	_ = f.SetColWidth(OutlineSheet, "B", "B", 60)
	return nil
}

func writeBlocksSheet(f *excelize.File, blocks []model.Block) error {
	rows := [][]any{toRow(blockHeaders)}
	for _, b := range blocks {
		rows = append(rows, []any{
			b.Page + 1, b.Text, b.Font, b.Size, b.Flags.Bold(), b.Flags.Italic(),
			b.BBox.X0, b.BBox.Y0, b.BBox.X1, b.BBox.Y1,
		})
	}
	if err := writeRows(f, BlocksSheet, 1, rows); err != nil {
		return fmt.Errorf("xlsx blocks: %w", err)
	}

	_ = f.SetColWidth(BlocksSheet, "B", "B", 60)
	_ = f.SetColWidth(BlocksSheet, "C", "C", 24)
	return nil
}

// writeRows writes rows starting at column A of row first (1-based)
func writeRows(f *excelize.File, sheet string, first int, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, first+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func toRow(values []string) []any {
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
