package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/docoutline/export"
	"github.com/tsawler/docoutline/layout"
)

// output is one requested output file
type output struct {
	path   string
	format export.Format
}

func outputsFromFlags(cmd *cobra.Command) []output {
	var outs []output
	for _, o := range []struct {
		flag   string
		format export.Format
	}{
		{flagJSON, export.JSON},
		{flagBlocks, export.Text},
		{flagXLSX, export.XLSX},
		{flagHTML, export.HTML},
	} {
		if path, _ := cmd.Flags().GetString(o.flag); path != "" {
			outs = append(outs, output{path: path, format: o.format})
		}
	}
	return outs
}

// writeOutputs writes every output and returns the paths written
func writeOutputs(outs []output, res *layout.Result) ([]string, error) {
	var saved []string
	for _, o := range outs {
		if err := writeFile(o, res); err != nil {
			return saved, err
		}
		saved = append(saved, o.path)
	}
	return saved, nil
}

func writeFile(o output, res *layout.Result) (err error) {
	f, err := os.Create(o.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", o.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", o.path, cerr)
		}
	}()

	if err := export.Write(f, o.format, res); err != nil {
		return fmt.Errorf("%s: %w", o.path, err)
	}
	return nil
}

// printSummary reports the extraction on the terminal
func printSummary(w io.Writer, res *layout.Result) {
	fmt.Fprintf(w, "Extracted %d blocks from PDF\n", len(res.Blocks))
	fmt.Fprintf(w, "Title Extracted (text): %s\n", res.Title.Text)
	fmt.Fprintf(w, "Title Extracted (OCR): %s\n\n", res.Title.OCRText)
	fmt.Fprintf(w, "Blocks after removing headers, footers and tables: %d\n", len(res.Filtered))
	fmt.Fprintf(w, "Extracted %d headings:\n", len(res.Headings))
	for _, h := range res.Headings {
		fmt.Fprintf(w, "%s | Page %d | Text: %s\n", h.Level, h.Page+1, h.Text)
		if h.OCRText != "" {
			fmt.Fprintf(w, "OCR Text:\n%s\n", h.OCRText)
		}
		fmt.Fprintln(w)
	}
}

func joinNames(paths []string) string {
	switch len(paths) {
	case 0:
		return ""
	case 1:
		return paths[0]
	default:
		return strings.Join(paths[:len(paths)-1], ", ") + " and " + paths[len(paths)-1]
	}
}
