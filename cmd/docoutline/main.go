// Command docoutline prints and saves the title and heading outline of a
// PDF file.
//
// Usage:
//
//	docoutline report.pdf
//	docoutline --lang eng+deu --json outline.json --blocks "" scan.pdf
//	docoutline --ocr=false report.pdf
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
