// Package ocr re-reads regions of PDF pages with Tesseract.
//
// A RegionRecognizer crops a region out of a page with pdftoppm, pads and
// upscales the crop, and hands the image to an Engine. Two engines exist:
// Tesseract is the tesseract command line tool and is always available;
// Client wraps the Tesseract library via gosseract and is only compiled with
// the "ocr" build tag:
//
//	go build -tags ocr
//
// Both engines need Tesseract installed. On macOS:
//
//	brew install tesseract poppler
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr poppler-utils
package ocr
