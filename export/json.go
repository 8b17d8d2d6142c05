package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tsawler/docoutline/model"
)

// WriteJSON writes the outline as indented JSON. Non-ASCII text and HTML
// characters are written as is.
func WriteJSON(w io.Writer, outline model.Outline) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(outline); err != nil {
		return fmt.Errorf("failed to encode outline: %w", err)
	}
	return nil
}
