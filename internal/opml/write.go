package opml

import (
	"encoding/xml"
	"fmt"
	"os"

	"lemmyopml/internal/domain"
)

// Write renders doc as indented XML at path. Unless overwrite is set, an
// existing file at path is an error.
func Write(path string, doc *Document, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s already exists (pass --overwrite to replace it)", domain.ErrWrite, path)
		}
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWrite, err)
	}
	out = append([]byte(xml.Header), out...)
	out = append(out, '\n')
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWrite, err)
	}
	return nil
}
