package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/tsawler/mathdoc/model"
)

// WriteHTMLFile renders doc and writes the page to path. Rendering happens
// in memory first; the file is created once, written once and closed on
// every path. A close failure is joined to any write failure.
func WriteHTMLFile(path string, doc *model.Document, opts HTMLOptions) (err error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, doc, opts); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, cerr))
		}
	}()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
