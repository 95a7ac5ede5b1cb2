// Package export serializes atlas documents for downstream consumers.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/c360studio/atlasgraph/atlas"
	"github.com/c360studio/atlasgraph/vocabulary/ccf"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatJSON produces the pretty-printed JSON node array consumed
	// by atlas viewers.
	FormatJSON Format = "json"
)

// DefaultIndent is the indent width viewers expect.
const DefaultIndent = 2

// Writer serializes atlas documents.
type Writer struct {
	format Format
	indent int
}

// NewWriter creates a writer for the given format and indent width.
func NewWriter(format Format, indent int) (*Writer, error) {
	if format != FormatJSON {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if indent <= 0 {
		indent = DefaultIndent
	}
	return &Writer{format: format, indent: indent}, nil
}

// Write serializes the document to out as a single JSON array followed by
// a trailing newline. The header node must be first; a document that lost
// that invariant is refused rather than emitted broken.
func (w *Writer) Write(out io.Writer, doc atlas.Document) error {
	header := doc.Header()
	if header == nil || !header.Types.Has(ccf.TypeHeader) {
		return fmt.Errorf("document does not start with a header node")
	}

	data, err := json.MarshalIndent(doc, "", strings.Repeat(" ", w.indent))
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
