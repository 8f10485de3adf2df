package profile

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/adrg/frontmatter"

	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

// ParseFrontMatter extracts the key-value header block and the Markdown body
// from the provided source bytes. Values are flattened to plain strings with
// quoting stripped. When the header block is present but malformed, the
// returned error describes the failure while the metadata is empty and the
// body covers the entire input; callers log the error and continue, the
// condition is never fatal.
func ParseFrontMatter(source []byte) (interfaces.Metadata, []byte, error) {
	var raw map[string]any

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &raw)
	if err != nil {
		return interfaces.Metadata{}, source, fmt.Errorf("parse frontmatter: %w", err)
	}

	return flattenMetadata(raw), body, nil
}

// flattenMetadata coerces scalar header values to strings. Nested structures
// have no place in a profile header and are dropped.
func flattenMetadata(raw map[string]any) interfaces.Metadata {
	meta := make(interfaces.Metadata, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			meta[key] = v
		case bool:
			meta[key] = strconv.FormatBool(v)
		case int:
			meta[key] = strconv.Itoa(v)
		case int64:
			meta[key] = strconv.FormatInt(v, 10)
		case float64:
			meta[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
			meta[key] = ""
		}
	}
	return meta
}
