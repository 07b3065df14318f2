package readtime

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/blogkit/internal/fault"
)

var errInvalidUTF8 = errors.New("text is not valid UTF-8")

// Document is a post read once for counting
type Document struct {
	Path  string
	Title string
	Meta  map[string]any
	// Raw is the full text with any BOM removed
	Raw string
	// Body is Raw without the front matter block, trimmed
	Body string
	// MetaErr is set when the front matter block was stripped but its YAML
	// did not decode into a mapping. Title and Meta are empty then.
	MetaErr error
}

// yamlBlock recognizes only a leading ---/--- block. Decode errors are
// recorded in decodeErr instead of failing the split, so a post with
// loose YAML still has its block removed.
func yamlBlock(decodeErr *error) *frontmatter.Format {
	return frontmatter.NewFormat("---", "---", func(data []byte, v any) error {
		if err := yaml.Unmarshal(data, v); err != nil {
			*decodeErr = err
		}
		return nil
	})
}

// LoadDocument reads and parses the file at path
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.FromOpen(path, err)
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fault.New(fault.KindEncoding, path, err)
	}
	doc.Path = path
	return doc, nil
}

// ParseDocument splits raw bytes into front matter and body
func ParseDocument(data []byte) (*Document, error) {
	if !utf8.Valid(data) {
		return nil, errInvalidUTF8
	}

	text, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("decode text: %w", err)
	}

	var metaErr error
	meta := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(text), &meta, yamlBlock(&metaErr))
	if err != nil {
		return nil, fmt.Errorf("split front matter: %w", err)
	}
	if metaErr != nil {
		meta = map[string]any{}
	}

	doc := &Document{
		Meta:    meta,
		Raw:     string(text),
		Body:    strings.TrimSpace(string(body)),
		MetaErr: metaErr,
	}
	if title, ok := meta["title"].(string); ok {
		doc.Title = title
	}
	return doc, nil
}
