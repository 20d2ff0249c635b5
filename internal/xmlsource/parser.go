package xmlsource

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-doc2md/internal/doctree"
)

var (
	// ErrMalformedSource wraps XML syntax errors.
	ErrMalformedSource = errors.New("xmlsource: malformed document")
	// ErrEmptySource is returned when the input holds no root element.
	ErrEmptySource = errors.New("xmlsource: document has no root element")
)

// element is the generic parse tree. text holds the character data that
// precedes the first child element; inner holds the raw markup between the
// start and end tags.
type element struct {
	name     string
	attrs    map[string]string
	text     strings.Builder
	inner    string
	children []*element
}

func (e *element) attr(names ...string) string {
	for _, name := range names {
		if value, ok := e.attrs[name]; ok {
			return value
		}
	}
	return ""
}

// ParseFile reads and parses the document stored at path.
func ParseFile(path string) (*doctree.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source %s: %w", path, err)
	}
	return ParseBytes(data)
}

// Parse reads the whole stream and parses it.
func Parse(r io.Reader) (*doctree.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes converts XML markup into a document tree.
func ParseBytes(data []byte) (*doctree.Document, error) {
	root, err := decode(data)
	if err != nil {
		return nil, err
	}
	return toDocument(root), nil
}

func decode(data []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		root   *element
		stack  []*element
		starts []int64
	)

	for {
		before := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{
				name:  strings.ToLower(t.Name.Local),
				attrs: make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				el.attrs[a.Name.Local] = a.Value
			}
			if n := len(stack); n > 0 {
				parent := stack[n-1]
				parent.children = append(parent.children, el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)
			starts = append(starts, dec.InputOffset())
		case xml.EndElement:
			n := len(stack)
			if n == 0 {
				continue
			}
			el := stack[n-1]
			if start := starts[n-1]; before >= start && before <= int64(len(data)) {
				el.inner = string(data[start:before])
			}
			stack = stack[:n-1]
			starts = starts[:n-1]
		case xml.CharData:
			if n := len(stack); n > 0 && len(stack[n-1].children) == 0 {
				stack[n-1].text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, ErrEmptySource
	}
	return root, nil
}
