// Package mbxml decodes MusicBrainz XML documents into nested maps.
//
// The web service wraps every response in a <metadata> element. Parse
// unwraps it and converts the element tree generically: attributes and child
// elements become string keys, repeated children become slices, and
// text-only elements become plain strings. Collection responses keep their
// "<entity>-list" wrapper keys.
package mbxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Parse decodes an XML document into a nested map structure.
func Parse(r io.Reader) (map[string]any, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("empty document")
		}
		if err != nil {
			return nil, fmt.Errorf("parsing document: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		value, err := parseElement(dec, start)
		if err != nil {
			return nil, err
		}

		// The web service nests everything inside <metadata>; unwrap it
		// so callers index by entity name directly.
		if start.Name.Local == "metadata" {
			if m, ok := value.(map[string]any); ok {
				return m, nil
			}
			return map[string]any{}, nil
		}
		return map[string]any{start.Name.Local: value}, nil
	}
}

// parseElement consumes tokens up to the matching end element. Elements with
// neither attributes nor children collapse to their character data.
func parseElement(dec *xml.Decoder, start xml.StartElement) (any, error) {
	node := make(map[string]any)
	for _, attr := range start.Attr {
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}
		node[attr.Name.Local] = attr.Value
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing <%s>: %w", start.Name.Local, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child, err := parseElement(dec, t)
			if err != nil {
				return nil, err
			}
			addChild(node, t.Name.Local, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			data := strings.TrimSpace(text.String())
			if len(node) == 0 {
				return data, nil
			}
			if data != "" {
				node["text"] = data
			}
			return node, nil
		}
	}
}

// addChild inserts a child value, promoting repeated names to a slice.
func addChild(node map[string]any, name string, child any) {
	switch existing := node[name].(type) {
	case nil:
		node[name] = child
	case []any:
		node[name] = append(existing, child)
	default:
		node[name] = []any{existing, child}
	}
}
