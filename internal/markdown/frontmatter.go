package markdown

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-doc2md/pkg/interfaces"
)

const frontMatterDelimiter = "---"

// ParseFrontMatter splits a generated page into its metadata and Markdown
// body. Input without a front matter block is returned unchanged as the body.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	fm := interfaces.FrontMatter{Title: meta.Title}
	if len(meta.Extra) > 0 {
		fm.Extra = cloneMap(meta.Extra)
	}
	return fm, body, nil
}

// StripFrontMatter returns only the Markdown body of source.
func StripFrontMatter(source []byte) ([]byte, error) {
	_, body, err := ParseFrontMatter(source)
	return body, err
}

// ComposeFrontMatter prefixes body with a YAML block holding fm. The title is
// always written double-quoted; extra keys follow in sorted order.
//
//	---
//	title: "01 Intro"
//	---
//
//	body...
func ComposeFrontMatter(fm interfaces.FrontMatter, body []byte) ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "title"},
		&yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Tag: "!!str", Value: fm.Title},
	)

	keys := make([]string, 0, len(fm.Extra))
	for key := range fm.Extra {
		if key == "title" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := &yaml.Node{}
		if err := value.Encode(fm.Extra[key]); err != nil {
			return nil, fmt.Errorf("encode frontmatter %q: %w", key, err)
		}
		mapping.Content = append(mapping.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
	}

	meta, err := yaml.Marshal(mapping)
	if err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}

	var out bytes.Buffer
	out.Grow(len(meta) + len(body) + 16)
	out.WriteString(frontMatterDelimiter + "\n")
	out.Write(meta)
	out.WriteString(frontMatterDelimiter + "\n\n")
	out.Write(body)
	return out.Bytes(), nil
}

type frontMatterEnvelope struct {
	Title string         `yaml:"title"`
	Extra map[string]any `yaml:",inline"`
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
