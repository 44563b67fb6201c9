package choices

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML applies the Parse rules to a YAML mapping of sequences, e.g.
//
//	Images: ["*.png", "*.jpg"]
//	Text:
//	  - "*.txt"
//
// Mapping order is kept. An empty document yields an empty Set. Only one
// document is allowed; a second one is a *SyntaxError like trailing JSON.
func ParseYAML(data []byte, opts ...Option) (Set, error) {
	o := newParseOptions(opts)
	if strings.TrimSpace(string(data)) == "" {
		return Set{}, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// comments only
			return Set{}, nil
		}
		return nil, yamlSyntaxError(data, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, yamlSyntaxError(data, err)
		}
		at := &extra
		if len(extra.Content) > 0 {
			at = extra.Content[0]
		}
		return nil, &SyntaxError{
			Offset: nodeOffset(data, at.Line, at.Column),
			Err:    errors.New("unexpected document after the choices"),
		}
	}

	root := resolve(&doc)
	if root.Kind == 0 {
		return Set{}, nil
	}
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return Set{}, nil
		}
		root = resolve(root.Content[0])
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ShapeError{Reason: "expected an object of choices"}
	}

	set := Set{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := resolve(root.Content[i])
		if key.Kind != yaml.ScalarNode {
			return nil, &ShapeError{Reason: fmt.Sprintf("label at line %d must be a string", key.Line)}
		}
		label := key.Value

		value := resolve(root.Content[i+1])
		if value.Kind != yaml.SequenceNode {
			return nil, &ShapeError{Label: label, Reason: "value must be an array of strings"}
		}
		exts := []string{}
		for _, item := range value.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
				return nil, &ShapeError{Label: label, Reason: "all extensions must be strings"}
			}
			if isBlank(item.Value) {
				continue
			}
			exts = append(exts, item.Value)
		}
		set = append(set, Entry{Label: label, Extensions: exts})
	}
	o.notify(set)
	return set, nil
}

var yamlErrLine = regexp.MustCompile(`line (\d+):`)

// yamlSyntaxError locates err by the line yaml.v3 names in its message.
func yamlSyntaxError(data []byte, err error) *SyntaxError {
	var offset int64
	if m := yamlErrLine.FindStringSubmatch(err.Error()); m != nil {
		if line, convErr := strconv.Atoi(m[1]); convErr == nil {
			offset = nodeOffset(data, line, 1)
		}
	}
	return &SyntaxError{Offset: offset, Err: err}
}

// nodeOffset turns a 1-based line and column into a byte offset in data.
func nodeOffset(data []byte, line, column int) int64 {
	var offset int64
	for l := 1; l < line; l++ {
		i := bytes.IndexByte(data[offset:], '\n')
		if i < 0 {
			return int64(len(data))
		}
		offset += int64(i) + 1
	}
	if column > 1 {
		offset += int64(column - 1)
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return offset
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// LoadFile reads a choices file. Files ending in .yaml or .yml are parsed as
// YAML, anything else as JSON.
func LoadFile(path string, opts ...Option) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading choices file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data, opts...)
	default:
		return Parse(string(data), opts...)
	}
}
