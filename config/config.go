package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultPathsFile is where LoadPaths reads from unless told otherwise.
	DefaultPathsFile = "config/logging/logging_paths.json"
	// DefaultFormatsFile is where LoadFormats reads from unless told otherwise.
	DefaultFormatsFile = "config/logging/logging_formatting.json"
)

// ErrConfigParse matches every *ParseError.
var ErrConfigParse = errors.New("malformed logging config")

var (
	errEmptyDocument = errors.New("empty document")
	errNullDocument  = errors.New("document is null")
)

// ParseError reports a config source which is not well-formed.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrConfigParse
}

// load reads a config document from path into out. Files ending in .json
// are decoded as JSON, anything else as YAML.
func load(path string, out any) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = decodeJSON(data, out)
	default:
		err = decodeYAML(data, out)
	}
	if err != nil {
		return &ParseError{Source: path, Err: err}
	}

	return nil
}

func decodeJSON(data []byte, out any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errEmptyDocument
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return errNullDocument
	}
	return json.Unmarshal(trimmed, out)
}

func decodeYAML(data []byte, out any) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		return errEmptyDocument
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return errNullDocument
	}
	if err := requireStrings(root); err != nil {
		return err
	}
	return doc.Decode(out)
}

// requireStrings rejects mapping values which are scalars of a type other
// than string, so `master: true` is not silently read as the path "true".
// Null values are left to the decoder and read as unset.
func requireStrings(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		for i := 1; i < len(node.Content); i += 2 {
			key, value := node.Content[i-1], node.Content[i]
			if value.Kind == yaml.ScalarNode && value.Tag != "!!str" && value.Tag != "!!null" {
				return fmt.Errorf("line %d: %q must be a string, got %s", value.Line, key.Value, value.Tag)
			}
		}
	}
	for _, child := range node.Content {
		if err := requireStrings(child); err != nil {
			return err
		}
	}
	return nil
}
