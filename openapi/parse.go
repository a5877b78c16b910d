package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadFromFile reads a JSON or YAML OpenAPI specification, dispatching on
// the file extension.
func ReadFromFile(path string) (*Spec, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ReadFromJSONFile(path)
	case ".yaml", ".yml":
		return ReadFromYAMLFile(path)
	default:
		return nil, fmt.Errorf("unsupported file format %q", ext)
	}
}

// ReadFromJSONFile is ReadFromFile, but only for JSON files.
func ReadFromJSONFile(path string) (*Spec, error) {
	return readSpecFile(path)
}

// ReadFromYAMLFile is ReadFromFile, but only for YAML files.
func ReadFromYAMLFile(path string) (*Spec, error) {
	return readSpecFile(path)
}

// Both encodings share one decode path: YAML is a superset of JSON, so the
// yaml.v3 parser produces the identical model for either serialization.
func readSpecFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses a specification from raw JSON or YAML bytes.
func Decode(data []byte) (*Spec, error) {
	spec := new(Spec)
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("parsing specification: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("parsing specification: %w", err)
	}
	return spec, nil
}

// EncodeYAML renders the specification as YAML.
func EncodeYAML(spec *Spec) ([]byte, error) {
	return yaml.Marshal(spec)
}

// EncodeJSON renders the specification as JSON. The model marshals through a
// yaml.Node tree (which keeps whatever ordering the model preserves), and
// the node tree is written out as JSON directly; yaml.v3 itself cannot emit
// JSON.
func EncodeJSON(spec *Spec) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(spec); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := writeJSONNode(&buf, &node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var jsonNumberRe = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// jsonNumber renders a numeric scalar as a JSON-legal literal. YAML admits
// spellings JSON does not (0x1F, 0o17, 1_000, .5), so literals that are not
// already valid JSON get re-parsed and re-formatted. Non-finite values
// (.inf, .nan) have no JSON representation and fail the encode.
func jsonNumber(lit string) (string, error) {
	if jsonNumberRe.MatchString(lit) {
		return lit, nil
	}
	plain := strings.ReplaceAll(lit, "_", "")
	if i, err := strconv.ParseInt(plain, 0, 64); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	if u, err := strconv.ParseUint(plain, 0, 64); err == nil {
		return strconv.FormatUint(u, 10), nil
	}
	if f, err := strconv.ParseFloat(plain, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}
	return "", fmt.Errorf("cannot encode %q as a JSON number", lit)
}

func writeJSONNode(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeJSONNode(buf, node.Content[0])
	case yaml.AliasNode:
		return writeJSONNode(buf, node.Alias)
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			buf.WriteString("null")
		case "!!bool":
			buf.WriteString(node.Value)
		case "!!int", "!!float":
			lit, err := jsonNumber(node.Value)
			if err != nil {
				return err
			}
			buf.WriteString(lit)
		default:
			escaped, err := json.Marshal(node.Value)
			if err != nil {
				return err
			}
			buf.Write(escaped)
		}
		return nil
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, c := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONNode(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(node.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSONNode(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("cannot encode node kind %d as JSON", node.Kind)
	}
}
