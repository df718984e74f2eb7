package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/cybergodev/nested"
	"github.com/cybergodev/nested/internal"
)

// Format is a document encoding understood by the CLI
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat validates a format name. The empty string means auto.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q, expected auto, json, yaml or toml", name)
	}
}

// DetectFormat resolves auto to a concrete format from the file extension,
// falling back to sniffing the content.
func DetectFormat(format Format, filename string, content []byte) Format {
	if format != FormatAuto && format != "" {
		return format
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	}

	trimmed := bytes.TrimSpace(content)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// Decode parses a document. JSON and YAML mappings become *nested.OrderedMap
// so key order survives a round trip; TOML tables become map[string]any.
func Decode(content []byte, format Format) (any, error) {
	switch format {
	case FormatTOML:
		doc := map[string]any{}
		if err := toml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		return doc, nil
	case FormatJSON, FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(content, &node); err != nil {
			return nil, fmt.Errorf("decode %s: %w", format, err)
		}
		return fromNode(&node)
	default:
		return nil, fmt.Errorf("cannot decode format %q", format)
	}
}

// ParseValue parses a YAML literal such as `42`, `true`, `[1, 2]` or
// `{name: x}`. An empty literal is the empty string.
func ParseValue(literal string) (any, error) {
	if strings.TrimSpace(literal) == "" {
		return literal, nil
	}
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(literal), &node); err != nil {
		return nil, fmt.Errorf("parse value %q: %w", literal, err)
	}
	return fromNode(&node)
}

// ParseSegments parses a YAML flow sequence into a sequence-form path
func ParseSegments(literal string) ([]any, error) {
	var segments []any
	if err := yaml.Unmarshal([]byte(literal), &segments); err != nil {
		return nil, fmt.Errorf("parse segments %q: %w", literal, err)
	}
	if segments == nil {
		return nil, fmt.Errorf("parse segments %q: expected a sequence like '[\"a.b\", 0]'", literal)
	}
	return segments, nil
}

func fromNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return fromNode(node.Content[0])
	case yaml.AliasNode:
		return fromNode(node.Alias)
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := fromNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	case yaml.MappingNode:
		om := nested.NewOrderedMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			value, err := fromNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			om.Set(node.Content[i].Value, value)
		}
		return om, nil
	default:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return value, nil
	}
}

// Encode renders a value in the given format. Values TOML cannot represent
// at the top level (scalars, sequences) are rendered as JSON.
func Encode(value any, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		table, ok := plain(value).(map[string]any)
		if !ok {
			return Encode(value, FormatJSON)
		}
		out, err := toml.Marshal(table)
		if err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return out, nil
	case FormatYAML:
		node, err := toNode(value)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(jsonSafe(value)); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return buf.Bytes(), nil
	}
}

func toNode(value any) (*yaml.Node, error) {
	switch v := value.(type) {
	case *nested.OrderedMap:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for pair := v.Oldest(); pair != nil; pair = pair.Next() {
			child, err := toNode(pair.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, keyNode(pair.Key), child)
		}
		return node, nil
	case map[string]any:
		om := nested.NewOrderedMap()
		for _, k := range internal.SortedStringKeys(v) {
			om.Set(k, v[k])
		}
		return toNode(om)
	case []any:
		return sequenceNode(v)
	case nested.Tuple:
		return sequenceNode(v)
	default:
		node := &yaml.Node{}
		if err := node.Encode(plain(value)); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return node, nil
	}
}

func sequenceNode(items []any) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, item := range items {
		child, err := toNode(item)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, child)
	}
	return node, nil
}

func keyNode(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}

// plain converts ordered maps and tuples into the built-in shapes expected by
// encoders without ordered map support
func plain(value any) any {
	switch v := value.(type) {
	case *nested.OrderedMap:
		out := make(map[string]any, v.Len())
		for pair := v.Oldest(); pair != nil; pair = pair.Next() {
			out[pair.Key] = plain(pair.Value)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, child := range v {
			out[k] = plain(child)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, child := range v {
			out[fmt.Sprint(k)] = plain(child)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = plain(child)
		}
		return out
	case nested.Tuple:
		return plain([]any(v))
	default:
		return value
	}
}

// jsonSafe rewrites map[any]any, which encoding/json rejects. Ordered maps
// are kept since they marshal themselves in insertion order.
func jsonSafe(value any) any {
	switch v := value.(type) {
	case map[any]any:
		return plain(v)
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = jsonSafe(child)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, child := range v {
			out[k] = jsonSafe(child)
		}
		return out
	case nested.Tuple:
		return jsonSafe([]any(v))
	case *nested.OrderedMap:
		out := nested.NewOrderedMap()
		for pair := v.Oldest(); pair != nil; pair = pair.Next() {
			out.Set(pair.Key, jsonSafe(pair.Value))
		}
		return out
	default:
		return value
	}
}
