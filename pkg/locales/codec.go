package locales

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/localekit/pkg/restree"
)

// Format identifies the on-disk encoding of a locale document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Ext returns the file extension used when writing the format.
func (f Format) Ext() string {
	return "." + string(f)
}

// ParseFormat accepts "json", "yaml" and "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(p string) (Format, error) {
	return ParseFormat(path.Ext(p))
}

// Decode parses a locale document into an ordered tree, keeping mapping keys in document
// order. JSON is read as a token stream; YAML goes through the yaml.v3 node API. The root
// must be a mapping. A repeated key keeps its first position and its last value.
func Decode(data []byte, format Format) (*restree.Tree, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func decodeJSON(data []byte) (*restree.Tree, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidFile)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	if tok != json.Delim('{') {
		return nil, &restree.MalformedTreeError{Reason: "document root is not a mapping"}
	}
	return readJSONObject(dec, restree.KeyPath{})
}

// readJSONObject reads the members of an object whose opening brace was consumed.
func readJSONObject(dec *json.Decoder, p restree.KeyPath) (*restree.Tree, error) {
	t := restree.New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, &restree.MalformedTreeError{Path: p, Reason: "mapping key is not a string"}
		}
		v, err := readJSONValue(dec, p.Append(key))
		if err != nil {
			return nil, err
		}
		t.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	return t, nil
}

func readJSONValue(dec *json.Decoder, p restree.KeyPath) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	switch v := tok.(type) {
	case json.Delim:
		if v == '{' {
			return readJSONObject(dec, p)
		}
		return readJSONArray(dec, p)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: decoding %q: %s", ErrInvalidFile, p.String(), err)
		}
		return f, nil
	default:
		return v, nil
	}
}

// readJSONArray reads a list leaf. Objects inside lists are plain maps; only mappings
// reachable through keys are tree nodes.
func readJSONArray(dec *json.Decoder, p restree.KeyPath) ([]any, error) {
	out := []any{}
	for dec.More() {
		v, err := readJSONValue(dec, p)
		if err != nil {
			return nil, err
		}
		if sub, ok := v.(*restree.Tree); ok {
			v = sub.ToMap()
		}
		out = append(out, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	return out, nil
}

func decodeYAML(data []byte) (*restree.Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	root = resolveAlias(root)
	if root.Kind != yaml.MappingNode {
		return nil, &restree.MalformedTreeError{Reason: "document root is not a mapping"}
	}
	return decodeMapping(root, restree.KeyPath{})
}

func decodeMapping(n *yaml.Node, p restree.KeyPath) (*restree.Tree, error) {
	t := restree.New()
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := resolveAlias(n.Content[i]), resolveAlias(n.Content[i+1])
		if keyNode.Kind != yaml.ScalarNode {
			return nil, &restree.MalformedTreeError{Path: p, Reason: "mapping key is not a scalar"}
		}
		key := keyNode.Value
		childPath := p.Append(key)

		if valNode.Kind == yaml.MappingNode {
			sub, err := decodeMapping(valNode, childPath)
			if err != nil {
				return nil, err
			}
			t.Set(key, sub)
			continue
		}

		var leaf any
		if err := valNode.Decode(&leaf); err != nil {
			return nil, fmt.Errorf("%w: decoding %q: %s", ErrInvalidFile, childPath.String(), err)
		}
		t.Set(key, leaf)
	}
	return t, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// Encode serializes a tree in the given format.
func Encode(tree *restree.Tree, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return EncodeJSON(tree)
	case FormatYAML:
		return EncodeYAML(tree)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// EncodeJSON writes the tree as two-space indented JSON in key insertion order, with
// non-ASCII text and HTML characters left unescaped and a trailing newline.
func EncodeJSON(tree *restree.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONValue(&buf, tree, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

const jsonIndent = "  "

func writeJSONValue(buf *bytes.Buffer, v any, depth int) error {
	switch val := v.(type) {
	case *restree.Tree:
		keys := val.Keys()
		if len(keys) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		for i, k := range keys {
			buf.WriteString(strings.Repeat(jsonIndent, depth+1))
			if err := writeJSONScalar(buf, k); err != nil {
				return err
			}
			buf.WriteString(": ")
			child, _ := val.Get(k)
			if err := writeJSONValue(buf, child, depth+1); err != nil {
				return err
			}
			if i < len(keys)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat(jsonIndent, depth))
		buf.WriteByte('}')
		return nil
	case []any:
		if len(val) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, item := range val {
			buf.WriteString(strings.Repeat(jsonIndent, depth+1))
			if err := writeJSONValue(buf, item, depth+1); err != nil {
				return err
			}
			if i < len(val)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat(jsonIndent, depth))
		buf.WriteByte(']')
		return nil
	default:
		return writeJSONScalar(buf, normalizeLeaf(val))
	}
}

func writeJSONScalar(buf *bytes.Buffer, v any) error {
	var scratch bytes.Buffer
	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("locales: encoding value: %w", err)
	}
	buf.Write(bytes.TrimSuffix(scratch.Bytes(), []byte("\n")))
	return nil
}

// normalizeLeaf turns map[any]any values from YAML lists into JSON-encodable maps.
func normalizeLeaf(v any) any {
	switch val := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeLeaf(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeLeaf(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeLeaf(item)
		}
		return out
	default:
		return v
	}
}

// EncodeYAML writes the tree as YAML in key insertion order.
func EncodeYAML(tree *restree.Tree) ([]byte, error) {
	node, err := yamlNode(tree)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("locales: encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("locales: encoding yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func yamlNode(v any) (*yaml.Node, error) {
	t, ok := v.(*restree.Tree)
	if !ok {
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return nil, fmt.Errorf("locales: encoding yaml value: %w", err)
		}
		return &n, nil
	}
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range t.Keys() {
		child, _ := t.Get(k)
		valNode, err := yamlNode(child)
		if err != nil {
			return nil, err
		}
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			valNode,
		)
	}
	return m, nil
}
