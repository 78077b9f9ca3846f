package parser

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/openapigen/openapigen/oaserrors"
)

// nodeMap is a decoded mapping node: its keys in source order and the value
// node for each key.
type nodeMap struct {
	node   *yaml.Node
	keys   []string
	values map[string]*yaml.Node
}

// resolveNode unwraps document and alias nodes.
func resolveNode(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch node.Kind {
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}
			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		default:
			return node
		}
	}
	return nil
}

// isNull reports whether node is absent or an explicit null.
func isNull(node *yaml.Node) bool {
	node = resolveNode(node)
	return node == nil || (node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}

// asMap decodes a mapping node. Duplicate keys keep the last value at the
// position of the first occurrence.
func asMap(node *yaml.Node, path string) (*nodeMap, error) {
	node = resolveNode(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, nodeError(node, path, "expected an object")
	}
	m := &nodeMap{node: node, values: make(map[string]*yaml.Node, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolveNode(node.Content[i])
		if key == nil || key.Kind != yaml.ScalarNode {
			return nil, nodeError(node.Content[i], path, "object keys must be strings")
		}
		if _, dup := m.values[key.Value]; !dup {
			m.keys = append(m.keys, key.Value)
		}
		m.values[key.Value] = node.Content[i+1]
	}
	return m, nil
}

func (m *nodeMap) has(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m *nodeMap) get(key string) *yaml.Node {
	return m.values[key]
}

// optMap decodes m[key] as a mapping, returning nil when absent or null.
func (m *nodeMap) optMap(key, path string) (*nodeMap, error) {
	n := m.values[key]
	if isNull(n) {
		return nil, nil
	}
	return asMap(n, joinPath(path, key))
}

// str decodes m[key] as a string, returning "" when absent or null.
func (m *nodeMap) str(key, path string) (string, error) {
	n := resolveNode(m.values[key])
	if isNull(n) {
		return "", nil
	}
	if n.Kind != yaml.ScalarNode {
		return "", nodeError(n, joinPath(path, key), "expected a string")
	}
	return n.Value, nil
}

// boolean decodes m[key] as a bool, returning false when absent or null.
func (m *nodeMap) boolean(key, path string) (bool, error) {
	p, err := m.boolPtr(key, path)
	if err != nil || p == nil {
		return false, err
	}
	return *p, nil
}

// boolPtr decodes m[key] as a bool, returning nil when absent or null.
func (m *nodeMap) boolPtr(key, path string) (*bool, error) {
	n := resolveNode(m.values[key])
	if isNull(n) {
		return nil, nil
	}
	var b bool
	if n.Kind != yaml.ScalarNode || n.Decode(&b) != nil {
		return nil, nodeError(n, joinPath(path, key), "expected a boolean")
	}
	return &b, nil
}

// strings decodes m[key] as a list of strings. A single string is accepted
// as a one-element list.
func (m *nodeMap) strings(key, path string) ([]string, error) {
	n := resolveNode(m.values[key])
	if isNull(n) {
		return nil, nil
	}
	if n.Kind == yaml.ScalarNode {
		return []string{n.Value}, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, nodeError(n, joinPath(path, key), "expected a list of strings")
	}
	out := make([]string, 0, len(n.Content))
	for i, item := range n.Content {
		item = resolveNode(item)
		if item == nil || item.Kind != yaml.ScalarNode {
			return nil, nodeError(item, fmt.Sprintf("%s[%d]", joinPath(path, key), i), "expected a string")
		}
		out = append(out, item.Value)
	}
	return out, nil
}

// seq returns the items of m[key] as a sequence, nil when absent or null.
func (m *nodeMap) seq(key, path string) ([]*yaml.Node, error) {
	n := resolveNode(m.values[key])
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, nodeError(n, joinPath(path, key), "expected a list")
	}
	return n.Content, nil
}

// decodeValue decodes an arbitrary literal (defaults, enum entries).
func decodeValue(node *yaml.Node, path string) (any, error) {
	node = resolveNode(node)
	if node == nil {
		return nil, nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, &oaserrors.ParseError{Path: path, Line: node.Line, Column: node.Column, Cause: err}
	}
	return v, nil
}

// nodeError builds a ParseError positioned at node.
func nodeError(node *yaml.Node, path, msg string) error {
	e := &oaserrors.ParseError{Message: msg}
	if path != "" {
		e.Message = path + ": " + msg
	}
	if node != nil {
		e.Line = node.Line
		e.Column = node.Column
	}
	return e
}

// joinPath appends a key to a dotted location used in error messages.
func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	if strings.ContainsAny(key, "./") {
		return path + "[" + key + "]"
	}
	return path + "." + key
}

// DecodeNodeMap decodes a mapping node into its entries in source order.
func DecodeNodeMap(node *yaml.Node) (*OrderedMap[*yaml.Node], error) {
	m, err := asMap(node, "")
	if err != nil {
		return nil, err
	}
	out := NewOrderedMap[*yaml.Node]()
	for _, k := range m.keys {
		out.Set(k, m.values[k])
	}
	return out, nil
}

// IsNullNode reports whether node is absent or an explicit null.
func IsNullNode(node *yaml.Node) bool {
	return isNull(node)
}
