package schema

import "errors"

// RootKey is the key of the root node in a schema document.
const RootKey = "Source"

// ErrNoSource is returned when a schema document has no Source root.
var ErrNoSource = errors.New("schema has no " + RootKey + " root")

// Tree is a decoded schema document.
type Tree struct {
	Source *Node `yaml:"Source" json:"Source"`
}

// Node is one field of the schema tree.
type Node struct {
	Field Field `yaml:"field" json:"field"`

	// Children maps a field key to the nested node. Nil for leaves.
	Children map[string]*Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// Field describes the field a node stands for.
type Field struct {
	FieldName string `yaml:"fieldName" json:"fieldName"`
}

// FieldPathOption is one selectable source path.
type FieldPathOption struct {
	// Value is the path joined by PathSeparator.
	Value string `yaml:"value" json:"value"`
	// Label is the path joined by LabelSeparator.
	Label string `yaml:"label" json:"label"`
}

// Segments splits the option value back into field names.
func (o FieldPathOption) Segments() []string {
	return SplitPath(o.Value)
}

// Leaf returns the last field name of the option path.
func (o FieldPathOption) Leaf() string {
	segs := o.Segments()
	if len(segs) == 0 {
		return ""
	}

	return segs[len(segs)-1]
}

// NewNode is a convenience constructor for building trees in code.
func NewNode(fieldName string, children map[string]*Node) *Node {
	return &Node{Field: Field{FieldName: fieldName}, Children: children}
}
