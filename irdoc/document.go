// Package irdoc decodes YAML intermediate-representation documents into an
// element tree. A document describes the tree a model builder would hand to
// the refiners: namespaces holding classes and enums, with members referring
// to each other by name.
//
// Documents are resolved in two passes. The first declares every class and
// enum so that the second can bind type references regardless of the order
// declarations appear in.
package irdoc

import (
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/teranos/refinery/errors"
)

// ErrInvalidDocument marks errors caused by malformed IR documents
var ErrInvalidDocument = errors.New("invalid IR document")

// Document is the root of an IR document
type Document struct {
	// Namespace is the root namespace name, usually the client namespace
	Namespace string `yaml:"namespace"`

	// Classes and Enums declared directly in the root namespace
	Classes []ClassDoc `yaml:"classes,omitempty"`
	Enums   []EnumDoc  `yaml:"enums,omitempty"`

	// Namespaces declared below the root, by full dotted name
	Namespaces []NamespaceDoc `yaml:"namespaces,omitempty"`
}

// NamespaceDoc is a namespace and its declarations
type NamespaceDoc struct {
	Name    string     `yaml:"name"`
	Classes []ClassDoc `yaml:"classes,omitempty"`
	Enums   []EnumDoc  `yaml:"enums,omitempty"`
}

// ClassDoc describes a class
type ClassDoc struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind,omitempty"` // Custom when empty
	Description string `yaml:"description,omitempty"`
	Error       bool   `yaml:"error,omitempty"`

	// Inherits names the base class. Unknown names become external types.
	Inherits   string   `yaml:"inherits,omitempty"`
	Implements []string `yaml:"implements,omitempty"`

	Usings        []UsingDoc        `yaml:"usings,omitempty"`
	Discriminator *DiscriminatorDoc `yaml:"discriminator,omitempty"`
	Properties    []PropertyDoc     `yaml:"properties,omitempty"`
	Methods       []MethodDoc       `yaml:"methods,omitempty"`
	Indexers      []IndexerDoc      `yaml:"indexers,omitempty"`
	Inner         []ClassDoc        `yaml:"inner,omitempty"`
}

// UsingDoc is an external import
type UsingDoc struct {
	Module string `yaml:"module"`
	Symbol string `yaml:"symbol"`
}

// DiscriminatorDoc maps discriminator values to subtype names
type DiscriminatorDoc struct {
	Property string            `yaml:"property"`
	Mappings map[string]string `yaml:"mappings"`
}

// PropertyDoc describes a property
type PropertyDoc struct {
	Name              string   `yaml:"name"`
	Kind              string   `yaml:"kind,omitempty"`
	Type              *TypeDoc `yaml:"type,omitempty"`
	Access            string   `yaml:"access,omitempty"`
	ReadOnly          bool     `yaml:"read_only,omitempty"`
	Description       string   `yaml:"description,omitempty"`
	SerializationName string   `yaml:"serialization_name,omitempty"`
	Default           string   `yaml:"default,omitempty"`
}

// MethodDoc describes a method
type MethodDoc struct {
	Name        string         `yaml:"name"`
	Kind        string         `yaml:"kind,omitempty"`
	HTTPMethod  string         `yaml:"http_method,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Async       bool           `yaml:"async,omitempty"`
	Static      bool           `yaml:"static,omitempty"`
	Returns     *TypeDoc       `yaml:"returns,omitempty"`
	Parameters  []ParameterDoc `yaml:"parameters,omitempty"`
}

// ParameterDoc describes a method or indexer parameter
type ParameterDoc struct {
	Name              string   `yaml:"name"`
	Kind              string   `yaml:"kind,omitempty"`
	Type              *TypeDoc `yaml:"type,omitempty"`
	Optional          bool     `yaml:"optional,omitempty"`
	Description       string   `yaml:"description,omitempty"`
	Default           string   `yaml:"default,omitempty"`
	SerializationName string   `yaml:"serialization_name,omitempty"`
}

// IndexerDoc describes an indexer
type IndexerDoc struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	Parameter   *ParameterDoc `yaml:"parameter,omitempty"`
	Returns     *TypeDoc      `yaml:"returns,omitempty"`
	Legacy      bool          `yaml:"legacy,omitempty"`
	PathSegment string        `yaml:"path_segment,omitempty"`
}

// EnumDoc describes an enum. Options are either plain names or mappings
// with a name and a wire value.
type EnumDoc struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Flags       bool            `yaml:"flags,omitempty"`
	Options     []EnumOptionDoc `yaml:"options,omitempty"`
}

// EnumOptionDoc is one enum member
type EnumOptionDoc struct {
	Name              string `yaml:"name"`
	SerializationName string `yaml:"serialization_name,omitempty"`
	Description       string `yaml:"description,omitempty"`
}

// UnmarshalYAML accepts a bare option name.
func (o *EnumOptionDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Name = node.Value
		return nil
	}
	if err := checkKeys(node, "name", "serialization_name", "description"); err != nil {
		return err
	}
	type plain EnumOptionDoc
	return node.Decode((*plain)(o))
}

// TypeDoc is a type slot. The short scalar form names a type, "[]" suffixed
// for collections and "!" suffixed for non-nullable slots:
//
//	type: User[]
//	type: integer!
//
// The mapping form spells the same out and adds composed types:
//
//	type:
//	  union: Pet
//	  members: [Cat, Dog]
type TypeDoc struct {
	Name       string `yaml:"name,omitempty"`
	Collection string `yaml:"collection,omitempty"`
	// Nullable defaults to true
	Nullable *bool `yaml:"nullable,omitempty"`
	External bool  `yaml:"external,omitempty"`

	// Union or Intersection name a composed type; Members are its types
	Union         string            `yaml:"union,omitempty"`
	Intersection  string            `yaml:"intersection,omitempty"`
	Members       []TypeDoc         `yaml:"members,omitempty"`
	Discriminator *DiscriminatorDoc `yaml:"discriminator,omitempty"`
}

// UnmarshalYAML accepts the short scalar form.
func (t *TypeDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*t = parseShortType(node.Value)
		return nil
	}
	if err := checkKeys(node, "name", "collection", "nullable", "external",
		"union", "intersection", "members", "discriminator"); err != nil {
		return err
	}
	type plain TypeDoc
	return node.Decode((*plain)(t))
}

// checkKeys rejects mapping keys outside allowed. Node.Decode does not
// inherit the decoder's KnownFields setting.
func checkKeys(node *yaml.Node, allowed ...string) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return invalid("line %d: field %s not found", key.Line, key.Value)
		}
	}
	return nil
}

func parseShortType(s string) TypeDoc {
	var t TypeDoc
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "!") {
		s = strings.TrimSuffix(s, "!")
		nullable := false
		t.Nullable = &nullable
	}
	if strings.HasSuffix(s, "[]") {
		s = strings.TrimSuffix(s, "[]")
		t.Collection = "array"
	}
	t.Name = s
	return t
}

// IsComposed reports whether the slot is a union or intersection.
func (t *TypeDoc) IsComposed() bool {
	return t.Union != "" || t.Intersection != "" || len(t.Members) > 0
}
