package codedom

import "strings"

// TypeTraits are shared by plain and composed type references.
type TypeTraits struct {
	Nullable   bool
	Collection CollectionKind
}

// TypeBase is a type slot: a plain reference or a composed type.
type TypeBase interface {
	TypeName() string
	SetTypeName(name string)
	Traits() *TypeTraits
	// AllTypes returns the plain references reachable from this slot.
	AllTypes() []*TypeRef
	CloneType() TypeBase
}

// TypeDefinition is a declaration a TypeRef can point at.
type TypeDefinition interface {
	Element
	Declaration() *Declaration
}

// TypeRef references a type by name. Definition is a non-owning handle to the
// declaring class, interface or enum when the type is generated.
type TypeRef struct {
	TypeTraits
	Name       string
	External   bool
	Definition TypeDefinition
}

// NewTypeRef returns a nullable scalar reference to name.
func NewTypeRef(name string) *TypeRef {
	return &TypeRef{Name: name, TypeTraits: TypeTraits{Nullable: true}}
}

// RefTo returns a reference to a declared type.
func RefTo(def TypeDefinition) *TypeRef {
	return &TypeRef{Name: def.Name(), Definition: def, TypeTraits: TypeTraits{Nullable: true}}
}

func (t *TypeRef) TypeName() string        { return t.Name }
func (t *TypeRef) SetTypeName(name string) { t.Name = name }
func (t *TypeRef) Traits() *TypeTraits     { return &t.TypeTraits }

func (t *TypeRef) AllTypes() []*TypeRef {
	if t == nil {
		return nil
	}
	return []*TypeRef{t}
}
func (t *TypeRef) CloneType() TypeBase { return t.Clone() }

// Clone copies the reference; the definition handle is shared.
func (t *TypeRef) Clone() *TypeRef {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// IsInternal reports whether the reference resolves to a generated declaration.
func (t *TypeRef) IsInternal() bool {
	return t != nil && t.Definition != nil && !t.External
}

// IsCollection reports whether the slot holds many values.
func (t *TypeRef) IsCollection() bool {
	return t.Collection != CollectionNone
}

// Class returns the referenced class, if the definition is one.
func (t *TypeRef) Class() (*Class, bool) {
	if t == nil {
		return nil, false
	}
	c, ok := t.Definition.(*Class)
	return c, ok
}

// Enum returns the referenced enum, if the definition is one.
func (t *TypeRef) Enum() (*Enum, bool) {
	if t == nil {
		return nil, false
	}
	e, ok := t.Definition.(*Enum)
	return e, ok
}

// ComposedKind distinguishes unions from intersections.
type ComposedKind int

const (
	Union ComposedKind = iota
	Intersection
)

func (k ComposedKind) String() string {
	if k == Intersection {
		return "intersection"
	}
	return "union"
}

// ComposedType is an ordered set of member types: one of them (union) or all
// of them together (intersection).
type ComposedType struct {
	TypeTraits
	Name          string
	Description   string
	kind          ComposedKind
	types         []*TypeRef
	Discriminator *Discriminator
}

// NewComposedType builds a composed type of the given kind.
func NewComposedType(kind ComposedKind, name string, members ...*TypeRef) *ComposedType {
	c := &ComposedType{Name: name, kind: kind, TypeTraits: TypeTraits{Nullable: true}}
	c.AddTypes(members...)
	return c
}

func (c *ComposedType) Kind() ComposedKind      { return c.kind }
func (c *ComposedType) TypeName() string        { return c.Name }
func (c *ComposedType) SetTypeName(name string) { c.Name = name }
func (c *ComposedType) Traits() *TypeTraits     { return &c.TypeTraits }

// AllTypes returns the members in declaration order.
func (c *ComposedType) AllTypes() []*TypeRef {
	out := make([]*TypeRef, len(c.types))
	copy(out, c.types)
	return out
}

// AddTypes appends members, ignoring names already present.
func (c *ComposedType) AddTypes(members ...*TypeRef) {
	for _, m := range members {
		if m == nil || c.hasMember(m.Name) {
			continue
		}
		c.types = append(c.types, m)
	}
}

func (c *ComposedType) hasMember(name string) bool {
	for _, t := range c.types {
		if equalFold(t.Name, name) {
			return true
		}
	}
	return false
}

func (c *ComposedType) CloneType() TypeBase {
	clone := &ComposedType{
		TypeTraits:  c.TypeTraits,
		Name:        c.Name,
		Description: c.Description,
		kind:        c.kind,
	}
	for _, t := range c.types {
		clone.types = append(clone.types, t.Clone())
	}
	if c.Discriminator != nil {
		clone.Discriminator = c.Discriminator.Clone()
	}
	return clone
}

// MemberNames joins the member type names, for descriptions.
func (c *ComposedType) MemberNames() string {
	names := make([]string, 0, len(c.types))
	for _, t := range c.types {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}

// IsUnion reports whether t is a composed union.
func IsUnion(t TypeBase) bool {
	c, ok := t.(*ComposedType)
	return ok && c.kind == Union
}

// IsNil reports whether a slot is empty, including a typed nil reference.
func IsNil(t TypeBase) bool {
	if t == nil {
		return true
	}
	if ref, ok := t.(*TypeRef); ok {
		return ref == nil
	}
	if c, ok := t.(*ComposedType); ok {
		return c == nil
	}
	return false
}

// TypeRefs flattens the plain references of the given slots, skipping nil.
func TypeRefs(slots ...TypeBase) []*TypeRef {
	var out []*TypeRef
	for _, s := range slots {
		if IsNil(s) {
			continue
		}
		out = append(out, s.AllTypes()...)
	}
	return out
}
