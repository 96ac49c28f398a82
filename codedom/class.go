package codedom

import "strconv"

// Class is a generated class: a model, a request builder, a query-parameter
// or request-configuration holder, or a custom class.
type Class struct {
	element
	kind              ClassKind
	Description       string
	IsErrorDefinition bool
	// Discriminator is set on base models selecting a concrete subtype.
	Discriminator *Discriminator
	// OriginalComposed is the union or intersection this class wraps.
	OriginalComposed *ComposedType

	decl       *Declaration
	properties []*Property
	methods    []*Method
	inner      []*Class
	indexers   []*Indexer
}

// NewClass returns an unattached class of the given kind.
func NewClass(name string, kind ClassKind) *Class {
	c := &Class{kind: kind}
	c.name = name
	c.decl = newDeclaration(c)
	return c
}

func (c *Class) Category() Category         { return CategoryClass }
func (c *Class) Kind() ClassKind            { return c.kind }
func (c *Class) Declaration() *Declaration { return c.decl }

// IsOfKind reports whether the class kind is one of kinds.
func (c *Class) IsOfKind(kinds ...ClassKind) bool {
	for _, k := range kinds {
		if c.kind == k {
			return true
		}
	}
	return false
}

func (c *Class) Children() []Element {
	out := make([]Element, 0, len(c.decl.usings)+len(c.inner)+len(c.properties)+len(c.methods)+len(c.indexers))
	for _, e := range c.decl.usings {
		out = append(out, e)
	}
	for _, e := range c.inner {
		out = append(out, e)
	}
	for _, e := range c.properties {
		out = append(out, e)
	}
	for _, e := range c.methods {
		out = append(out, e)
	}
	for _, e := range c.indexers {
		out = append(out, e)
	}
	return out
}

// BaseClass returns the generated class this class inherits from.
func (c *Class) BaseClass() (*Class, bool) {
	return c.decl.BaseClass()
}

// DerivesFrom reports whether base appears in c's inheritance chain.
func (c *Class) DerivesFrom(base *Class) bool {
	seen := map[*Class]bool{c: true}
	for cur, ok := c.BaseClass(); ok; cur, ok = cur.BaseClass() {
		if cur == base {
			return true
		}
		if seen[cur] {
			return false
		}
		seen[cur] = true
	}
	return false
}

// AddProperty attaches properties.
func (c *Class) AddProperty(props ...*Property) {
	for _, p := range props {
		p.setParent(c)
		c.properties = append(c.properties, p)
	}
}

// RemoveProperty detaches a property.
func (c *Class) RemoveProperty(p *Property) {
	var removed bool
	if c.properties, removed = removeFrom(c.properties, p); removed {
		p.setParent(nil)
	}
}

// Properties returns a snapshot of the properties.
func (c *Class) Properties() []*Property {
	out := make([]*Property, len(c.properties))
	copy(out, c.properties)
	return out
}

// PropertiesOfKind returns the properties whose kind is one of kinds.
func (c *Class) PropertiesOfKind(kinds ...PropertyKind) []*Property {
	var out []*Property
	for _, p := range c.properties {
		if p.IsOfKind(kinds...) {
			out = append(out, p)
		}
	}
	return out
}

// FindProperty finds a property by name, case-insensitively.
func (c *Class) FindProperty(name string) *Property {
	for _, p := range c.properties {
		if equalFold(p.name, name) {
			return p
		}
	}
	return nil
}

// UniquePropertyName returns name, or name suffixed with a counter when a
// member with that name already exists.
func (c *Class) UniquePropertyName(name string) string {
	if !c.hasMemberNamed(name) {
		return name
	}
	for i := 1; ; i++ {
		candidate := name + strconv.Itoa(i)
		if !c.hasMemberNamed(candidate) {
			return candidate
		}
	}
}

func (c *Class) hasMemberNamed(name string) bool {
	return c.FindProperty(name) != nil || c.FindMethod(name) != nil || c.FindInnerClass(name) != nil
}

// AddMethod attaches methods.
func (c *Class) AddMethod(methods ...*Method) {
	for _, m := range methods {
		m.setParent(c)
		c.methods = append(c.methods, m)
	}
}

// RemoveMethod detaches a method.
func (c *Class) RemoveMethod(m *Method) {
	var removed bool
	if c.methods, removed = removeFrom(c.methods, m); removed {
		m.setParent(nil)
	}
}

// Methods returns a snapshot of the methods.
func (c *Class) Methods() []*Method {
	out := make([]*Method, len(c.methods))
	copy(out, c.methods)
	return out
}

// MethodsOfKind returns the methods whose kind is one of kinds.
func (c *Class) MethodsOfKind(kinds ...MethodKind) []*Method {
	var out []*Method
	for _, m := range c.methods {
		if m.IsOfKind(kinds...) {
			out = append(out, m)
		}
	}
	return out
}

// FindMethod finds a method by name, case-insensitively.
func (c *Class) FindMethod(name string) *Method {
	for _, m := range c.methods {
		if equalFold(m.name, name) {
			return m
		}
	}
	return nil
}

// AddInnerClass nests classes, detaching them from any previous owner.
func (c *Class) AddInnerClass(classes ...*Class) {
	for _, inner := range classes {
		detach(inner)
		inner.setParent(c)
		c.inner = append(c.inner, inner)
	}
}

// RemoveInnerClass detaches a nested class.
func (c *Class) RemoveInnerClass(inner *Class) {
	var removed bool
	if c.inner, removed = removeFrom(c.inner, inner); removed {
		inner.setParent(nil)
	}
}

// InnerClasses returns a snapshot of the nested classes.
func (c *Class) InnerClasses() []*Class {
	out := make([]*Class, len(c.inner))
	copy(out, c.inner)
	return out
}

// FindInnerClass finds a nested class by name, case-insensitively.
func (c *Class) FindInnerClass(name string) *Class {
	for _, inner := range c.inner {
		if equalFold(inner.name, name) {
			return inner
		}
	}
	return nil
}

// AddIndexer attaches an indexer. The model builder may attach a legacy and a
// canonical form; refinement leaves at most one.
func (c *Class) AddIndexer(ix *Indexer) {
	ix.setParent(c)
	c.indexers = append(c.indexers, ix)
}

// RemoveIndexer detaches an indexer.
func (c *Class) RemoveIndexer(ix *Indexer) {
	var removed bool
	if c.indexers, removed = removeFrom(c.indexers, ix); removed {
		ix.setParent(nil)
	}
}

// Indexers returns a snapshot of the indexers.
func (c *Class) Indexers() []*Indexer {
	out := make([]*Indexer, len(c.indexers))
	copy(out, c.indexers)
	return out
}

// Indexer returns the canonical indexer, falling back to a legacy one.
func (c *Class) Indexer() *Indexer {
	for _, ix := range c.indexers {
		if !ix.IsLegacy {
			return ix
		}
	}
	if len(c.indexers) > 0 {
		return c.indexers[0]
	}
	return nil
}
