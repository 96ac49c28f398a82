package codedom

// Property is a field of a class. SerializationName is the wire name when
// it differs from the identifier.
type Property struct {
	element
	kind              PropertyKind
	Type              TypeBase
	Access            Access
	ReadOnly          bool
	Description       string
	SerializationName string
	DefaultValue      string
	// NamePrefix is prepended by emitters to private backing fields.
	NamePrefix string

	// Getter and Setter link a hoisted property to its accessors.
	Getter *Method
	Setter *Method
}

// NewProperty returns an unattached public property.
func NewProperty(name string, kind PropertyKind, t TypeBase) *Property {
	p := &Property{kind: kind, Type: t}
	p.name = name
	return p
}

func (p *Property) Category() Category  { return CategoryProperty }
func (p *Property) Children() []Element { return nil }
func (p *Property) Kind() PropertyKind  { return p.kind }

// IsOfKind reports whether the property kind is one of kinds.
func (p *Property) IsOfKind(kinds ...PropertyKind) bool {
	for _, k := range kinds {
		if p.kind == k {
			return true
		}
	}
	return false
}

// WireName is the serialized name of the property.
func (p *Property) WireName() string {
	if p.SerializationName != "" {
		return p.SerializationName
	}
	return p.name
}

// IsNameEscaped reports whether the identifier differs from the wire name.
func (p *Property) IsNameEscaped() bool {
	return p.SerializationName != "" && p.SerializationName != p.name
}

// Clone copies the property; the clone is unattached.
func (p *Property) Clone() *Property {
	c := &Property{
		kind:              p.kind,
		Access:            p.Access,
		ReadOnly:          p.ReadOnly,
		Description:       p.Description,
		SerializationName: p.SerializationName,
		DefaultValue:      p.DefaultValue,
		NamePrefix:        p.NamePrefix,
	}
	c.name = p.name
	if !IsNil(p.Type) {
		c.Type = p.Type.CloneType()
	}
	return c
}
