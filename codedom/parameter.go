package codedom

// Parameter is a method or indexer parameter.
type Parameter struct {
	element
	kind              ParameterKind
	Type              TypeBase
	Optional          bool
	Description       string
	DefaultValue      string
	SerializationName string
}

// NewParameter returns an unattached required parameter.
func NewParameter(name string, kind ParameterKind, t TypeBase) *Parameter {
	p := &Parameter{kind: kind, Type: t}
	p.name = name
	return p
}

func (p *Parameter) Category() Category  { return CategoryParameter }
func (p *Parameter) Children() []Element { return nil }
func (p *Parameter) Kind() ParameterKind { return p.kind }

// IsOfKind reports whether the parameter kind is one of kinds.
func (p *Parameter) IsOfKind(kinds ...ParameterKind) bool {
	for _, k := range kinds {
		if p.kind == k {
			return true
		}
	}
	return false
}

// Clone copies the parameter; the clone is unattached.
func (p *Parameter) Clone() *Parameter {
	c := &Parameter{
		kind:              p.kind,
		Optional:          p.Optional,
		Description:       p.Description,
		DefaultValue:      p.DefaultValue,
		SerializationName: p.SerializationName,
	}
	c.name = p.name
	if !IsNil(p.Type) {
		c.Type = p.Type.CloneType()
	}
	return c
}
