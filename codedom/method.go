package codedom

// Method is a generated method. OriginalMethod and OriginalIndexer record
// what a synthesized method was derived from; AccessedProperty links an
// accessor or navigation command to its property. All three are non-owning.
type Method struct {
	element
	kind        MethodKind
	Access      Access
	Description string
	IsAsync     bool
	IsStatic    bool
	ReturnType  TypeBase
	HTTPMethod  HTTPMethod
	// SimpleName is the short command name of a synthesized command builder.
	SimpleName string
	// SerializationName is the wire name an accessor reads or writes.
	SerializationName string
	PathSegment       string
	// SerializerModules and DeserializerModules are the default
	// (de)serialization factories registered by the client constructor.
	SerializerModules   []string
	DeserializerModules []string

	OriginalMethod   *Method
	OriginalIndexer  *Indexer
	AccessedProperty *Property

	params []*Parameter
}

// NewMethod returns an unattached public method.
func NewMethod(name string, kind MethodKind) *Method {
	m := &Method{kind: kind}
	m.name = name
	return m
}

func (m *Method) Category() Category { return CategoryMethod }
func (m *Method) Kind() MethodKind   { return m.kind }

// IsOfKind reports whether the method kind is one of kinds.
func (m *Method) IsOfKind(kinds ...MethodKind) bool {
	for _, k := range kinds {
		if m.kind == k {
			return true
		}
	}
	return false
}

func (m *Method) Children() []Element {
	out := make([]Element, 0, len(m.params))
	for _, p := range m.params {
		out = append(out, p)
	}
	return out
}

// AddParameter appends parameters in order.
func (m *Method) AddParameter(params ...*Parameter) {
	for _, p := range params {
		p.setParent(m)
		m.params = append(m.params, p)
	}
}

// RemoveParameter detaches a parameter.
func (m *Method) RemoveParameter(p *Parameter) {
	var removed bool
	if m.params, removed = removeFrom(m.params, p); removed {
		p.setParent(nil)
	}
}

// Parameters returns a snapshot of the parameters in order.
func (m *Method) Parameters() []*Parameter {
	out := make([]*Parameter, len(m.params))
	copy(out, m.params)
	return out
}

// ParametersOfKind returns the parameters whose kind is one of kinds.
func (m *Method) ParametersOfKind(kinds ...ParameterKind) []*Parameter {
	var out []*Parameter
	for _, p := range m.params {
		if p.IsOfKind(kinds...) {
			out = append(out, p)
		}
	}
	return out
}

// FindParameter finds a parameter by name, case-insensitively.
func (m *Method) FindParameter(name string) *Parameter {
	for _, p := range m.params {
		if equalFold(p.name, name) {
			return p
		}
	}
	return nil
}

// Clone deep-copies the method and its parameters under a new kind. The clone
// is unattached and does not set OriginalMethod; callers decide that.
func (m *Method) Clone(name string, kind MethodKind) *Method {
	c := &Method{
		kind:                kind,
		Access:              m.Access,
		Description:         m.Description,
		IsAsync:             m.IsAsync,
		IsStatic:            m.IsStatic,
		HTTPMethod:          m.HTTPMethod,
		SimpleName:          m.SimpleName,
		SerializationName:   m.SerializationName,
		PathSegment:         m.PathSegment,
		SerializerModules:   append([]string(nil), m.SerializerModules...),
		DeserializerModules: append([]string(nil), m.DeserializerModules...),
		OriginalMethod:      m.OriginalMethod,
		OriginalIndexer:     m.OriginalIndexer,
		AccessedProperty:    m.AccessedProperty,
	}
	c.name = name
	if !IsNil(m.ReturnType) {
		c.ReturnType = m.ReturnType.CloneType()
	}
	for _, p := range m.params {
		c.AddParameter(p.Clone())
	}
	return c
}
