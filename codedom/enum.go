package codedom

// EnumOption is one member of an enum. SerializationName holds the wire
// value when it differs from the identifier.
type EnumOption struct {
	element
	SerializationName string
	Description       string
}

// NewEnumOption returns an option whose wire value equals its name.
func NewEnumOption(name string) *EnumOption {
	o := &EnumOption{}
	o.name = name
	return o
}

func (o *EnumOption) Category() Category  { return CategoryEnumOption }
func (o *EnumOption) Children() []Element { return nil }

// WireName is the serialized value of the option.
func (o *EnumOption) WireName() string {
	if o.SerializationName != "" {
		return o.SerializationName
	}
	return o.name
}

// Enum is a generated enumeration. Flags marks multi-value enums.
type Enum struct {
	element
	Description string
	Flags       bool

	decl    *Declaration
	options []*EnumOption
}

// NewEnum returns an unattached enum.
func NewEnum(name string, options ...*EnumOption) *Enum {
	e := &Enum{}
	e.name = name
	e.decl = newDeclaration(e)
	e.AddOption(options...)
	return e
}

func (e *Enum) Category() Category         { return CategoryEnum }
func (e *Enum) Declaration() *Declaration { return e.decl }

func (e *Enum) Children() []Element {
	out := make([]Element, 0, len(e.decl.usings)+len(e.options))
	for _, u := range e.decl.usings {
		out = append(out, u)
	}
	for _, o := range e.options {
		out = append(out, o)
	}
	return out
}

// AddOption appends options in order.
func (e *Enum) AddOption(options ...*EnumOption) {
	for _, o := range options {
		o.setParent(e)
		e.options = append(e.options, o)
	}
}

// Options returns a snapshot of the options in declaration order.
func (e *Enum) Options() []*EnumOption {
	out := make([]*EnumOption, len(e.options))
	copy(out, e.options)
	return out
}
