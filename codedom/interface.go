package codedom

// Interface is a generated interface, e.g. the accessor contract extracted
// from a model class for targets that pass models by interface.
type Interface struct {
	element
	kind          InterfaceKind
	Description   string
	OriginalClass *Class

	decl    *Declaration
	methods []*Method
}

// NewInterface returns an unattached interface.
func NewInterface(name string, kind InterfaceKind) *Interface {
	i := &Interface{kind: kind}
	i.name = name
	i.decl = newDeclaration(i)
	return i
}

func (i *Interface) Category() Category         { return CategoryInterface }
func (i *Interface) Kind() InterfaceKind        { return i.kind }
func (i *Interface) Declaration() *Declaration { return i.decl }

func (i *Interface) Children() []Element {
	out := make([]Element, 0, len(i.decl.usings)+len(i.methods))
	for _, u := range i.decl.usings {
		out = append(out, u)
	}
	for _, m := range i.methods {
		out = append(out, m)
	}
	return out
}

// AddMethod attaches methods.
func (i *Interface) AddMethod(methods ...*Method) {
	for _, m := range methods {
		m.setParent(i)
		i.methods = append(i.methods, m)
	}
}

// Methods returns a snapshot of the methods.
func (i *Interface) Methods() []*Method {
	out := make([]*Method, len(i.methods))
	copy(out, i.methods)
	return out
}
