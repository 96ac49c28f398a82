package codedom

import "strings"

// Namespace is a node of the dotted namespace hierarchy. Its name is the full
// dotted name; the root usually carries the client namespace name.
type Namespace struct {
	element
	namespaces []*Namespace
	classes    []*Class
	interfaces []*Interface
	enums      []*Enum
	refined    bool
}

// NewRootNamespace returns a namespace with no parent.
func NewRootNamespace(name string) *Namespace {
	ns := &Namespace{}
	ns.name = name
	return ns
}

func (n *Namespace) Category() Category { return CategoryNamespace }

func (n *Namespace) Children() []Element {
	out := make([]Element, 0, len(n.namespaces)+len(n.classes)+len(n.interfaces)+len(n.enums))
	for _, c := range n.namespaces {
		out = append(out, c)
	}
	for _, c := range n.classes {
		out = append(out, c)
	}
	for _, c := range n.interfaces {
		out = append(out, c)
	}
	for _, c := range n.enums {
		out = append(out, c)
	}
	return out
}

// Segment returns the last dot-separated segment of the name.
func (n *Namespace) Segment() string {
	if i := strings.LastIndex(n.name, "."); i >= 0 {
		return n.name[i+1:]
	}
	return n.name
}

// Root returns the outermost namespace.
func (n *Namespace) Root() *Namespace {
	cur := n
	for {
		parent, ok := cur.Parent().(*Namespace)
		if !ok || parent == nil {
			return cur
		}
		cur = parent
	}
}

// IsParentOf reports whether other is nested (at any depth) inside n.
func (n *Namespace) IsParentOf(other *Namespace) bool {
	for p, ok := other.Parent().(*Namespace); ok && p != nil; p, ok = p.Parent().(*Namespace) {
		if p == n {
			return true
		}
	}
	return false
}

// MarkRefined flags the tree as refined. It returns false when it already was.
func (n *Namespace) MarkRefined() bool {
	root := n.Root()
	if root.refined {
		return false
	}
	root.refined = true
	return true
}

// IsRefined reports whether a refinement run already completed on this tree.
func (n *Namespace) IsRefined() bool { return n.Root().refined }

func (n *Namespace) childName(segment string) string {
	if n.name == "" {
		return segment
	}
	return n.name + "." + segment
}

// AddNamespace returns the namespace with the given full name, creating it and
// any intermediate namespaces. Names outside n are created relative to n.
func (n *Namespace) AddNamespace(fullName string) *Namespace {
	if fullName == "" || equalFold(fullName, n.name) {
		return n
	}
	rel := fullName
	if n.name != "" && len(fullName) > len(n.name) && equalFold(fullName[:len(n.name)+1], n.name+".") {
		rel = fullName[len(n.name)+1:]
	}
	segment, rest, _ := strings.Cut(rel, ".")
	child := n.namespaceBySegment(segment)
	if child == nil {
		child = &Namespace{}
		child.name = n.childName(segment)
		child.setParent(n)
		n.namespaces = append(n.namespaces, child)
	}
	if rest == "" {
		return child
	}
	return child.AddNamespace(child.name + "." + rest)
}

func (n *Namespace) namespaceBySegment(segment string) *Namespace {
	for _, c := range n.namespaces {
		if equalFold(c.Segment(), segment) {
			return c
		}
	}
	return nil
}

// Namespaces returns a snapshot of the direct sub-namespaces.
func (n *Namespace) Namespaces() []*Namespace {
	out := make([]*Namespace, len(n.namespaces))
	copy(out, n.namespaces)
	return out
}

// FindNamespace finds a namespace by full name in n's subtree.
func (n *Namespace) FindNamespace(fullName string) *Namespace {
	if equalFold(n.name, fullName) {
		return n
	}
	for _, c := range n.namespaces {
		if found := c.FindNamespace(fullName); found != nil {
			return found
		}
	}
	return nil
}

// RemoveNamespace detaches a direct sub-namespace.
func (n *Namespace) RemoveNamespace(child *Namespace) {
	var removed bool
	if n.namespaces, removed = removeFrom(n.namespaces, child); removed {
		child.setParent(nil)
	}
}

// AddClass adds classes, detaching them from any previous owner.
func (n *Namespace) AddClass(classes ...*Class) {
	for _, c := range classes {
		detach(c)
		c.setParent(n)
		n.classes = append(n.classes, c)
	}
}

// RemoveClass detaches a class.
func (n *Namespace) RemoveClass(c *Class) {
	var removed bool
	if n.classes, removed = removeFrom(n.classes, c); removed {
		c.setParent(nil)
	}
}

// Classes returns a snapshot of the classes.
func (n *Namespace) Classes() []*Class {
	out := make([]*Class, len(n.classes))
	copy(out, n.classes)
	return out
}

// FindClass finds a direct class by name, case-insensitively.
func (n *Namespace) FindClass(name string) *Class {
	for _, c := range n.classes {
		if equalFold(c.name, name) {
			return c
		}
	}
	return nil
}

// AddInterface adds interfaces, detaching them from any previous owner.
func (n *Namespace) AddInterface(interfaces ...*Interface) {
	for _, i := range interfaces {
		detach(i)
		i.setParent(n)
		n.interfaces = append(n.interfaces, i)
	}
}

// Interfaces returns a snapshot of the interfaces.
func (n *Namespace) Interfaces() []*Interface {
	out := make([]*Interface, len(n.interfaces))
	copy(out, n.interfaces)
	return out
}

// FindInterface finds a direct interface by name, case-insensitively.
func (n *Namespace) FindInterface(name string) *Interface {
	for _, i := range n.interfaces {
		if equalFold(i.name, name) {
			return i
		}
	}
	return nil
}

// AddEnum adds enums, detaching them from any previous owner.
func (n *Namespace) AddEnum(enums ...*Enum) {
	for _, e := range enums {
		detach(e)
		e.setParent(n)
		n.enums = append(n.enums, e)
	}
}

// RemoveEnum detaches an enum.
func (n *Namespace) RemoveEnum(e *Enum) {
	var removed bool
	if n.enums, removed = removeFrom(n.enums, e); removed {
		e.setParent(nil)
	}
}

// Enums returns a snapshot of the enums.
func (n *Namespace) Enums() []*Enum {
	out := make([]*Enum, len(n.enums))
	copy(out, n.enums)
	return out
}

// FindEnum finds a direct enum by name, case-insensitively.
func (n *Namespace) FindEnum(name string) *Enum {
	for _, e := range n.enums {
		if equalFold(e.name, name) {
			return e
		}
	}
	return nil
}

// FindClassDeep finds a top-level class by name anywhere in n's subtree.
func (n *Namespace) FindClassDeep(name string) *Class {
	if c := n.FindClass(name); c != nil {
		return c
	}
	for _, child := range n.namespaces {
		if c := child.FindClassDeep(name); c != nil {
			return c
		}
	}
	return nil
}

// detach removes a definition from its current owner, if any.
func detach(e Element) {
	switch parent := e.Parent().(type) {
	case *Namespace:
		switch v := e.(type) {
		case *Class:
			parent.RemoveClass(v)
		case *Interface:
			var removed bool
			if parent.interfaces, removed = removeFrom(parent.interfaces, v); removed {
				v.setParent(nil)
			}
		case *Enum:
			parent.RemoveEnum(v)
		}
	case *Class:
		if v, ok := e.(*Class); ok {
			parent.RemoveInnerClass(v)
		}
	}
}
