package codedom

// Using is an import. External usings name a module or namespace and the
// imported symbol; internal usings point at a generated declaration and take
// their source namespace from it, so they stay correct when declarations move.
type Using struct {
	element
	Alias       string
	Declaration *TypeRef
	// ImportPath is the module path for targets importing by file path.
	ImportPath string
}

// NewExternalUsing imports symbol from an external module.
func NewExternalUsing(module, symbol string) *Using {
	u := &Using{Declaration: &TypeRef{Name: symbol, External: true}}
	u.name = module
	return u
}

// NewInternalUsing imports a generated declaration.
func NewInternalUsing(def TypeDefinition) *Using {
	u := &Using{Declaration: RefTo(def)}
	if ns := NamespaceOf(def); ns != nil {
		u.name = ns.Name()
	}
	return u
}

func (u *Using) Category() Category  { return CategoryUsing }
func (u *Using) Children() []Element { return nil }

// IsExternal reports whether the using names an external symbol.
func (u *Using) IsExternal() bool {
	return u.Declaration == nil || u.Declaration.External || u.Declaration.Definition == nil
}

// Symbol is the imported short name.
func (u *Using) Symbol() string {
	if u.Declaration == nil {
		return ""
	}
	if !u.IsExternal() {
		return u.Declaration.Definition.Name()
	}
	return u.Declaration.Name
}

// Source is the namespace or module the symbol is imported from.
func (u *Using) Source() string {
	if !u.IsExternal() {
		if ns := NamespaceOf(u.Declaration.Definition); ns != nil {
			return ns.Name()
		}
	}
	return u.name
}

// LocalName is the name the symbol is bound to in the importing file.
func (u *Using) LocalName() string {
	if u.Alias != "" {
		return u.Alias
	}
	return u.Symbol()
}

func (u *Using) key() string {
	return u.Source() + "\x00" + u.Symbol() + "\x00" + u.Alias
}

// Clone copies the using; the declaration reference is copied, its
// definition handle shared.
func (u *Using) Clone() *Using {
	c := &Using{Alias: u.Alias, Declaration: u.Declaration.Clone(), ImportPath: u.ImportPath}
	c.name = u.name
	return c
}

// Declaration is the header of a class, interface or enum: its base type,
// implemented capabilities and imports.
type Declaration struct {
	owner      Element
	Inherits   *TypeRef
	implements []*TypeRef
	usings     []*Using
}

func newDeclaration(owner Element) *Declaration {
	return &Declaration{owner: owner}
}

// AddUsings attaches imports, dropping duplicates of existing ones.
func (d *Declaration) AddUsings(usings ...*Using) {
	for _, u := range usings {
		if u == nil || d.hasUsing(u) {
			continue
		}
		u.setParent(d.owner)
		d.usings = append(d.usings, u)
	}
}

func (d *Declaration) hasUsing(u *Using) bool {
	k := u.key()
	for _, existing := range d.usings {
		if existing.key() == k {
			return true
		}
	}
	return false
}

// RemoveUsings detaches the given imports.
func (d *Declaration) RemoveUsings(usings ...*Using) {
	for _, u := range usings {
		var removed bool
		if d.usings, removed = removeFrom(d.usings, u); removed {
			u.setParent(nil)
		}
	}
}

// Usings returns a snapshot of the imports.
func (d *Declaration) Usings() []*Using {
	out := make([]*Using, len(d.usings))
	copy(out, d.usings)
	return out
}

// AddImplements records implemented capabilities, ignoring duplicate names.
func (d *Declaration) AddImplements(types ...*TypeRef) {
	for _, t := range types {
		if t == nil || d.Implements(t.Name) {
			continue
		}
		d.implements = append(d.implements, t)
	}
}

// RemoveImplements drops implemented capabilities by name.
func (d *Declaration) RemoveImplements(names ...string) {
	kept := d.implements[:0:0]
	for _, t := range d.implements {
		drop := false
		for _, n := range names {
			if equalFold(t.Name, n) {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, t)
		}
	}
	d.implements = kept
}

// Implements reports whether a capability with that name is implemented.
func (d *Declaration) Implements(name string) bool {
	for _, t := range d.implements {
		if equalFold(t.Name, name) {
			return true
		}
	}
	return false
}

// ImplementedTypes returns a snapshot of the implemented capabilities.
func (d *Declaration) ImplementedTypes() []*TypeRef {
	out := make([]*TypeRef, len(d.implements))
	copy(out, d.implements)
	return out
}

// BaseClass returns the inherited class when it is generated.
func (d *Declaration) BaseClass() (*Class, bool) {
	if d.Inherits == nil {
		return nil, false
	}
	return d.Inherits.Class()
}

// TypeRefs returns the base and implemented type references.
func (d *Declaration) TypeRefs() []*TypeRef {
	var out []*TypeRef
	if d.Inherits != nil {
		out = append(out, d.Inherits)
	}
	return append(out, d.implements...)
}
