// Package codedom is the language-neutral element tree handed from the model
// builder to the refiners and from the refiners to the emitter.
//
// The tree is an ownership hierarchy: a Namespace owns namespaces, classes,
// interfaces and enums; a Class owns properties, methods, inner classes,
// indexers and its usings; a Method owns its parameters. Type references
// (TypeRef.Definition) and discriminator mappings point across the tree
// without owning their target, and may form cycles.
package codedom

import "strings"

// Category identifies the concrete element type of an Element.
type Category int

const (
	CategoryNamespace Category = iota
	CategoryClass
	CategoryInterface
	CategoryEnum
	CategoryEnumOption
	CategoryMethod
	CategoryProperty
	CategoryParameter
	CategoryIndexer
	CategoryUsing
)

var categoryNames = [...]string{
	CategoryNamespace:  "namespace",
	CategoryClass:      "class",
	CategoryInterface:  "interface",
	CategoryEnum:       "enum",
	CategoryEnumOption: "enum option",
	CategoryMethod:     "method",
	CategoryProperty:   "property",
	CategoryParameter:  "parameter",
	CategoryIndexer:    "indexer",
	CategoryUsing:      "using",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// CategorySet is a small bit set of categories.
type CategorySet uint32

// Categories builds a set from the given categories.
func Categories(cs ...Category) CategorySet {
	var s CategorySet
	for _, c := range cs {
		s |= 1 << uint(c)
	}
	return s
}

// Has reports whether c is a member of the set.
func (s CategorySet) Has(c Category) bool {
	return s&(1<<uint(c)) != 0
}

// Element is any node of the tree.
type Element interface {
	Name() string
	SetName(name string)
	Parent() Element
	Category() Category
	// Children returns a snapshot of the direct children; callers may mutate
	// the tree while iterating it.
	Children() []Element
	setParent(parent Element)
}

// element carries the state shared by every node.
type element struct {
	name   string
	parent Element
}

func (e *element) Name() string { return e.name }
func (e *element) SetName(name string) { e.name = name }
func (e *element) Parent() Element { return e.parent }
func (e *element) setParent(parent Element) { e.parent = parent }

// Crawl applies visit to every direct child of e. It never visits e itself;
// passes handle the current node and recurse through Crawl.
func Crawl(e Element, visit func(Element)) {
	if e == nil {
		return
	}
	for _, child := range e.Children() {
		visit(child)
	}
}

// Walk visits e and its descendants in pre-order. Returning false from fn
// skips the subtree below the current node.
func Walk(e Element, fn func(Element) bool) {
	if e == nil || !fn(e) {
		return
	}
	Crawl(e, func(child Element) { Walk(child, fn) })
}

// Ancestor returns the nearest ancestor of e with type T.
func Ancestor[T Element](e Element) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	for p := e.Parent(); p != nil; p = p.Parent() {
		if t, ok := p.(T); ok {
			return t, true
		}
	}
	return zero, false
}

// NamespaceOf returns the namespace that (transitively) owns e.
func NamespaceOf(e Element) *Namespace {
	if ns, ok := e.(*Namespace); ok {
		return ns
	}
	ns, _ := Ancestor[*Namespace](e)
	return ns
}

// TopLevelDefinition returns the outermost class, interface or enum that owns
// e (or e itself). Imports attach there: they are file scoped in every target.
func TopLevelDefinition(e Element) TypeDefinition {
	var found TypeDefinition
	for cur := e; cur != nil; cur = cur.Parent() {
		if def, ok := cur.(TypeDefinition); ok {
			found = def
		}
		if _, ok := cur.(*Namespace); ok {
			break
		}
	}
	return found
}

// Path returns the dotted ownership path of e, for logs and diagnostics.
func Path(e Element) string {
	var parts []string
	for cur := e; cur != nil; cur = cur.Parent() {
		if ns, ok := cur.(*Namespace); ok {
			if ns.Name() != "" {
				parts = append(parts, ns.Name())
			}
			break
		}
		parts = append(parts, cur.Name())
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

func removeFrom[T comparable](items []T, target T) ([]T, bool) {
	for i, item := range items {
		if item == target {
			return append(items[:i:i], items[i+1:]...), true
		}
	}
	return items, false
}
