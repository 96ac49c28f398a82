package irdoc

import (
	"sort"
	"strings"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/errors"
)

// Build turns a decoded document into an element tree.
func Build(doc *Document) (*codedom.Namespace, error) {
	if doc == nil {
		return nil, invalid("document is empty")
	}
	if strings.TrimSpace(doc.Namespace) == "" {
		return nil, invalid("namespace is required")
	}
	b := &builder{
		root:     codedom.NewRootNamespace(doc.Namespace),
		byQName:  make(map[string]codedom.TypeDefinition),
		bySimple: make(map[string][]codedom.TypeDefinition),
	}

	// declare
	if err := b.declareAll(b.root, doc.Classes, doc.Enums); err != nil {
		return nil, err
	}
	for _, ns := range doc.Namespaces {
		if strings.TrimSpace(ns.Name) == "" {
			return nil, invalid("namespace without a name")
		}
		if err := b.declareAll(b.root.AddNamespace(ns.Name), ns.Classes, ns.Enums); err != nil {
			return nil, err
		}
	}

	// resolve
	for _, p := range b.pending {
		if err := p(); err != nil {
			return nil, err
		}
	}
	return b.root, nil
}

type builder struct {
	root     *codedom.Namespace
	byQName  map[string]codedom.TypeDefinition
	bySimple map[string][]codedom.TypeDefinition
	// pending member resolutions, run once every declaration exists
	pending []func() error
}

func invalid(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidDocument)
}

func (b *builder) register(def codedom.TypeDefinition, qname string) error {
	key := strings.ToLower(qname)
	if _, dup := b.byQName[key]; dup {
		return invalid("%s is declared twice", qname)
	}
	b.byQName[key] = def
	simple := strings.ToLower(def.Name())
	b.bySimple[simple] = append(b.bySimple[simple], def)
	return nil
}

func (b *builder) declareAll(ns *codedom.Namespace, classes []ClassDoc, enums []EnumDoc) error {
	for i := range classes {
		c, err := b.declareClass(ns, ns.Name(), &classes[i])
		if err != nil {
			return err
		}
		ns.AddClass(c)
	}
	for i := range enums {
		e, err := b.declareEnum(ns, &enums[i])
		if err != nil {
			return err
		}
		ns.AddEnum(e)
	}
	return nil
}

func (b *builder) declareEnum(ns *codedom.Namespace, doc *EnumDoc) (*codedom.Enum, error) {
	if doc.Name == "" {
		return nil, invalid("enum without a name in %s", ns.Name())
	}
	e := codedom.NewEnum(doc.Name)
	e.Description = doc.Description
	e.Flags = doc.Flags
	for _, o := range doc.Options {
		if o.Name == "" {
			return nil, invalid("enum %s has an option without a name", doc.Name)
		}
		opt := codedom.NewEnumOption(o.Name)
		opt.SerializationName = o.SerializationName
		opt.Description = o.Description
		e.AddOption(opt)
	}
	return e, b.register(e, ns.Name()+"."+doc.Name)
}

// declareClass creates the class and its inner classes and queues the
// resolution of everything that may refer to other declarations.
func (b *builder) declareClass(ns *codedom.Namespace, scope string, doc *ClassDoc) (*codedom.Class, error) {
	if doc.Name == "" {
		return nil, invalid("class without a name in %s", scope)
	}
	qname := scope + "." + doc.Name
	kind := codedom.ClassCustom
	if doc.Kind != "" {
		k, ok := codedom.ParseClassKind(doc.Kind)
		if !ok {
			return nil, invalid("class %s: unknown kind %q", qname, doc.Kind)
		}
		kind = k
	}
	c := codedom.NewClass(doc.Name, kind)
	c.Description = doc.Description
	c.IsErrorDefinition = doc.Error
	for _, u := range doc.Usings {
		if u.Module == "" || u.Symbol == "" {
			return nil, invalid("class %s: using needs a module and a symbol", qname)
		}
		c.Declaration().AddUsings(codedom.NewExternalUsing(u.Module, u.Symbol))
	}
	if err := b.register(c, qname); err != nil {
		return nil, err
	}

	for i := range doc.Inner {
		inner, err := b.declareClass(ns, qname, &doc.Inner[i])
		if err != nil {
			return nil, err
		}
		c.AddInnerClass(inner)
	}

	b.pending = append(b.pending, func() error {
		return b.resolveClass(ns, qname, c, doc)
	})
	return c, nil
}

func (b *builder) resolveClass(ns *codedom.Namespace, qname string, c *codedom.Class, doc *ClassDoc) error {
	decl := c.Declaration()
	if doc.Inherits != "" {
		decl.Inherits = b.baseReference(ns, doc.Inherits)
	}
	for _, name := range doc.Implements {
		decl.AddImplements(b.baseReference(ns, name))
	}

	if doc.Discriminator != nil {
		d, err := b.discriminator(ns, qname, doc.Discriminator)
		if err != nil {
			return err
		}
		c.Discriminator = d
	}

	for _, pd := range doc.Properties {
		p, err := b.property(ns, qname, pd)
		if err != nil {
			return err
		}
		c.AddProperty(p)
	}
	for _, md := range doc.Methods {
		m, err := b.method(ns, qname, md)
		if err != nil {
			return err
		}
		c.AddMethod(m)
	}
	for _, id := range doc.Indexers {
		ix, err := b.indexer(ns, qname, id)
		if err != nil {
			return err
		}
		c.AddIndexer(ix)
	}
	return nil
}

func (b *builder) discriminator(ns *codedom.Namespace, owner string, doc *DiscriminatorDoc) (*codedom.Discriminator, error) {
	d := &codedom.Discriminator{PropertyName: doc.Property}
	// map iteration is random; mapping order is part of the output
	values := make([]string, 0, len(doc.Mappings))
	for v := range doc.Mappings {
		values = append(values, v)
	}
	sort.Strings(values)
	for _, v := range values {
		target := doc.Mappings[v]
		if target == "" {
			return nil, invalid("%s: discriminator value %q has no type", owner, v)
		}
		d.Add(v, b.reference(ns, target, false))
	}
	return d, nil
}

func (b *builder) property(ns *codedom.Namespace, owner string, doc PropertyDoc) (*codedom.Property, error) {
	if doc.Name == "" {
		return nil, invalid("%s: property without a name", owner)
	}
	kind := codedom.PropertyCustom
	if doc.Kind != "" {
		k, ok := codedom.ParsePropertyKind(doc.Kind)
		if !ok {
			return nil, invalid("%s.%s: unknown property kind %q", owner, doc.Name, doc.Kind)
		}
		kind = k
	}
	t, err := b.typeOf(ns, owner+"."+doc.Name, doc.Type)
	if err != nil {
		return nil, err
	}
	p := codedom.NewProperty(doc.Name, kind, t)
	if doc.Access != "" {
		a, ok := codedom.ParseAccess(doc.Access)
		if !ok {
			return nil, invalid("%s.%s: unknown access %q", owner, doc.Name, doc.Access)
		}
		p.Access = a
	}
	p.ReadOnly = doc.ReadOnly
	p.Description = doc.Description
	p.SerializationName = doc.SerializationName
	p.DefaultValue = doc.Default
	return p, nil
}

func (b *builder) method(ns *codedom.Namespace, owner string, doc MethodDoc) (*codedom.Method, error) {
	if doc.Name == "" {
		return nil, invalid("%s: method without a name", owner)
	}
	path := owner + "." + doc.Name
	kind := codedom.MethodCustom
	if doc.Kind != "" {
		k, ok := codedom.ParseMethodKind(doc.Kind)
		if !ok {
			return nil, invalid("%s: unknown method kind %q", path, doc.Kind)
		}
		kind = k
	}
	m := codedom.NewMethod(doc.Name, kind)
	m.Description = doc.Description
	m.IsAsync = doc.Async
	m.IsStatic = doc.Static
	if doc.HTTPMethod != "" {
		verb, ok := codedom.ParseHTTPMethod(doc.HTTPMethod)
		if !ok {
			return nil, invalid("%s: unknown HTTP method %q", path, doc.HTTPMethod)
		}
		m.HTTPMethod = verb
	}
	ret, err := b.typeOf(ns, path, doc.Returns)
	if err != nil {
		return nil, err
	}
	m.ReturnType = ret
	for _, pd := range doc.Parameters {
		p, err := b.parameter(ns, path, pd)
		if err != nil {
			return nil, err
		}
		m.AddParameter(p)
	}
	return m, nil
}

func (b *builder) parameter(ns *codedom.Namespace, owner string, doc ParameterDoc) (*codedom.Parameter, error) {
	if doc.Name == "" {
		return nil, invalid("%s: parameter without a name", owner)
	}
	kind := codedom.ParameterCustom
	if doc.Kind != "" {
		k, ok := codedom.ParseParameterKind(doc.Kind)
		if !ok {
			return nil, invalid("%s(%s): unknown parameter kind %q", owner, doc.Name, doc.Kind)
		}
		kind = k
	}
	t, err := b.typeOf(ns, owner+"("+doc.Name+")", doc.Type)
	if err != nil {
		return nil, err
	}
	p := codedom.NewParameter(doc.Name, kind, t)
	p.Optional = doc.Optional
	p.Description = doc.Description
	p.DefaultValue = doc.Default
	p.SerializationName = doc.SerializationName
	return p, nil
}

func (b *builder) indexer(ns *codedom.Namespace, owner string, doc IndexerDoc) (*codedom.Indexer, error) {
	if doc.Name == "" {
		return nil, invalid("%s: indexer without a name", owner)
	}
	path := owner + "[" + doc.Name + "]"
	var param *codedom.Parameter
	if doc.Parameter != nil {
		pd := *doc.Parameter
		if pd.Kind == "" {
			pd.Kind = codedom.ParameterPath.String()
		}
		p, err := b.parameter(ns, path, pd)
		if err != nil {
			return nil, err
		}
		param = p
	}
	ret, err := b.typeOf(ns, path, doc.Returns)
	if err != nil {
		return nil, err
	}
	ix := codedom.NewIndexer(doc.Name, param, ret)
	ix.Description = doc.Description
	ix.IsLegacy = doc.Legacy
	ix.PathSegment = doc.PathSegment
	return ix, nil
}

// typeOf converts a type slot. A nil slot stays empty.
func (b *builder) typeOf(ns *codedom.Namespace, owner string, doc *TypeDoc) (codedom.TypeBase, error) {
	if doc == nil {
		return nil, nil
	}
	collection, ok := codedom.ParseCollectionKind(doc.Collection)
	if !ok {
		return nil, invalid("%s: unknown collection kind %q", owner, doc.Collection)
	}
	traits := codedom.TypeTraits{Nullable: true, Collection: collection}
	if doc.Nullable != nil {
		traits.Nullable = *doc.Nullable
	}

	if !doc.IsComposed() {
		if doc.Name == "" {
			return nil, invalid("%s: type without a name", owner)
		}
		ref := b.reference(ns, doc.Name, doc.External)
		ref.TypeTraits = traits
		return ref, nil
	}

	kind, name := codedom.Union, doc.Union
	if doc.Intersection != "" {
		kind, name = codedom.Intersection, doc.Intersection
	}
	if len(doc.Members) == 0 {
		return nil, invalid("%s: composed type %s has no members", owner, name)
	}
	var members []*codedom.TypeRef
	for i := range doc.Members {
		if doc.Members[i].IsComposed() {
			return nil, invalid("%s: composed type %s nests another composed type", owner, name)
		}
		member, err := b.typeOf(ns, owner, &doc.Members[i])
		if err != nil {
			return nil, err
		}
		members = append(members, member.(*codedom.TypeRef))
	}
	composed := codedom.NewComposedType(kind, name, members...)
	composed.TypeTraits = traits
	if doc.Discriminator != nil {
		d, err := b.discriminator(ns, owner, doc.Discriminator)
		if err != nil {
			return nil, err
		}
		composed.Discriminator = d
	}
	return composed, nil
}

// reference binds name to a declaration: a fully qualified name first, then
// a declaration of the current namespace, then the only declaration with that
// name anywhere. Anything else is a scalar, or an external type when asked.
func (b *builder) reference(ns *codedom.Namespace, name string, external bool) *codedom.TypeRef {
	if external {
		return &codedom.TypeRef{Name: name, External: true, TypeTraits: codedom.TypeTraits{Nullable: true}}
	}
	if def := b.lookup(ns, name); def != nil {
		return codedom.RefTo(def)
	}
	return codedom.NewTypeRef(name)
}

// baseReference binds a base type or capability; unknown names are external.
func (b *builder) baseReference(ns *codedom.Namespace, name string) *codedom.TypeRef {
	ref := b.reference(ns, name, false)
	if !ref.IsInternal() {
		ref.External = true
	}
	ref.Nullable = false
	return ref
}

func (b *builder) lookup(ns *codedom.Namespace, name string) codedom.TypeDefinition {
	key := strings.ToLower(name)
	if def, ok := b.byQName[key]; ok {
		return def
	}
	if def, ok := b.byQName[strings.ToLower(ns.Name())+"."+key]; ok {
		return def
	}
	if candidates := b.bySimple[key]; len(candidates) == 1 {
		return candidates[0]
	}
	return nil
}
