package refiners

import (
	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/langdata"
	"github.com/teranos/refinery/naming"
)

// ReservedNameOptions configures ReplaceReservedNames.
type ReservedNameOptions struct {
	// Replace escapes a reserved identifier.
	Replace func(string) string
	// Exclude lists the element categories left untouched.
	Exclude codedom.CategorySet
	// Applies restricts renaming further. Nil applies to every element.
	Applies func(codedom.Element) bool
	// Names overrides the language's reserved identifiers.
	Names *langdata.NameSet
}

func (o ReservedNameOptions) reserved(run *Run) langdata.NameSet {
	if o.Names != nil {
		return *o.Names
	}
	return run.Tables.Reserved
}

func (o ReservedNameOptions) renames(e codedom.Element) bool {
	if o.Exclude.Has(e.Category()) {
		return false
	}
	return o.Applies == nil || o.Applies(e)
}

// ReplaceReservedNames escapes every element name, and every internal type
// name in a property, parameter or return slot, that is a reserved identifier
// of the target. Custom properties and enum options keep their wire name.
// Namespaces are escaped one dotted segment at a time.
func ReplaceReservedNames(opts ReservedNameOptions) PassFunc {
	return eachElement(func(run *Run, e codedom.Element) error {
		reserved := opts.reserved(run)

		if t, ok := typeOf(e); ok {
			for _, ref := range codedom.TypeRefs(t) {
				if !ref.IsInternal() || !reserved.Contains(ref.Name) || !opts.renames(ref.Definition) {
					continue
				}
				ref.Name = opts.Replace(ref.Name)
			}
		}

		if !opts.renames(e) {
			return nil
		}
		switch v := e.(type) {
		case *codedom.Namespace:
			renamed := naming.MapSegments(v.Name(), func(segment string) string {
				if reserved.Contains(segment) {
					return opts.Replace(segment)
				}
				return segment
			})
			if renamed != v.Name() {
				run.Trace(v, "escaped namespace as %s", renamed)
			}
			v.SetName(renamed)
		case *codedom.Using:
			// Imports follow their declaration.
		case *codedom.Property:
			if !reserved.Contains(v.Name()) {
				return nil
			}
			if v.IsOfKind(codedom.PropertyCustom) && v.SerializationName == "" {
				v.SerializationName = v.Name()
			}
			v.SetName(opts.Replace(v.Name()))
			run.Trace(v, "escaped reserved property, wire name %s", v.WireName())
		case *codedom.EnumOption:
			if !reserved.Contains(v.Name()) {
				return nil
			}
			if v.SerializationName == "" {
				v.SerializationName = v.Name()
			}
			v.SetName(opts.Replace(v.Name()))
		default:
			if reserved.Contains(e.Name()) {
				e.SetName(opts.Replace(e.Name()))
				run.Trace(e, "escaped reserved %s name", e.Category())
			}
		}
		return nil
	})
}

// ReplaceReservedModelTypes renames declarations colliding with types every
// file of the target sees, and the references to them.
func ReplaceReservedModelTypes(replace func(string) string) PassFunc {
	return eachElement(func(run *Run, e codedom.Element) error {
		reserved := run.Tables.ReservedTypes
		if t, ok := typeOf(e); ok {
			for _, ref := range codedom.TypeRefs(t) {
				if ref.IsInternal() && reserved.Contains(ref.Name) {
					ref.Name = replace(ref.Name)
				}
			}
		}
		switch e.(type) {
		case *codedom.Class, *codedom.Enum, *codedom.Interface:
			if reserved.Contains(e.Name()) {
				e.SetName(replace(e.Name()))
			}
		}
		return nil
	})
}

// ReplaceReservedNamespaceSegments renames namespace segments colliding with
// reserved type names.
func ReplaceReservedNamespaceSegments(replace func(string) string) PassFunc {
	return eachNamespace(func(run *Run, ns *codedom.Namespace) error {
		if ns == run.Root {
			return nil
		}
		ns.SetName(naming.MapSegments(ns.Name(), func(segment string) string {
			if run.Tables.ReservedTypes.Contains(segment) {
				return replace(segment)
			}
			return segment
		}))
		return nil
	})
}

// DisambiguatePropertiesWithClassNames renames a property that has the name of
// its class, which most class-based targets reject. The wire name is kept.
func DisambiguatePropertiesWithClassNames(suffix string) PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		for _, p := range c.Properties() {
			if !equalFold(p.Name(), c.Name()) {
				continue
			}
			if p.SerializationName == "" {
				p.SerializationName = p.Name()
			}
			p.SetName(c.UniquePropertyName(p.Name() + suffix))
		}
		return nil
	})
}

// SyncTypeReferenceNames sets the name of every internal type reference and
// import to the current name of its declaration. Runs last, after passes that
// rename or move declarations.
func SyncTypeReferenceNames() PassFunc {
	return eachElement(func(run *Run, e codedom.Element) error {
		var refs []*codedom.TypeRef
		if t, ok := typeOf(e); ok {
			refs = codedom.TypeRefs(t)
		}
		switch v := e.(type) {
		case codedom.TypeDefinition:
			refs = append(refs, v.Declaration().TypeRefs()...)
		case *codedom.Using:
			if v.Declaration != nil {
				refs = append(refs, v.Declaration)
			}
		}
		if c, ok := e.(*codedom.Class); ok && c.Discriminator != nil {
			for _, m := range c.Discriminator.Mappings() {
				refs = append(refs, m.Type)
			}
		}
		for _, ref := range refs {
			if ref != nil && ref.IsInternal() {
				ref.Name = ref.Definition.Name()
			}
		}
		return nil
	})
}
