package refiners

import (
	"strings"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/langdata"
)

// CorrectCoreTypes replaces abstract type markers in every type slot with the
// target's native type and imports it into the owning file.
func CorrectCoreTypes() PassFunc {
	return eachElement(func(run *Run, e codedom.Element) error {
		t, ok := typeOf(e)
		if !ok {
			return nil
		}
		for _, ref := range codedom.TypeRefs(t) {
			if ref.IsInternal() {
				continue
			}
			repl, found := run.Tables.Types.Lookup(ref.Name)
			if !found {
				continue
			}
			replaceType(e, ref, repl)
		}
		return nil
	})
}

// ReplaceBinaryByNativeType replaces the binary marker with the target's
// stream or byte type.
func ReplaceBinaryByNativeType() PassFunc {
	return eachElement(func(run *Run, e codedom.Element) error {
		t, ok := typeOf(e)
		if !ok || run.Tables.Binary.Name == "" {
			return nil
		}
		for _, ref := range codedom.TypeRefs(t) {
			if !ref.IsInternal() && equalFold(ref.Name, langdata.MarkerBinary) {
				replaceType(e, ref, run.Tables.Binary)
			}
		}
		return nil
	})
}

func replaceType(e codedom.Element, ref *codedom.TypeRef, repl langdata.Replacement) {
	ref.Name = repl.Name
	if !repl.Import.IsZero() {
		ref.External = true
		addImport(e, repl.Import)
	}
}

// PatchHeaderParametersType sets headers properties and parameters to the
// target's header collection type. An empty typeName uses the core symbol.
func PatchHeaderParametersType(typeName string) PassFunc {
	return eachElement(func(run *Run, e codedom.Element) error {
		if !propertyOfKind(codedom.PropertyHeaders)(e) && !parameterOfKind(codedom.ParameterHeaders)(e) {
			return nil
		}
		name := typeName
		if name == "" {
			name = run.Tables.Core.Headers.Symbol
			addImport(e, run.Tables.Core.Headers)
		}
		patched := externalType(name)
		if t, ok := typeOf(e); ok {
			patched.TypeTraits = *t.Traits()
		}
		setTypeOf(e, patched)
		return nil
	})
}

// AddParsableImplements marks every model class as parsable, and as an
// additional data holder or backed model when it carries those properties.
func AddParsableImplements() PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		if !c.IsOfKind(codedom.ClassModel) {
			return nil
		}
		core := run.Tables.Core
		implement := func(imp langdata.Import) {
			if imp.IsZero() {
				return
			}
			c.Declaration().AddImplements(externalType(imp.Symbol))
			addImport(c, imp)
		}
		implement(core.Parsable)
		if len(c.PropertiesOfKind(codedom.PropertyAdditionalData)) > 0 {
			implement(core.AdditionalDataHolder)
		}
		if len(c.PropertiesOfKind(codedom.PropertyBackingStore)) > 0 {
			implement(core.BackedModel)
		}
		return nil
	})
}

// AddSerializationModules registers the target's default serializer and
// deserializer factories on the client constructor and imports them. The
// client class must exist.
func AddSerializationModules() PassFunc {
	return func(run *Run) error {
		client, err := run.ClientClass()
		if err != nil {
			return err
		}
		core := run.Tables.Core
		for _, m := range client.MethodsOfKind(codedom.MethodClientConstructor) {
			if len(m.SerializerModules) == 0 {
				m.SerializerModules = append([]string(nil), core.DefaultSerializers...)
			}
			if len(m.DeserializerModules) == 0 {
				m.DeserializerModules = append([]string(nil), core.DefaultDeserializers...)
			}
			for _, modules := range [][]string{m.SerializerModules, m.DeserializerModules} {
				for _, module := range modules {
					addImport(client, splitQualified(module))
				}
			}
		}
		return nil
	}
}

// splitQualified splits "pkg.path.Symbol" into its module and symbol.
func splitQualified(qualified string) langdata.Import {
	i := strings.LastIndex(qualified, ".")
	if i < 0 {
		return langdata.Import{Symbol: qualified}
	}
	return langdata.Import{Module: qualified[:i], Symbol: qualified[i+1:]}
}
