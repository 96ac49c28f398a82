package refiners

import (
	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
)

// profileBuilders lists the profile of every supported language.
var profileBuilders = map[config.Language]func() *Profile{
	config.CSharp:     csharpProfile,
	config.CLI:        cliProfile,
	config.Java:       javaProfile,
	config.Go:         goProfile,
	config.Python:     pythonProfile,
	config.PHP:        phpProfile,
	config.TypeScript: typescriptProfile,
}

// modelFragment prunes discriminators, then adds factories and the parsable
// capability to models. Pruning must precede the factory.
func modelFragment(discriminators DiscriminatorOptions) []Pass {
	return []Pass{
		{Name: "remove-unreachable-discriminator-mappings", Run: RemoveUnreachableDiscriminatorMappings(discriminators)},
		{Name: "add-discriminator-factory", Run: AddDiscriminatorFactory("")},
		{Name: "add-parsable-implements", Run: AddParsableImplements()},
	}
}

// importFragment closes every profile: imports, aliasing and reference names
// assume the tree has its final shape. Passes in tail run after aliasing and
// before reference names are synced, which stays last.
func importFragment(opts ImportOptions, extra func(run *Run) []UsingEvaluator, tail ...Pass) []Pass {
	evaluators := func(run *Run) []UsingEvaluator {
		evs := coreEvaluators(run)
		if extra != nil {
			evs = append(evs, extra(run)...)
		}
		return evs
	}
	passes := []Pass{
		{Name: "add-default-imports", Run: AddDefaultImports(evaluators)},
		{Name: "add-serialization-modules", Run: AddSerializationModules()},
		{Name: "add-types-imports", Run: AddPropertiesAndMethodTypesImports(opts)},
		{Name: "alias-duplicate-imports", Run: AliasUsingsWithSameSymbol(nil)},
	}
	passes = append(passes, tail...)
	return append(passes, Pass{Name: "sync-type-reference-names", Run: SyncTypeReferenceNames()})
}

// accessorKinds are the property kinds hoisted into accessors by targets
// without public mutable fields.
var accessorKinds = []codedom.PropertyKind{
	codedom.PropertyCustom,
	codedom.PropertyAdditionalData,
	codedom.PropertyBackingStore,
}
