package refiners

import (
	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/naming"
)

// csharpShapePasses reshape the tree the way C# and the C#-based CLI target
// expect it. Property and type renames precede reserved type escaping so a
// property named after its class is disambiguated against the original name.
func csharpShapePasses() []Pass {
	passes := append([]Pass{
		{Name: "convert-union-types", Run: ConvertUnionTypesToWrapper(UnionOptions{SupportsInnerClasses: true})},
	}, featureFragment()...)
	return append(passes, []Pass{
		{Name: "move-classes-with-namespace-names", Run: MoveClassesWithNamespaceNamesUnderNamespace()},
		{Name: "normalize-namespace-casing", Run: NormalizeNamespaceCasing(naming.ToFirstCharacterUpper)},
		{Name: "replace-binary", Run: ReplaceBinaryByNativeType()},
		{Name: "make-enum-properties-nullable", Run: MakeEnumPropertiesNullable()},
		{Name: "replace-reserved-names", Run: ReplaceReservedNames(ReservedNameOptions{
			Replace: func(s string) string { return "@" + naming.ToFirstCharacterUpper(s) },
			Exclude: codedom.Categories(
				codedom.CategoryNamespace, codedom.CategoryClass, codedom.CategoryInterface,
				codedom.CategoryEnum, codedom.CategoryEnumOption, codedom.CategoryMethod,
				codedom.CategoryProperty, codedom.CategoryUsing),
		})},
		{Name: "replace-property-names", Run: ReplacePropertyNames(naming.ToPascalCase,
			codedom.PropertyCustom, codedom.PropertyQueryParameter)},
		{Name: "disambiguate-properties-with-class-names", Run: DisambiguatePropertiesWithClassNames("Prop")},
		{Name: "replace-reserved-model-types", Run: ReplaceReservedModelTypes(func(s string) string { return s + "Object" })},
		{Name: "replace-reserved-namespace-segments", Run: ReplaceReservedNamespaceSegments(func(s string) string { return s + "Namespace" })},
		{Name: "add-error-base", Run: AddErrorBase(ErrorBaseFail)},
		{Name: "add-constructors-for-default-values", Run: AddConstructorsForDefaultValues(false)},
		{Name: "correct-core-types", Run: CorrectCoreTypes()},
	}...)
}

func csharpProfile() *Profile {
	return NewProfile(config.CSharp).
		ThenAll(csharpShapePasses()...).
		Then("split-legacy-indexers", SplitLegacyIndexers(nil)).
		ThenAll(modelFragment(DiscriminatorOptions{})...).
		ThenAll(importFragment(ImportOptions{}, nil)...).
		Build()
}
