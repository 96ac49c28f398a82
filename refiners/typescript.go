package refiners

import (
	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/naming"
)

func typescriptProfile() *Profile {
	return NewProfile(config.TypeScript).
		Then("convert-union-types", ConvertUnionTypesToWrapper(UnionOptions{
			SupportsInnerClasses: false,
			NameCorrection:       naming.ToFirstCharacterUpper,
		})).
		ThenAll(featureFragment()...).
		Then("flatten-inner-classes", FlattenInnerClasses(true)).
		Then("replace-indexers", ReplaceIndexersByMethodsWithParameter(IndexerOptions{
			MethodName: func(ix *codedom.Indexer) string {
				return naming.ToFirstCharacterLower(defaultIndexerMethodName(ix))
			},
		})).
		Then("remove-cancellation-parameter", RemoveCancellationParameter()).
		Then("replace-property-names", ReplacePropertyNames(naming.ToCamelCase,
			codedom.PropertyCustom, codedom.PropertyQueryParameter)).
		Then("add-error-base", AddErrorBase(ErrorBaseInline)).
		Then("replace-reserved-names", ReplaceReservedNames(ReservedNameOptions{
			Replace: func(s string) string { return s + "Escaped" },
			Exclude: codedom.Categories(codedom.CategoryNamespace),
		})).
		ThenAll(modelFragment(DiscriminatorOptions{})...).
		Then("correct-core-types", CorrectCoreTypes()).
		Then("replace-binary", ReplaceBinaryByNativeType()).
		ThenAll(importFragment(ImportOptions{IncludeCurrentNamespace: true, IncludeParentNamespaces: true}, nil,
			Pass{Name: "replace-relative-imports", Run: ReplaceRelativeImportsByImportPath()})...).
		Build()
}
