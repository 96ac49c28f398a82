package refiners

import (
	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/naming"
)

func pythonProfile() *Profile {
	return NewProfile(config.Python).
		Then("convert-union-types", ConvertUnionTypesToWrapper(UnionOptions{
			SupportsInnerClasses: false,
			NameCorrection:       naming.ToFirstCharacterUpper,
		})).
		ThenAll(featureFragment()...).
		Then("replace-indexers", ReplaceIndexersByMethodsWithParameter(IndexerOptions{
			MethodName: func(ix *codedom.Indexer) string {
				return naming.ToSnakeCase(defaultIndexerMethodName(ix))
			},
		})).
		Then("remove-cancellation-parameter", RemoveCancellationParameter()).
		Then("replace-property-names", ReplacePropertyNames(naming.ToSnakeCase,
			codedom.PropertyCustom, codedom.PropertyQueryParameter)).
		Then("add-error-base", AddErrorBase(ErrorBaseInline)).
		Then("replace-reserved-names", ReplaceReservedNames(ReservedNameOptions{
			Replace: func(s string) string { return s + "_" },
		})).
		ThenAll(modelFragment(DiscriminatorOptions{})...).
		Then("correct-core-types", CorrectCoreTypes()).
		Then("replace-binary", ReplaceBinaryByNativeType()).
		Then("normalize-namespace-casing", NormalizeNamespaceCasing(naming.ToSnakeCase)).
		ThenAll(importFragment(ImportOptions{IncludeCurrentNamespace: true, IncludeParentNamespaces: true}, nil)...).
		Build()
}
