package refiners

import (
	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/naming"
)

// javaEvaluators import the collection types Java members need.
func javaEvaluators(run *Run) []UsingEvaluator {
	core := run.Tables.Core
	var evs []UsingEvaluator
	evs = append(evs, evaluatorFor(slotMatching(func(ref *codedom.TypeRef) bool {
		en, ok := ref.Enum()
		return ok && en.Flags
	}), core.Enumset)...)
	evs = append(evs, evaluatorFor(slotMatching(func(ref *codedom.TypeRef) bool {
		return ref.IsCollection()
	}), core.List)...)
	return evs
}

func javaProfile() *Profile {
	return NewProfile(config.Java).
		Then("convert-union-types", ConvertUnionTypesToWrapper(UnionOptions{
			SupportsInnerClasses: true,
			NameCorrection:       naming.ToFirstCharacterUpper,
		})).
		ThenAll(featureFragment()...).
		Then("replace-indexers", ReplaceIndexersByMethodsWithParameter(IndexerOptions{
			ParameterNullable: true,
			MethodName: func(ix *codedom.Indexer) string {
				return naming.ToFirstCharacterLower(defaultIndexerMethodName(ix))
			},
		})).
		Then("remove-cancellation-parameter", RemoveCancellationParameter()).
		Then("add-error-base", AddErrorBase(ErrorBaseFail)).
		Then("replace-reserved-names", ReplaceReservedNames(ReservedNameOptions{
			Replace: func(s string) string { return s + "Escaped" },
		})).
		Then("add-getters-and-setters", AddGetterAndSetterMethods(AccessorOptions{
			Kinds:        accessorKinds,
			GetterPrefix: "get",
			SetterPrefix: "set",
		})).
		Then("set-setter-parameters-nullable", SetSetterParametersToNullable(codedom.PropertyAdditionalData)).
		Then("add-constructors-for-default-values", AddConstructorsForDefaultValues(false)).
		ThenAll(modelFragment(DiscriminatorOptions{})...).
		Then("correct-core-types", CorrectCoreTypes()).
		Then("replace-binary", ReplaceBinaryByNativeType()).
		Then("normalize-namespace-casing", NormalizeNamespaceCasing(naming.ToFirstCharacterLower)).
		ThenAll(importFragment(ImportOptions{IncludeParentNamespaces: true}, javaEvaluators)...).
		Build()
}
