package refiners

import (
	"fmt"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/naming"
)

// QueryParametersFactoryName is the static factory PHP request configurations
// expose for their query parameters.
const QueryParametersFactoryName = "createQueryParameters"

// AddQueryParameterFactory gives query parameter classes a constructor with
// one optional parameter per query parameter, and their request
// configuration classes a static factory with the same parameters.
func AddQueryParameterFactory() PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		switch {
		case c.IsOfKind(codedom.ClassQueryParameters):
			if len(c.MethodsOfKind(codedom.MethodConstructor)) > 0 {
				return nil
			}
			ctor := codedom.NewMethod("constructor", codedom.MethodConstructor)
			ctor.Description = fmt.Sprintf("Instantiates a new %s and sets the default values.", c.Name())
			ctor.ReturnType = voidType()
			ctor.AddParameter(queryParameterArgs(c)...)
			c.AddMethod(ctor)
		case c.IsOfKind(codedom.ClassRequestConfiguration):
			for _, prop := range c.PropertiesOfKind(codedom.PropertyQueryParameters) {
				qp, ok := queryParametersClass(prop)
				if !ok || c.FindMethod(QueryParametersFactoryName) != nil {
					continue
				}
				factory := codedom.NewMethod(QueryParametersFactoryName, codedom.MethodFactory)
				factory.IsStatic = true
				factory.Description = fmt.Sprintf("Instantiates a new %s.", qp.Name())
				ret := codedom.RefTo(qp)
				ret.Nullable = false
				factory.ReturnType = ret
				factory.AddParameter(queryParameterArgs(qp)...)
				c.AddMethod(factory)
			}
		}
		return nil
	})
}

func queryParametersClass(p *codedom.Property) (*codedom.Class, bool) {
	for _, ref := range codedom.TypeRefs(p.Type) {
		if c, ok := ref.Class(); ok && c.IsOfKind(codedom.ClassQueryParameters) {
			return c, true
		}
	}
	return nil, false
}

func queryParameterArgs(qp *codedom.Class) []*codedom.Parameter {
	var params []*codedom.Parameter
	for _, prop := range qp.PropertiesOfKind(codedom.PropertyQueryParameter) {
		var t codedom.TypeBase
		if !codedom.IsNil(prop.Type) {
			t = prop.Type.CloneType()
			t.Traits().Nullable = true
		}
		param := codedom.NewParameter(prop.Name(), codedom.ParameterQueryParameter, t)
		param.Optional = true
		param.DefaultValue = "null"
		param.Description = prop.Description
		param.SerializationName = prop.WireName()
		params = append(params, param)
	}
	return params
}

func phpProfile() *Profile {
	return NewProfile(config.PHP).
		Then("convert-union-types", ConvertUnionTypesToWrapper(UnionOptions{
			SupportsInnerClasses: false,
			NameCorrection:       naming.ToFirstCharacterUpper,
		})).
		ThenAll(featureFragment()...).
		Then("replace-indexers", ReplaceIndexersByMethodsWithParameter(IndexerOptions{
			MethodName: func(ix *codedom.Indexer) string {
				return naming.ToFirstCharacterLower(defaultIndexerMethodName(ix))
			},
		})).
		Then("flatten-inner-classes", FlattenInnerClasses(true)).
		Then("remove-cancellation-parameter", RemoveCancellationParameter()).
		Then("replace-property-names", ReplacePropertyNames(naming.ToCamelCase,
			codedom.PropertyCustom, codedom.PropertyQueryParameter)).
		Then("add-query-parameter-factory", AddQueryParameterFactory()).
		Then("add-error-base", AddErrorBase(ErrorBaseInline)).
		Then("add-getters-and-setters", AddGetterAndSetterMethods(AccessorOptions{
			Kinds:               accessorKinds,
			ParameterAsOptional: true,
			GetterPrefix:        "get",
			SetterPrefix:        "set",
		})).
		Then("replace-reserved-names", ReplaceReservedNames(ReservedNameOptions{
			Replace: func(s string) string { return "Escaped" + naming.ToFirstCharacterUpper(s) },
			Exclude: codedom.Categories(codedom.CategoryProperty, codedom.CategoryEnumOption),
		})).
		ThenAll(modelFragment(DiscriminatorOptions{})...).
		Then("correct-core-types", CorrectCoreTypes()).
		Then("replace-binary", ReplaceBinaryByNativeType()).
		Then("normalize-namespace-casing", NormalizeNamespaceCasing(naming.ToFirstCharacterUpper)).
		ThenAll(importFragment(ImportOptions{IncludeParentNamespaces: true}, nil)...).
		Build()
}
