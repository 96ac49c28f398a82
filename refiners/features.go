package refiners

import (
	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
)

const backingStoreName = "backingStore"

// AddBackingStore gives every root model a backing store property and every
// client constructor a backing store factory parameter. Derived models get
// the store through their base.
func AddBackingStore() PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		core := run.Tables.Core
		if c.IsOfKind(codedom.ClassModel) {
			if _, derived := c.BaseClass(); derived || len(c.PropertiesOfKind(codedom.PropertyBackingStore)) > 0 {
				return nil
			}
			if core.BackingStore.IsZero() {
				return nil
			}
			store := codedom.NewProperty(c.UniquePropertyName(backingStoreName), codedom.PropertyBackingStore,
				&codedom.TypeRef{Name: core.BackingStore.Symbol, External: true})
			store.Description = "Stores model information."
			c.AddProperty(store)
			run.Trace(c, "added backing store property %s", store.Name())
			return nil
		}
		for _, m := range c.MethodsOfKind(codedom.MethodClientConstructor) {
			if len(m.ParametersOfKind(codedom.ParameterBackingStore)) > 0 || core.BackingStoreFactory.IsZero() {
				continue
			}
			param := codedom.NewParameter(backingStoreName, codedom.ParameterBackingStore,
				&codedom.TypeRef{Name: core.BackingStoreFactory.Symbol, External: true, TypeTraits: codedom.TypeTraits{Nullable: true}})
			param.Optional = true
			param.Description = "The backing store to use for the models."
			m.AddParameter(param)
			addImport(c, core.BackingStoreFactory)
		}
		return nil
	})
}

// RemoveAdditionalData drops additional data properties from models.
func RemoveAdditionalData() PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		for _, p := range c.PropertiesOfKind(codedom.PropertyAdditionalData) {
			c.RemoveProperty(p)
		}
		return nil
	})
}

// featureFragment applies the model feature flags of the run configuration
// before any pass derives members from model properties.
func featureFragment() []Pass {
	return []Pass{
		passIf("add-backing-store", func(c *config.Config) bool { return c.UsesBackingStore }, AddBackingStore()),
		passIf("remove-additional-data", func(c *config.Config) bool { return !c.IncludeAdditionalData }, RemoveAdditionalData()),
	}
}
