package refiners

import (
	"fmt"

	"github.com/teranos/refinery/codedom"
)

// RemoveCancellationParameter drops cancellation parameters, for targets
// without cancellation tokens.
func RemoveCancellationParameter() PassFunc {
	return eachElement(func(run *Run, e codedom.Element) error {
		m, ok := e.(*codedom.Method)
		if !ok {
			return nil
		}
		for _, p := range m.ParametersOfKind(codedom.ParameterCancellation) {
			m.RemoveParameter(p)
		}
		return nil
	})
}

// RemoveMethodByKind drops every method of the given kinds.
func RemoveMethodByKind(kinds ...codedom.MethodKind) PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		for _, m := range c.MethodsOfKind(kinds...) {
			c.RemoveMethod(m)
		}
		return nil
	})
}

// MakeModelPropertiesNullable marks the custom properties of models nullable.
func MakeModelPropertiesNullable() PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		if !c.IsOfKind(codedom.ClassModel) {
			return nil
		}
		for _, p := range c.PropertiesOfKind(codedom.PropertyCustom) {
			if !codedom.IsNil(p.Type) {
				p.Type.Traits().Nullable = true
			}
		}
		return nil
	})
}

// MakeEnumPropertiesNullable marks properties typed with an enum nullable.
func MakeEnumPropertiesNullable() PassFunc {
	return eachElement(func(run *Run, e codedom.Element) error {
		p, ok := e.(*codedom.Property)
		if !ok || codedom.IsNil(p.Type) {
			return nil
		}
		for _, ref := range codedom.TypeRefs(p.Type) {
			if _, isEnum := ref.Enum(); isEnum {
				p.Type.Traits().Nullable = true
			}
		}
		return nil
	})
}

// AddConstructorsForDefaultValues adds a constructor to classes with
// properties carrying default values, so the values get assigned.
func AddConstructorsForDefaultValues(includeModelsOnly bool) PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		if includeModelsOnly && !c.IsOfKind(codedom.ClassModel) {
			return nil
		}
		if len(c.MethodsOfKind(codedom.MethodConstructor, codedom.MethodClientConstructor)) > 0 {
			return nil
		}
		hasDefaults := false
		for _, p := range c.Properties() {
			if p.DefaultValue != "" {
				hasDefaults = true
				break
			}
		}
		if !hasDefaults {
			return nil
		}
		ctor := codedom.NewMethod("Constructor", codedom.MethodConstructor)
		ctor.Description = fmt.Sprintf("Instantiates a new %s and sets the default values.", c.Name())
		ctor.ReturnType = voidType()
		c.AddMethod(ctor)
		return nil
	})
}

// ReplacePropertyNames renames properties of the given kinds with fn,
// recording the original name as the wire name.
func ReplacePropertyNames(fn func(string) string, kinds ...codedom.PropertyKind) PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		for _, p := range c.PropertiesOfKind(kinds...) {
			renamed := fn(p.Name())
			if renamed == "" || renamed == p.Name() {
				continue
			}
			if p.SerializationName == "" {
				p.SerializationName = p.Name()
			}
			p.SetName(renamed)
		}
		return nil
	})
}
