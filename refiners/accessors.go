package refiners

import (
	"fmt"
	"strings"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/naming"
)

// AccessorOptions configures AddGetterAndSetterMethods.
type AccessorOptions struct {
	// Kinds are the property kinds that get accessors.
	Kinds []codedom.PropertyKind
	// RemoveProperty deletes the property once its accessors exist. Backing
	// store properties are always kept.
	RemoveProperty bool
	// ParameterAsOptional makes the setter value optional.
	ParameterAsOptional bool
	GetterPrefix        string
	SetterPrefix        string
	// FieldPrefix is recorded on kept properties for the private field name.
	FieldPrefix string
	// NameCorrection casts the property name into the accessor name
	// following the prefix. Nil upper-cases the first letter.
	NameCorrection func(string) string
}

// AddGetterAndSetterMethods turns properties of the configured kinds into a
// private field plus a public getter and, unless read-only, a public setter.
// Accessors keep the wire name of their property.
func AddGetterAndSetterMethods(opts AccessorOptions) PassFunc {
	correct := opts.NameCorrection
	if correct == nil {
		correct = naming.ToFirstCharacterUpper
	}
	return eachClass(func(run *Run, c *codedom.Class) error {
		if c.IsOfKind(codedom.ClassQueryParameters) {
			return nil
		}
		for _, p := range c.PropertiesOfKind(opts.Kinds...) {
			if p.Getter != nil {
				continue
			}
			base := correct(naming.CleanupSymbolName(p.Name()))
			description := strings.TrimSpace(p.Description)

			getter := codedom.NewMethod(c.UniquePropertyName(opts.GetterPrefix+base), codedom.MethodGetter)
			getter.Description = strings.TrimSpace(fmt.Sprintf("Gets the %s property value. %s", p.Name(), description))
			getter.SerializationName = p.WireName()
			getter.AccessedProperty = p
			if !codedom.IsNil(p.Type) {
				getter.ReturnType = p.Type.CloneType()
			}
			c.AddMethod(getter)
			p.Getter = getter

			if !p.ReadOnly {
				setter := codedom.NewMethod(c.UniquePropertyName(opts.SetterPrefix+base), codedom.MethodSetter)
				setter.Description = strings.TrimSpace(fmt.Sprintf("Sets the %s property value. %s", p.Name(), description))
				setter.SerializationName = p.WireName()
				setter.AccessedProperty = p
				setter.ReturnType = voidType()
				var valueType codedom.TypeBase
				if !codedom.IsNil(p.Type) {
					valueType = p.Type.CloneType()
				}
				value := codedom.NewParameter("value", codedom.ParameterSetterValue, valueType)
				value.Optional = opts.ParameterAsOptional
				value.Description = fmt.Sprintf("Value to set for the %s property.", p.Name())
				setter.AddParameter(value)
				c.AddMethod(setter)
				p.Setter = setter
			}

			if opts.RemoveProperty && !p.IsOfKind(codedom.PropertyBackingStore) {
				c.RemoveProperty(p)
				continue
			}
			if p.SerializationName == "" {
				p.SerializationName = p.Name()
			}
			p.Access = codedom.AccessPrivate
			p.NamePrefix = opts.FieldPrefix
		}
		return nil
	})
}

// SetSetterParametersToNullable makes the value parameter of setters of the
// given property kinds nullable.
func SetSetterParametersToNullable(kinds ...codedom.PropertyKind) PassFunc {
	return eachElement(func(run *Run, e codedom.Element) error {
		m, ok := e.(*codedom.Method)
		if !ok || !m.IsOfKind(codedom.MethodSetter) || m.AccessedProperty == nil || !m.AccessedProperty.IsOfKind(kinds...) {
			return nil
		}
		for _, p := range m.ParametersOfKind(codedom.ParameterSetterValue) {
			p.Optional = true
			if !codedom.IsNil(p.Type) {
				p.Type.Traits().Nullable = true
			}
		}
		return nil
	})
}
