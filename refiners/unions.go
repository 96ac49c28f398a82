package refiners

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/naming"
)

// Names of the members synthesized on model wrappers.
const (
	SerializeMethodName        = "Serialize"
	FieldDeserializersName     = "GetFieldDeserializers"
	fieldDeserializersTypeName = "FieldDeserializers"
)

// UnionOptions configures ConvertUnionTypesToWrapper.
type UnionOptions struct {
	// SupportsInnerClasses nests wrappers in the innermost enclosing class;
	// otherwise they become siblings in the enclosing namespace.
	SupportsInnerClasses bool
	// NameCorrection adjusts the wrapper class name. Nil keeps it.
	NameCorrection func(string) string
}

// ConvertUnionTypesToWrapper replaces every composed type slot with a
// reference to a synthesized wrapper class holding one nullable property per
// member type. Wrappers whose members are all models or enums are models
// themselves and get serialization members. Wrappers with the same name in
// one scope are shared.
func ConvertUnionTypesToWrapper(opts UnionOptions) PassFunc {
	return eachElement(func(run *Run, e codedom.Element) error {
		t, ok := typeOf(e)
		if !ok {
			return nil
		}
		composed, ok := t.(*codedom.ComposedType)
		if !ok {
			return nil
		}
		wrapper := wrapperFor(run, e, composed, opts)
		if wrapper == nil {
			return nil
		}
		ref := codedom.RefTo(wrapper)
		ref.TypeTraits = composed.TypeTraits
		setTypeOf(e, ref)
		return nil
	})
}

func wrapperFor(run *Run, e codedom.Element, composed *codedom.ComposedType, opts UnionOptions) *codedom.Class {
	name := composed.Name
	if name == "" {
		name = derivedWrapperName(composed)
	}
	if opts.NameCorrection != nil {
		name = opts.NameCorrection(name)
	}

	var (
		outer *codedom.Class
		ns    *codedom.Namespace
	)
	if opts.SupportsInnerClasses {
		outer, _ = codedom.Ancestor[*codedom.Class](e)
	}
	if outer == nil {
		ns = codedom.NamespaceOf(e)
		if ns == nil {
			return nil
		}
	}
	find := func(n string) *codedom.Class {
		if outer != nil {
			return outer.FindInnerClass(n)
		}
		return ns.FindClass(n)
	}

	candidate := name
	for i := 1; ; i++ {
		existing := find(candidate)
		if existing == nil {
			break
		}
		if existing.OriginalComposed != nil && existing.OriginalComposed.MemberNames() == composed.MemberNames() {
			return existing
		}
		candidate = name + strconv.Itoa(i)
	}

	members := composed.AllTypes()
	allModels := len(members) > 0
	for _, m := range members {
		if !m.IsInternal() || !isModel(m) {
			allModels = false
			break
		}
	}
	kind := codedom.ClassCustom
	if allModels {
		kind = codedom.ClassModel
	}

	wrapper := codedom.NewClass(candidate, kind)
	wrapper.OriginalComposed = composed
	label := "Union"
	if composed.Kind() == codedom.Intersection {
		label = "Intersection"
	}
	wrapper.Description = fmt.Sprintf("%s type wrapper for classes %s", label, composed.MemberNames())
	if composed.Discriminator != nil {
		wrapper.Discriminator = composed.Discriminator.Clone()
	}
	for _, m := range members {
		memberType := m.Clone()
		memberType.Nullable = true
		p := codedom.NewProperty(wrapper.UniquePropertyName(memberPropertyName(m)), codedom.PropertyCustom, memberType)
		p.Description = fmt.Sprintf("Composed type representation for type %s", m.Name)
		wrapper.AddProperty(p)
	}
	if allModels {
		addSerializationMembers(run, wrapper)
	}

	if outer != nil {
		outer.AddInnerClass(wrapper)
	} else {
		ns.AddClass(wrapper)
	}
	return wrapper
}

func memberPropertyName(m *codedom.TypeRef) string {
	name := naming.CleanupSymbolName(m.Name)
	if m.IsCollection() {
		name += "s"
	}
	return naming.ToFirstCharacterLower(name)
}

func derivedWrapperName(composed *codedom.ComposedType) string {
	var parts []string
	for _, m := range composed.AllTypes() {
		parts = append(parts, naming.ToFirstCharacterUpper(naming.CleanupSymbolName(m.Name)))
	}
	sep := "Or"
	if composed.Kind() == codedom.Intersection {
		sep = "And"
	}
	return strings.Join(parts, sep)
}

// addSerializationMembers gives a synthesized model a serializer and a field
// deserializer method.
func addSerializationMembers(run *Run, c *codedom.Class) {
	core := run.Tables.Core
	if len(c.MethodsOfKind(codedom.MethodSerializer)) == 0 {
		m := codedom.NewMethod(SerializeMethodName, codedom.MethodSerializer)
		m.Description = "Serializes information the current object"
		m.ReturnType = voidType()
		m.AddParameter(codedom.NewParameter("writer", codedom.ParameterSerializer, externalType(core.SerializationWriter.Symbol)))
		c.AddMethod(m)
	}
	if len(c.MethodsOfKind(codedom.MethodDeserializer)) == 0 {
		m := codedom.NewMethod(FieldDeserializersName, codedom.MethodDeserializer)
		m.Description = "The deserialization information for the current model"
		m.ReturnType = externalType(fieldDeserializersTypeName)
		c.AddMethod(m)
	}
}
