package refiners

import (
	"strings"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/naming"
)

// ModelInterfaceSuffix is appended to a model class name to name the
// interface extracted from it.
const ModelInterfaceSuffix = "able"

// CopyModelClassesAsInterfaces extracts an interface named <Model>able from
// every model class, holding its accessor signatures. The class implements the
// interface, and every type slot outside factories and constructors that
// references the model switches to the interface.
func CopyModelClassesAsInterfaces() PassFunc {
	return func(run *Run) error {
		x := &interfaceExtractor{run: run, byClass: make(map[*codedom.Class]*codedom.Interface)}
		return crawl(run.Root, func(e codedom.Element) error {
			switch v := e.(type) {
			case *codedom.Class:
				if v.IsOfKind(codedom.ClassModel) {
					x.interfaceFor(v)
				}
			case *codedom.Property, *codedom.Indexer:
				x.retarget(e)
			case *codedom.Method:
				if !v.IsOfKind(codedom.MethodFactory, codedom.MethodConstructor) {
					x.retarget(e)
				}
			case *codedom.Parameter:
				if m, ok := v.Parent().(*codedom.Method); !ok || !m.IsOfKind(codedom.MethodConstructor) {
					x.retarget(e)
				}
			}
			return nil
		})
	}
}

type interfaceExtractor struct {
	run     *Run
	byClass map[*codedom.Class]*codedom.Interface
}

func (x *interfaceExtractor) interfaceFor(c *codedom.Class) *codedom.Interface {
	if iface, ok := x.byClass[c]; ok {
		return iface
	}
	ns := codedom.NamespaceOf(c)
	if ns == nil {
		return nil
	}
	name := c.Name() + ModelInterfaceSuffix
	iface := ns.FindInterface(name)
	if iface != nil && iface.OriginalClass != c {
		x.run.Warn(c, "interface %s already exists; model keeps concrete references", name)
		x.byClass[c] = nil
		return nil
	}
	iface = codedom.NewInterface(name, codedom.InterfaceModel)
	iface.OriginalClass = c
	iface.Description = c.Description
	x.byClass[c] = iface
	ns.AddInterface(iface)
	c.Declaration().AddImplements(codedom.RefTo(iface))

	decl := iface.Declaration()
	if base, ok := c.BaseClass(); ok && base.IsOfKind(codedom.ClassModel) {
		if baseIface := x.interfaceFor(base); baseIface != nil {
			decl.AddImplements(codedom.RefTo(baseIface))
		}
	}
	for _, impl := range c.Declaration().ImplementedTypes() {
		if impl.External {
			decl.AddImplements(impl.Clone())
		}
	}
	for _, m := range c.MethodsOfKind(codedom.MethodGetter, codedom.MethodSetter) {
		sig := m.Clone(m.Name(), m.Kind())
		sig.OriginalMethod = m
		iface.AddMethod(sig)
		x.retarget(sig)
		for _, p := range sig.Parameters() {
			x.retarget(p)
		}
	}
	return iface
}

// retarget points references to model classes in e's type slot at their
// interfaces.
func (x *interfaceExtractor) retarget(e codedom.Element) {
	t, ok := typeOf(e)
	if !ok {
		return
	}
	for _, ref := range codedom.TypeRefs(t) {
		c, ok := ref.Class()
		if !ok || !c.IsOfKind(codedom.ClassModel) {
			continue
		}
		if iface := x.interfaceFor(c); iface != nil {
			ref.Definition = iface
			ref.Name = iface.Name()
		}
	}
}

func goProfile() *Profile {
	return NewProfile(config.Go).
		Then("convert-union-types", ConvertUnionTypesToWrapper(UnionOptions{
			SupportsInnerClasses: false,
			NameCorrection:       naming.ToFirstCharacterUpper,
		})).
		ThenAll(featureFragment()...).
		Then("flatten-inner-classes", FlattenInnerClasses(true)).
		Then("replace-indexers", ReplaceIndexersByMethodsWithParameter(IndexerOptions{})).
		Then("remove-cancellation-parameter", RemoveCancellationParameter()).
		Then("move-models-to-dedicated-namespace", MoveModelsInDedicatedNamespace()).
		Then("add-error-base", AddErrorBase(ErrorBaseFail)).
		Then("patch-header-parameters-type", PatchHeaderParametersType("")).
		Then("replace-reserved-names", ReplaceReservedNames(ReservedNameOptions{
			Replace: func(s string) string { return s + "Escaped" },
		})).
		Then("add-getters-and-setters", AddGetterAndSetterMethods(AccessorOptions{
			Kinds:        accessorKinds,
			GetterPrefix: "Get",
			SetterPrefix: "Set",
		})).
		Then("add-constructors-for-default-values", AddConstructorsForDefaultValues(true)).
		ThenAll(modelFragment(DiscriminatorOptions{ForbidImportCycles: true})...).
		Then("copy-model-classes-as-interfaces", CopyModelClassesAsInterfaces()).
		Then("correct-core-types", CorrectCoreTypes()).
		Then("replace-binary", ReplaceBinaryByNativeType()).
		Then("normalize-namespace-casing", NormalizeNamespaceCasing(strings.ToLower)).
		ThenAll(importFragment(ImportOptions{IncludeParentNamespaces: true}, nil)...).
		Build()
}
