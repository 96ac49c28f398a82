package refiners

import (
	"strconv"

	"github.com/gobwas/glob"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/naming"
)

// MoveClassesWithNamespaceNamesUnderNamespace moves a class whose name equals
// the last segment of a child namespace into that namespace.
func MoveClassesWithNamespaceNamesUnderNamespace() PassFunc {
	return eachNamespace(func(run *Run, ns *codedom.Namespace) error {
		for _, c := range ns.Classes() {
			child := ns.FindNamespace(ns.Name() + "." + c.Name())
			if ns.Name() == "" {
				child = ns.FindNamespace(c.Name())
			}
			if child == nil || child == ns || child.FindClass(c.Name()) != nil {
				continue
			}
			child.AddClass(c)
		}
		return nil
	})
}

// FlattenInnerClasses moves nested classes into the namespace of their
// top-level class, optionally prefixing them with the enclosing class name.
func FlattenInnerClasses(prefixParentName bool) PassFunc {
	return eachElement(func(run *Run, e codedom.Element) error {
		c, ok := e.(*codedom.Class)
		if !ok {
			return nil
		}
		ns := codedom.NamespaceOf(c)
		if ns == nil {
			return nil
		}
		var flatten func(outer *codedom.Class)
		flatten = func(outer *codedom.Class) {
			for _, inner := range outer.InnerClasses() {
				flatten(inner)
				name := inner.Name()
				if prefixParentName && !hasPrefixFold(name, outer.Name()) {
					name = outer.Name() + naming.ToFirstCharacterUpper(name)
				}
				if existing := ns.FindClass(name); existing != nil && existing != inner {
					run.Warn(inner, "flattened class name %s already exists in %s", name, ns.Name())
					name = uniqueClassName(ns, name)
				}
				inner.SetName(name)
				ns.AddClass(inner)
			}
		}
		flatten(c)
		return nil
	})
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && equalFold(s[:len(prefix)], prefix)
}

func uniqueClassName(ns *codedom.Namespace, name string) string {
	candidate := name
	for i := 1; ns.FindClass(candidate) != nil; i++ {
		candidate = name + strconv.Itoa(i)
	}
	return candidate
}

// MoveModelsInDedicatedNamespace relocates every top-level model class and
// enum under the configured models namespace. Classes matching a
// keep-in-place pattern stay; a relocation that would collide with an
// existing declaration is skipped with a warning.
func MoveModelsInDedicatedNamespace() PassFunc {
	return func(run *Run) error {
		matchers, err := run.Config.KeepInPlaceMatchers()
		if err != nil {
			return err
		}
		target := run.Root.AddNamespace(run.Config.ModelsNamespace())
		return eachNamespace(func(run *Run, ns *codedom.Namespace) error {
			if ns == target || target.IsParentOf(ns) {
				return nil
			}
			for _, c := range ns.Classes() {
				if !c.IsOfKind(codedom.ClassModel) || keepInPlace(matchers, c.Name()) {
					continue
				}
				if target.FindClass(c.Name()) != nil || target.FindEnum(c.Name()) != nil {
					run.Warn(c, "model %s left in place: %s already declares it", c.Name(), target.Name())
					continue
				}
				target.AddClass(c)
			}
			for _, en := range ns.Enums() {
				if keepInPlace(matchers, en.Name()) {
					continue
				}
				if target.FindClass(en.Name()) != nil || target.FindEnum(en.Name()) != nil {
					run.Warn(en, "enum %s left in place: %s already declares it", en.Name(), target.Name())
					continue
				}
				target.AddEnum(en)
			}
			return nil
		})(run)
	}
}

func keepInPlace(matchers []glob.Glob, name string) bool {
	for _, m := range matchers {
		if m.Match(name) {
			return true
		}
	}
	return false
}

// NormalizeNamespaceCasing applies fn to every segment of every namespace
// name.
func NormalizeNamespaceCasing(fn func(string) string) PassFunc {
	return eachNamespace(func(run *Run, ns *codedom.Namespace) error {
		ns.SetName(naming.MapSegments(ns.Name(), fn))
		return nil
	})
}
