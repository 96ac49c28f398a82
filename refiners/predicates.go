package refiners

import "github.com/teranos/refinery/codedom"

func classOfKind(kinds ...codedom.ClassKind) func(codedom.Element) bool {
	return func(e codedom.Element) bool {
		c, ok := e.(*codedom.Class)
		return ok && c.IsOfKind(kinds...)
	}
}

func methodOfKind(kinds ...codedom.MethodKind) func(codedom.Element) bool {
	return func(e codedom.Element) bool {
		m, ok := e.(*codedom.Method)
		return ok && m.IsOfKind(kinds...)
	}
}

func propertyOfKind(kinds ...codedom.PropertyKind) func(codedom.Element) bool {
	return func(e codedom.Element) bool {
		p, ok := e.(*codedom.Property)
		return ok && p.IsOfKind(kinds...)
	}
}

func parameterOfKind(kinds ...codedom.ParameterKind) func(codedom.Element) bool {
	return func(e codedom.Element) bool {
		p, ok := e.(*codedom.Parameter)
		return ok && p.IsOfKind(kinds...)
	}
}

// slotMatching reports elements whose type slot holds a reference matching fn.
func slotMatching(fn func(*codedom.TypeRef) bool) func(codedom.Element) bool {
	return func(e codedom.Element) bool {
		t, ok := typeOf(e)
		if !ok {
			return false
		}
		for _, ref := range codedom.TypeRefs(t) {
			if fn(ref) {
				return true
			}
		}
		return false
	}
}

func anyOf(preds ...func(codedom.Element) bool) func(codedom.Element) bool {
	return func(e codedom.Element) bool {
		for _, p := range preds {
			if p(e) {
				return true
			}
		}
		return false
	}
}

// isModel reports whether a reference resolves to a model class or an enum.
func isModel(ref *codedom.TypeRef) bool {
	if c, ok := ref.Class(); ok {
		return c.IsOfKind(codedom.ClassModel)
	}
	_, ok := ref.Enum()
	return ok
}
