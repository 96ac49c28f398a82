package refiners

import (
	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/errors"
)

// ErrorBasePolicy decides what happens to an error model that already
// inherits an unrelated base class.
type ErrorBasePolicy int

const (
	// ErrorBaseFail rejects the tree with an invariant violation.
	ErrorBaseFail ErrorBasePolicy = iota
	// ErrorBaseInline copies the unrelated base chain's members and imports
	// onto the error model, then replaces its base.
	ErrorBaseInline
)

func (p ErrorBasePolicy) String() string {
	if p == ErrorBaseInline {
		return "inline"
	}
	return "fail"
}

// AddErrorBase makes every error model inherit (or, for targets where the
// base error is an interface, implement) the target's base error type.
func AddErrorBase(policy ErrorBasePolicy) PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		if !c.IsErrorDefinition {
			return nil
		}
		base := run.Tables.Core.ErrorBase
		if base.IsZero() {
			return errors.NewConfigurationError("no base error type for %s", run.Tables.Language)
		}
		decl := c.Declaration()

		if run.Tables.Core.ErrorBaseIsInterface {
			decl.AddImplements(externalType(base.Symbol))
			addImport(c, base)
			return nil
		}

		switch {
		case decl.Inherits == nil:
		case decl.Inherits.External && equalFold(decl.Inherits.Name, base.Symbol):
			addImport(c, base)
			return nil
		case inheritsErrorModel(c):
			return nil
		default:
			if policy == ErrorBaseFail {
				return errors.NewInvariantViolation(
					"error model %s inherits %s and cannot also inherit %s",
					codedom.Path(c), decl.Inherits.Name, base.Symbol)
			}
			if err := inlineBaseChain(c); err != nil {
				return err
			}
		}

		decl.Inherits = externalType(base.Symbol)
		addImport(c, base)
		return nil
	})
}

// inheritsErrorModel reports whether an ancestor of c is an error model,
// which carries the base error itself.
func inheritsErrorModel(c *codedom.Class) bool {
	seen := map[*codedom.Class]bool{c: true}
	for cur, ok := c.BaseClass(); ok && !seen[cur]; cur, ok = cur.BaseClass() {
		if cur.IsErrorDefinition {
			return true
		}
		seen[cur] = true
	}
	return false
}

// inlineBaseChain copies the properties, methods and imports of c's base
// classes onto c. Members c already declares win. The whole chain must be
// declared in the tree; nothing is copied otherwise.
func inlineBaseChain(c *codedom.Class) error {
	decl := c.Declaration()
	if _, ok := c.BaseClass(); !ok {
		return errors.NewInvariantViolation(
			"error model %s inherits external type %s, which cannot be inlined",
			codedom.Path(c), decl.Inherits.Name)
	}
	seen := map[*codedom.Class]bool{c: true}
	for cur, ok := c.BaseClass(); ok && !seen[cur]; cur, ok = cur.BaseClass() {
		seen[cur] = true
		if inherits := cur.Declaration().Inherits; inherits != nil {
			if _, resolved := cur.BaseClass(); !resolved {
				return errors.NewInvariantViolation(
					"error model %s inherits %s through %s, which extends external type %s that cannot be inlined",
					codedom.Path(c), decl.Inherits.Name, cur.Name(), inherits.Name)
			}
		}
	}

	top := codedom.TopLevelDefinition(c)
	seen = map[*codedom.Class]bool{c: true}
	for cur, ok := c.BaseClass(); ok && !seen[cur]; cur, ok = cur.BaseClass() {
		seen[cur] = true
		for _, p := range cur.Properties() {
			if c.FindProperty(p.Name()) == nil {
				c.AddProperty(p.Clone())
			}
		}
		for _, m := range cur.Methods() {
			if m.IsOfKind(codedom.MethodFactory) || c.FindMethod(m.Name()) != nil {
				continue
			}
			clone := m.Clone(m.Name(), m.Kind())
			clone.OriginalMethod = m
			c.AddMethod(clone)
		}
		for _, u := range cur.Declaration().Usings() {
			top.Declaration().AddUsings(u.Clone())
		}
		for _, impl := range cur.Declaration().ImplementedTypes() {
			decl.AddImplements(impl.Clone())
		}
	}
	return nil
}
