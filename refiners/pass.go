package refiners

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/errors"
	"github.com/teranos/refinery/langdata"
	"github.com/teranos/refinery/logger"
)

// PassFunc rewrites the tree of one run in place. A pass walks the tree once
// and always runs to completion; cancellation is checked between passes.
type PassFunc func(run *Run) error

// Pass is a named PassFunc.
type Pass struct {
	Name string
	Run  PassFunc
}

// Run is the state of one refinement run, handed to every pass.
type Run struct {
	ID       string
	Root     *codedom.Namespace
	Config   *config.Config
	Tables   *langdata.Tables
	Warnings *errors.Warnings
	Logger   *zap.SugaredLogger

	pass string
}

// Pass returns the name of the pass currently running.
func (r *Run) Pass() string { return r.pass }

// Warn records a soft warning against e and logs it.
func (r *Run) Warn(e codedom.Element, format string, args ...interface{}) {
	path := ""
	if e != nil {
		path = codedom.Path(e)
	}
	r.Warnings.Add(r.pass, path, format, args...)
	r.Logger.Warnw(fmt.Sprintf(format, args...),
		logger.FieldPass, r.pass,
		logger.FieldElement, path)
}

// Trace logs a per-element rewrite. It only emits at trace verbosity (-vvv).
func (r *Run) Trace(e codedom.Element, format string, args ...interface{}) {
	if r.Config == nil || !logger.ShouldLogTrace(r.Config.Log.Verbosity) {
		return
	}
	r.Logger.Debugw(fmt.Sprintf(format, args...),
		logger.FieldPass, r.pass,
		logger.FieldElement, codedom.Path(e))
}

// ClientNamespace returns the namespace named by the configuration, falling
// back to the root.
func (r *Run) ClientNamespace() *codedom.Namespace {
	if r.Config.ClientNamespaceName != "" {
		if ns := r.Root.FindNamespace(r.Config.ClientNamespaceName); ns != nil {
			return ns
		}
	}
	return r.Root
}

// ClientClass finds the configured client class. A missing client class is a
// configuration error.
func (r *Run) ClientClass() (*codedom.Class, error) {
	name := r.Config.ClientClassName
	if name == "" {
		return nil, errors.NewConfigurationError("client class name is not configured")
	}
	if c := r.ClientNamespace().FindClass(name); c != nil {
		return c, nil
	}
	if c := r.Root.FindClassDeep(name); c != nil {
		return c, nil
	}
	return nil, errors.WithHint(
		errors.NewConfigurationError("client class %q not found under %q", name, r.Root.Name()),
		"check client_class_name against the generated request builders")
}

// Profile is the ordered pass list of one target language.
type Profile struct {
	Language config.Language
	passes   []Pass
}

// Passes returns the passes in execution order.
func (p *Profile) Passes() []Pass {
	out := make([]Pass, len(p.passes))
	copy(out, p.passes)
	return out
}

// PassNames returns the pass names in execution order.
func (p *Profile) PassNames() []string {
	names := make([]string, len(p.passes))
	for i, pass := range p.passes {
		names[i] = pass.Name
	}
	return names
}

// ProfileBuilder assembles a profile. Order of calls is execution order.
type ProfileBuilder struct {
	lang   config.Language
	passes []Pass
}

// NewProfile starts a profile for lang.
func NewProfile(lang config.Language) *ProfileBuilder {
	return &ProfileBuilder{lang: lang}
}

// Then appends a pass.
func (b *ProfileBuilder) Then(name string, fn PassFunc) *ProfileBuilder {
	b.passes = append(b.passes, Pass{Name: name, Run: fn})
	return b
}

// ThenAll appends a fragment shared between profiles.
func (b *ProfileBuilder) ThenAll(passes ...Pass) *ProfileBuilder {
	b.passes = append(b.passes, passes...)
	return b
}

// ThenIf appends a pass that only runs when enabled reports true for the run
// configuration.
func (b *ProfileBuilder) ThenIf(name string, enabled func(*config.Config) bool, fn PassFunc) *ProfileBuilder {
	return b.ThenAll(passIf(name, enabled, fn))
}

func passIf(name string, enabled func(*config.Config) bool, fn PassFunc) Pass {
	return Pass{Name: name, Run: func(run *Run) error {
		if run.Config == nil || !enabled(run.Config) {
			return nil
		}
		return fn(run)
	}}
}

// Build returns the assembled profile.
func (b *ProfileBuilder) Build() *Profile {
	return &Profile{Language: b.lang, passes: append([]Pass(nil), b.passes...)}
}

// crawl applies fn to e and then to its descendants, parents first. The
// children of a node are captured after fn ran on it.
func crawl(e codedom.Element, fn func(codedom.Element) error) error {
	if err := fn(e); err != nil {
		return err
	}
	var err error
	codedom.Crawl(e, func(child codedom.Element) {
		if err == nil {
			err = crawl(child, fn)
		}
	})
	return err
}

// eachElement builds a pass applying fn to every element of the tree.
func eachElement(fn func(run *Run, e codedom.Element) error) PassFunc {
	return func(run *Run) error {
		return crawl(run.Root, func(e codedom.Element) error {
			return fn(run, e)
		})
	}
}

// eachClass builds a pass applying fn to every class, nested ones included.
func eachClass(fn func(run *Run, c *codedom.Class) error) PassFunc {
	return eachElement(func(run *Run, e codedom.Element) error {
		if c, ok := e.(*codedom.Class); ok {
			return fn(run, c)
		}
		return nil
	})
}

// eachNamespace builds a pass applying fn to every namespace.
func eachNamespace(fn func(run *Run, ns *codedom.Namespace) error) PassFunc {
	return func(run *Run) error {
		var visit func(ns *codedom.Namespace) error
		visit = func(ns *codedom.Namespace) error {
			if err := fn(run, ns); err != nil {
				return err
			}
			for _, child := range ns.Namespaces() {
				if err := visit(child); err != nil {
					return err
				}
			}
			return nil
		}
		return visit(run.Root)
	}
}

// typeOf returns the type slot of a property, parameter, method or indexer.
func typeOf(e codedom.Element) (codedom.TypeBase, bool) {
	var t codedom.TypeBase
	switch v := e.(type) {
	case *codedom.Property:
		t = v.Type
	case *codedom.Parameter:
		t = v.Type
	case *codedom.Method:
		t = v.ReturnType
	case *codedom.Indexer:
		t = v.ReturnType
	default:
		return nil, false
	}
	if codedom.IsNil(t) {
		return nil, false
	}
	return t, true
}

// setTypeOf replaces the type slot of e.
func setTypeOf(e codedom.Element, t codedom.TypeBase) {
	switch v := e.(type) {
	case *codedom.Property:
		v.Type = t
	case *codedom.Parameter:
		v.Type = t
	case *codedom.Method:
		v.ReturnType = t
	case *codedom.Indexer:
		v.ReturnType = t
	}
}

// externalType returns a non-null reference to an external symbol.
func externalType(name string) *codedom.TypeRef {
	return &codedom.TypeRef{Name: name, External: true}
}

// voidType is the return type of methods producing nothing.
func voidType() *codedom.TypeRef {
	return externalType("void")
}

// addImport attaches an external import to the file that owns e.
func addImport(e codedom.Element, imp langdata.Import) {
	if imp.IsZero() || imp.Module == "" {
		return
	}
	top := codedom.TopLevelDefinition(e)
	if top == nil {
		return
	}
	top.Declaration().AddUsings(codedom.NewExternalUsing(imp.Module, imp.Symbol))
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
