package refiners

import (
	"strings"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/langdata"
	"github.com/teranos/refinery/naming"
)

// UsingEvaluator adds imports of Symbols from Module to the file of every
// element Applies matches.
type UsingEvaluator struct {
	Applies func(e codedom.Element) bool
	Module  string
	Symbols []string
}

// evaluatorFor imports one core symbol for elements matching applies.
func evaluatorFor(applies func(codedom.Element) bool, imports ...langdata.Import) []UsingEvaluator {
	var out []UsingEvaluator
	for _, imp := range imports {
		if imp.IsZero() || imp.Module == "" {
			continue
		}
		out = append(out, UsingEvaluator{Applies: applies, Module: imp.Module, Symbols: []string{imp.Symbol}})
	}
	return out
}

// AddDefaultImports evaluates every evaluator against every element and
// attaches the matching imports to the element's top-level declaration.
// Evaluators are built once per run from its tables and configuration.
func AddDefaultImports(evaluators func(run *Run) []UsingEvaluator) PassFunc {
	return func(run *Run) error {
		evs := evaluators(run)
		return crawl(run.Root, func(e codedom.Element) error {
			for _, ev := range evs {
				if ev.Module == "" || ev.Applies == nil || !ev.Applies(e) {
					continue
				}
				top := codedom.TopLevelDefinition(e)
				if top == nil {
					continue
				}
				for _, symbol := range ev.Symbols {
					top.Declaration().AddUsings(codedom.NewExternalUsing(ev.Module, symbol))
				}
			}
			return nil
		})
	}
}

// coreEvaluators imports the runtime symbols every target needs for request
// builders, models and their members.
func coreEvaluators(run *Run) []UsingEvaluator {
	core := run.Tables.Core
	var evs []UsingEvaluator
	evs = append(evs, evaluatorFor(anyOf(
		propertyOfKind(codedom.PropertyRequestAdapter),
		parameterOfKind(codedom.ParameterRequestAdapter)), core.RequestAdapter)...)
	evs = append(evs, evaluatorFor(methodOfKind(codedom.MethodRequestGenerator),
		core.RequestInformation, core.RequestOption)...)
	evs = append(evs, evaluatorFor(anyOf(
		propertyOfKind(codedom.PropertyHeaders),
		parameterOfKind(codedom.ParameterHeaders)), core.Headers)...)
	evs = append(evs, evaluatorFor(classOfKind(codedom.ClassRequestBuilder), core.BaseRequestBuilder)...)
	evs = append(evs, evaluatorFor(classOfKind(codedom.ClassModel), core.Parsable)...)
	evs = append(evs, evaluatorFor(methodOfKind(codedom.MethodSerializer), core.SerializationWriter)...)
	evs = append(evs, evaluatorFor(methodOfKind(codedom.MethodDeserializer, codedom.MethodFactory), core.ParseNode)...)
	evs = append(evs, evaluatorFor(propertyOfKind(codedom.PropertyAdditionalData), core.AdditionalDataHolder)...)
	evs = append(evs, evaluatorFor(propertyOfKind(codedom.PropertyBackingStore),
		core.BackingStore, core.BackedModel, core.BackingStoreFactory)...)
	return evs
}

// ImportOptions configures AddPropertiesAndMethodTypesImports.
type ImportOptions struct {
	// IncludeCurrentNamespace imports declarations of the same namespace.
	IncludeCurrentNamespace bool
	// IncludeParentNamespaces imports declarations of enclosing namespaces.
	IncludeParentNamespaces bool
}

// AddPropertiesAndMethodTypesImports imports every generated type referenced
// by a declaration's members, base type and capabilities. Imports attach to
// the top-level declaration; references within the same file are skipped.
func AddPropertiesAndMethodTypesImports(opts ImportOptions) PassFunc {
	return eachElement(func(run *Run, e codedom.Element) error {
		def, ok := e.(codedom.TypeDefinition)
		if !ok {
			return nil
		}
		top := codedom.TopLevelDefinition(def)
		ns := codedom.NamespaceOf(def)
		if top == nil || ns == nil {
			return nil
		}
		for _, ref := range referencedTypes(def) {
			if !ref.IsInternal() {
				continue
			}
			target := codedom.TopLevelDefinition(ref.Definition)
			if target == nil || target == top {
				continue
			}
			targetNs := codedom.NamespaceOf(target)
			if targetNs == nil {
				continue
			}
			if !opts.IncludeCurrentNamespace && targetNs == ns {
				continue
			}
			if !opts.IncludeParentNamespaces && targetNs.IsParentOf(ns) {
				continue
			}
			top.Declaration().AddUsings(codedom.NewInternalUsing(target))
		}
		return nil
	})
}

// referencedTypes lists the type references held by a declaration's own
// members and header. Nested classes are not included.
func referencedTypes(def codedom.TypeDefinition) []*codedom.TypeRef {
	refs := def.Declaration().TypeRefs()
	var methods []*codedom.Method
	switch v := def.(type) {
	case *codedom.Class:
		for _, p := range v.Properties() {
			refs = append(refs, codedom.TypeRefs(p.Type)...)
		}
		for _, ix := range v.Indexers() {
			refs = append(refs, codedom.TypeRefs(ix.ReturnType)...)
			if ix.IndexParameter != nil {
				refs = append(refs, codedom.TypeRefs(ix.IndexParameter.Type)...)
			}
		}
		methods = v.Methods()
	case *codedom.Interface:
		methods = v.Methods()
	}
	for _, m := range methods {
		refs = append(refs, codedom.TypeRefs(m.ReturnType)...)
		for _, p := range m.Parameters() {
			refs = append(refs, codedom.TypeRefs(p.Type)...)
		}
	}
	return refs
}

// AliasUsingsWithSameSymbol aliases imports that bind the same short name
// in one file: two declarations from different namespaces, or a declaration
// named like the importing one. alias derives the alias from the source
// namespace and symbol; nil uses naming.NamespaceSymbol.
func AliasUsingsWithSameSymbol(alias func(source, symbol string) string) PassFunc {
	if alias == nil {
		alias = naming.NamespaceSymbol
	}
	return eachElement(func(run *Run, e codedom.Element) error {
		def, ok := e.(codedom.TypeDefinition)
		if !ok || codedom.TopLevelDefinition(def) != def {
			return nil
		}
		groups := make(map[string][]*codedom.Using)
		var order []string
		for _, u := range def.Declaration().Usings() {
			key := strings.ToLower(u.Symbol())
			if _, seen := groups[key]; !seen {
				order = append(order, key)
			}
			groups[key] = append(groups[key], u)
		}
		for _, key := range order {
			group := groups[key]
			clashesWithSelf := equalFold(key, def.Name())
			if !clashesWithSelf && !hasDistinctSources(group) {
				continue
			}
			internal := 0
			for _, u := range group {
				if u.IsExternal() || u.Alias != "" {
					continue
				}
				u.Alias = alias(u.Source(), u.Symbol())
				internal++
			}
			if internal > 0 || clashesWithSelf {
				continue
			}
			for _, u := range group[1:] {
				if u.Alias == "" {
					u.Alias = alias(u.Source(), u.Symbol())
				}
			}
		}
		return nil
	})
}

func hasDistinctSources(usings []*codedom.Using) bool {
	for _, u := range usings[1:] {
		if !equalFold(u.Source(), usings[0].Source()) {
			return true
		}
	}
	return false
}

// ReplaceRelativeImportsByImportPath sets the import path of every import:
// internal imports get a path relative to the importing namespace, external
// imports their module name.
func ReplaceRelativeImportsByImportPath() PassFunc {
	return eachElement(func(run *Run, e codedom.Element) error {
		def, ok := e.(codedom.TypeDefinition)
		if !ok || codedom.TopLevelDefinition(def) != def {
			return nil
		}
		ns := codedom.NamespaceOf(def)
		if ns == nil {
			return nil
		}
		for _, u := range def.Declaration().Usings() {
			if u.IsExternal() {
				u.ImportPath = u.Source()
				continue
			}
			u.ImportPath = relativeImportPath(ns.Name(), u.Source())
		}
		return nil
	})
}

// relativeImportPath returns the module path of namespace to as seen from
// namespace from, e.g. ("api.users", "api.models") -> "../models/index".
func relativeImportPath(from, to string) string {
	fromSegs := naming.SplitSegments(from)
	toSegs := naming.SplitSegments(to)
	common := 0
	for common < len(fromSegs) && common < len(toSegs) && equalFold(fromSegs[common], toSegs[common]) {
		common++
	}
	var b strings.Builder
	if ups := len(fromSegs) - common; ups == 0 {
		b.WriteString("./")
	} else {
		b.WriteString(strings.Repeat("../", ups))
	}
	for _, s := range toSegs[common:] {
		b.WriteString(strings.ToLower(s))
		b.WriteString("/")
	}
	b.WriteString("index")
	return b.String()
}
