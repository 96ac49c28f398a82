package refiners

import (
	"github.com/dominikbraun/graph"

	"github.com/teranos/refinery/codedom"
)

// DiscriminatorOptions configures RemoveUnreachableDiscriminatorMappings.
type DiscriminatorOptions struct {
	// ForbidImportCycles prunes subtypes whose import from the base model's
	// namespace would close a namespace import cycle.
	ForbidImportCycles bool
}

// RemoveUnreachableDiscriminatorMappings prunes discriminator mappings whose
// subtype cannot be imported by the base model: unresolved or detached
// subtypes, and for targets rejecting import cycles, subtypes in a namespace
// that already depends on the base model's namespace.
func RemoveUnreachableDiscriminatorMappings(opts DiscriminatorOptions) PassFunc {
	return func(run *Run) error {
		var deps graph.Graph[string, string]
		if opts.ForbidImportCycles {
			deps = namespaceDependencies(run.Root)
		}
		return crawl(run.Root, func(e codedom.Element) error {
			c, ok := e.(*codedom.Class)
			if !ok || c.Discriminator == nil {
				return nil
			}
			baseNs := codedom.NamespaceOf(c)
			for _, m := range c.Discriminator.Mappings() {
				reason := unreachableReason(run, deps, baseNs, m.Type)
				if reason == "" {
					continue
				}
				c.Discriminator.Remove(m.Value)
				run.Logger.Debugw("Pruned discriminator mapping",
					"class", codedom.Path(c),
					"value", m.Value,
					"reason", reason)
			}
			return nil
		})
	}
}

func unreachableReason(run *Run, deps graph.Graph[string, string], baseNs *codedom.Namespace, ref *codedom.TypeRef) string {
	if ref == nil || ref.Definition == nil {
		return "unresolved"
	}
	subNs := codedom.NamespaceOf(ref.Definition)
	if subNs == nil || subNs.Root() != run.Root.Root() {
		return "detached"
	}
	if deps == nil || baseNs == nil || subNs == baseNs {
		return ""
	}
	cycle, err := graph.CreatesCycle(deps, baseNs.Name(), subNs.Name())
	if err == nil && cycle {
		return "import cycle"
	}
	return ""
}

// namespaceDependencies builds the directed graph of namespace imports: an
// edge A -> B when a declaration in A references one in B through its
// members or header. Discriminator mappings are not edges.
func namespaceDependencies(root *codedom.Namespace) graph.Graph[string, string] {
	g := graph.New(graph.StringHash, graph.Directed())
	codedom.Walk(root, func(e codedom.Element) bool {
		switch v := e.(type) {
		case *codedom.Namespace:
			_ = g.AddVertex(v.Name())
		case codedom.TypeDefinition:
			from := codedom.NamespaceOf(v)
			if from == nil {
				return true
			}
			for _, ref := range referencedTypes(v) {
				if !ref.IsInternal() {
					continue
				}
				to := codedom.NamespaceOf(ref.Definition)
				if to == nil || to == from {
					continue
				}
				_ = g.AddVertex(to.Name())
				_ = g.AddEdge(from.Name(), to.Name())
			}
		}
		return true
	})
	return g
}

// FactoryMethodName is the static discriminator factory added to models.
const FactoryMethodName = "CreateFromDiscriminatorValue"

// AddDiscriminatorFactory adds a static factory resolving the discriminator
// to every model class and imports the mapped subtypes. Runs after pruning.
func AddDiscriminatorFactory(name string) PassFunc {
	if name == "" {
		name = FactoryMethodName
	}
	return eachClass(func(run *Run, c *codedom.Class) error {
		if !c.IsOfKind(codedom.ClassModel) || len(c.MethodsOfKind(codedom.MethodFactory)) > 0 {
			return nil
		}
		factory := codedom.NewMethod(name, codedom.MethodFactory)
		factory.IsStatic = true
		factory.Description = "Creates a new instance of the appropriate class based on discriminator value"
		ret := codedom.RefTo(c)
		ret.Nullable = false
		factory.ReturnType = ret
		parseNode := codedom.NewParameter("parseNode", codedom.ParameterParseNode, externalType(run.Tables.Core.ParseNode.Symbol))
		parseNode.Description = "The parse node to use to read the discriminator value and create the object"
		factory.AddParameter(parseNode)
		c.AddMethod(factory)
		addImport(c, run.Tables.Core.ParseNode)

		if c.Discriminator == nil {
			return nil
		}
		top := codedom.TopLevelDefinition(c)
		for _, m := range c.Discriminator.Mappings() {
			if !m.Type.IsInternal() {
				continue
			}
			target := codedom.TopLevelDefinition(m.Type.Definition)
			if target == nil || target == top || codedom.NamespaceOf(target) == nil {
				continue
			}
			top.Declaration().AddUsings(codedom.NewInternalUsing(target))
		}
		return nil
	})
}
