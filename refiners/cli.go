package refiners

import (
	"strings"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/naming"
)

// Command builder naming.
const (
	commandType        = "Command"
	indexerCommandType = "Tuple<List<Command>, List<Command>>"
	RootCommandName    = "BuildRootCommand"
	IndexerCommandName = "BuildCommand"
	commandPrefix      = "Build"
	commandSuffix      = "Command"
	navCommandSuffix   = "NavCommand"
	rbCommandSuffix    = "RbCommand"
	subCommandPrefix   = "sub-"
	byIDSuffix         = "ById"
)

// commandVerb names the command built from an executor. Classes with an
// indexer address a collection, so GET lists and POST creates.
func commandVerb(m *codedom.Method, hasIndexer bool) string {
	switch {
	case hasIndexer && m.HTTPMethod == codedom.HTTPGet:
		return "List"
	case hasIndexer && m.HTTPMethod == codedom.HTTPPost:
		return "Create"
	case m.HTTPMethod == codedom.HTTPNone:
		return naming.ToFirstCharacterUpper(naming.CleanupSymbolName(m.Name()))
	default:
		return m.HTTPMethod.String()
	}
}

func commandMethod(name string, returns string) *codedom.Method {
	m := codedom.NewMethod(name, codedom.MethodCommandBuilder)
	m.ReturnType = externalType(returns)
	return m
}

// CreateCommandBuilders restructures request builders into command trees.
// Executors become BuildXCommand methods, navigation properties
// BuildXNavCommand methods, parameterized navigation BuildXRbCommand methods
// and the indexer a single BuildCommand. The client constructor additionally
// yields BuildRootCommand. The request adapter is resolved by the command
// runtime, so adapter properties and constructor parameters are dropped.
func CreateCommandBuilders() PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		if !c.IsOfKind(codedom.ClassRequestBuilder) {
			return nil
		}
		for _, p := range c.PropertiesOfKind(codedom.PropertyRequestAdapter) {
			c.RemoveProperty(p)
		}
		for _, ctor := range c.MethodsOfKind(codedom.MethodConstructor) {
			for _, p := range ctor.ParametersOfKind(codedom.ParameterRequestAdapter) {
				ctor.RemoveParameter(p)
			}
		}

		hasIndexer := c.Indexer() != nil
		for _, exec := range c.MethodsOfKind(codedom.MethodRequestExecutor) {
			verb := commandVerb(exec, hasIndexer)
			cmd := commandMethod(commandPrefix+verb+commandSuffix, commandType)
			cmd.Description = exec.Description
			cmd.HTTPMethod = exec.HTTPMethod
			cmd.OriginalMethod = exec
			cmd.SimpleName = naming.CleanupSymbolName(verb)
			c.RemoveMethod(exec)
			c.AddMethod(cmd)
		}

		for _, nav := range c.PropertiesOfKind(codedom.PropertyRequestBuilder) {
			name := naming.ToFirstCharacterUpper(naming.CleanupSymbolName(nav.Name()))
			cmd := commandMethod(commandPrefix+name+navCommandSuffix, commandType)
			cmd.Description = nav.Description
			cmd.AccessedProperty = nav
			cmd.SimpleName = naming.CleanupSymbolName(nav.Name())
			c.RemoveProperty(nav)
			c.AddMethod(cmd)
		}

		for _, rb := range c.MethodsOfKind(codedom.MethodRequestBuilderWithParameters) {
			name := naming.ToFirstCharacterUpper(naming.CleanupSymbolName(rb.Name()))
			cmd := commandMethod(commandPrefix+name+rbCommandSuffix, commandType)
			cmd.Description = rb.Description
			cmd.OriginalMethod = rb
			cmd.SimpleName = naming.CleanupSymbolName(rb.Name())
			for _, ref := range codedom.TypeRefs(rb.ReturnType) {
				target, ok := ref.Class()
				if !ok {
					continue
				}
				for _, ctor := range target.MethodsOfKind(codedom.MethodConstructor) {
					for _, p := range ctor.ParametersOfKind(codedom.ParameterPath) {
						ctor.RemoveParameter(p)
					}
				}
			}
			c.RemoveMethod(rb)
			c.AddMethod(cmd)
		}

		if ix := c.Indexer(); ix != nil {
			cmd := commandMethod(IndexerCommandName, indexerCommandType)
			cmd.Description = ix.Description
			cmd.OriginalIndexer = ix
			cmd.SimpleName = naming.CleanupSymbolName(ix.Name())
			for _, ixr := range c.Indexers() {
				c.RemoveIndexer(ixr)
			}
			c.AddMethod(cmd)
		}

		for _, ctor := range c.MethodsOfKind(codedom.MethodClientConstructor) {
			if c.FindMethod(RootCommandName) != nil {
				break
			}
			root := commandMethod(RootCommandName, commandType)
			root.Description = ctor.Description
			root.OriginalMethod = ctor
			c.AddMethod(root)
		}
		return nil
	})
}

// RenameDuplicateIndexerNavProperties suffixes navigation properties named
// like the command their class's indexer will yield.
func RenameDuplicateIndexerNavProperties() PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		ix := c.Indexer()
		if ix == nil || !c.IsOfKind(codedom.ClassRequestBuilder) {
			return nil
		}
		indexerName := naming.CleanupSymbolName(ix.Name())
		for _, nav := range c.PropertiesOfKind(codedom.PropertyRequestBuilder) {
			if equalFold(naming.CleanupSymbolName(nav.Name()), indexerName) {
				nav.SetName(c.UniquePropertyName(nav.Name() + byIDSuffix))
			}
		}
		return nil
	})
}

// SetSimpleNames normalizes command simple names to kebab case.
func SetSimpleNames() PassFunc {
	return eachElement(func(run *Run, e codedom.Element) error {
		m, ok := e.(*codedom.Method)
		if !ok || !m.IsOfKind(codedom.MethodCommandBuilder) || m.SimpleName == "" {
			return nil
		}
		m.SimpleName = strings.ReplaceAll(naming.ToSnakeCase(m.SimpleName), "_", "-")
		return nil
	})
}

// RenameMatchingSubsequentNavCommands prefixes navigation commands whose
// simple name matches an executor command of the same class.
func RenameMatchingSubsequentNavCommands() PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		executors := make(map[string]bool)
		for _, m := range c.MethodsOfKind(codedom.MethodCommandBuilder) {
			if m.OriginalMethod != nil && m.OriginalMethod.IsOfKind(codedom.MethodRequestExecutor) {
				executors[strings.ToLower(m.SimpleName)] = true
			}
		}
		if len(executors) == 0 {
			return nil
		}
		for _, m := range c.MethodsOfKind(codedom.MethodCommandBuilder) {
			if m.AccessedProperty != nil && executors[strings.ToLower(m.SimpleName)] {
				m.SimpleName = subCommandPrefix + m.SimpleName
			}
		}
		return nil
	})
}

// DetectCommandConflicts warns about command builders of one class that
// share a method name or a simple name. The root command and the indexer
// command are not named on the command line and are skipped.
func DetectCommandConflicts() PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		names := make(map[string]bool)
		simple := make(map[string]bool)
		for _, m := range c.MethodsOfKind(codedom.MethodCommandBuilder) {
			key := strings.ToLower(m.Name())
			if names[key] {
				run.Warn(m, "command builder %s is defined more than once in %s", m.Name(), c.Name())
			}
			names[key] = true

			if m.Name() == RootCommandName || m.OriginalIndexer != nil || m.SimpleName == "" {
				continue
			}
			key = strings.ToLower(m.SimpleName)
			if simple[key] {
				run.Warn(m, "command %q collides with a sibling command in %s", m.SimpleName, c.Name())
			}
			simple[key] = true
		}
		return nil
	})
}

// cliEvaluators import the command line runtime used by command builders.
func cliEvaluators(run *Run) []UsingEvaluator {
	commands := methodOfKind(codedom.MethodCommandBuilder)
	return []UsingEvaluator{
		{Applies: commands, Module: "System.CommandLine", Symbols: []string{"Command", "Option", "Argument"}},
		{Applies: commands, Module: "Microsoft.Kiota.Cli.Commons.IO", Symbols: []string{"IOutputFormatter"}},
		{Applies: commands, Module: "Microsoft.Kiota.Cli.Commons.Extensions", Symbols: []string{"CommandExtensions"}},
		{Applies: commands, Module: "System.Collections.Generic", Symbols: []string{"List"}},
		{Applies: commands, Module: "System.Threading.Tasks", Symbols: []string{"Task"}},
	}
}

func cliProfile() *Profile {
	return NewProfile(config.CLI).
		ThenAll(csharpShapePasses()...).
		Then("remove-backward-compatible-indexers", RemoveBackwardCompatibleIndexers()).
		ThenAll(modelFragment(DiscriminatorOptions{})...).
		Then("rename-duplicate-indexer-nav-properties", RenameDuplicateIndexerNavProperties()).
		Then("create-command-builders", CreateCommandBuilders()).
		Then("set-simple-names", SetSimpleNames()).
		Then("rename-matching-subsequent-nav-commands", RenameMatchingSubsequentNavCommands()).
		Then("detect-command-conflicts", DetectCommandConflicts()).
		ThenAll(importFragment(ImportOptions{}, cliEvaluators)...).
		Build()
}
