package refiners

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/errors"
	"github.com/teranos/refinery/langdata"
)

var testCatalog = langdata.NewCatalog()

const (
	testNamespace = "ApiSdk"
	testClient    = "ApiClient"
)

func testConfig(lang config.Language) *config.Config {
	cfg := config.Default()
	cfg.Language = string(lang)
	cfg.ClientClassName = testClient
	cfg.ClientNamespaceName = testNamespace
	return cfg
}

func testTables(t *testing.T, lang config.Language) *langdata.Tables {
	t.Helper()
	tables, err := testCatalog.For(lang)
	require.NoError(t, err)
	return tables
}

// newTestRun returns a run over root for driving passes directly.
func newTestRun(t *testing.T, lang config.Language, root *codedom.Namespace) *Run {
	t.Helper()
	return &Run{
		ID:       "test-run",
		Root:     root,
		Config:   testConfig(lang),
		Tables:   testTables(t, lang),
		Warnings: &errors.Warnings{},
		Logger:   zap.NewNop().Sugar(),
	}
}

// runPasses applies passes in order, failing the test on the first error.
func runPasses(t *testing.T, run *Run, passes ...Pass) {
	t.Helper()
	for _, p := range passes {
		run.pass = p.Name
		require.NoError(t, p.Run(run), "pass %s", p.Name)
	}
}

func pass(name string, fn PassFunc) Pass {
	return Pass{Name: name, Run: fn}
}

// clientTree returns a root namespace holding the client request builder.
func clientTree() (*codedom.Namespace, *codedom.Class) {
	root := codedom.NewRootNamespace(testNamespace)
	client := codedom.NewClass(testClient, codedom.ClassRequestBuilder)
	ctor := codedom.NewMethod("ApiClient", codedom.MethodClientConstructor)
	ctor.Description = "Instantiates a new ApiClient and sets the default values."
	ctor.AddParameter(codedom.NewParameter("requestAdapter", codedom.ParameterRequestAdapter, &codedom.TypeRef{Name: "RequestAdapter"}))
	client.AddMethod(ctor)
	client.AddProperty(codedom.NewProperty("requestAdapter", codedom.PropertyRequestAdapter, &codedom.TypeRef{Name: "RequestAdapter"}))
	root.AddClass(client)
	return root, client
}

func modelClass(name string, props ...*codedom.Property) *codedom.Class {
	c := codedom.NewClass(name, codedom.ClassModel)
	c.AddProperty(props...)
	return c
}

func stringProp(name string) *codedom.Property {
	return codedom.NewProperty(name, codedom.PropertyCustom, codedom.NewTypeRef("string"))
}

func findMethodOfKind(c *codedom.Class, kind codedom.MethodKind) []string {
	var names []string
	for _, m := range c.MethodsOfKind(kind) {
		names = append(names, m.Name())
	}
	return names
}

func hasUsing(def codedom.TypeDefinition, source, symbol string) bool {
	for _, u := range def.Declaration().Usings() {
		if u.Source() == source && u.Symbol() == symbol {
			return true
		}
	}
	return false
}
