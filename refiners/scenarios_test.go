package refiners

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/errors"
	"github.com/teranos/refinery/langdata"
)

func refine(t *testing.T, lang config.Language, root *codedom.Namespace) *Report {
	t.Helper()
	report, err := New(testCatalog).Refine(context.Background(), root, testConfig(lang))
	require.NoError(t, err)
	return report
}

func TestErrorModelWithoutBaseGetsBaseError(t *testing.T) {
	for _, lang := range config.AllLanguages() {
		t.Run(string(lang), func(t *testing.T) {
			root, _ := clientTree()
			models := root.AddNamespace(testNamespace + ".models")
			some := modelClass("SomeModel", stringProp("message"))
			some.IsErrorDefinition = true
			models.AddClass(some)

			refine(t, lang, root)

			base := testTables(t, lang).Core.ErrorBase
			if testTables(t, lang).Core.ErrorBaseIsInterface {
				assert.True(t, some.Declaration().Implements(base.Symbol))
			} else {
				require.NotNil(t, some.Declaration().Inherits)
				assert.Equal(t, base.Symbol, some.Declaration().Inherits.Name)
				assert.True(t, some.Declaration().Inherits.External)
			}
			assert.True(t, hasUsing(some, base.Module, base.Symbol), "missing import of %s", base.Symbol)
		})
	}
}

func errorModelWithModelBase() (*codedom.Namespace, *codedom.Class, *codedom.Class) {
	root, _ := clientTree()
	models := root.AddNamespace(testNamespace + ".models")
	other := modelClass("SomeOtherModel", stringProp("code"))
	other.Declaration().AddUsings(codedom.NewExternalUsing("Vendor.Helpers", "Helper"))
	some := modelClass("SomeModel", stringProp("message"))
	some.IsErrorDefinition = true
	some.Declaration().Inherits = codedom.RefTo(other)
	models.AddClass(other, some)
	return root, some, other
}

func TestErrorModelWithModelBase(t *testing.T) {
	tests := []struct {
		lang   config.Language
		inline bool
	}{
		{config.CSharp, false},
		{config.CLI, false},
		{config.Java, false},
		{config.Go, false},
		{config.Python, true},
		{config.PHP, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			root, some, _ := errorModelWithModelBase()
			_, err := New(testCatalog).Refine(context.Background(), root, testConfig(tt.lang))

			if !tt.inline {
				require.Error(t, err)
				assert.True(t, errors.IsInvariantViolation(err))
				assert.Contains(t, err.Error(), "pass add-error-base")
				assert.Contains(t, err.Error(), "SomeOtherModel")
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, some.FindProperty("code"), "base property inlined")
			assert.NotNil(t, some.FindProperty("message"))
			assert.True(t, hasUsing(some, "Vendor.Helpers", "Helper"), "base imports inlined")
			require.NotNil(t, some.Declaration().Inherits)
			assert.Equal(t, testTables(t, tt.lang).Core.ErrorBase.Symbol, some.Declaration().Inherits.Name)
		})
	}
}

func TestErrorModelWithModelBaseImplementsInterfaceBase(t *testing.T) {
	root, some, other := errorModelWithModelBase()
	refine(t, config.TypeScript, root)

	assert.True(t, some.Declaration().Implements("ApiError"))
	base, ok := some.BaseClass()
	require.True(t, ok)
	assert.Same(t, other, base)
	assert.Nil(t, some.FindProperty("code"))
}

func TestErrorModelDerivingFromErrorModelIsLeftAlone(t *testing.T) {
	root, _ := clientTree()
	models := root.AddNamespace(testNamespace + ".models")
	base := modelClass("ODataError", stringProp("code"))
	base.IsErrorDefinition = true
	derived := modelClass("MainError", stringProp("target"))
	derived.IsErrorDefinition = true
	derived.Declaration().Inherits = codedom.RefTo(base)
	models.AddClass(base, derived)

	refine(t, config.Java, root)

	assert.Equal(t, "ApiException", base.Declaration().Inherits.Name)
	cls, ok := derived.BaseClass()
	require.True(t, ok)
	assert.Same(t, base, cls)
}

func TestReservedModelTypeAndPropertyNamedLikeClass(t *testing.T) {
	t.Run("custom reserved type", func(t *testing.T) {
		root, _ := clientTree()
		model := modelClass("Model", stringProp("model"))
		root.AddClass(model)

		run := newTestRun(t, config.CSharp, root)
		tables := *run.Tables
		tables.ReservedTypes = langdata.NewNameSet("Model")
		run.Tables = &tables
		runPasses(t, run, csharpShapePasses()...)

		assert.False(t, strings.EqualFold("model", model.Name()))
		assert.Equal(t, "ModelObject", model.Name())
		require.Len(t, model.Properties(), 1)
		p := model.Properties()[0]
		assert.Equal(t, "ModelProp", p.Name())
		assert.Equal(t, "model", p.SerializationName)
	})

	t.Run("csharp task", func(t *testing.T) {
		root, _ := clientTree()
		models := root.AddNamespace(testNamespace + ".models")
		task := modelClass("Task", stringProp("task"))
		holder := modelClass("Project")
		holder.AddProperty(codedom.NewProperty("current", codedom.PropertyCustom, codedom.RefTo(task)))
		models.AddClass(task, holder)

		refine(t, config.CSharp, root)

		assert.Equal(t, "TaskObject", task.Name())
		prop := task.FindProperty("TaskProp")
		require.NotNil(t, prop)
		assert.Equal(t, "task", prop.WireName())

		current := holder.FindProperty("Current")
		require.NotNil(t, current)
		ref := current.Type.(*codedom.TypeRef)
		assert.Equal(t, "TaskObject", ref.Name, "references follow the renamed declaration")
	})
}

func queryParameterTree() (*codedom.Namespace, *codedom.Class, *codedom.Class) {
	root, _ := clientTree()
	users := root.AddNamespace(testNamespace + ".users")

	qp := codedom.NewClass("UsersRequestBuilderGetQueryParameters", codedom.ClassQueryParameters)
	sel := codedom.NewProperty("select", codedom.PropertyQueryParameter, &codedom.TypeRef{
		Name:       "string",
		TypeTraits: codedom.TypeTraits{Nullable: true, Collection: codedom.CollectionArray},
	})
	sel.SerializationName = "%24select"
	sel.Description = "Select properties to be returned"
	qp.AddProperty(sel)

	rc := codedom.NewClass("UsersRequestBuilderGetRequestConfiguration", codedom.ClassRequestConfiguration)
	rc.AddProperty(codedom.NewProperty("queryParameters", codedom.PropertyQueryParameters, codedom.RefTo(qp)))

	users.AddClass(qp, rc)
	return root, qp, rc
}

func TestQueryParameterKeepsWireName(t *testing.T) {
	tests := []struct {
		lang config.Language
		name string
	}{
		{config.PHP, "select"},
		{config.CSharp, "Select"},
		{config.Python, "select"},
		{config.TypeScript, "select"},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			root, qp, _ := queryParameterTree()
			refine(t, tt.lang, root)

			props := qp.PropertiesOfKind(codedom.PropertyQueryParameter)
			require.Len(t, props, 1)
			assert.Equal(t, tt.name, props[0].Name())
			assert.Equal(t, "%24select", props[0].SerializationName)
		})
	}
}

func TestPHPQueryParameterFactory(t *testing.T) {
	root, qp, rc := queryParameterTree()
	refine(t, config.PHP, root)

	ctors := qp.MethodsOfKind(codedom.MethodConstructor)
	require.Len(t, ctors, 1)
	param := ctors[0].FindParameter("select")
	require.NotNil(t, param)
	assert.True(t, param.Optional)
	assert.Equal(t, "%24select", param.SerializationName)
	assert.Equal(t, "null", param.DefaultValue)

	factory := rc.FindMethod(QueryParametersFactoryName)
	require.NotNil(t, factory)
	assert.True(t, factory.IsStatic)
	assert.NotNil(t, factory.FindParameter("select"))
	ret, ok := factory.ReturnType.(*codedom.TypeRef)
	require.True(t, ok)
	assert.Equal(t, qp.Name(), ret.Name)
}

func drivesTree() (*codedom.Namespace, *codedom.Class, *codedom.Class) {
	root, client := clientTree()
	drivesNs := root.AddNamespace(testNamespace + ".drives")
	itemNs := root.AddNamespace(testNamespace + ".drives.item")

	item := codedom.NewClass("DriveItemRequestBuilder", codedom.ClassRequestBuilder)
	itemGet := codedom.NewMethod("Get", codedom.MethodRequestExecutor)
	itemGet.HTTPMethod = codedom.HTTPGet
	itemGet.ReturnType = codedom.NewTypeRef("string")
	item.AddMethod(itemGet)
	itemNs.AddClass(item)

	drives := codedom.NewClass("DrivesRequestBuilder", codedom.ClassRequestBuilder)
	get := codedom.NewMethod("Get", codedom.MethodRequestExecutor)
	get.HTTPMethod = codedom.HTTPGet
	get.IsAsync = true
	get.ReturnType = codedom.NewTypeRef("string")
	get.AddParameter(codedom.NewParameter("cancellationToken", codedom.ParameterCancellation, codedom.NewTypeRef("CancellationToken")))
	drives.AddMethod(get)
	drives.AddIndexer(codedom.NewIndexer("item",
		codedom.NewParameter("drive%2Did", codedom.ParameterPath, codedom.NewTypeRef("string")),
		codedom.RefTo(item)))
	drivesNs.AddClass(drives)

	client.AddProperty(codedom.NewProperty("drives", codedom.PropertyRequestBuilder, codedom.RefTo(drives)))
	return root, client, drives
}

func TestCLICommandSynthesis(t *testing.T) {
	root, client, drives := drivesTree()
	report := refine(t, config.CLI, root)

	assert.ElementsMatch(t, []string{"BuildListCommand", "BuildCommand"},
		findMethodOfKind(drives, codedom.MethodCommandBuilder))
	assert.Empty(t, drives.MethodsOfKind(codedom.MethodRequestExecutor))
	assert.Empty(t, drives.Indexers())

	list := drives.FindMethod("BuildListCommand")
	require.NotNil(t, list)
	assert.Equal(t, "list", list.SimpleName)
	assert.False(t, list.IsAsync)
	require.NotNil(t, list.OriginalMethod)
	assert.Equal(t, codedom.HTTPGet, list.OriginalMethod.HTTPMethod)

	byID := drives.FindMethod(IndexerCommandName)
	require.NotNil(t, byID)
	assert.NotNil(t, byID.OriginalIndexer)

	assert.NotNil(t, client.FindMethod(RootCommandName))
	nav := client.FindMethod("BuildDrivesNavCommand")
	require.NotNil(t, nav)
	assert.Equal(t, "drives", nav.SimpleName)
	assert.Empty(t, client.PropertiesOfKind(codedom.PropertyRequestBuilder, codedom.PropertyRequestAdapter))
	assert.Empty(t, report.Warnings)
}

func TestIndexersReplacedForTargetsWithoutIndexerSyntax(t *testing.T) {
	for _, lang := range []config.Language{config.Java, config.Go, config.Python, config.PHP, config.TypeScript} {
		t.Run(string(lang), func(t *testing.T) {
			root, _, drives := drivesTree()
			refine(t, lang, root)

			var indexers, compat int
			codedom.Walk(root, func(e codedom.Element) bool {
				switch v := e.(type) {
				case *codedom.Indexer:
					indexers++
				case *codedom.Method:
					if v.IsOfKind(codedom.MethodIndexerBackwardCompatibility) {
						compat++
						assert.NotNil(t, v.OriginalIndexer)
					}
				}
				return true
			})
			assert.Zero(t, indexers)
			assert.Equal(t, 1, compat)
			assert.Len(t, drives.MethodsOfKind(codedom.MethodIndexerBackwardCompatibility), 1)
		})
	}
}

func TestNoReservedIdentifiersRemain(t *testing.T) {
	// PHP properties are reached through $this and may use keywords.
	for _, lang := range []config.Language{config.Java, config.Go, config.Python, config.TypeScript} {
		t.Run(string(lang), func(t *testing.T) {
			root, _ := clientTree()
			models := root.AddNamespace(testNamespace + ".models")
			reservedProps := []string{"class", "type", "import", "return", "default"}
			model := modelClass("Entity")
			for _, name := range reservedProps {
				model.AddProperty(stringProp(name))
			}
			models.AddClass(model)

			refine(t, lang, root)

			reserved := testTables(t, lang).Reserved
			codedom.Walk(root, func(e codedom.Element) bool {
				switch e.(type) {
				case *codedom.Property, *codedom.Parameter, *codedom.EnumOption:
					assert.False(t, reserved.Contains(e.Name()), "%s is reserved", codedom.Path(e))
				}
				return true
			})
			for _, p := range model.Properties() {
				if reserved.Contains(p.WireName()) {
					assert.NotEqual(t, p.WireName(), p.Name())
				}
			}
			for _, name := range reservedProps {
				found := false
				for _, p := range model.Properties() {
					if p.WireName() == name {
						found = true
					}
				}
				assert.True(t, found, "wire name %s preserved", name)
			}
		})
	}
}
