package codedom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() (*Namespace, *Class) {
	root := NewRootNamespace("graph")
	models := root.AddNamespace("graph.models")
	user := NewClass("User", ClassModel)
	user.AddProperty(NewProperty("id", PropertyCustom, NewTypeRef("string")))
	getter := NewMethod("getId", MethodGetter)
	getter.AddParameter(NewParameter("x", ParameterCustom, NewTypeRef("string")))
	user.AddMethod(getter)
	models.AddClass(user)
	return root, user
}

func TestCrawlVisitsDirectChildrenOnly(t *testing.T) {
	root, _ := sampleTree()

	var visited []string
	Crawl(root, func(e Element) { visited = append(visited, e.Name()) })

	assert.Equal(t, []string{"graph.models"}, visited)
}

func TestCrawlToleratesMutation(t *testing.T) {
	_, user := sampleTree()

	Crawl(user, func(e Element) {
		if p, ok := e.(*Property); ok {
			user.RemoveProperty(p)
			user.AddProperty(NewProperty("_"+p.Name(), PropertyCustom, p.Type))
		}
	})

	require.Len(t, user.Properties(), 1)
	assert.Equal(t, "_id", user.Properties()[0].Name())
}

func TestWalkPreOrder(t *testing.T) {
	root, _ := sampleTree()

	var cats []Category
	Walk(root, func(e Element) bool {
		cats = append(cats, e.Category())
		return true
	})

	assert.Equal(t, []Category{
		CategoryNamespace, CategoryNamespace, CategoryClass,
		CategoryProperty, CategoryMethod, CategoryParameter,
	}, cats)
}

func TestAddNamespaceCreatesIntermediates(t *testing.T) {
	root := NewRootNamespace("api")

	leaf := root.AddNamespace("api.users.item.messages")

	assert.Equal(t, "api.users.item.messages", leaf.Name())
	assert.Equal(t, "messages", leaf.Segment())
	assert.Equal(t, "api.users.item", leaf.Parent().Name())
	assert.Same(t, leaf, root.AddNamespace("api.users.item.messages"))
	assert.Same(t, leaf, root.FindNamespace("API.Users.Item.Messages"))
	assert.True(t, root.IsParentOf(leaf))
	assert.False(t, leaf.IsParentOf(root))
	assert.Same(t, root, leaf.Root())
}

func TestAncestorAndTopLevel(t *testing.T) {
	root, user := sampleTree()
	inner := NewClass("Inner", ClassModel)
	user.AddInnerClass(inner)
	prop := NewProperty("value", PropertyCustom, NewTypeRef("int"))
	inner.AddProperty(prop)

	cls, ok := Ancestor[*Class](prop)
	require.True(t, ok)
	assert.Same(t, inner, cls)
	assert.Equal(t, user, TopLevelDefinition(prop))
	assert.Equal(t, "graph.models", NamespaceOf(prop).Name())
	assert.Equal(t, "graph.models.User.Inner.value", Path(prop))

	_, ok = Ancestor[*Method](prop)
	assert.False(t, ok)
	assert.Nil(t, TopLevelDefinition(root))
}

func TestInternalUsingFollowsMovedDefinition(t *testing.T) {
	root, user := sampleTree()
	client := NewClass("ApiClient", ClassRequestBuilder)
	root.AddClass(client)

	u := NewInternalUsing(user)
	client.Declaration().AddUsings(u, NewInternalUsing(user))
	require.Len(t, client.Declaration().Usings(), 1)
	assert.Equal(t, "graph.models", u.Source())

	other := root.AddNamespace("graph.other")
	other.AddClass(user)

	assert.Equal(t, "graph.other", u.Source())
	assert.Equal(t, "User", u.Symbol())
	assert.Empty(t, root.FindNamespace("graph.models").Classes())
	assert.False(t, u.IsExternal())
}

func TestExternalUsing(t *testing.T) {
	u := NewExternalUsing("github.com/acme/abstractions", "RequestAdapter")
	u.Alias = "abs"

	assert.True(t, u.IsExternal())
	assert.Equal(t, "github.com/acme/abstractions", u.Source())
	assert.Equal(t, "abs", u.LocalName())
}

func TestDeclarationImplements(t *testing.T) {
	c := NewClass("User", ClassModel)
	d := c.Declaration()

	d.AddImplements(NewTypeRef("Parsable"), NewTypeRef("parsable"), NewTypeRef("AdditionalDataHolder"))
	assert.Len(t, d.ImplementedTypes(), 2)
	assert.True(t, d.Implements("PARSABLE"))

	d.RemoveImplements("Parsable")
	assert.False(t, d.Implements("Parsable"))
	assert.Len(t, d.TypeRefs(), 1)
}

func TestDiscriminatorCaseInsensitive(t *testing.T) {
	d := &Discriminator{PropertyName: "@odata.type"}
	d.Add("#microsoft.graph.user", NewTypeRef("User"))
	d.Add("#Microsoft.Graph.User", NewTypeRef("UserV2"))
	d.Add("#microsoft.graph.group", NewTypeRef("Group"))

	require.Equal(t, 2, d.Len())
	got, ok := d.Get("#MICROSOFT.GRAPH.USER")
	require.True(t, ok)
	assert.Equal(t, "UserV2", got.Name)

	clone := d.Clone()
	assert.True(t, d.Remove("#microsoft.graph.group"))
	assert.False(t, d.Remove("#microsoft.graph.group"))
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestUniquePropertyName(t *testing.T) {
	c := NewClass("Wrapper", ClassModel)
	c.AddProperty(NewProperty("string", PropertyCustom, NewTypeRef("string")))
	c.AddMethod(NewMethod("string1", MethodCustom))

	assert.Equal(t, "other", c.UniquePropertyName("other"))
	assert.Equal(t, "String2", c.UniquePropertyName("String"))
}

func TestIndexerPrefersCanonical(t *testing.T) {
	c := NewClass("UsersRequestBuilder", ClassRequestBuilder)
	legacy := NewIndexer("legacy", NewParameter("id", ParameterPath, NewTypeRef("string")), NewTypeRef("UserItemRequestBuilder"))
	legacy.IsLegacy = true
	canonical := NewIndexer("canonical", NewParameter("id", ParameterPath, NewTypeRef("int")), NewTypeRef("UserItemRequestBuilder"))
	c.AddIndexer(legacy)
	c.AddIndexer(canonical)

	assert.Same(t, canonical, c.Indexer())
	assert.Equal(t, "int", c.Indexer().IndexTypeName())

	c.RemoveIndexer(canonical)
	assert.Same(t, legacy, c.Indexer())
	c.RemoveIndexer(legacy)
	assert.Nil(t, c.Indexer())
}

func TestMethodCloneIsDeep(t *testing.T) {
	m := NewMethod("get", MethodRequestExecutor)
	m.HTTPMethod = HTTPGet
	m.ReturnType = NewTypeRef("User")
	m.AddParameter(NewParameter("config", ParameterRequestConfiguration, NewTypeRef("Config")))

	c := m.Clone("BuildGetCommand", MethodCommandBuilder)
	c.Parameters()[0].SetName("changed")
	c.ReturnType.SetTypeName("Command")

	assert.Equal(t, MethodCommandBuilder, c.Kind())
	assert.Equal(t, HTTPGet, c.HTTPMethod)
	assert.Equal(t, "config", m.Parameters()[0].Name())
	assert.Equal(t, "User", m.ReturnType.TypeName())
	assert.Nil(t, c.Parent())
}

func TestComposedType(t *testing.T) {
	u := NewComposedType(Union, "DirectoryObjectOrUser", NewTypeRef("DirectoryObject"), NewTypeRef("User"), NewTypeRef("user"))

	assert.True(t, IsUnion(u))
	assert.Len(t, u.AllTypes(), 2)
	assert.Equal(t, "DirectoryObject, User", u.MemberNames())
	assert.False(t, IsUnion(NewTypeRef("User")))

	var nilRef *TypeRef
	assert.True(t, IsNil(nilRef))
	assert.Empty(t, TypeRefs(nilRef, nil))
	assert.Len(t, TypeRefs(u, NewTypeRef("x")), 3)
}

func TestDerivesFrom(t *testing.T) {
	entity := NewClass("Entity", ClassModel)
	dirObj := NewClass("DirectoryObject", ClassModel)
	dirObj.Declaration().Inherits = RefTo(entity)
	user := NewClass("User", ClassModel)
	user.Declaration().Inherits = RefTo(dirObj)

	assert.True(t, user.DerivesFrom(entity))
	assert.False(t, entity.DerivesFrom(user))
}

func TestMarkRefined(t *testing.T) {
	root := NewRootNamespace("api")
	child := root.AddNamespace("api.models")

	assert.False(t, child.IsRefined())
	assert.True(t, child.MarkRefined())
	assert.False(t, root.MarkRefined())
	assert.True(t, root.IsRefined())
}

func TestCategorySet(t *testing.T) {
	s := Categories(CategoryClass, CategoryEnumOption)
	assert.True(t, s.Has(CategoryClass))
	assert.True(t, s.Has(CategoryEnumOption))
	assert.False(t, s.Has(CategoryMethod))
	assert.Equal(t, "enum option", CategoryEnumOption.String())
}

func TestParseKinds(t *testing.T) {
	k, ok := ParseClassKind("requestbuilder")
	require.True(t, ok)
	assert.Equal(t, ClassRequestBuilder, k)

	h, ok := ParseHTTPMethod("")
	require.True(t, ok)
	assert.Equal(t, HTTPNone, h)

	_, ok = ParseMethodKind("nope")
	assert.False(t, ok)
	assert.Equal(t, "IndexerBackwardCompatibility", MethodIndexerBackwardCompatibility.String())
}
