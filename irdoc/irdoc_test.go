package irdoc

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/langdata"
	"github.com/teranos/refinery/refiners"
)

func TestLoadFile(t *testing.T) {
	root, err := LoadFile("testdata/users.yaml")
	require.NoError(t, err)

	assert.Equal(t, "ApiSdk", root.Name())
	client := root.FindClass("ApiClient")
	require.NotNil(t, client)
	assert.Equal(t, codedom.ClassRequestBuilder, client.Kind())
	assert.Len(t, client.MethodsOfKind(codedom.MethodClientConstructor), 1)

	users := root.FindNamespace("ApiSdk.users")
	require.NotNil(t, users)
	builder := users.FindClass("UsersRequestBuilder")
	require.NotNil(t, builder)

	// forward reference into a namespace declared later
	get := builder.FindMethod("Get")
	require.NotNil(t, get)
	assert.Equal(t, codedom.HTTPGet, get.HTTPMethod)
	assert.True(t, get.IsAsync)
	ret := get.ReturnType.(*codedom.TypeRef)
	assert.True(t, ret.IsInternal())
	assert.True(t, ret.IsCollection())
	assert.Equal(t, "User", ret.Name)

	ix := builder.Indexer()
	require.NotNil(t, ix)
	require.NotNil(t, ix.IndexParameter)
	assert.Equal(t, codedom.ParameterPath, ix.IndexParameter.Kind())
	assert.Equal(t, "user%2Did", ix.IndexParameter.Name())
	item, ok := ix.ReturnType.(*codedom.TypeRef).Class()
	require.True(t, ok)
	assert.Same(t, users.FindClass("UserItemRequestBuilder"), item)
}

func TestModelsAndEnums(t *testing.T) {
	root, err := LoadFile("testdata/users.yaml")
	require.NoError(t, err)
	models := root.FindNamespace("ApiSdk.models")
	require.NotNil(t, models)

	entity := models.FindClass("Entity")
	user := models.FindClass("User")
	require.NotNil(t, entity)
	require.NotNil(t, user)

	base, ok := user.BaseClass()
	require.True(t, ok)
	assert.Same(t, entity, base)

	require.NotNil(t, entity.Discriminator)
	assert.Equal(t, "@odata.type", entity.Discriminator.PropertyName)
	mapped, ok := entity.Discriminator.Get("#microsoft.graph.user")
	require.True(t, ok)
	assert.Same(t, user, mapped.Definition)

	status := user.FindProperty("status").Type.(*codedom.TypeRef)
	en, ok := status.Enum()
	require.True(t, ok)
	opts := en.Options()
	require.Len(t, opts, 2)
	assert.Equal(t, "active", opts[0].Name())
	assert.Equal(t, "default", opts[1].WireName())

	created := user.FindProperty("createdDateTime").Type.(*codedom.TypeRef)
	assert.False(t, created.IsInternal(), "abstract markers stay scalar")
	assert.True(t, created.Nullable)

	odataError := models.FindClass("ODataError")
	require.NotNil(t, odataError)
	assert.True(t, odataError.IsErrorDefinition)
	assert.False(t, odataError.FindProperty("message").Type.Traits().Nullable)
}

func TestComposedTypesAndInnerClasses(t *testing.T) {
	root, err := Parse([]byte(`
namespace: ApiSdk
classes:
  - name: Owner
    kind: Model
    properties:
      - name: pet
        type:
          union: Pet
          members: [Cat, "Dog[]"]
      - name: tag
        type: Owner.Tag
    inner:
      - name: Tag
        kind: Model
  - name: Cat
    kind: Model
  - name: Dog
    kind: Model
    inherits: Vendor.Animal
`))
	require.NoError(t, err)

	owner := root.FindClass("Owner")
	require.NotNil(t, owner)
	pet, ok := owner.FindProperty("pet").Type.(*codedom.ComposedType)
	require.True(t, ok)
	assert.Equal(t, codedom.Union, pet.Kind())
	assert.Equal(t, "Pet", pet.Name)
	members := pet.AllTypes()
	require.Len(t, members, 2)
	assert.True(t, members[0].IsInternal())
	assert.True(t, members[1].IsCollection())

	tag := owner.FindInnerClass("Tag")
	require.NotNil(t, tag)
	tagRef := owner.FindProperty("tag").Type.(*codedom.TypeRef)
	assert.Same(t, tag, tagRef.Definition)

	dog := root.FindClass("Dog")
	inherits := dog.Declaration().Inherits
	require.NotNil(t, inherits)
	assert.True(t, inherits.External, "unknown base types are external")
}

func TestAmbiguousSimpleNamePrefersCurrentNamespace(t *testing.T) {
	root, err := Parse([]byte(`
namespace: ApiSdk
namespaces:
  - name: ApiSdk.a
    classes:
      - name: User
        kind: Model
      - name: Holder
        kind: Model
        properties:
          - name: user
            type: User
          - name: other
            type: ApiSdk.b.User
  - name: ApiSdk.b
    classes:
      - name: User
        kind: Model
`))
	require.NoError(t, err)

	a := root.FindNamespace("ApiSdk.a")
	b := root.FindNamespace("ApiSdk.b")
	holder := a.FindClass("Holder")
	assert.Same(t, a.FindClass("User"), holder.FindProperty("user").Type.(*codedom.TypeRef).Definition)
	assert.Same(t, b.FindClass("User"), holder.FindProperty("other").Type.(*codedom.TypeRef).Definition)
}

func TestInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", ``, "document is empty"},
		{"no namespace", `classes: [{name: A}]`, "namespace is required"},
		{"unknown key", "namespace: X\nclasess: []", "failed to parse"},
		{"unknown class kind", "namespace: X\nclasses: [{name: A, kind: Widget}]", "unknown kind"},
		{"unknown property kind", "namespace: X\nclasses: [{name: A, properties: [{name: p, kind: Nope, type: string}]}]", "unknown property kind"},
		{"unknown verb", "namespace: X\nclasses: [{name: A, methods: [{name: m, http_method: FETCH}]}]", "unknown HTTP method"},
		{"duplicate", "namespace: X\nclasses: [{name: A}, {name: a}]", "declared twice"},
		{"empty union", "namespace: X\nclasses: [{name: A, properties: [{name: p, type: {union: U}}]}]", "has no members"},
		{"nested union", "namespace: X\nclasses: [{name: A, properties: [{name: p, type: {union: U, members: [{union: V, members: [a]}]}}]}]", "nests another"},
		{"unknown type key", "namespace: X\nclasses: [{name: A, properties: [{name: p, type: {name: s, nulable: false}}]}]", "field nulable not found"},
		{"unknown option key", "namespace: X\nenums: [{name: E, options: [{name: a, wire: b}]}]", "field wire not found"},
		{"bad collection", "namespace: X\nclasses: [{name: A, properties: [{name: p, type: {name: s, collection: bag}}]}]", "unknown collection kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, IsInvalidDocument(err), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/missing.yaml")
	require.Error(t, err)
	assert.False(t, IsInvalidDocument(err))
	assert.True(t, strings.Contains(err.Error(), "missing.yaml"))
}

func TestShortTypeForms(t *testing.T) {
	tests := []struct {
		in         string
		name       string
		collection string
		nullable   bool
	}{
		{"string", "string", "", true},
		{"User[]", "User", "array", true},
		{"integer!", "integer", "", false},
		{"User[]!", "User", "array", false},
	}
	for _, tt := range tests {
		got := parseShortType(tt.in)
		assert.Equal(t, tt.name, got.Name, tt.in)
		assert.Equal(t, tt.collection, got.Collection, tt.in)
		nullable := got.Nullable == nil || *got.Nullable
		assert.Equal(t, tt.nullable, nullable, tt.in)
	}
}

func TestLoadedDocumentRefines(t *testing.T) {
	r := refiners.New(langdata.NewCatalog())
	for _, lang := range config.AllLanguages() {
		t.Run(string(lang), func(t *testing.T) {
			root, err := LoadFile("testdata/users.yaml")
			require.NoError(t, err)

			cfg := config.Default()
			cfg.Language = string(lang)
			report, err := r.Refine(context.Background(), root, cfg)
			require.NoError(t, err)
			assert.Equal(t, lang, report.Language)
			assert.NotEmpty(t, report.Passes)
			assert.True(t, root.IsRefined())
		})
	}
}
