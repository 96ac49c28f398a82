package display

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/errors"
	"github.com/teranos/refinery/refiners"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func sampleTree() *codedom.Namespace {
	root := codedom.NewRootNamespace("ApiSdk")
	models := root.AddNamespace("ApiSdk.models")

	entity := codedom.NewClass("Entity", codedom.ClassModel)
	entity.AddProperty(codedom.NewProperty("id", codedom.PropertyCustom, codedom.NewTypeRef("string")))
	user := codedom.NewClass("User", codedom.ClassModel)
	user.Declaration().Inherits = codedom.RefTo(entity)
	tags := codedom.NewTypeRef("string")
	tags.Collection = codedom.CollectionArray
	user.AddProperty(codedom.NewProperty("tags", codedom.PropertyCustom, tags))
	user.Declaration().AddUsings(codedom.NewExternalUsing("time", "Time"))

	ser := codedom.NewMethod("Serialize", codedom.MethodSerializer)
	writer := codedom.NewTypeRef("SerializationWriter")
	writer.Nullable = false
	ser.AddParameter(codedom.NewParameter("writer", codedom.ParameterSerializer, writer))
	user.AddMethod(ser)

	status := codedom.NewEnum("Status", codedom.NewEnumOption("active"))
	escaped := codedom.NewEnumOption("defaultEscaped")
	escaped.SerializationName = "default"
	status.AddOption(escaped)

	models.AddClass(entity, user)
	models.AddEnum(status)
	return root
}

func TestRenderTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTree(&buf, sampleTree(), TreeOptions{}))
	out := buf.String()

	for _, want := range []string{
		"namespace ApiSdk",
		"namespace ApiSdk.models",
		"class User <Model> : Entity",
		"tags string[]",
		"Serialize(writer SerializationWriter!) <Serializer>",
		"writer SerializationWriter! <Serializer>",
		`defaultEscaped = "default"`,
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "using Time", "usings are hidden by default")
}

func TestRenderTreeOptions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTree(&buf, sampleTree(), TreeOptions{Usings: true}))
	assert.Contains(t, buf.String(), "using Time from time")

	node := BuildTree(sampleTree(), TreeOptions{MaxDepth: 2})
	require.Len(t, node.Children, 1)
	assert.Equal(t, "namespace ApiSdk.models", node.Children[0].Text)
	assert.Empty(t, node.Children[0].Children)
}

func TestTypeLabel(t *testing.T) {
	cat := codedom.NewTypeRef("Cat")
	dog := codedom.NewTypeRef("Dog")
	anonymous := codedom.NewComposedType(codedom.Union, "", cat, dog)
	named := codedom.NewComposedType(codedom.Intersection, "Pet", cat, dog)
	count := codedom.NewTypeRef("integer")
	count.Nullable = false

	tests := []struct {
		name string
		in   codedom.TypeBase
		want string
	}{
		{"nil", nil, ""},
		{"scalar", codedom.NewTypeRef("string"), "string"},
		{"non-nullable", count, "integer!"},
		{"anonymous union", anonymous, "Cat | Dog"},
		{"named composed", named, "Pet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeLabel(tt.in))
		})
	}
}

func TestRenderReport(t *testing.T) {
	rep := &refiners.Report{
		Language: config.Go,
		Passes: []refiners.PassTiming{
			{Name: "replace-reserved-names", Duration: 2 * time.Millisecond},
			{Name: "correct-core-types", Duration: 5 * time.Millisecond},
		},
		Warnings: []errors.SoftWarning{
			{Pass: "move-models", Element: "ApiSdk.groups.User", Message: "name collision"},
		},
		Duration: 8 * time.Millisecond,
	}

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, rep, 1))
	out := buf.String()
	assert.Contains(t, out, "go: 2 passes in 8ms, 1 warnings")
	assert.Contains(t, out, "correct-core-types")
	assert.NotContains(t, out, "replace-reserved-names", "only the slowest pass is listed")
	assert.Contains(t, out, "name collision")

	assert.NoError(t, RenderReport(&buf, nil, 3))
}

func TestShouldOutputJSON(t *testing.T) {
	newCmd := func() *cobra.Command {
		root := &cobra.Command{Use: "refinery"}
		root.PersistentFlags().Bool("json", false, "")
		child := &cobra.Command{Use: "refine", Run: func(*cobra.Command, []string) {}}
		root.AddCommand(child)
		return child
	}

	t.Run("default", func(t *testing.T) {
		t.Setenv(OutputEnv, "")
		assert.False(t, ShouldOutputJSON(newCmd()))
	})
	t.Run("flag", func(t *testing.T) {
		t.Setenv(OutputEnv, "")
		cmd := newCmd()
		require.NoError(t, cmd.Root().PersistentFlags().Set("json", "true"))
		assert.True(t, ShouldOutputJSON(cmd))
	})
	t.Run("environment", func(t *testing.T) {
		t.Setenv(OutputEnv, "JSON")
		assert.True(t, ShouldOutputJSON(newCmd()))
		assert.True(t, ShouldOutputJSON(nil))
	})
}

func TestOutputJSON(t *testing.T) {
	t.Setenv(CompactEnv, "")
	var buf bytes.Buffer
	require.NoError(t, OutputJSON(&buf, map[string]int{"passes": 3}))
	assert.Equal(t, "{\n  \"passes\": 3\n}\n", buf.String())

	t.Setenv(CompactEnv, "1")
	buf.Reset()
	require.NoError(t, OutputJSON(&buf, map[string]int{"passes": 3}))
	assert.Equal(t, `{"passes":3}`+"\n", buf.String())

	var decoded map[string]int
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &decoded))
	assert.Equal(t, 3, decoded["passes"])
}
