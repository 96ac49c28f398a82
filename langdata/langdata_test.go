package langdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/errors"
)

func TestNameSetIgnoresCase(t *testing.T) {
	s := NewNameSet("Select", "type")

	assert.True(t, s.Contains("select"))
	assert.True(t, s.Contains("TYPE"))
	assert.False(t, s.Contains("types"))
	assert.Equal(t, 2, s.Len())
	assert.False(t, NameSet{}.Contains("x"))
}

func TestCatalogCoversEveryLanguage(t *testing.T) {
	c := NewCatalog()
	for _, lang := range config.AllLanguages() {
		t.Run(string(lang), func(t *testing.T) {
			tables, err := c.For(lang)
			require.NoError(t, err)
			assert.Equal(t, lang, tables.Language)
			assert.Greater(t, tables.Reserved.Len(), 20)
			assert.NotEmpty(t, tables.Binary.Name)
			assert.NotEmpty(t, tables.Core.ErrorBase.Symbol)
			assert.NotEmpty(t, tables.Core.Parsable.Symbol)

			for _, marker := range []string{MarkerDateTime, MarkerDateOnly, MarkerTimeOnly, MarkerDuration, MarkerGUID} {
				_, ok := tables.Types.Lookup(marker)
				assert.True(t, ok, "missing %s", marker)
			}
		})
	}
}

func TestCatalogUnknownLanguage(t *testing.T) {
	_, err := NewCatalog().For(config.Language("cobol"))
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedLanguageError(err))
}

func TestTypeLookup(t *testing.T) {
	tables, err := NewCatalog().For(config.Python)
	require.NoError(t, err)

	r, ok := tables.Types.Lookup("dateonly")
	require.True(t, ok)
	assert.Equal(t, "date", r.Name)
	assert.Equal(t, Import{Module: "datetime", Symbol: "date"}, r.Import)

	_, ok = tables.Types.Lookup("string")
	assert.False(t, ok)
}

func TestCLISharesCSharpKeywords(t *testing.T) {
	c := NewCatalog()
	cs, err := c.For(config.CSharp)
	require.NoError(t, err)
	cli, err := c.For(config.CLI)
	require.NoError(t, err)

	assert.True(t, cli.Reserved.Contains("namespace"))
	assert.True(t, cli.ReservedTypes.Contains("Command"))
	assert.False(t, cs.ReservedTypes.Contains("Command"))
	assert.True(t, cli.ReservedTypes.Contains("Task"))
}

func TestImportIsZero(t *testing.T) {
	assert.True(t, Import{}.IsZero())
	assert.False(t, Import{Symbol: "DateTime"}.IsZero())
}
