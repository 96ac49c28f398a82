// Package langdata holds the per-language lookup tables used by the
// refiners: reserved identifiers, abstract-type replacements and the core
// library symbols generated code imports. Tables are built once by
// NewCatalog and are read-only afterwards, so one Catalog can serve any
// number of concurrent refinement runs.
package langdata

import (
	"strings"

	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/errors"
)

// Abstract type markers produced by the model builder.
const (
	MarkerDateTime = "DateTimeOffset"
	MarkerDateOnly = "DateOnly"
	MarkerTimeOnly = "TimeOnly"
	MarkerDuration = "TimeSpan"
	MarkerGUID     = "Guid"
	MarkerBinary   = "binary"
	MarkerBase64   = "base64url"
	MarkerDecimal  = "decimal"
	MarkerInt64    = "int64"
	MarkerUntyped  = "UntypedNode"
)

// NameSet is an immutable case-insensitive set of identifiers.
type NameSet struct {
	names map[string]struct{}
}

// NewNameSet builds a set from names.
func NewNameSet(names ...string) NameSet {
	s := NameSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		s.names[strings.ToLower(n)] = struct{}{}
	}
	return s
}

// Contains reports whether name is in the set, ignoring case.
func (s NameSet) Contains(name string) bool {
	_, ok := s.names[strings.ToLower(name)]
	return ok
}

// Len returns the number of names.
func (s NameSet) Len() int { return len(s.names) }

// Import is a symbol imported from a module or namespace.
type Import struct {
	Module string
	Symbol string
}

// IsZero reports whether no import is needed.
func (i Import) IsZero() bool { return i.Symbol == "" }

// Replacement is the native type an abstract marker becomes.
type Replacement struct {
	Name   string
	Import Import
}

// TypeTable maps abstract markers to native types.
type TypeTable struct {
	entries map[string]Replacement
}

func newTypeTable(entries map[string]Replacement) TypeTable {
	t := TypeTable{entries: make(map[string]Replacement, len(entries))}
	for k, v := range entries {
		t.entries[strings.ToLower(k)] = v
	}
	return t
}

// Lookup returns the replacement for an abstract type name.
func (t TypeTable) Lookup(name string) (Replacement, bool) {
	r, ok := t.entries[strings.ToLower(name)]
	return r, ok
}

// Len returns the number of entries.
func (t TypeTable) Len() int { return len(t.entries) }

// CoreSymbols are the runtime library symbols generated code relies on.
type CoreSymbols struct {
	ErrorBase            Import
	Parsable             Import
	ParseNode            Import
	SerializationWriter  Import
	AdditionalDataHolder Import
	BackedModel          Import
	BackingStore         Import
	BackingStoreFactory  Import
	RequestAdapter       Import
	RequestInformation   Import
	RequestOption        Import
	Headers              Import
	BaseRequestBuilder   Import
	Stream               Import
	Enumset              Import
	List                 Import
	Promise              Import
	// ErrorBaseIsInterface marks targets where error models implement the
	// base error contract rather than inherit it.
	ErrorBaseIsInterface bool
	DefaultSerializers   []string
	DefaultDeserializers []string
}

// Tables are the lookup data for one language.
type Tables struct {
	Language config.Language
	// Reserved identifiers for members, parameters and namespaces.
	Reserved NameSet
	// ReservedTypes are declaration names that collide with types every file
	// of the target sees (e.g. System types in C#).
	ReservedTypes NameSet
	Types         TypeTable
	// Binary is the native type for binary request/response bodies.
	Binary Replacement
	Core   CoreSymbols
}

// Catalog holds the tables for every language.
type Catalog struct {
	tables map[config.Language]*Tables
}

// NewCatalog builds the tables for every supported language.
func NewCatalog() *Catalog {
	cs := csharpTables()
	cli := *cs
	cli.Language = config.CLI
	cli.ReservedTypes = NewNameSet(append(csharpReservedTypes, cliReservedTypes...)...)

	return &Catalog{tables: map[config.Language]*Tables{
		config.CSharp:     cs,
		config.CLI:        &cli,
		config.Java:       javaTables(),
		config.Go:         goTables(),
		config.Python:     pythonTables(),
		config.PHP:        phpTables(),
		config.TypeScript: typescriptTables(),
	}}
}

// For returns the tables of a language.
func (c *Catalog) For(lang config.Language) (*Tables, error) {
	t, ok := c.tables[lang]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnsupportedLanguage, "no tables for %q", lang)
	}
	return t, nil
}
