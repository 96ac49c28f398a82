package langdata

import "github.com/teranos/refinery/config"

const tsAbstractions = "@microsoft/kiota-abstractions"

var typescriptKeywords = []string{
	"break", "case", "catch", "class", "const", "continue", "debugger", "default", "delete",
	"do", "else", "enum", "export", "extends", "false", "finally", "for", "function", "if",
	"import", "in", "instanceof", "new", "null", "return", "super", "switch", "this", "throw",
	"true", "try", "typeof", "var", "void", "while", "with", "as", "implements", "interface",
	"let", "package", "private", "protected", "public", "static", "yield", "any", "boolean",
	"constructor", "declare", "get", "module", "require", "number", "set", "string", "symbol",
	"type", "from", "of", "await", "async",
}

var typescriptReservedTypes = []string{"Date", "Error", "Object", "Promise", "Record", "Map", "Set", "Array"}

func typescriptTables() *Tables {
	return &Tables{
		Language:      config.TypeScript,
		Reserved:      NewNameSet(typescriptKeywords...),
		ReservedTypes: NewNameSet(typescriptReservedTypes...),
		Types: newTypeTable(map[string]Replacement{
			MarkerDateTime: {Name: "Date"},
			MarkerDateOnly: {Name: "DateOnly", Import: Import{Module: tsAbstractions, Symbol: "DateOnly"}},
			MarkerTimeOnly: {Name: "TimeOnly", Import: Import{Module: tsAbstractions, Symbol: "TimeOnly"}},
			MarkerDuration: {Name: "Duration", Import: Import{Module: tsAbstractions, Symbol: "Duration"}},
			MarkerGUID:     {Name: "Guid", Import: Import{Module: "guid-typescript", Symbol: "Guid"}},
			MarkerBase64:   {Name: "string"},
			MarkerDecimal:  {Name: "number"},
			MarkerInt64:    {Name: "number"},
			MarkerUntyped:  {Name: "UntypedNode", Import: Import{Module: tsAbstractions, Symbol: "UntypedNode"}},
		}),
		Binary: Replacement{Name: "ArrayBuffer"},
		Core: CoreSymbols{
			ErrorBase:            Import{Module: tsAbstractions, Symbol: "ApiError"},
			Parsable:             Import{Module: tsAbstractions, Symbol: "Parsable"},
			ParseNode:            Import{Module: tsAbstractions, Symbol: "ParseNode"},
			SerializationWriter:  Import{Module: tsAbstractions, Symbol: "SerializationWriter"},
			AdditionalDataHolder: Import{Module: tsAbstractions, Symbol: "AdditionalDataHolder"},
			BackedModel:          Import{Module: tsAbstractions, Symbol: "BackedModel"},
			BackingStore:         Import{Module: tsAbstractions, Symbol: "BackingStore"},
			BackingStoreFactory:  Import{Module: tsAbstractions, Symbol: "BackingStoreFactorySingleton"},
			RequestAdapter:       Import{Module: tsAbstractions, Symbol: "RequestAdapter"},
			RequestInformation:   Import{Module: tsAbstractions, Symbol: "RequestInformation"},
			RequestOption:        Import{Module: tsAbstractions, Symbol: "RequestOption"},
			Headers:              Import{Module: tsAbstractions, Symbol: "Headers"},
			BaseRequestBuilder:   Import{Module: tsAbstractions, Symbol: "BaseRequestBuilder"},
			ErrorBaseIsInterface: true,
			DefaultSerializers:   []string{"@microsoft/kiota-serialization-json.JsonSerializationWriterFactory"},
			DefaultDeserializers: []string{"@microsoft/kiota-serialization-json.JsonParseNodeFactory"},
		},
	}
}
