package langdata

import "github.com/teranos/refinery/config"

const (
	goAbstractions  = "github.com/microsoft/kiota-abstractions-go"
	goSerialization = "github.com/microsoft/kiota-abstractions-go/serialization"
	goStore         = "github.com/microsoft/kiota-abstractions-go/store"
)

var goKeywords = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else", "fallthrough",
	"for", "func", "go", "goto", "if", "import", "interface", "map", "package", "range",
	"return", "select", "struct", "switch", "type", "var",
	// predeclared identifiers shadowed at file scope
	"error", "string", "nil", "true", "false", "iota", "len", "cap", "make", "new",
	"append", "copy", "delete", "panic", "recover", "close",
}

func goTables() *Tables {
	return &Tables{
		Language:      config.Go,
		Reserved:      NewNameSet(goKeywords...),
		ReservedTypes: NewNameSet(),
		Types: newTypeTable(map[string]Replacement{
			MarkerDateTime: {Name: "Time", Import: Import{Module: "time", Symbol: "Time"}},
			MarkerDateOnly: {Name: "DateOnly", Import: Import{Module: goSerialization, Symbol: "DateOnly"}},
			MarkerTimeOnly: {Name: "TimeOnly", Import: Import{Module: goSerialization, Symbol: "TimeOnly"}},
			MarkerDuration: {Name: "ISODuration", Import: Import{Module: goSerialization, Symbol: "ISODuration"}},
			MarkerGUID:     {Name: "UUID", Import: Import{Module: "github.com/google/uuid", Symbol: "UUID"}},
			MarkerBase64:   {Name: "[]byte"},
			MarkerDecimal:  {Name: "float64"},
			MarkerInt64:    {Name: "int64"},
			MarkerUntyped:  {Name: "UntypedNodeable", Import: Import{Module: goSerialization, Symbol: "UntypedNodeable"}},
		}),
		Binary: Replacement{Name: "[]byte"},
		Core: CoreSymbols{
			ErrorBase:            Import{Module: goAbstractions, Symbol: "ApiError"},
			Parsable:             Import{Module: goSerialization, Symbol: "Parsable"},
			ParseNode:            Import{Module: goSerialization, Symbol: "ParseNode"},
			SerializationWriter:  Import{Module: goSerialization, Symbol: "SerializationWriter"},
			AdditionalDataHolder: Import{Module: goSerialization, Symbol: "AdditionalDataHolder"},
			BackedModel:          Import{Module: goStore, Symbol: "BackedModel"},
			BackingStore:         Import{Module: goStore, Symbol: "BackingStore"},
			BackingStoreFactory:  Import{Module: goStore, Symbol: "BackingStoreFactoryInstance"},
			RequestAdapter:       Import{Module: goAbstractions, Symbol: "RequestAdapter"},
			RequestInformation:   Import{Module: goAbstractions, Symbol: "RequestInformation"},
			RequestOption:        Import{Module: goAbstractions, Symbol: "RequestOption"},
			Headers:              Import{Module: goAbstractions, Symbol: "RequestHeaders"},
			BaseRequestBuilder:   Import{Module: goAbstractions, Symbol: "BaseRequestBuilder"},
			ErrorBaseIsInterface: false,
			DefaultSerializers:   []string{"github.com/microsoft/kiota-serialization-json-go.JsonSerializationWriterFactory"},
			DefaultDeserializers: []string{"github.com/microsoft/kiota-serialization-json-go.JsonParseNodeFactory"},
		},
	}
}
