package langdata

import "github.com/teranos/refinery/config"

const (
	pyAbstractions  = "kiota_abstractions"
	pySerialization = "kiota_abstractions.serialization"
	pyStore         = "kiota_abstractions.store"
)

var pythonKeywords = []string{
	"and", "as", "assert", "async", "await", "break", "class", "continue", "def", "del",
	"elif", "else", "except", "False", "finally", "for", "from", "global", "if", "import",
	"in", "is", "lambda", "None", "nonlocal", "not", "or", "pass", "raise", "return", "True",
	"try", "while", "with", "yield",
	// soft keywords and builtins that break generated code when shadowed
	"match", "case", "self", "cls", "property", "type", "id", "list", "dict", "str", "int",
	"float", "bool", "bytes", "object", "print", "format", "filter", "range",
}

func pythonTables() *Tables {
	return &Tables{
		Language:      config.Python,
		Reserved:      NewNameSet(pythonKeywords...),
		ReservedTypes: NewNameSet(),
		Types: newTypeTable(map[string]Replacement{
			MarkerDateTime: {Name: "datetime", Import: Import{Module: "datetime", Symbol: "datetime"}},
			MarkerDateOnly: {Name: "date", Import: Import{Module: "datetime", Symbol: "date"}},
			MarkerTimeOnly: {Name: "time", Import: Import{Module: "datetime", Symbol: "time"}},
			MarkerDuration: {Name: "timedelta", Import: Import{Module: "datetime", Symbol: "timedelta"}},
			MarkerGUID:     {Name: "UUID", Import: Import{Module: "uuid", Symbol: "UUID"}},
			MarkerBase64:   {Name: "bytes"},
			MarkerDecimal:  {Name: "float"},
			MarkerInt64:    {Name: "int"},
			MarkerUntyped:  {Name: "UntypedNode", Import: Import{Module: pySerialization, Symbol: "UntypedNode"}},
		}),
		Binary: Replacement{Name: "bytes"},
		Core: CoreSymbols{
			ErrorBase:            Import{Module: pyAbstractions + ".api_error", Symbol: "APIError"},
			Parsable:             Import{Module: pySerialization, Symbol: "Parsable"},
			ParseNode:            Import{Module: pySerialization, Symbol: "ParseNode"},
			SerializationWriter:  Import{Module: pySerialization, Symbol: "SerializationWriter"},
			AdditionalDataHolder: Import{Module: pySerialization, Symbol: "AdditionalDataHolder"},
			BackedModel:          Import{Module: pyStore, Symbol: "BackedModel"},
			BackingStore:         Import{Module: pyStore, Symbol: "BackingStore"},
			BackingStoreFactory:  Import{Module: pyStore, Symbol: "BackingStoreFactorySingleton"},
			RequestAdapter:       Import{Module: pyAbstractions + ".request_adapter", Symbol: "RequestAdapter"},
			RequestInformation:   Import{Module: pyAbstractions + ".request_information", Symbol: "RequestInformation"},
			RequestOption:        Import{Module: pyAbstractions + ".request_option", Symbol: "RequestOption"},
			Headers:              Import{Module: pyAbstractions + ".headers_collection", Symbol: "HeadersCollection"},
			BaseRequestBuilder:   Import{Module: pyAbstractions + ".base_request_builder", Symbol: "BaseRequestBuilder"},
			DefaultSerializers:   []string{"kiota_serialization_json.json_serialization_writer_factory.JsonSerializationWriterFactory"},
			DefaultDeserializers: []string{"kiota_serialization_json.json_parse_node_factory.JsonParseNodeFactory"},
		},
	}
}
