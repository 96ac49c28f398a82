package langdata

import "github.com/teranos/refinery/config"

const (
	javaAbstractions  = "com.microsoft.kiota"
	javaSerialization = "com.microsoft.kiota.serialization"
	javaStore         = "com.microsoft.kiota.store"
)

var javaKeywords = []string{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char", "class",
	"const", "continue", "default", "do", "double", "else", "enum", "extends", "false",
	"final", "finally", "float", "for", "goto", "if", "implements", "import", "instanceof",
	"int", "interface", "long", "native", "new", "null", "package", "private", "protected",
	"public", "record", "return", "short", "static", "strictfp", "super", "switch",
	"synchronized", "this", "throw", "throws", "transient", "true", "try", "var", "void",
	"volatile", "while", "yield",
}

var javaReservedTypes = []string{"Object", "String", "Class", "Integer", "Long", "Boolean", "Void"}

func javaTables() *Tables {
	return &Tables{
		Language:      config.Java,
		Reserved:      NewNameSet(javaKeywords...),
		ReservedTypes: NewNameSet(javaReservedTypes...),
		Types: newTypeTable(map[string]Replacement{
			MarkerDateTime: {Name: "OffsetDateTime", Import: Import{Module: "java.time", Symbol: "OffsetDateTime"}},
			MarkerDateOnly: {Name: "LocalDate", Import: Import{Module: "java.time", Symbol: "LocalDate"}},
			MarkerTimeOnly: {Name: "LocalTime", Import: Import{Module: "java.time", Symbol: "LocalTime"}},
			MarkerDuration: {Name: "PeriodAndDuration", Import: Import{Module: javaAbstractions, Symbol: "PeriodAndDuration"}},
			MarkerGUID:     {Name: "UUID", Import: Import{Module: "java.util", Symbol: "UUID"}},
			MarkerBase64:   {Name: "byte[]"},
			MarkerDecimal:  {Name: "BigDecimal", Import: Import{Module: "java.math", Symbol: "BigDecimal"}},
			MarkerInt64:    {Name: "Long"},
			MarkerUntyped:  {Name: "UntypedNode", Import: Import{Module: javaSerialization, Symbol: "UntypedNode"}},
		}),
		Binary: Replacement{Name: "InputStream", Import: Import{Module: "java.io", Symbol: "InputStream"}},
		Core: CoreSymbols{
			ErrorBase:            Import{Module: javaAbstractions, Symbol: "ApiException"},
			Parsable:             Import{Module: javaSerialization, Symbol: "Parsable"},
			ParseNode:            Import{Module: javaSerialization, Symbol: "ParseNode"},
			SerializationWriter:  Import{Module: javaSerialization, Symbol: "SerializationWriter"},
			AdditionalDataHolder: Import{Module: javaSerialization, Symbol: "AdditionalDataHolder"},
			BackedModel:          Import{Module: javaStore, Symbol: "BackedModel"},
			BackingStore:         Import{Module: javaStore, Symbol: "BackingStore"},
			BackingStoreFactory:  Import{Module: javaStore, Symbol: "BackingStoreFactorySingleton"},
			RequestAdapter:       Import{Module: javaAbstractions, Symbol: "RequestAdapter"},
			RequestInformation:   Import{Module: javaAbstractions, Symbol: "RequestInformation"},
			RequestOption:        Import{Module: javaAbstractions, Symbol: "RequestOption"},
			Headers:              Import{Module: javaAbstractions, Symbol: "RequestHeaders"},
			BaseRequestBuilder:   Import{Module: javaAbstractions, Symbol: "BaseRequestBuilder"},
			Stream:               Import{Module: "java.io", Symbol: "InputStream"},
			Enumset:              Import{Module: "java.util", Symbol: "EnumSet"},
			List:                 Import{Module: "java.util", Symbol: "List"},
			DefaultSerializers:   []string{"com.microsoft.kiota.serialization.JsonSerializationWriterFactory"},
			DefaultDeserializers: []string{"com.microsoft.kiota.serialization.JsonParseNodeFactory"},
		},
	}
}
