package langdata

import "github.com/teranos/refinery/config"

const (
	csharpAbstractions  = "Microsoft.Kiota.Abstractions"
	csharpSerialization = "Microsoft.Kiota.Abstractions.Serialization"
	csharpStore         = "Microsoft.Kiota.Abstractions.Store"
)

var csharpKeywords = []string{
	"abstract", "as", "base", "bool", "break", "byte", "case", "catch", "char", "checked",
	"class", "const", "continue", "decimal", "default", "delegate", "do", "double", "else",
	"enum", "event", "explicit", "extern", "false", "finally", "fixed", "float", "for",
	"foreach", "goto", "if", "implicit", "in", "int", "interface", "internal", "is", "lock",
	"long", "namespace", "new", "null", "object", "operator", "out", "override", "params",
	"private", "protected", "public", "readonly", "ref", "return", "sbyte", "sealed", "short",
	"sizeof", "stackalloc", "static", "string", "struct", "switch", "this", "throw", "true",
	"try", "typeof", "uint", "ulong", "unchecked", "unsafe", "ushort", "using", "virtual",
	"void", "volatile", "while",
}

// Types every C# file sees through implicit usings.
var csharpReservedTypes = []string{
	"Action", "Array", "Attribute", "Console", "Convert", "Date", "DateTime", "Delegate",
	"Directory", "Environment", "Exception", "File", "Func", "GC", "Guid", "Math", "Object",
	"Path", "Random", "Stream", "String", "Task", "Thread", "Timer", "Type", "Uri", "Version",
}

var cliReservedTypes = []string{"Command", "Option", "Argument", "RootCommand"}

func csharpTables() *Tables {
	return &Tables{
		Language:      config.CSharp,
		Reserved:      NewNameSet(csharpKeywords...),
		ReservedTypes: NewNameSet(csharpReservedTypes...),
		Types: newTypeTable(map[string]Replacement{
			MarkerDateOnly: {Name: "Date", Import: Import{Module: csharpAbstractions, Symbol: "Date"}},
			MarkerTimeOnly: {Name: "Time", Import: Import{Module: csharpAbstractions, Symbol: "Time"}},
			MarkerDuration: {Name: "TimeSpan", Import: Import{Module: "System", Symbol: "TimeSpan"}},
			MarkerDateTime: {Name: "DateTimeOffset", Import: Import{Module: "System", Symbol: "DateTimeOffset"}},
			MarkerGUID:     {Name: "Guid", Import: Import{Module: "System", Symbol: "Guid"}},
			MarkerBase64:   {Name: "byte[]"},
			MarkerDecimal:  {Name: "decimal"},
			MarkerInt64:    {Name: "long"},
			MarkerUntyped:  {Name: "UntypedNode", Import: Import{Module: csharpSerialization, Symbol: "UntypedNode"}},
		}),
		Binary: Replacement{Name: "Stream", Import: Import{Module: "System.IO", Symbol: "Stream"}},
		Core: CoreSymbols{
			ErrorBase:            Import{Module: csharpAbstractions, Symbol: "ApiException"},
			Parsable:             Import{Module: csharpSerialization, Symbol: "IParsable"},
			ParseNode:            Import{Module: csharpSerialization, Symbol: "IParseNode"},
			SerializationWriter:  Import{Module: csharpSerialization, Symbol: "ISerializationWriter"},
			AdditionalDataHolder: Import{Module: csharpSerialization, Symbol: "IAdditionalDataHolder"},
			BackedModel:          Import{Module: csharpStore, Symbol: "IBackedModel"},
			BackingStore:         Import{Module: csharpStore, Symbol: "IBackingStore"},
			BackingStoreFactory:  Import{Module: csharpStore, Symbol: "BackingStoreFactorySingleton"},
			RequestAdapter:       Import{Module: csharpAbstractions, Symbol: "IRequestAdapter"},
			RequestInformation:   Import{Module: csharpAbstractions, Symbol: "RequestInformation"},
			RequestOption:        Import{Module: csharpAbstractions, Symbol: "IRequestOption"},
			Headers:              Import{Module: csharpAbstractions, Symbol: "RequestHeaders"},
			BaseRequestBuilder:   Import{Module: csharpAbstractions, Symbol: "BaseRequestBuilder"},
			Stream:               Import{Module: "System.IO", Symbol: "Stream"},
			List:                 Import{Module: "System.Collections.Generic", Symbol: "List"},
			DefaultSerializers:   []string{"Microsoft.Kiota.Serialization.Json.JsonSerializationWriterFactory"},
			DefaultDeserializers: []string{"Microsoft.Kiota.Serialization.Json.JsonParseNodeFactory"},
		},
	}
}
