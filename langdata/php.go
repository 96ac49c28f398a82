package langdata

import "github.com/teranos/refinery/config"

const (
	phpAbstractions  = `Microsoft\Kiota\Abstractions`
	phpSerialization = `Microsoft\Kiota\Abstractions\Serialization`
	phpStore         = `Microsoft\Kiota\Abstractions\Store`
)

var phpKeywords = []string{
	"abstract", "and", "array", "as", "break", "callable", "case", "catch", "class", "clone",
	"const", "continue", "declare", "default", "die", "do", "echo", "else", "elseif", "empty",
	"enddeclare", "endfor", "endforeach", "endif", "endswitch", "endwhile", "eval", "exit",
	"extends", "final", "finally", "fn", "for", "foreach", "function", "global", "goto", "if",
	"implements", "include", "include_once", "instanceof", "insteadof", "interface", "isset",
	"list", "match", "namespace", "new", "or", "print", "private", "protected", "public",
	"readonly", "require", "require_once", "return", "static", "switch", "throw", "trait",
	"try", "unset", "use", "var", "while", "xor", "yield",
	// reserved type names
	"bool", "false", "float", "int", "iterable", "mixed", "never", "null", "object",
	"parent", "self", "string", "true", "void",
}

func phpTables() *Tables {
	return &Tables{
		Language:      config.PHP,
		Reserved:      NewNameSet(phpKeywords...),
		ReservedTypes: NewNameSet(),
		Types: newTypeTable(map[string]Replacement{
			MarkerDateTime: {Name: "DateTime", Import: Import{Module: "", Symbol: "DateTime"}},
			MarkerDateOnly: {Name: "Date", Import: Import{Module: phpAbstractions + `\Types`, Symbol: "Date"}},
			MarkerTimeOnly: {Name: "Time", Import: Import{Module: phpAbstractions + `\Types`, Symbol: "Time"}},
			MarkerDuration: {Name: "DateInterval", Import: Import{Module: "", Symbol: "DateInterval"}},
			MarkerGUID:     {Name: "string"},
			MarkerBase64:   {Name: "StreamInterface", Import: Import{Module: `Psr\Http\Message`, Symbol: "StreamInterface"}},
			MarkerDecimal:  {Name: "float"},
			MarkerInt64:    {Name: "int"},
			MarkerUntyped:  {Name: "UntypedNode", Import: Import{Module: phpSerialization, Symbol: "UntypedNode"}},
		}),
		Binary: Replacement{Name: "StreamInterface", Import: Import{Module: `Psr\Http\Message`, Symbol: "StreamInterface"}},
		Core: CoreSymbols{
			ErrorBase:            Import{Module: phpAbstractions, Symbol: "ApiException"},
			Parsable:             Import{Module: phpSerialization, Symbol: "Parsable"},
			ParseNode:            Import{Module: phpSerialization, Symbol: "ParseNode"},
			SerializationWriter:  Import{Module: phpSerialization, Symbol: "SerializationWriter"},
			AdditionalDataHolder: Import{Module: phpSerialization, Symbol: "AdditionalDataHolder"},
			BackedModel:          Import{Module: phpStore, Symbol: "BackedModel"},
			BackingStore:         Import{Module: phpStore, Symbol: "BackingStore"},
			BackingStoreFactory:  Import{Module: phpStore, Symbol: "BackingStoreFactorySingleton"},
			RequestAdapter:       Import{Module: phpAbstractions, Symbol: "RequestAdapter"},
			RequestInformation:   Import{Module: phpAbstractions, Symbol: "RequestInformation"},
			RequestOption:        Import{Module: phpAbstractions, Symbol: "RequestOption"},
			Headers:              Import{Module: phpAbstractions, Symbol: "Headers"},
			BaseRequestBuilder:   Import{Module: phpAbstractions, Symbol: "BaseRequestBuilder"},
			Stream:               Import{Module: `Psr\Http\Message`, Symbol: "StreamInterface"},
			Promise:              Import{Module: `Http\Promise`, Symbol: "Promise"},
			DefaultSerializers:   []string{`Microsoft\Kiota\Serialization\Json\JsonSerializationWriterFactory`},
			DefaultDeserializers: []string{`Microsoft\Kiota\Serialization\Json\JsonParseNodeFactory`},
		},
	}
}
