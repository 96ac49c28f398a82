package codedom

import "strings"

// ClassKind is fixed when a class is constructed.
type ClassKind int

const (
	ClassCustom ClassKind = iota
	ClassModel
	ClassRequestBuilder
	ClassQueryParameters
	ClassRequestConfiguration
	ClassBarrelInitializer
)

var classKindNames = []string{
	ClassCustom:               "Custom",
	ClassModel:                "Model",
	ClassRequestBuilder:       "RequestBuilder",
	ClassQueryParameters:      "QueryParameters",
	ClassRequestConfiguration: "RequestConfiguration",
	ClassBarrelInitializer:    "BarrelInitializer",
}

func (k ClassKind) String() string { return kindName(classKindNames, int(k)) }

// ParseClassKind parses a kind name case-insensitively.
func ParseClassKind(s string) (ClassKind, bool) {
	i, ok := parseKind(classKindNames, s)
	return ClassKind(i), ok
}

// InterfaceKind is fixed when an interface is constructed.
type InterfaceKind int

const (
	InterfaceModel InterfaceKind = iota
	InterfaceQueryParameters
)

var interfaceKindNames = []string{
	InterfaceModel:           "Model",
	InterfaceQueryParameters: "QueryParameters",
}

func (k InterfaceKind) String() string { return kindName(interfaceKindNames, int(k)) }

// MethodKind is fixed when a method is constructed.
type MethodKind int

const (
	MethodCustom MethodKind = iota
	MethodConstructor
	MethodClientConstructor
	MethodRawURLConstructor
	MethodRequestExecutor
	MethodRequestGenerator
	MethodSerializer
	MethodDeserializer
	MethodGetter
	MethodSetter
	MethodFactory
	MethodCommandBuilder
	MethodIndexerBackwardCompatibility
	MethodRequestBuilderWithParameters
	MethodRequestBuilderBackwardCompatibility
	MethodQueryParametersMapper
	MethodErrorMessageOverride
)

var methodKindNames = []string{
	MethodCustom:                              "Custom",
	MethodConstructor:                         "Constructor",
	MethodClientConstructor:                   "ClientConstructor",
	MethodRawURLConstructor:                   "RawUrlConstructor",
	MethodRequestExecutor:                     "RequestExecutor",
	MethodRequestGenerator:                    "RequestGenerator",
	MethodSerializer:                          "Serializer",
	MethodDeserializer:                        "Deserializer",
	MethodGetter:                              "Getter",
	MethodSetter:                              "Setter",
	MethodFactory:                             "Factory",
	MethodCommandBuilder:                      "CommandBuilder",
	MethodIndexerBackwardCompatibility:        "IndexerBackwardCompatibility",
	MethodRequestBuilderWithParameters:        "RequestBuilderWithParameters",
	MethodRequestBuilderBackwardCompatibility: "RequestBuilderBackwardCompatibility",
	MethodQueryParametersMapper:               "QueryParametersMapper",
	MethodErrorMessageOverride:                "ErrorMessageOverride",
}

func (k MethodKind) String() string { return kindName(methodKindNames, int(k)) }

// ParseMethodKind parses a kind name case-insensitively.
func ParseMethodKind(s string) (MethodKind, bool) {
	i, ok := parseKind(methodKindNames, s)
	return MethodKind(i), ok
}

// PropertyKind is fixed when a property is constructed.
type PropertyKind int

const (
	PropertyCustom PropertyKind = iota
	PropertyRequestBuilder
	PropertyAdditionalData
	PropertyBackingStore
	PropertyRequestAdapter
	PropertyPathParameters
	PropertyURLTemplate
	PropertyHeaders
	PropertyOptions
	PropertyQueryParameter
	PropertyQueryParameters
	PropertyErrorMessageOverride
)

var propertyKindNames = []string{
	PropertyCustom:               "Custom",
	PropertyRequestBuilder:       "RequestBuilder",
	PropertyAdditionalData:       "AdditionalData",
	PropertyBackingStore:         "BackingStore",
	PropertyRequestAdapter:       "RequestAdapter",
	PropertyPathParameters:       "PathParameters",
	PropertyURLTemplate:          "UrlTemplate",
	PropertyHeaders:              "Headers",
	PropertyOptions:              "Options",
	PropertyQueryParameter:       "QueryParameter",
	PropertyQueryParameters:      "QueryParameters",
	PropertyErrorMessageOverride: "ErrorMessageOverride",
}

func (k PropertyKind) String() string { return kindName(propertyKindNames, int(k)) }

// ParsePropertyKind parses a kind name case-insensitively.
func ParsePropertyKind(s string) (PropertyKind, bool) {
	i, ok := parseKind(propertyKindNames, s)
	return PropertyKind(i), ok
}

// ParameterKind is fixed when a parameter is constructed.
type ParameterKind int

const (
	ParameterCustom ParameterKind = iota
	ParameterQueryParameter
	ParameterHeaders
	ParameterOptions
	ParameterRequestBody
	ParameterSetterValue
	ParameterRequestAdapter
	ParameterPath
	ParameterRawURL
	ParameterSerializer
	ParameterBackingStore
	ParameterResponseHandler
	ParameterCancellation
	ParameterRequestConfiguration
	ParameterParseNode
	ParameterPathParameters
)

var parameterKindNames = []string{
	ParameterCustom:               "Custom",
	ParameterQueryParameter:       "QueryParameter",
	ParameterHeaders:              "Headers",
	ParameterOptions:              "Options",
	ParameterRequestBody:          "RequestBody",
	ParameterSetterValue:          "SetterValue",
	ParameterRequestAdapter:       "RequestAdapter",
	ParameterPath:                 "Path",
	ParameterRawURL:               "RawUrl",
	ParameterSerializer:           "Serializer",
	ParameterBackingStore:         "BackingStore",
	ParameterResponseHandler:      "ResponseHandler",
	ParameterCancellation:         "Cancellation",
	ParameterRequestConfiguration: "RequestConfiguration",
	ParameterParseNode:            "ParseNode",
	ParameterPathParameters:       "PathParameters",
}

func (k ParameterKind) String() string { return kindName(parameterKindNames, int(k)) }

// ParseParameterKind parses a kind name case-insensitively.
func ParseParameterKind(s string) (ParameterKind, bool) {
	i, ok := parseKind(parameterKindNames, s)
	return ParameterKind(i), ok
}

// Access is the visibility of a member.
type Access int

const (
	AccessPublic Access = iota
	AccessProtected
	AccessPrivate
)

var accessNames = []string{
	AccessPublic:    "public",
	AccessProtected: "protected",
	AccessPrivate:   "private",
}

func (a Access) String() string { return kindName(accessNames, int(a)) }

// ParseAccess parses an access modifier case-insensitively.
func ParseAccess(s string) (Access, bool) {
	i, ok := parseKind(accessNames, s)
	return Access(i), ok
}

// HTTPMethod is the verb a request executor or generator issues.
type HTTPMethod int

const (
	HTTPNone HTTPMethod = iota
	HTTPGet
	HTTPPost
	HTTPPatch
	HTTPPut
	HTTPDelete
	HTTPOptions
	HTTPConnect
	HTTPHead
	HTTPTrace
)

var httpMethodNames = []string{
	HTTPNone:    "",
	HTTPGet:     "Get",
	HTTPPost:    "Post",
	HTTPPatch:   "Patch",
	HTTPPut:     "Put",
	HTTPDelete:  "Delete",
	HTTPOptions: "Options",
	HTTPConnect: "Connect",
	HTTPHead:    "Head",
	HTTPTrace:   "Trace",
}

func (m HTTPMethod) String() string { return kindName(httpMethodNames, int(m)) }

// ParseHTTPMethod parses a verb case-insensitively. The empty string is HTTPNone.
func ParseHTTPMethod(s string) (HTTPMethod, bool) {
	i, ok := parseKind(httpMethodNames, s)
	return HTTPMethod(i), ok
}

// CollectionKind describes whether a type slot holds a single value or many.
type CollectionKind int

const (
	CollectionNone CollectionKind = iota
	CollectionArray
	CollectionComplex
)

var collectionKindNames = []string{
	CollectionNone:    "none",
	CollectionArray:   "array",
	CollectionComplex: "complex",
}

func (k CollectionKind) String() string { return kindName(collectionKindNames, int(k)) }

// ParseCollectionKind parses a collection kind case-insensitively. The empty
// string is CollectionNone.
func ParseCollectionKind(s string) (CollectionKind, bool) {
	if s == "" {
		return CollectionNone, true
	}
	i, ok := parseKind(collectionKindNames, s)
	return CollectionKind(i), ok
}

func kindName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "Unknown"
	}
	return names[i]
}

func parseKind(names []string, s string) (int, bool) {
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return i, true
		}
	}
	return 0, false
}
