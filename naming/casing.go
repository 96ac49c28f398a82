// Package naming holds the identifier casing helpers shared by the refiners.
package naming

import (
	"net/url"
	"strings"
	"unicode"
)

// ToSnakeCase converts PascalCase or camelCase to snake_case.
// Handles acronyms properly (e.g., "HTTPSConnection" -> "https_connection")
func ToSnakeCase(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '-' || r == ' ' {
			result.WriteRune('_')
			continue
		}

		if i > 0 && unicode.IsUpper(r) {
			// Don't split inside an acronym unless it ends here
			prevUpper := unicode.IsUpper(runes[i-1])
			prevSep := runes[i-1] == '_' || runes[i-1] == '-'
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if !prevSep && (!prevUpper || nextLower) {
				result.WriteRune('_')
			}
		}

		result.WriteRune(r)
	}

	return strings.ToLower(result.String())
}

// ToPascalCase converts snake_case or kebab-case to PascalCase
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, isWordSeparator)

	var result strings.Builder
	for _, part := range parts {
		result.WriteString(ToFirstCharacterUpper(part))
	}

	return result.String()
}

// ToCamelCase converts snake_case or kebab-case to camelCase
func ToCamelCase(s string) string {
	return ToFirstCharacterLower(ToPascalCase(s))
}

// ToFirstCharacterUpper upper-cases the first rune only.
func ToFirstCharacterUpper(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ToFirstCharacterLower lower-cases the first rune only.
func ToFirstCharacterLower(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// CleanupSymbolName strips characters that cannot appear in an identifier in
// any target and camel-cases across the removed separators. Percent escapes
// are decoded first.
// e.g. "$select" -> "select", "@odata.type" -> "odataType", "user%2Did" -> "userId"
func CleanupSymbolName(s string) string {
	if decoded, err := url.PathUnescape(s); err == nil {
		s = decoded
	}
	var b strings.Builder
	upperNext := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if upperNext && b.Len() > 0 {
				r = unicode.ToUpper(r)
			}
			upperNext = false
			b.WriteRune(r)
		default:
			upperNext = true
		}
	}
	out := b.String()
	if out != "" && unicode.IsDigit([]rune(out)[0]) {
		out = "_" + out
	}
	return out
}

// SplitSegments splits a dotted name.
func SplitSegments(dotted string) []string {
	if dotted == "" {
		return nil
	}
	return strings.Split(dotted, ".")
}

// MapSegments applies fn to every dot-separated segment of dotted.
func MapSegments(dotted string, fn func(string) string) string {
	segments := SplitSegments(dotted)
	for i, s := range segments {
		segments[i] = fn(s)
	}
	return strings.Join(segments, ".")
}

// NamespaceSymbol flattens a dotted namespace plus a type name into one
// PascalCase identifier, used to derive import aliases.
// e.g. ("graph.users.item", "User") -> "GraphUsersItemUser"
func NamespaceSymbol(namespace, typeName string) string {
	var b strings.Builder
	for _, s := range SplitSegments(namespace) {
		b.WriteString(ToPascalCase(CleanupSymbolName(s)))
	}
	b.WriteString(ToFirstCharacterUpper(typeName))
	return b.String()
}

func isWordSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
