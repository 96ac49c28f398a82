package config

import (
	"strings"

	"github.com/teranos/refinery/errors"
)

// Language is a refinement target
type Language string

const (
	CSharp     Language = "csharp"
	Java       Language = "java"
	Go         Language = "go"
	Python     Language = "python"
	PHP        Language = "php"
	TypeScript Language = "typescript"
	CLI        Language = "cli"
)

// AllLanguages returns every supported target in a stable order
func AllLanguages() []Language {
	return []Language{CSharp, Java, Go, Python, PHP, TypeScript, CLI}
}

// ParseLanguage resolves a language name or alias
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cs", "csharp", "c#":
		return CSharp, nil
	case "java":
		return Java, nil
	case "go", "golang":
		return Go, nil
	case "py", "python":
		return Python, nil
	case "php":
		return PHP, nil
	case "ts", "typescript":
		return TypeScript, nil
	case "cli", "shell":
		return CLI, nil
	case "":
		return "", errors.NewConfigurationError("language is required")
	default:
		return "", errors.WithHintf(
			errors.Wrapf(errors.ErrUnsupportedLanguage, "%q", s),
			"supported: %s", strings.Join(languageNames(), ", "))
	}
}

func languageNames() []string {
	names := make([]string, 0, len(AllLanguages()))
	for _, l := range AllLanguages() {
		names = append(names, string(l))
	}
	return names
}
