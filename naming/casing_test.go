package naming

import "testing"

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTPSConnection", "https_connection"},
		{"userId", "user_id"},
		{"UserID", "user_id"},
		{"byId", "by_id"},
		{"already_snake", "already_snake"},
		{"kebab-case", "kebab_case"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToSnakeCase(tt.input); got != tt.expected {
				t.Errorf("ToSnakeCase(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToPascalAndCamelCase(t *testing.T) {
	tests := []struct {
		input  string
		pascal string
		camel  string
	}{
		{"user_id", "UserId", "userId"},
		{"list-items", "ListItems", "listItems"},
		{"Users-idx", "UsersIdx", "usersIdx"},
		{"select", "Select", "select"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToPascalCase(tt.input); got != tt.pascal {
				t.Errorf("ToPascalCase(%q) = %q, want %q", tt.input, got, tt.pascal)
			}
			if got := ToCamelCase(tt.input); got != tt.camel {
				t.Errorf("ToCamelCase(%q) = %q, want %q", tt.input, got, tt.camel)
			}
		})
	}
}

func TestCleanupSymbolName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"$select", "select"},
		{"%24select", "select"},
		{"user%2Did", "userId"},
		{"100%", "_100"},
		{"@odata.type", "odataType"},
		{"plain", "plain"},
		{"9lives", "_9lives"},
	}

	for _, tt := range tests {
		if got := CleanupSymbolName(tt.input); got != tt.expected {
			t.Errorf("CleanupSymbolName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMapSegments(t *testing.T) {
	got := MapSegments("graph.users.item", ToFirstCharacterUpper)
	if got != "Graph.Users.Item" {
		t.Errorf("MapSegments = %q", got)
	}
	if MapSegments("", ToFirstCharacterUpper) != "" {
		t.Error("empty input should stay empty")
	}
}

func TestNamespaceSymbol(t *testing.T) {
	if got := NamespaceSymbol("graph.users.item", "User"); got != "GraphUsersItemUser" {
		t.Errorf("NamespaceSymbol = %q", got)
	}
}
