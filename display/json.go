package display

import (
	"encoding/json"
	"os"
)

// CompactEnv switches JSON output to a single line, for piping into tools
// that read one document per line.
const CompactEnv = "REFINERY_JSON_COMPACT"

// MarshalJSON marshals JSON with pretty formatting unless compact output is
// requested through CompactEnv
func MarshalJSON(v interface{}) ([]byte, error) {
	if os.Getenv(CompactEnv) != "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}
