package loader

import (
	"github.com/tidwall/gjson"
)

func decodeJSON(source string, data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, malformed(source, "invalid JSON")
	}
	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return nil, malformed(source, "top level must be an object")
	}
	m, _ := result.Value().(map[string]any)
	return m, nil
}
