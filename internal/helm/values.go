package helm

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Values represents helm chart values as a map.
type Values map[string]any

// Merge combines multiple Values maps with later maps taking precedence
// on key conflicts. Nested maps are replaced, not merged.
func Merge(valueMaps ...Values) Values {
	result := make(Values)
	for _, m := range valueMaps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// ToYAML converts values to YAML bytes.
func (v Values) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode values to YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses YAML bytes into Values.
func FromYAML(data []byte) (Values, error) {
	var values Values
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse YAML values: %w", err)
	}
	return values, nil
}

// ToMap recursively converts Values to plain map[string]any, unwrapping
// nested Values so the result is safe to hand to the Helm SDK.
func (v Values) ToMap() map[string]any {
	out := make(map[string]any, len(v))
	for k, val := range v {
		switch typed := val.(type) {
		case Values:
			out[k] = typed.ToMap()
		case map[string]any:
			out[k] = Values(typed).ToMap()
		case []Values:
			items := make([]any, len(typed))
			for i, item := range typed {
				items[i] = item.ToMap()
			}
			out[k] = items
		default:
			out[k] = val
		}
	}
	return out
}
