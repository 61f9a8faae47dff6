package delegate

import (
	"encoding/json"
	"fmt"
	"strings"

	"quantumtranslator/internal/models"
)

var requiredFields = []string{
	"classical_description",
	"quantum_formulation",
	"speedup",
	"routing",
	"circuit",
}

// ParseCompletion extracts the translation object from raw completion text.
// Markdown code fences and chatter around the outermost object are ignored.
// Every required field must be present and hold a string. Any other keys in
// the object are dropped from the result.
func ParseCompletion(content string) (*models.DelegatedTranslation, error) {
	raw := extractObject(content)
	if raw == "" {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformedUpstreamResponse)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedUpstreamResponse, err)
	}

	values := make(map[string]string, len(requiredFields))
	for _, name := range requiredFields {
		v, ok := fields[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing field %q", ErrMalformedUpstreamResponse, name)
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, fmt.Errorf("%w: field %q is not a string", ErrMalformedUpstreamResponse, name)
		}
		values[name] = s
	}

	return &models.DelegatedTranslation{
		ClassicalDescription: values["classical_description"],
		QuantumFormulation:   values["quantum_formulation"],
		Speedup:              values["speedup"],
		Routing:              values["routing"],
		Circuit:              values["circuit"],
	}, nil
}

// extractObject returns the text between the first '{' and the last '}'
// after stripping an optional ``` fence.
func extractObject(content string) string {
	s := strings.TrimSpace(content)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
