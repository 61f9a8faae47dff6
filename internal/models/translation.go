package models

import (
	"encoding/json"
	"fmt"
)

// TranslateRequest is the body accepted by POST /api/translate.
type TranslateRequest struct {
	Problem string `json:"problem"`
}

// TranslationResult is the rule-based answer for a single problem.
type TranslationResult struct {
	Classical string   `json:"classical"`
	Quantum   string   `json:"quantum"`
	Speedup   string   `json:"speedup"`
	Category  Category `json:"category"`
}

// DelegateRequest is the body accepted by the LLM-backed endpoint.
type DelegateRequest struct {
	Text string `json:"text"`
}

// UnmarshalJSON reads the "problem" key with an exact, case-sensitive match.
func (r *TranslateRequest) UnmarshalJSON(data []byte) error {
	v, err := exactStringField(data, "problem")
	if err != nil {
		return err
	}
	r.Problem = v
	return nil
}

// UnmarshalJSON reads the "text" key with an exact, case-sensitive match.
func (r *DelegateRequest) UnmarshalJSON(data []byte) error {
	v, err := exactStringField(data, "text")
	if err != nil {
		return err
	}
	r.Text = v
	return nil
}

// exactStringField returns the string stored under key in a JSON object.
// encoding/json folds case when matching struct tags, so keys such as
// "Problem" would otherwise fill the field. A missing key or null yields "".
func exactStringField(data []byte, key string) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", err
	}
	raw, ok := fields[key]
	if !ok {
		return "", nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("field %q: %w", key, err)
	}
	return v, nil
}

// DelegatedTranslation is the structured answer produced by the completion service.
type DelegatedTranslation struct {
	ClassicalDescription string `json:"classical_description"`
	QuantumFormulation   string `json:"quantum_formulation"`
	Speedup              string `json:"speedup"`
	Routing              string `json:"routing"`
	Circuit              string `json:"circuit"`
}
