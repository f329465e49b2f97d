// Package report implements JSON serialization of conversion findings,
// used by the --trace front-end output and external tooling.
package report

import "encoding/json"

// Finding describes one detected replacement: where it sits, what it
// said, and what it became.
type Finding struct {
	Type     string `json:"type"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Original string `json:"original"`
	Rendered string `json:"rendered"`
	Priority int    `json:"priority"`
	Enabled  bool   `json:"enabled"`
	Valid    bool   `json:"valid"`
}

// Marshal serializes findings to indented JSON.
func Marshal(findings []Finding) ([]byte, error) {
	if findings == nil {
		findings = []Finding{}
	}
	return json.MarshalIndent(findings, "", "  ")
}

// Unmarshal deserializes JSON bytes into findings. A null document
// yields an empty, non-nil slice.
func Unmarshal(data []byte) ([]Finding, error) {
	var findings []Finding
	if err := json.Unmarshal(data, &findings); err != nil {
		return nil, err
	}
	if findings == nil {
		findings = []Finding{}
	}
	return findings, nil
}
