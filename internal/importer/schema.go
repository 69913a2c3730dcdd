package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// SupportedVersion is the only overrides document version understood.
const SupportedVersion = 1

// ErrUnsupportedVersion is returned when a document declares another version.
var ErrUnsupportedVersion = errors.New("unsupported overrides version")

// OverrideDocument is the JSON file produced by an external plan-suggestion
// service: proposed study windows keyed by delivery ID.
type OverrideDocument struct {
	Version   int             `json:"version"`
	Overrides []OverrideEntry `json:"overrides"`
}

// OverrideEntry proposes one study window.
type OverrideEntry struct {
	DeliveryID string `json:"delivery_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Note       string `json:"note,omitempty"`
}

// LoadOverrides reads and parses an overrides file.
func LoadOverrides(path string) (*OverrideDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading overrides file: %w", err)
	}
	return ParseOverrides(data)
}

// ParseOverrides decodes an overrides document. Unknown fields are errors.
func ParseOverrides(data []byte) (*OverrideDocument, error) {
	var doc OverrideDocument
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing overrides JSON: %w", err)
	}
	if doc.Version != SupportedVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	return &doc, nil
}
