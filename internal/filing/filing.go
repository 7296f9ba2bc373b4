// Package filing adapts stored filing records to the single analysis text
// consumed by the pagination core.
package filing

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrNoAnalysis is returned when a record carries neither a unified
	// analysis nor any legacy analysis field.
	ErrNoAnalysis = errors.New("filing has no analysis text")
	// ErrUnknownFormType is returned for form types without a legacy field mapping.
	ErrUnknownFormType = errors.New("unknown form type")
)

// unifiedField is the field holding the combined analysis.
const unifiedField = "unified_analysis"

// Record is a filing payload. Known metadata is decoded into fields; every
// raw field, including the known ones, is kept in Fields.
type Record struct {
	ID              string
	FormType        string
	CompanyName     string
	Ticker          string
	UnifiedAnalysis string
	Fields          map[string]json.RawMessage
}

// UnmarshalJSON decodes a filing object.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	r.Fields = fields
	r.ID = stringField(fields, "id")
	r.FormType = stringField(fields, "form_type")
	if r.FormType == "" {
		r.FormType = stringField(fields, "filing_type")
	}
	r.CompanyName = stringField(fields, "company_name")
	r.Ticker = stringField(fields, "ticker")
	r.UnifiedAnalysis = stringField(fields, unifiedField)
	return nil
}

// stringField returns fields[key] as a string. Numbers are formatted;
// other kinds yield "".
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return formatScalar(val)
	default:
		return ""
	}
}

// Decode reads one filing record from r.
func Decode(r io.Reader) (*Record, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to parse filing record: %w", err)
	}
	return &rec, nil
}

// Load reads a filing record from a JSON file.
func Load(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read filing record: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Source names where an analysis text came from.
type Source string

const (
	SourceUnified Source = "unified_analysis"
	SourceLegacy  Source = "legacy_fields"
)

// AnalysisText returns the text to paginate. The unified analysis is used
// when present; otherwise the legacy fields of the record's form type are
// assembled into one annotated text with a section title per field.
func (r *Record) AnalysisText() (string, Source, error) {
	if strings.TrimSpace(r.UnifiedAnalysis) != "" {
		return r.UnifiedAnalysis, SourceUnified, nil
	}

	formType, err := ParseFormType(r.FormType)
	if err != nil {
		return "", "", err
	}

	var sections []string
	for _, name := range LegacyFields(formType) {
		raw, ok := r.Fields[name]
		if !ok {
			continue
		}
		body := renderValue(raw)
		if body == "" {
			continue
		}
		sections = append(sections, "### "+FieldTitle(name)+"\n\n"+body)
	}
	if len(sections) == 0 {
		return "", "", ErrNoAnalysis
	}
	return strings.Join(sections, "\n\n"), SourceLegacy, nil
}

// FieldStatus reports whether an expected legacy field carries content.
type FieldStatus struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// Coverage lists the legacy fields expected for the record's form type and
// whether each one has content.
func (r *Record) Coverage() ([]FieldStatus, error) {
	formType, err := ParseFormType(r.FormType)
	if err != nil {
		return nil, err
	}

	fields := LegacyFields(formType)
	statuses := make([]FieldStatus, 0, len(fields))
	for _, name := range fields {
		raw, ok := r.Fields[name]
		statuses = append(statuses, FieldStatus{
			Name:    name,
			Present: ok && renderValue(raw) != "",
		})
	}
	return statuses, nil
}
