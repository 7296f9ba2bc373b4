package filing

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormType is an SEC form type with a known analysis layout.
type FormType string

const (
	Form10K FormType = "10-K"
	Form10Q FormType = "10-Q"
	Form8K  FormType = "8-K"
	FormS1  FormType = "S-1"
)

// legacyFields lists, per form type, the analysis fields that predate the
// unified analysis, in display order.
var legacyFields = map[FormType][]string{
	Form10K: {
		"auditor_opinion", "business_segments", "growth_drivers",
		"management_outlook", "market_impact_10k", "risk_summary",
		"strategic_adjustments", "three_year_financials",
	},
	Form10Q: {
		"beat_miss_analysis", "cost_structure", "expectations_comparison",
		"growth_decline_analysis", "guidance_update", "management_tone_analysis",
		"market_impact_10q",
	},
	Form8K: {
		"event_nature_analysis", "event_timeline", "item_type",
		"items", "key_considerations", "market_impact_analysis",
	},
	FormS1: {
		"company_overview", "competitive_moat_analysis", "financial_summary",
		"growth_path_analysis", "ipo_details", "risk_categories",
	},
}

// ParseFormType normalizes a form type such as "10k" or "s-1".
func ParseFormType(s string) (FormType, error) {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	norm = strings.ReplaceAll(norm, "-", "")
	switch norm {
	case "10K":
		return Form10K, nil
	case "10Q":
		return Form10Q, nil
	case "8K":
		return Form8K, nil
	case "S1":
		return FormS1, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormType, s)
	}
}

// FormTypes returns all supported form types.
func FormTypes() []FormType {
	return []FormType{Form10K, Form10Q, Form8K, FormS1}
}

// LegacyFields returns the legacy analysis fields for a form type.
func LegacyFields(ft FormType) []string {
	fields := legacyFields[ft]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// FieldTitle turns a field name like "market_impact_10k" into "Market Impact 10k".
func FieldTitle(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// renderValue turns a raw legacy field into annotated text. Strings are
// kept, lists become one paragraph per item, and objects become one
// "__Key__: value" line per key in sorted order. Empty values yield "".
func renderValue(raw json.RawMessage) string {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}

	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case []interface{}:
		var items []string
		for _, item := range val {
			if s := strings.TrimSpace(inlineValue(item)); s != "" {
				items = append(items, s)
			}
		}
		return strings.Join(items, "\n\n")
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var lines []string
		for _, k := range keys {
			s := strings.TrimSpace(inlineValue(val[k]))
			if s == "" {
				continue
			}
			lines = append(lines, "__"+FieldTitle(k)+"__: "+s)
		}
		return strings.Join(lines, "\n")
	default:
		return inlineValue(val)
	}
}

// inlineValue formats a nested value on a single line.
func inlineValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.Join(strings.Fields(val), " ")
	case float64:
		return formatScalar(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

func formatScalar(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
