// Package extract normalizes raw Notion page properties into plain scalar
// values. Extraction is pure and total: malformed or unknown payloads
// degrade to the empty value instead of failing, so one broken property
// cannot abort an import.
package extract

import (
	"strings"

	"github.com/takak2166/notion2obsidian/internal/models"
)

const listSeparator = ", "

// Property normalizes one raw property payload, dispatching on its type
// tag. Formula and rollup payloads are extracted recursively.
func Property(p models.PropertyValue) Value {
	switch p.Type {
	case models.TypeTitle:
		return stringOrEmpty(PlainText(p.Title))
	case models.TypeRichText:
		return stringOrEmpty(PlainText(p.RichText))
	case models.TypeNumber:
		if p.Number == nil {
			return Value{}
		}
		return Number(*p.Number)
	case models.TypeSelect:
		if p.Select == nil {
			return Value{}
		}
		return stringOrEmpty(p.Select.Name)
	case models.TypeMultiSelect:
		names := make([]string, 0, len(p.MultiSelect))
		for _, opt := range p.MultiSelect {
			names = append(names, opt.Name)
		}
		return joined(names)
	case models.TypeDate:
		if p.Date == nil {
			return Value{}
		}
		// End date and time zone are discarded.
		return stringOrEmpty(p.Date.Start)
	case models.TypeCheckbox:
		if p.Checkbox == nil {
			return Value{}
		}
		return Bool(*p.Checkbox)
	case models.TypeURL:
		return trimmedString(p.URL)
	case models.TypeEmail:
		return trimmedString(p.Email)
	case models.TypePhoneNumber:
		return trimmedString(p.PhoneNumber)
	case models.TypePeople:
		names := make([]string, 0, len(p.People))
		for _, person := range p.People {
			name := person.Name
			if name == "" {
				name = person.ID
			}
			names = append(names, name)
		}
		return joined(names)
	case models.TypeFiles:
		names := make([]string, 0, len(p.Files))
		for _, f := range p.Files {
			names = append(names, fileLabel(f))
		}
		return joined(names)
	case models.TypeRelation:
		ids := make([]string, 0, len(p.Relation))
		for _, rel := range p.Relation {
			ids = append(ids, rel.ID)
		}
		return joined(ids)
	case models.TypeFormula:
		if p.Formula == nil {
			return Value{}
		}
		return formula(*p.Formula)
	case models.TypeRollup:
		if p.Rollup == nil {
			return Value{}
		}
		return rollup(*p.Rollup)
	default:
		return Value{}
	}
}

// PlainText concatenates the plain_text of every run, in order, and trims
// the result.
func PlainText(runs []models.RichTextRun) string {
	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(run.PlainText)
	}
	return strings.TrimSpace(sb.String())
}

// formula unwraps one computed payload. The payload is itself property
// shaped, so this is the same dispatch one level down.
func formula(f models.FormulaValue) Value {
	switch f.Type {
	case "string":
		if f.String == nil {
			return Value{}
		}
		return stringOrEmpty(strings.TrimSpace(*f.String))
	case "number":
		if f.Number == nil {
			return Value{}
		}
		return Number(*f.Number)
	case "boolean":
		if f.Boolean == nil {
			return Value{}
		}
		return Bool(*f.Boolean)
	case "date":
		if f.Date == nil {
			return Value{}
		}
		return stringOrEmpty(f.Date.Start)
	default:
		return Value{}
	}
}

// rollup extracts every element of the aggregated sequence and joins the
// non-empty results.
func rollup(r models.RollupValue) Value {
	switch r.Type {
	case "number":
		if r.Number == nil {
			return Value{}
		}
		return Number(*r.Number)
	case "date":
		if r.Date == nil {
			return Value{}
		}
		return stringOrEmpty(r.Date.Start)
	case "array":
		parts := make([]string, 0, len(r.Array))
		for _, elem := range r.Array {
			if v := Property(elem); !v.IsEmpty() {
				parts = append(parts, v.Text())
			}
		}
		return stringOrEmpty(strings.Join(parts, listSeparator))
	default:
		return Value{}
	}
}

func fileLabel(f models.FileRef) string {
	if f.Name != "" {
		return f.Name
	}
	if f.File != nil && f.File.URL != "" {
		return f.File.URL
	}
	if f.External != nil {
		return f.External.URL
	}
	return ""
}

func joined(parts []string) Value {
	if len(parts) == 0 {
		return Value{}
	}
	return stringOrEmpty(strings.Join(parts, listSeparator))
}

func trimmedString(s *string) Value {
	if s == nil {
		return Value{}
	}
	return stringOrEmpty(strings.TrimSpace(*s))
}

func stringOrEmpty(s string) Value {
	if s == "" {
		return Value{}
	}
	return String(s)
}
