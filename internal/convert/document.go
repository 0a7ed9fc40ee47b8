// Package convert serializes one fetched record into a markdown document
// with a frontmatter block and a level-1 heading.
package convert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/takak2166/notion2obsidian/internal/extract"
	"github.com/takak2166/notion2obsidian/internal/models"
)

// quoteThreshold is the frontmatter value length above which a value is
// wrapped in double quotes regardless of content.
const quoteThreshold = 100

// Title resolves the display title of a record: the concatenated text runs
// of the schema's title property, or the placeholder when absent or empty.
func Title(rec models.Record, schema models.PropertySchema) string {
	name, ok := schema.TitleProperty()
	if !ok {
		return models.UntitledPlaceholder
	}
	prop, ok := rec.Properties[name]
	if !ok {
		return models.UntitledPlaceholder
	}
	title := extract.PlainText(prop.Title)
	if title == "" {
		return models.UntitledPlaceholder
	}
	return title
}

// Document renders the record as frontmatter plus heading. The frontmatter
// carries id, createdAt and updatedAt, then every non-title property whose
// extracted value is non-empty, in sorted name order so re-runs are
// byte-identical.
func Document(rec models.Record, title string) (string, error) {
	if rec.ID == "" {
		return "", fmt.Errorf("record has no id")
	}

	names := make([]string, 0, len(rec.Properties))
	for name := range rec.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("---\n")
	writeField(&sb, "id", rec.ID)
	writeField(&sb, "createdAt", rec.CreatedAt)
	writeField(&sb, "updatedAt", rec.UpdatedAt)

	for _, name := range names {
		prop := rec.Properties[name]
		if prop.Type == models.TypeTitle {
			continue
		}
		v := extract.Property(prop)
		if v.IsEmpty() {
			continue
		}
		writeField(&sb, name, v.Text())
	}

	sb.WriteString("---\n\n")
	sb.WriteString("# ")
	sb.WriteString(title)
	sb.WriteString("\n")

	return sb.String(), nil
}

func writeField(sb *strings.Builder, key, value string) {
	sb.WriteString(key)
	sb.WriteString(": ")
	sb.WriteString(frontmatterValue(value))
	sb.WriteString("\n")
}

// frontmatterValue makes a raw value safe for the line- and colon-sensitive
// frontmatter syntax: newlines collapse to single spaces, double quotes are
// escaped, and the value is quoted when it held a newline, contains a colon
// or grows past the length threshold.
func frontmatterValue(raw string) string {
	hadNewline := strings.ContainsAny(raw, "\n\r")

	s := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(raw)
	s = strings.ReplaceAll(s, `"`, `\"`)

	if hadNewline || strings.Contains(s, ":") || len(s) > quoteThreshold {
		return `"` + s + `"`
	}
	return s
}
