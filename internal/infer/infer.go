// Package infer derives the active property set of an import run: the
// property names worth a column in the generated view, judged by the data
// the records actually carry rather than by the nominal database schema.
package infer

import (
	"sort"

	"github.com/takak2166/notion2obsidian/internal/extract"
	"github.com/takak2166/notion2obsidian/internal/models"
)

// ActiveProperties returns, in deterministic first-seen order, every
// non-title property name for which at least one record extracts to a
// non-empty value. The empty string and false count as empty here; false is
// a meaningful value to the extractor but still keeps a column out of the
// view, matching the importer this tool descends from.
func ActiveProperties(records []models.Record, schema models.PropertySchema) []string {
	var active []string
	seen := make(map[string]bool)

	for _, rec := range records {
		names := make([]string, 0, len(rec.Properties))
		for name := range rec.Properties {
			names = append(names, name)
		}
		// Map order is random; sorted names keep column order stable
		// across runs.
		sort.Strings(names)

		for _, name := range names {
			if seen[name] {
				continue
			}
			prop := rec.Properties[name]
			if prop.Type == models.TypeTitle || schema[name] == models.TypeTitle {
				continue
			}
			if carriesValue(extract.Property(prop)) {
				seen[name] = true
				active = append(active, name)
			}
		}
	}
	return active
}

func carriesValue(v extract.Value) bool {
	if v.IsEmpty() {
		return false
	}
	return v != extract.String("") && v != extract.Bool(false)
}
