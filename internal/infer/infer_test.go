package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/takak2166/notion2obsidian/internal/models"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestActiveProperties(t *testing.T) {
	schema := models.PropertySchema{
		"Name":  models.TypeTitle,
		"Count": models.TypeNumber,
		"Done":  models.TypeCheckbox,
		"Tags":  models.TypeMultiSelect,
		"Blank": models.TypeRichText,
	}

	records := []models.Record{
		{
			ID: "a",
			Properties: map[string]models.PropertyValue{
				"Name": {Type: models.TypeTitle, Title: []models.RichTextRun{{PlainText: "A"}}},
				// 0 is a value, so Count stays active.
				"Count": {Type: models.TypeNumber, Number: floatPtr(0)},
				"Done":  {Type: models.TypeCheckbox, Checkbox: boolPtr(false)},
				"Tags":  {Type: models.TypeMultiSelect},
				"Blank": {Type: models.TypeRichText},
			},
		},
		{
			ID: "b",
			Properties: map[string]models.PropertyValue{
				"Name":  {Type: models.TypeTitle, Title: []models.RichTextRun{{PlainText: "B"}}},
				"Count": {Type: models.TypeNumber},
				"Done":  {Type: models.TypeCheckbox, Checkbox: boolPtr(false)},
				"Tags": {Type: models.TypeMultiSelect, MultiSelect: []models.SelectOption{
					{Name: "urgent"},
				}},
				"Blank": {Type: models.TypeRichText, RichText: []models.RichTextRun{{PlainText: "  "}}},
			},
		},
	}

	active := ActiveProperties(records, schema)

	// Count survives through the 0 on record a; Tags becomes active on
	// record b; Done is all-false and excluded; Blank never carries a
	// value; the title property never appears.
	assert.Equal(t, []string{"Count", "Tags"}, active)
}

func TestActivePropertiesTrueCheckbox(t *testing.T) {
	records := []models.Record{
		{
			ID: "a",
			Properties: map[string]models.PropertyValue{
				"Done": {Type: models.TypeCheckbox, Checkbox: boolPtr(true)},
			},
		},
	}
	active := ActiveProperties(records, models.PropertySchema{"Done": models.TypeCheckbox})
	assert.Equal(t, []string{"Done"}, active)
}

func TestActivePropertiesOrderIsFirstSeen(t *testing.T) {
	records := []models.Record{
		{
			ID: "a",
			Properties: map[string]models.PropertyValue{
				"Zeta": {Type: models.TypeRichText, RichText: []models.RichTextRun{{PlainText: "z"}}},
			},
		},
		{
			ID: "b",
			Properties: map[string]models.PropertyValue{
				"Alpha": {Type: models.TypeRichText, RichText: []models.RichTextRun{{PlainText: "a"}}},
				"Zeta":  {Type: models.TypeRichText, RichText: []models.RichTextRun{{PlainText: "z"}}},
			},
		},
	}
	active := ActiveProperties(records, models.PropertySchema{})

	// Zeta was seen on the first record, so it keeps its slot even though
	// Alpha sorts before it.
	assert.Equal(t, []string{"Zeta", "Alpha"}, active)
}

func TestActivePropertiesEmpty(t *testing.T) {
	assert.Empty(t, ActiveProperties(nil, models.PropertySchema{}))
	assert.Empty(t, ActiveProperties([]models.Record{{ID: "a"}}, models.PropertySchema{}))
}
