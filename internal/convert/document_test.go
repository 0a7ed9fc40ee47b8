package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takak2166/notion2obsidian/internal/models"
	"gopkg.in/yaml.v3"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

var testSchema = models.PropertySchema{
	"Name":  models.TypeTitle,
	"Count": models.TypeNumber,
	"Done":  models.TypeCheckbox,
	"Notes": models.TypeRichText,
}

func testRecord() models.Record {
	return models.Record{
		ID:        "rec_1",
		CreatedAt: "2023-04-01T10:00:00.000Z",
		UpdatedAt: "2023-04-02T11:30:00.000Z",
		Properties: map[string]models.PropertyValue{
			"Name": {
				Type:  models.TypeTitle,
				Title: []models.RichTextRun{{PlainText: "My Page"}},
			},
			"Count": {Type: models.TypeNumber, Number: floatPtr(0)},
			"Done":  {Type: models.TypeCheckbox, Checkbox: boolPtr(false)},
			"Notes": {Type: models.TypeRichText, RichText: []models.RichTextRun{
				{PlainText: "hello"},
			}},
		},
	}
}

func TestTitle(t *testing.T) {
	rec := testRecord()
	assert.Equal(t, "My Page", Title(rec, testSchema))

	// Empty title falls back to the placeholder.
	rec.Properties["Name"] = models.PropertyValue{Type: models.TypeTitle}
	assert.Equal(t, "Untitled", Title(rec, testSchema))

	// So does a schema without a title property.
	assert.Equal(t, "Untitled", Title(rec, models.PropertySchema{}))
}

func TestDocument(t *testing.T) {
	rec := testRecord()
	doc, err := Document(rec, Title(rec, testSchema))
	require.NoError(t, err)

	expected := strings.Join([]string{
		"---",
		"id: rec_1",
		`createdAt: "2023-04-01T10:00:00.000Z"`,
		`updatedAt: "2023-04-02T11:30:00.000Z"`,
		"Count: 0",
		"Done: false",
		"Notes: hello",
		"---",
		"",
		"# My Page",
		"",
	}, "\n")
	assert.Equal(t, expected, doc)
}

func TestDocumentSkipsEmptyProperties(t *testing.T) {
	rec := testRecord()
	rec.Properties["Count"] = models.PropertyValue{Type: models.TypeNumber} // null
	rec.Properties["Notes"] = models.PropertyValue{Type: models.TypeRichText}

	doc, err := Document(rec, "My Page")
	require.NoError(t, err)
	assert.NotContains(t, doc, "Count:")
	assert.NotContains(t, doc, "Notes:")
	assert.Contains(t, doc, "Done: false")
}

func TestDocumentIdempotent(t *testing.T) {
	rec := testRecord()
	first, err := Document(rec, "My Page")
	require.NoError(t, err)
	second, err := Document(rec, "My Page")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDocumentRejectsRecordWithoutID(t *testing.T) {
	_, err := Document(models.Record{}, "x")
	assert.Error(t, err)
}

func TestFrontmatterValue(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "plain value stays unquoted",
			in:       "hello world",
			expected: "hello world",
		},
		{
			name:     "colon forces quotes",
			in:       "key: value",
			expected: `"key: value"`,
		},
		{
			name:     "newline collapses and forces quotes",
			in:       "line one\nline two",
			expected: `"line one line two"`,
		},
		{
			name:     "carriage return pair collapses to one space",
			in:       "a\r\nb",
			expected: `"a b"`,
		},
		{
			name:     "double quotes escaped but not quoted",
			in:       `say "hi"`,
			expected: `say \"hi\"`,
		},
		{
			name:     "long value quoted",
			in:       strings.Repeat("a", 101),
			expected: `"` + strings.Repeat("a", 101) + `"`,
		},
		{
			name:     "boundary length stays unquoted",
			in:       strings.Repeat("a", 100),
			expected: strings.Repeat("a", 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, frontmatterValue(tt.in))
		})
	}
}

// Round trip: the frontmatter block must parse as YAML and give back the
// collapsed, unescaped value.
func TestFrontmatterRoundTrip(t *testing.T) {
	rec := models.Record{
		ID:        "rec_rt",
		CreatedAt: "2023-04-01T10:00:00.000Z",
		UpdatedAt: "2023-04-02T11:30:00.000Z",
		Properties: map[string]models.PropertyValue{
			"Tricky": {Type: models.TypeRichText, RichText: []models.RichTextRun{
				{PlainText: "before: after\nsecond line"},
			}},
			"Quoted": {Type: models.TypeRichText, RichText: []models.RichTextRun{
				{PlainText: `a "quoted: thing"`},
			}},
		},
	}

	doc, err := Document(rec, "RT")
	require.NoError(t, err)

	parts := strings.SplitN(doc, "---", 3)
	require.Len(t, parts, 3)

	var parsed map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &parsed))

	assert.Equal(t, "rec_rt", parsed["id"])
	assert.Equal(t, "2023-04-01T10:00:00.000Z", parsed["createdAt"])
	assert.Equal(t, "before: after second line", parsed["Tricky"])
	assert.Equal(t, `a "quoted: thing"`, parsed["Quoted"])
}
