package base

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRender(t *testing.T) {
	out, err := Render("Tasks", []string{"Count", "Tags"})
	require.NoError(t, err)

	var doc struct {
		Properties map[string]struct {
			DisplayName string `yaml:"displayName"`
		} `yaml:"properties"`
		Views []struct {
			Type    string `yaml:"type"`
			Name    string `yaml:"name"`
			Filters struct {
				And []string `yaml:"and"`
			} `yaml:"filters"`
			Order []string `yaml:"order"`
		} `yaml:"views"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))

	// Active properties plus the three metadata columns.
	require.Len(t, doc.Properties, 5)
	assert.Equal(t, "Count", doc.Properties["note.Count"].DisplayName)
	assert.Equal(t, "Tags", doc.Properties["note.Tags"].DisplayName)
	assert.Equal(t, "ID", doc.Properties["note.id"].DisplayName)
	assert.Equal(t, "Created at", doc.Properties["note.createdAt"].DisplayName)
	assert.Equal(t, "Updated at", doc.Properties["note.updatedAt"].DisplayName)

	require.Len(t, doc.Views, 2)

	table := doc.Views[0]
	assert.Equal(t, "table", table.Type)
	assert.Equal(t, "Tasks", table.Name)
	assert.Equal(t, []string{
		`file.ext == "md"`,
		`note.id != ""`,
		"file.inFolder(this.file.folder)",
	}, table.Filters.And)
	assert.Equal(t, []string{
		"file.name",
		"note.Count",
		"note.Tags",
		"note.createdAt",
		"note.updatedAt",
	}, table.Order)

	cards := doc.Views[1]
	assert.Equal(t, "cards", cards.Type)
	assert.Empty(t, cards.Order)
}

func TestRenderCapsOrderedProperties(t *testing.T) {
	var active []string
	for i := 0; i < 12; i++ {
		active = append(active, fmt.Sprintf("P%02d", i))
	}

	out, err := Render("Big", active)
	require.NoError(t, err)

	var doc struct {
		Views []struct {
			Order []string `yaml:"order"`
		} `yaml:"views"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))

	// file.name + first 8 properties + two timestamps.
	require.Len(t, doc.Views[0].Order, 11)
	assert.Equal(t, "note.P07", doc.Views[0].Order[8])
	assert.NotContains(t, doc.Views[0].Order, "note.P08")
}

func TestRenderNoActiveProperties(t *testing.T) {
	out, err := Render("", nil)
	require.NoError(t, err)

	var doc struct {
		Properties map[string]any `yaml:"properties"`
		Views      []struct {
			Name  string   `yaml:"name"`
			Order []string `yaml:"order"`
		} `yaml:"views"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))

	assert.Len(t, doc.Properties, 3)
	assert.Equal(t, "Table", doc.Views[0].Name)
	assert.Equal(t, []string{"file.name", "note.createdAt", "note.updatedAt"}, doc.Views[0].Order)
}

func TestRenderDeterministic(t *testing.T) {
	a, err := Render("Tasks", []string{"A", "B", "C"})
	require.NoError(t, err)
	b, err := Render("Tasks", []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
