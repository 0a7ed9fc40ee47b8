// Package base emits the generated Obsidian base document that describes
// how to browse an imported folder: one column per active property plus the
// import metadata columns, a folder-scoped table view and a cards view.
package base

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// metadata columns every import carries, independent of the database schema.
var metadataColumns = []column{
	{key: "id", display: "ID"},
	{key: "createdAt", display: "Created at"},
	{key: "updatedAt", display: "Updated at"},
}

// maxOrderedProperties caps how many active properties join the table
// view's sort order after the file name.
const maxOrderedProperties = 8

type column struct {
	key     string
	display string
}

type document struct {
	Properties map[string]property `yaml:"properties"`
	Views      []view              `yaml:"views"`
}

type property struct {
	DisplayName string `yaml:"displayName"`
}

type view struct {
	Type    string   `yaml:"type"`
	Name    string   `yaml:"name"`
	Filters *filters `yaml:"filters,omitempty"`
	Order   []string `yaml:"order,omitempty"`
}

type filters struct {
	And []string `yaml:"and"`
}

// Render produces the base document for one imported database. active is
// the inferred property list in column order.
func Render(databaseTitle string, active []string) ([]byte, error) {
	props := make(map[string]property, len(active)+len(metadataColumns))
	for _, name := range active {
		props[noteKey(name)] = property{DisplayName: name}
	}
	for _, col := range metadataColumns {
		props[noteKey(col.key)] = property{DisplayName: col.display}
	}

	order := []string{"file.name"}
	for i, name := range active {
		if i == maxOrderedProperties {
			break
		}
		order = append(order, noteKey(name))
	}
	order = append(order, noteKey("createdAt"), noteKey("updatedAt"))

	tableName := databaseTitle
	if tableName == "" {
		tableName = "Table"
	}

	doc := document{
		Properties: props,
		Views: []view{
			{
				Type: "table",
				Name: tableName,
				Filters: &filters{And: []string{
					`file.ext == "md"`,
					`note.id != ""`,
					"file.inFolder(this.file.folder)",
				}},
				Order: order,
			},
			{
				Type: "cards",
				Name: "Cards",
			},
		},
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal base document for %q: %w", databaseTitle, err)
	}
	return out, nil
}

func noteKey(name string) string {
	return "note." + name
}
