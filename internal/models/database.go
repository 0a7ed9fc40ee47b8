package models

// UntitledPlaceholder is used wherever a database or page has no title.
const UntitledPlaceholder = "Untitled"

// Database identifies a remote Notion database
type Database struct {
	ID            string
	Title         string
	PropertyNames []string
}

// DisplayTitle returns the database title, falling back to the placeholder
func (d Database) DisplayTitle() string {
	if d.Title == "" {
		return UntitledPlaceholder
	}
	return d.Title
}

// PropertySchema maps a property name to its declared type tag
type PropertySchema map[string]PropertyType

// TitleProperty returns the name of the schema's title property, if any
func (s PropertySchema) TitleProperty() (string, bool) {
	for name, typ := range s {
		if typ == TypeTitle {
			return name, true
		}
	}
	return "", false
}
