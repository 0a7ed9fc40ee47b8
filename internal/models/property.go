package models

// PropertyType is the type tag of a Notion page property.
type PropertyType string

const (
	TypeTitle       PropertyType = "title"
	TypeRichText    PropertyType = "rich_text"
	TypeNumber      PropertyType = "number"
	TypeSelect      PropertyType = "select"
	TypeMultiSelect PropertyType = "multi_select"
	TypeDate        PropertyType = "date"
	TypeCheckbox    PropertyType = "checkbox"
	TypeURL         PropertyType = "url"
	TypeEmail       PropertyType = "email"
	TypePhoneNumber PropertyType = "phone_number"
	TypePeople      PropertyType = "people"
	TypeFiles       PropertyType = "files"
	TypeRelation    PropertyType = "relation"
	TypeFormula     PropertyType = "formula"
	TypeRollup      PropertyType = "rollup"
)

// PropertyValue is one raw page property as returned by the query endpoint.
// Only the payload field matching Type is populated. Number and Checkbox are
// pointers so a null payload stays distinguishable from 0 and false, which
// the notionapi response types flatten away.
//
// Formula and rollup are recursively shaped: a formula unwraps to one more
// scalar payload, a rollup aggregates a sequence of PropertyValues.
type PropertyValue struct {
	ID   string       `json:"id,omitempty"`
	Type PropertyType `json:"type"`

	Title       []RichTextRun  `json:"title,omitempty"`
	RichText    []RichTextRun  `json:"rich_text,omitempty"`
	Number      *float64       `json:"number,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	Date        *DateValue     `json:"date,omitempty"`
	Checkbox    *bool          `json:"checkbox,omitempty"`
	URL         *string        `json:"url,omitempty"`
	Email       *string        `json:"email,omitempty"`
	PhoneNumber *string        `json:"phone_number,omitempty"`
	People      []Person       `json:"people,omitempty"`
	Files       []FileRef      `json:"files,omitempty"`
	Relation    []RelationRef  `json:"relation,omitempty"`
	Formula     *FormulaValue  `json:"formula,omitempty"`
	Rollup      *RollupValue   `json:"rollup,omitempty"`
}

// RichTextRun is one run of a rich text sequence. Notion always fills
// plain_text, so the formatting payload is not carried.
type RichTextRun struct {
	PlainText string `json:"plain_text"`
}

// SelectOption is one chosen option of a select or multi_select property.
type SelectOption struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// DateValue keeps the date payload as the opaque strings Notion sent,
// unparsed and unreformatted.
type DateValue struct {
	Start    string `json:"start"`
	End      string `json:"end,omitempty"`
	TimeZone string `json:"time_zone,omitempty"`
}

// Person is one user reference of a people property.
type Person struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// FileRef is one attachment of a files property. Exactly one of File and
// External is set, matching the file's hosting.
type FileRef struct {
	Name     string    `json:"name,omitempty"`
	File     *FileHost `json:"file,omitempty"`
	External *FileHost `json:"external,omitempty"`
}

// FileHost carries the URL of a hosted or external file.
type FileHost struct {
	URL string `json:"url"`
}

// RelationRef points at one related page.
type RelationRef struct {
	ID string `json:"id"`
}

// FormulaValue is the computed payload of a formula property.
type FormulaValue struct {
	Type    string     `json:"type"`
	String  *string    `json:"string,omitempty"`
	Number  *float64   `json:"number,omitempty"`
	Boolean *bool      `json:"boolean,omitempty"`
	Date    *DateValue `json:"date,omitempty"`
}

// RollupValue is the aggregated payload of a rollup property.
type RollupValue struct {
	Type   string          `json:"type"`
	Number *float64        `json:"number,omitempty"`
	Date   *DateValue      `json:"date,omitempty"`
	Array  []PropertyValue `json:"array,omitempty"`
}
