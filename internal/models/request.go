package models

// ImportRequest describes one import run. It is built once before the
// pipeline starts; the API token binds at client construction instead of
// travelling with the request.
type ImportRequest struct {
	DatabaseID     string
	Folder         string
	EmitViewSchema bool
}

// ImportResult reports what one run produced.
type ImportResult struct {
	// Files lists the produced document names in production order.
	Files []string
	// Fetched is the number of records the paginator returned.
	Fetched int
	// ViewSchemaFile is the name of the emitted view-schema document, empty
	// when emission was disabled or its write failed.
	ViewSchemaFile string
}
