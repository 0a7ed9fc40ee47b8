package models

// Record is one fetched page of a database. The timestamps are kept as the
// opaque strings the API returned.
type Record struct {
	ID         string                   `json:"id"`
	CreatedAt  string                   `json:"created_time"`
	UpdatedAt  string                   `json:"last_edited_time"`
	Properties map[string]PropertyValue `json:"properties"`
}

// PageBatch is one page of query results plus its continuation state.
type PageBatch struct {
	Records    []Record
	HasMore    bool
	NextCursor string
}
