package notion

import "github.com/jomei/notionapi"

// NotionClient exposes the notionapi services the importer talks to. Page
// content is never traversed, so only search and database access is needed.
//
//go:generate mockgen -source=notion.go -destination=mock_notion/mock_notion.go -package=mock_notion
//go:generate mockgen -destination=mock_notion/mock_notionapi.go -package=mock_notion github.com/jomei/notionapi SearchService,DatabaseService
type NotionClient interface {
	Search() notionapi.SearchService
	Database() notionapi.DatabaseService
}
