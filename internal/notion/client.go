package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/jomei/notionapi"
	"github.com/takak2166/notion2obsidian/internal/logger"
	"github.com/takak2166/notion2obsidian/internal/models"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"
	queryPageSize  = 100
)

// Client wraps Notion API access for the import pipeline.
//
// Database search and schema reads go through notionapi. The query endpoint
// is called over HTTP with our own decoding: notionapi's page property
// types collapse a null number or checkbox into 0/false, and the extractor
// has to keep those apart.
type Client struct {
	client  NotionClient
	httpc   *http.Client
	token   string
	baseURL string
}

// New creates a new Notion client from NOTION_API_KEY
func New() (*Client, error) {
	apiKey := os.Getenv("NOTION_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("NOTION_API_KEY is not set")
	}
	return NewWithToken(apiKey), nil
}

// NewWithToken creates a new Notion client with an explicit API token
func NewWithToken(token string) *Client {
	notionClient := notionapi.NewClient(notionapi.Token(token))
	return &Client{
		client:  newNotionClientAdapter(notionClient),
		httpc:   http.DefaultClient,
		token:   token,
		baseURL: defaultBaseURL,
	}
}

// SearchDatabases lists every database the integration can reach, following
// the search cursor until exhausted.
func (c *Client) SearchDatabases(ctx context.Context) ([]models.Database, error) {
	var out []models.Database
	var cursor notionapi.Cursor

	for {
		query := &notionapi.SearchRequest{
			StartCursor: cursor,
			Filter: notionapi.SearchFilter{
				Property: "object",
				Value:    "database",
			},
		}

		results, err := c.client.Search().Do(ctx, query)
		if err != nil {
			return nil, transportErr("search databases", err)
		}

		for _, result := range results.Results {
			if db, ok := result.(*notionapi.Database); ok {
				out = append(out, toDatabase(db))
			}
		}

		if !results.HasMore {
			break
		}
		cursor = results.NextCursor
	}

	logger.Debug("Listed databases", map[string]interface{}{
		"count": len(out),
	})
	return out, nil
}

// FetchDatabase returns the identity and declared property schema of one
// database.
func (c *Client) FetchDatabase(ctx context.Context, id string) (models.Database, models.PropertySchema, error) {
	db, err := c.client.Database().Get(ctx, notionapi.DatabaseID(id))
	if err != nil {
		return models.Database{}, nil, transportErr("get database", err)
	}

	schema := make(models.PropertySchema, len(db.Properties))
	for name, cfg := range db.Properties {
		schema[name] = models.PropertyType(cfg.GetType())
	}
	return toDatabase(db), schema, nil
}

type queryRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size"`
}

type queryResponse struct {
	Results    []models.Record `json:"results"`
	HasMore    bool            `json:"has_more"`
	NextCursor string          `json:"next_cursor"`
}

// FetchPage fetches one page of query results for the given database,
// starting at cursor ("" for the first page).
func (c *Client) FetchPage(ctx context.Context, databaseID, cursor string) (*models.PageBatch, error) {
	body, err := json.Marshal(queryRequest{StartCursor: cursor, PageSize: queryPageSize})
	if err != nil {
		return nil, transportErr("encode query", err)
	}

	url := fmt.Sprintf("%s/v1/databases/%s/query", c.baseURL, databaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, transportErr("build query request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, transportErr("query database", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &TransportError{
			Op:         "query database",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", strings.TrimSpace(string(msg))),
		}
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, transportErr("decode query response", err)
	}

	logger.Debug("Fetched database page", map[string]interface{}{
		"database": databaseID,
		"records":  len(decoded.Results),
		"has_more": decoded.HasMore,
	})

	return &models.PageBatch{
		Records:    decoded.Results,
		HasMore:    decoded.HasMore,
		NextCursor: decoded.NextCursor,
	}, nil
}

func toDatabase(db *notionapi.Database) models.Database {
	names := make([]string, 0, len(db.Properties))
	for name := range db.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	return models.Database{
		ID:            string(db.ID),
		Title:         richTextPlain(db.Title),
		PropertyNames: names,
	}
}

func richTextPlain(runs []notionapi.RichText) string {
	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(run.PlainText)
	}
	return strings.TrimSpace(sb.String())
}
