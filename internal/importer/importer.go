// Package importer drives one import run: paginate the remote database,
// infer the active property set, serialize every record to a markdown
// document and emit the view-schema document.
package importer

import (
	"context"
	"fmt"

	"github.com/takak2166/notion2obsidian/internal/base"
	"github.com/takak2166/notion2obsidian/internal/convert"
	"github.com/takak2166/notion2obsidian/internal/infer"
	"github.com/takak2166/notion2obsidian/internal/logger"
	"github.com/takak2166/notion2obsidian/internal/models"
	"github.com/takak2166/notion2obsidian/internal/vault"
)

// Source provides remote database access.
type Source interface {
	FetchDatabase(ctx context.Context, id string) (models.Database, models.PropertySchema, error)
	FetchPage(ctx context.Context, databaseID, cursor string) (*models.PageBatch, error)
}

// Vault persists produced documents. Each call is assumed atomic.
type Vault interface {
	WriteDocument(folder, name string, content []byte) error
	WriteViewSchema(folder, name string, content []byte) error
}

// Reporter receives progress notifications. Purely observational: nothing a
// reporter does changes control flow.
type Reporter interface {
	Status(text string)
	Progress(done, total int)
	RecordDone(name string)
	Failure(name string, err error)
}

// Importer runs the pipeline for one database at a time. Execution is
// strictly sequential: one page fetch in flight, one record converted at a
// time, so memory stays bounded and the API rate limit is respected.
// Cancellation is cooperative via ctx and checked before each page fetch
// and before each record conversion; work in flight always completes.
type Importer struct {
	source   Source
	vault    Vault
	reporter Reporter
}

// New creates an Importer. A nil reporter falls back to logging.
func New(source Source, v Vault, reporter Reporter) *Importer {
	if reporter == nil {
		reporter = LogReporter{}
	}
	return &Importer{source: source, vault: v, reporter: reporter}
}

// Run executes one import. A transport failure aborts the whole run; a
// failure on a single record skips that record and continues. Documents
// written before an abort stay in place.
func (imp *Importer) Run(ctx context.Context, req models.ImportRequest) (*models.ImportResult, error) {
	db, schema, err := imp.source.FetchDatabase(ctx, req.DatabaseID)
	if err != nil {
		return nil, fmt.Errorf("import database %s: %w", req.DatabaseID, err)
	}

	folder := req.Folder
	if folder == "" {
		folder = vault.SafeName(db.DisplayTitle())
	}

	records, err := imp.fetchAllRecords(ctx, req.DatabaseID)
	if err != nil {
		return nil, fmt.Errorf("import database %q: %w", db.DisplayTitle(), err)
	}

	active := infer.ActiveProperties(records, schema)

	result := &models.ImportResult{Fetched: len(records)}
	used := make(map[string]int)

	for _, rec := range records {
		if ctx.Err() != nil {
			imp.reporter.Status("Import cancelled")
			break
		}

		title := convert.Title(rec, schema)
		doc, err := convert.Document(rec, title)
		if err != nil {
			logger.Error("Failed to convert record", err, map[string]interface{}{
				"record": rec.ID,
			})
			imp.reporter.Failure(title, err)
			continue
		}

		name := docName(used, vault.SafeName(title))
		if err := imp.vault.WriteDocument(folder, name, []byte(doc)); err != nil {
			logger.Error("Failed to write document", err, map[string]interface{}{
				"record": rec.ID,
				"file":   name,
			})
			imp.reporter.Failure(name, err)
			continue
		}

		result.Files = append(result.Files, name)
		imp.reporter.RecordDone(name)
		imp.reporter.Progress(len(result.Files), len(records))
	}

	if req.EmitViewSchema && ctx.Err() == nil {
		name := vault.SafeName(db.DisplayTitle()) + ".base"
		content, err := base.Render(db.DisplayTitle(), active)
		if err == nil {
			err = imp.vault.WriteViewSchema(folder, name, content)
		}
		if err != nil {
			// The documents already written still count as successes;
			// only the view schema is missing.
			logger.Error("Failed to write view schema", err, map[string]interface{}{
				"database": db.DisplayTitle(),
			})
			imp.reporter.Failure(name, err)
		} else {
			result.ViewSchemaFile = name
		}
	}

	logger.Info("Import completed", map[string]interface{}{
		"database":      db.DisplayTitle(),
		"fetched":       result.Fetched,
		"documents":     len(result.Files),
		"failure_count": result.Fetched - len(result.Files),
	})
	return result, nil
}

// fetchAllRecords drives the cursor loop, accumulating records in arrival
// order. A transport failure propagates immediately; cancellation observed
// before a fetch ends the loop without error, returning what was
// accumulated so far.
func (imp *Importer) fetchAllRecords(ctx context.Context, databaseID string) ([]models.Record, error) {
	var records []models.Record
	cursor := ""
	pages := 0

	for {
		if ctx.Err() != nil {
			return records, nil
		}

		batch, err := imp.source.FetchPage(ctx, databaseID, cursor)
		if err != nil {
			return nil, err
		}

		records = append(records, batch.Records...)
		pages++
		imp.reporter.Status(fmt.Sprintf("Fetched page %d (%d records)", pages, len(records)))

		if !batch.HasMore {
			return records, nil
		}
		cursor = batch.NextCursor
	}
}

// docName suffixes duplicate stems so two records with the same title both
// produce a document.
func docName(used map[string]int, stem string) string {
	n := used[stem]
	used[stem]++
	if n == 0 {
		return stem + ".md"
	}
	return fmt.Sprintf("%s (%d).md", stem, n)
}

// LogReporter reports progress through the process logger.
type LogReporter struct{}

func (LogReporter) Status(text string) {
	logger.Info(text)
}

func (LogReporter) Progress(done, total int) {
	logger.Debug("Progress", map[string]interface{}{
		"done":  done,
		"total": total,
	})
}

func (LogReporter) RecordDone(name string) {
	logger.Debug("Imported record", map[string]interface{}{
		"file": name,
	})
}

func (LogReporter) Failure(name string, err error) {
	logger.Error("Import failure", err, map[string]interface{}{
		"name": name,
	})
}
