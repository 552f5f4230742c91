// Package docs manages the imported Document set: importing statements,
// deleting them, and exposing the flattened record set for aggregation.
package docs

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/spendview-dev/spendview/internal/auditlog"
	"github.com/spendview-dev/spendview/internal/model"
	"github.com/spendview-dev/spendview/internal/statement"
	"github.com/spendview-dev/spendview/internal/store"
)

// ErrNotFound is returned when a document ID does not exist.
var ErrNotFound = errors.New("document not found")

// Service provides business logic for the Document lifecycle.
type Service struct {
	store   store.Store
	builder *statement.Builder
	dataDir string // audit log location; empty disables the audit trail
	logger  zerolog.Logger
	now     func() time.Time
}

// NewService creates a document Service.
func NewService(s store.Store, builder *statement.Builder, dataDir string, logger zerolog.Logger) *Service {
	return &Service{
		store:   s,
		builder: builder,
		dataDir: dataDir,
		logger:  logger,
		now:     time.Now,
	}
}

// Import parses one statement, appends the resulting Document to the stored
// set, and persists it. The Document's records are fixed at this point;
// re-importing the same file produces a new Document.
func (s *Service) Import(filename string, r io.Reader) (model.Document, statement.Stats, error) {
	docID := uuid.NewString()

	records, stats, err := s.builder.Build(r, docID)
	if err != nil {
		return model.Document{}, stats, fmt.Errorf("importing %s: %w", filename, err)
	}

	doc := model.Document{
		ID:         docID,
		Filename:   filename,
		ImportedAt: s.now(),
		Records:    records,
	}

	existing, err := s.store.Load()
	if err != nil {
		return model.Document{}, stats, err
	}
	if err := s.store.Save(append(existing, doc)); err != nil {
		return model.Document{}, stats, err
	}

	s.audit(auditlog.ActionImport, doc)
	s.logger.Info().
		Str("document", doc.ID).
		Str("filename", filename).
		Int("imported", stats.Imported).
		Int("skipped", stats.Skipped()).
		Msg("statement imported")

	return doc, stats, nil
}

// Delete removes a Document and discards its Records.
func (s *Service) Delete(id string) error {
	docs, err := s.store.Load()
	if err != nil {
		return err
	}

	kept := docs[:0:0]
	var deleted *model.Document
	for _, d := range docs {
		if d.ID == id {
			d := d
			deleted = &d
			continue
		}
		kept = append(kept, d)
	}
	if deleted == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err := s.store.Save(kept); err != nil {
		return err
	}

	s.audit(auditlog.ActionDelete, *deleted)
	s.logger.Info().Str("document", id).Msg("document deleted")
	return nil
}

// List returns all imported Documents.
func (s *Service) List() ([]model.Document, error) {
	return s.store.Load()
}

// Records returns the flattened record set across all Documents, the input
// the aggregators and the exporter consume.
func (s *Service) Records() ([]model.Record, error) {
	docs, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	var records []model.Record
	for _, d := range docs {
		records = append(records, d.Records...)
	}
	return records, nil
}

func (s *Service) audit(action string, doc model.Document) {
	if s.dataDir == "" {
		return
	}
	err := auditlog.Append(s.dataDir, []auditlog.Entry{{
		Timestamp:  s.now(),
		Action:     action,
		DocumentID: doc.ID,
		Filename:   doc.Filename,
		Records:    len(doc.Records),
	}})
	if err != nil {
		// The audit trail is advisory; a failed append never fails the
		// operation itself.
		s.logger.Warn().Err(err).Msg("audit log append failed")
	}
}
