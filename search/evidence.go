// Package search indexes the messages of one session so reports can
// attach supporting quotes for topics of interest. The index lives in
// memory and is discarded with the session.
package search

import (
	"context"

	"github.com/blugelabs/bluge"

	"signal-lab/domain"
)

// EvidenceIndex is a per-session full-text index over message content.
type EvidenceIndex struct {
	writer *bluge.Writer
}

// NewEvidenceIndex opens an in-memory index and loads the messages.
func NewEvidenceIndex(messages []domain.Message) (*EvidenceIndex, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, err
	}

	batch := bluge.NewBatch()
	for _, m := range messages {
		doc := bluge.NewDocument(m.ID.String()).
			AddField(bluge.NewTextField("content", m.Content).StoreValue()).
			AddField(bluge.NewNumericField("timestamp", float64(m.Timestamp)))
		batch.Update(doc.ID(), doc)
	}
	if err := writer.Batch(batch); err != nil {
		_ = writer.Close()
		return nil, err
	}
	return &EvidenceIndex{writer: writer}, nil
}

// Quotes returns up to limit message contents matching the term,
// best match first.
func (ix *EvidenceIndex) Quotes(ctx context.Context, term string, limit int) ([]string, error) {
	if term == "" || limit <= 0 {
		return nil, nil
	}

	reader, err := ix.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	query := bluge.NewMatchQuery(term).SetField("content")
	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	quotes := make([]string, 0, limit)
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "content" {
				quotes = append(quotes, string(value))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return quotes, nil
}

func (ix *EvidenceIndex) Close() error {
	return ix.writer.Close()
}
