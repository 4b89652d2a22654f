// Package mem provides in-memory implementations of the tuxdocs
// services. Both stores are memory-resident and reset on process
// restart; there is no persistence layer by design.
package mem

import (
	"context"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

// Compile-time interface verification.
var _ tuxdocs.DocumentService = (*DocumentService)(nil)

// DocumentService implements tuxdocs.DocumentService over a fixed
// in-memory catalog. The catalog is read-only after construction, so no
// locking is needed.
type DocumentService struct {
	docs []*tuxdocs.Document
	byID map[string]*tuxdocs.Document
}

// NewDocumentService creates a DocumentService seeded with the given
// documents. Insertion order is preserved by FindDocuments.
func NewDocumentService(docs []*tuxdocs.Document) *DocumentService {
	s := &DocumentService{
		byID: make(map[string]*tuxdocs.Document, len(docs)),
	}
	for _, doc := range docs {
		if _, ok := s.byID[doc.ID]; ok {
			continue
		}
		s.docs = append(s.docs, doc)
		s.byID[doc.ID] = doc
	}
	return s
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*tuxdocs.Document, error) {
	doc, ok := s.byID[id]
	if !ok {
		return nil, tuxdocs.Errorf(tuxdocs.ENOTFOUND, "document %q not found", id)
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter in catalog order.
func (s *DocumentService) FindDocuments(ctx context.Context, filter tuxdocs.DocumentFilter) ([]*tuxdocs.Document, error) {
	matched := make([]*tuxdocs.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		if filter.Category != nil && doc.Category != *filter.Category {
			continue
		}
		if filter.Legacy != nil && doc.Legacy() != *filter.Legacy {
			continue
		}
		matched = append(matched, doc)
	}
	return paginate(matched, filter.Offset, filter.Limit), nil
}

// paginate applies offset/limit windowing to a result slice.
func paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
