// Package mock provides function-field mock implementations of the
// tuxdocs service interfaces for use in tests.
package mock

import (
	"context"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

var _ tuxdocs.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of tuxdocs.DocumentService.
type DocumentService struct {
	FindDocumentByIDFn func(ctx context.Context, id string) (*tuxdocs.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter tuxdocs.DocumentFilter) ([]*tuxdocs.Document, error)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*tuxdocs.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter tuxdocs.DocumentFilter) ([]*tuxdocs.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}
