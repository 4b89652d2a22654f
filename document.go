package tuxdocs

import "context"

// LegacyThreshold is the obsolescence score above which a document is
// considered legacy and exposes the modernization affordance.
const LegacyThreshold = 80

// Document represents a single how-to article in the catalog.
// Documents are seeded at startup and never change afterwards.
type Document struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Category          string `json:"category"`
	LastUpdated       string `json:"lastUpdated"`
	ObsolescenceScore int    `json:"obsolescenceScore"`
	ModernEquivalent  string `json:"modernEquivalent,omitempty"`
	Description       string `json:"description"`
	SourceURL         string `json:"sourceUrl,omitempty"`
	Content           string `json:"content"`
}

// Legacy reports whether the document's guidance is outdated enough to
// offer AI modernization.
func (d *Document) Legacy() bool {
	return d.ObsolescenceScore > LegacyThreshold
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID == "" {
		return Errorf(EINVALID, "document ID required")
	}
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.ObsolescenceScore < 0 || d.ObsolescenceScore > 100 {
		return Errorf(EINVALID, "document obsolescence score must be between 0 and 100")
	}
	return nil
}

// DocumentService represents a read-only service for the document catalog.
type DocumentService interface {
	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter in stable
	// catalog (insertion) order.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	Category *string `json:"category"`
	Legacy   *bool   `json:"legacy"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
