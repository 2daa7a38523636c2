package adventures

import (
	"context"

	"github.com/dmitrijs2005/adventures/internal/models"
)

// Repository is the document persistence contract for adventure records.
//
// Documents are keyed by the composite (category + "-" + id); Upsert fully
// replaces any existing document under the same key. Delete is idempotent.
type Repository interface {
	FetchAll(ctx context.Context) (map[string][]models.Document, error)
	Upsert(ctx context.Context, category string, adventure models.Adventure) (*models.Document, error)
	Delete(ctx context.Context, category string, id string) error
}
