package adventures

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/adventures/internal/common"
	"github.com/dmitrijs2005/adventures/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStore_UnconfiguredDSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
	}{
		{"empty", ""},
		{"placeholder", "postgres://<your-postgres-connection-string>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore(tc.dsn)
			ctx := context.Background()

			_, err := s.FetchAll(ctx)
			assert.True(t, errors.Is(err, common.ErrBackendUnavailable))

			_, err = s.Upsert(ctx, models.CategoryCountries, models.Adventure{ID: "Japan", Name: "Japan"})
			assert.True(t, errors.Is(err, common.ErrBackendUnavailable))

			err = s.Delete(ctx, models.CategoryCountries, "Japan")
			assert.True(t, errors.Is(err, common.ErrBackendUnavailable))
		})
	}
}

func TestStore_CloseWithoutUse(t *testing.T) {
	s := NewStore("")
	assert.NoError(t, s.Close())
}
