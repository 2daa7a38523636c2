package adventures

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/adventures/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestPostgresRepository_FetchAll_GroupsByCategory(t *testing.T) {
	repo, mock := newMockRepo(t)

	rainier := models.Document{
		Adventure: models.Adventure{ID: "Mount Rainier", Name: "Mount Rainier", Visited: true, DateVisited: "2023-05-01"},
		Category:  models.CategoryNationalParks,
	}
	japan := models.Document{
		Adventure: models.Adventure{ID: "Japan", Name: "Japan", Visited: true},
		Category:  models.CategoryCountries,
	}

	rows := sqlmock.NewRows([]string{"category", "data"}).
		AddRow(rainier.Category, mustJSON(t, rainier)).
		AddRow(japan.Category, mustJSON(t, japan))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT category, data FROM adventures ORDER BY doc_id`)).
		WillReturnRows(rows)

	result, err := repo.FetchAll(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 2)
	require.Len(t, result[models.CategoryNationalParks], 1)
	assert.Equal(t, rainier, result[models.CategoryNationalParks][0])
	assert.Equal(t, japan, result[models.CategoryCountries][0])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_FetchAll_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT category, data FROM adventures`)).
		WillReturnError(errors.New("boom"))

	_, err := repo.FetchAll(context.Background())
	assert.Error(t, err)
}

func TestPostgresRepository_Upsert_UsesCompositeKey(t *testing.T) {
	repo, mock := newMockRepo(t)

	adventure := models.Adventure{ID: "Japan", Name: "Japan", Visited: true, Memories: "ramen"}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO adventures (doc_id, category, data)`)).
		WithArgs("countries-Japan", models.CategoryCountries, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	doc, err := repo.Upsert(context.Background(), models.CategoryCountries, adventure)
	require.NoError(t, err)

	assert.Equal(t, models.CategoryCountries, doc.Category)
	assert.Equal(t, adventure, doc.Adventure)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Delete_MissingKeyIsNotAnError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM adventures WHERE doc_id = $1`)).
		WithArgs("countries-Atlantis").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), models.CategoryCountries, "Atlantis")
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
