package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/adventures/internal/common"
	"github.com/dmitrijs2005/adventures/internal/logging"
	"github.com/dmitrijs2005/adventures/internal/models"
	"github.com/dmitrijs2005/adventures/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeStore struct {
	fetchOut  map[string][]models.Document
	fetchErr  error
	upsertErr error
	upserted  []models.Document
}

func (f *fakeStore) FetchAll(ctx context.Context) (map[string][]models.Document, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.fetchOut, nil
}

func (f *fakeStore) Upsert(ctx context.Context, category string, adventure models.Adventure) (*models.Document, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	doc := models.Document{Adventure: adventure, Category: category}
	f.upserted = append(f.upserted, doc)
	return &doc, nil
}

type fakeImages struct {
	uploadErr error
	deleteErr error
	deleted   []string
}

func (f *fakeImages) Upload(ctx context.Context, payload string, suggestedName string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "https://blob.example.com/" + suggestedName + ".png", nil
}

func (f *fakeImages) Delete(ctx context.Context, ref string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, ref)
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestRouter(store *fakeStore, images *fakeImages, adminEmails []string) http.Handler {
	h := NewHandler(store, images, testLogger())
	return NewRouter(h, []byte("secretKey"), adminEmails, testLogger())
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

// --- adventures ---

func TestGetAdventures_ReturnsGroupedDocuments(t *testing.T) {
	store := &fakeStore{
		fetchOut: map[string][]models.Document{
			models.CategoryCountries: {
				{Adventure: models.Adventure{ID: "Japan", Name: "Japan", Visited: true}, Category: models.CategoryCountries},
			},
		},
	}
	w := do(t, newTestRouter(store, &fakeImages{}, nil), http.MethodGet, "/adventures", nil)

	require.Equal(t, http.StatusOK, w.Code)
	result := decodeBody[map[string][]models.Document](t, w)
	require.Len(t, result[models.CategoryCountries], 1)
	assert.Equal(t, "Japan", result[models.CategoryCountries][0].ID)
}

func TestGetAdventures_UnconfiguredStoreReturnsEmptyObject(t *testing.T) {
	store := &fakeStore{fetchErr: common.ErrBackendUnavailable}
	w := do(t, newTestRouter(store, &fakeImages{}, nil), http.MethodGet, "/adventures", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())
}

func TestGetAdventures_UnexpectedErrorReturns500(t *testing.T) {
	store := &fakeStore{fetchErr: errors.New("boom")}
	w := do(t, newTestRouter(store, &fakeImages{}, nil), http.MethodGet, "/adventures", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody[map[string]string](t, w)
	assert.Equal(t, "Failed to get adventures", body["error"])
}

func TestSaveAdventure_MissingFields(t *testing.T) {
	router := newTestRouter(&fakeStore{}, &fakeImages{}, nil)

	for _, body := range []any{
		map[string]any{"adventure": map[string]any{"id": "Japan"}},
		map[string]any{"category": "countries"},
		nil,
	} {
		w := do(t, router, http.MethodPost, "/adventures", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestSaveAdventure_UnconfiguredStoreReportsFallback(t *testing.T) {
	store := &fakeStore{upsertErr: common.ErrBackendUnavailable}
	w := do(t, newTestRouter(store, &fakeImages{}, nil), http.MethodPost, "/adventures", map[string]any{
		"category":  "countries",
		"adventure": map[string]any{"id": "Japan"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"fallback":true}`, w.Body.String())
}

func TestSaveAdventure_ExternalizesInlineImages(t *testing.T) {
	store := &fakeStore{}
	inline := "data:image/png;base64,aGk="
	w := do(t, newTestRouter(store, &fakeImages{}, nil), http.MethodPost, "/adventures", map[string]any{
		"category": "countries",
		"adventure": map[string]any{
			"id":        "Japan",
			"name":      "Japan",
			"visited":   true,
			"images":    []string{inline, "https://blob.example.com/old.png"},
			"thumbnail": inline,
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	doc := decodeBody[models.Document](t, w)

	assert.Equal(t, "https://blob.example.com/Japan-0.png", doc.Images[0])
	assert.Equal(t, "https://blob.example.com/old.png", doc.Images[1])
	assert.Equal(t, doc.Images[0], doc.Thumbnail)

	require.Len(t, store.upserted, 1)
	assert.Equal(t, doc, store.upserted[0])
}

func TestSaveAdventure_UploadFailureKeepsInlinePayload(t *testing.T) {
	store := &fakeStore{}
	images := &fakeImages{uploadErr: errors.New("blob storage down")}
	inline := "data:image/png;base64,aGk="

	w := do(t, newTestRouter(store, images, nil), http.MethodPost, "/adventures", map[string]any{
		"category": "countries",
		"adventure": map[string]any{
			"id":     "Japan",
			"images": []string{inline},
		},
	})

	require.Equal(t, http.StatusOK, w.Code, "save must succeed even when uploads fail")
	doc := decodeBody[models.Document](t, w)
	assert.Equal(t, inline, doc.Images[0])
}

// --- images ---

func TestUploadImage_MissingImage(t *testing.T) {
	w := do(t, newTestRouter(&fakeStore{}, &fakeImages{}, nil), http.MethodPost, "/images", map[string]any{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody[map[string]string](t, w)
	assert.Equal(t, "Image data is required", body["error"])
}

func TestUploadImage_InvalidFormat(t *testing.T) {
	images := &fakeImages{uploadErr: common.ErrInvalidImageFormat}
	w := do(t, newTestRouter(&fakeStore{}, images, nil), http.MethodPost, "/images", map[string]any{
		"image": "not-a-data-url",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadImage_ReturnsURL(t *testing.T) {
	w := do(t, newTestRouter(&fakeStore{}, &fakeImages{}, nil), http.MethodPost, "/images", map[string]any{
		"image":    "data:image/png;base64,aGk=",
		"fileName": "rainier",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[map[string]string](t, w)
	assert.Equal(t, "https://blob.example.com/rainier.png", body["url"])
}

func TestDeleteImage_MissingURL(t *testing.T) {
	w := do(t, newTestRouter(&fakeStore{}, &fakeImages{}, nil), http.MethodDelete, "/images", map[string]any{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody[map[string]string](t, w)
	assert.Equal(t, "Image URL is required", body["error"])
}

func TestDeleteImage_Succeeds(t *testing.T) {
	images := &fakeImages{}
	w := do(t, newTestRouter(&fakeStore{}, images, nil), http.MethodDelete, "/images", map[string]any{
		"url": "https://blob.example.com/x.png",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, []string{"https://blob.example.com/x.png"}, images.deleted)
}

// --- middleware ---

func TestCORSPreflight(t *testing.T) {
	w := do(t, newTestRouter(&fakeStore{}, &fakeImages{}, nil), http.MethodOptions, "/adventures", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSHeadersOnRegularResponses(t *testing.T) {
	w := do(t, newTestRouter(&fakeStore{}, &fakeImages{}, nil), http.MethodGet, "/adventures", nil)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAdminAllowList(t *testing.T) {
	secret := []byte("secretKey")
	router := newTestRouter(&fakeStore{}, &fakeImages{}, []string{"mom@example.com"})
	body := map[string]any{"category": "countries", "adventure": map[string]any{"id": "Japan"}}

	t.Run("no token", func(t *testing.T) {
		w := do(t, router, http.MethodPost, "/adventures", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("email not in allow-list", func(t *testing.T) {
		token, err := auth.GenerateToken("stranger@example.com", secret, time.Hour)
		require.NoError(t, err)

		data, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/adventures", bytes.NewReader(data))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("allowed email", func(t *testing.T) {
		token, err := auth.GenerateToken("mom@example.com", secret, time.Hour)
		require.NoError(t, err)

		data, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/adventures", bytes.NewReader(data))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reads stay open", func(t *testing.T) {
		w := do(t, router, http.MethodGet, "/adventures", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
