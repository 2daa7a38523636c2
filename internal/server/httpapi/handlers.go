package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/adventures/internal/common"
	"github.com/dmitrijs2005/adventures/internal/imagex"
	"github.com/dmitrijs2005/adventures/internal/logging"
	"github.com/dmitrijs2005/adventures/internal/models"
	"golang.org/x/sync/errgroup"
)

// RecordStore is the document persistence surface the API proxies to.
type RecordStore interface {
	FetchAll(ctx context.Context) (map[string][]models.Document, error)
	Upsert(ctx context.Context, category string, adventure models.Adventure) (*models.Document, error)
}

// ImageStore externalizes inline payloads and deletes stored objects.
type ImageStore interface {
	Upload(ctx context.Context, payload string, suggestedName string) (string, error)
	Delete(ctx context.Context, ref string) error
}

type Handler struct {
	store  RecordStore
	images ImageStore
	log    logging.Logger
}

func NewHandler(store RecordStore, images ImageStore, log logging.Logger) *Handler {
	return &Handler{store: store, images: images, log: log}
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getAdventures returns every stored document grouped by category. An
// unconfigured store is not an error: the client falls back to its local
// snapshot, so the response is an empty object.
func (h *Handler) getAdventures(w http.ResponseWriter, r *http.Request) {
	result, err := h.store.FetchAll(r.Context())
	if err != nil {
		if errors.Is(err, common.ErrBackendUnavailable) {
			h.log.Warn(r.Context(), "document store unavailable", "error", err)
			writeJSON(w, http.StatusOK, map[string][]models.Document{})
			return
		}
		h.log.Error(r.Context(), "fetch failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get adventures")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type saveAdventureRequest struct {
	Category  string            `json:"category"`
	Adventure *models.Adventure `json:"adventure"`
}

// saveAdventure upserts one document. Inline images (and thumbnail) are
// externalized to blob storage first, best effort: an upload failure keeps
// the inline payload, it never rejects the save.
func (h *Handler) saveAdventure(w http.ResponseWriter, r *http.Request) {
	var req saveAdventureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Category and adventure are required")
		return
	}
	if req.Category == "" || req.Adventure == nil {
		writeError(w, http.StatusBadRequest, "Category and adventure are required")
		return
	}

	adventure := *req.Adventure
	h.externalizeImages(r.Context(), &adventure)

	doc, err := h.store.Upsert(r.Context(), req.Category, adventure)
	if err != nil {
		if errors.Is(err, common.ErrBackendUnavailable) {
			h.log.Warn(r.Context(), "document store unavailable, client keeps local state", "error", err)
			writeJSON(w, http.StatusOK, map[string]bool{"fallback": true})
			return
		}
		h.log.Error(r.Context(), "upsert failed", "category", req.Category, "id", adventure.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save adventure")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// externalizeImages uploads every inline image concurrently and joins
// before returning; each failure is caught individually and the inline
// payload kept.
func (h *Handler) externalizeImages(ctx context.Context, adventure *models.Adventure) {
	results := make([]string, len(adventure.Images))

	g, ctx := errgroup.WithContext(ctx)
	for i, img := range adventure.Images {
		if !imagex.IsInline(img) {
			results[i] = img
			continue
		}
		g.Go(func() error {
			url, err := h.images.Upload(ctx, img, fmt.Sprintf("%s-%d", adventure.ID, i))
			if err != nil {
				h.log.Warn(ctx, "image upload failed, storing inline", "id", adventure.ID, "index", i, "error", err)
				results[i] = img
				return nil
			}
			results[i] = url
			return nil
		})
	}
	_ = g.Wait()

	for i, img := range adventure.Images {
		if adventure.Thumbnail != "" && adventure.Thumbnail == img {
			adventure.Thumbnail = results[i]
		}
		adventure.Images[i] = results[i]
	}

	if imagex.IsInline(adventure.Thumbnail) {
		url, err := h.images.Upload(ctx, adventure.Thumbnail, adventure.ID+"-thumbnail")
		if err != nil {
			h.log.Warn(ctx, "thumbnail upload failed, storing inline", "id", adventure.ID, "error", err)
			return
		}
		adventure.Thumbnail = url
	}
}

type uploadImageRequest struct {
	Image    string `json:"image"`
	FileName string `json:"fileName"`
}

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	var req uploadImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Image data is required")
		return
	}
	if req.Image == "" {
		writeError(w, http.StatusBadRequest, "Image data is required")
		return
	}

	url, err := h.images.Upload(r.Context(), req.Image, req.FileName)
	if err != nil {
		if errors.Is(err, common.ErrInvalidImageFormat) {
			writeError(w, http.StatusBadRequest, "Invalid image data")
			return
		}
		h.log.Error(r.Context(), "image upload failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

type deleteImageRequest struct {
	URL string `json:"url"`
}

func (h *Handler) deleteImage(w http.ResponseWriter, r *http.Request) {
	var req deleteImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Image URL is required")
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "Image URL is required")
		return
	}

	if err := h.images.Delete(r.Context(), req.URL); err != nil {
		if errors.Is(err, common.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Image URL is required")
			return
		}
		h.log.Error(r.Context(), "image delete failed", "url", req.URL, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete image")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
