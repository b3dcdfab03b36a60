package http

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"planora/internal/domain/repository"
	pkgerrors "planora/pkg/errors"
	"planora/pkg/middleware"
	"planora/pkg/response"
)

// Uploads are buffered in memory up to this size before spilling to disk.
const maxUploadMemory = 10 << 20

// MediaController handles raw asset upload and download against the blob store
type MediaController struct {
	store repository.BlobStore
}

// NewMediaController creates a new media controller
func NewMediaController(store repository.BlobStore) *MediaController {
	return &MediaController{
		store: store,
	}
}

// Upload handles POST /media. Accepts a multipart "file" part and stores it
// under a generated unique name; the name is what documents reference.
func (c *MediaController) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		response.SendBadRequest(w, r, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.SendBadRequest(w, r, "Missing file part")
		return
	}
	defer file.Close()

	name := uuid.New().String() + "-" + header.Filename
	stored, err := c.store.Store(r.Context(), name, file)
	if err != nil {
		middleware.HandleError(w, r, pkgerrors.NewStoreError("failed to store file"))
		return
	}

	response.SendCreated(w, r, map[string]string{"filename": stored})
}

// Download handles GET /media/{name} and streams the asset body
func (c *MediaController) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		response.SendBadRequest(w, r, "Asset name is required")
		return
	}

	stream, err := c.store.Open(r.Context(), name)
	if err != nil {
		if stderrors.Is(err, repository.ErrBlobNotFound) {
			response.SendNotFound(w, r, "Asset not found")
			return
		}
		middleware.HandleError(w, r, pkgerrors.NewStoreError("failed to open asset"))
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	io.Copy(w, stream)
}
