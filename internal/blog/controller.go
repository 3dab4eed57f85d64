package blog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"puramente/internal/domain"
	apperrors "puramente/internal/errors"
	"puramente/internal/uploads"
)

const maxUploadSize = 10 << 20 // 10 MiB

type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	FindAll(ctx context.Context) ([]domain.Blog, error)
	Update(ctx context.Context, id uint, title, content string, image *string) (*domain.Blog, error)
	Delete(ctx context.Context, id uint) error
}

type BlogDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDTO(b domain.Blog) BlogDTO {
	return BlogDTO{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		Image:     b.Image,
		CreatedAt: b.CreatedAt,
	}
}

type Controller struct {
	repo   BlogRepository
	store  *uploads.Store
	logger *zap.Logger
}

func NewController(repo BlogRepository, store *uploads.Store, logger *zap.Logger) *Controller {
	return &Controller{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

// Create accepts a multipart form with title, content and an optional image.
// The image lands in the uploads directory under a timestamp-based name.
func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	title := r.FormValue("title")
	content := r.FormValue("content")
	if title == "" || content == "" {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Title and content are required"})
		return
	}

	image, err := c.saveImage(r)
	if err != nil {
		c.logger.Error("saving blog image", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
		return
	}

	blog, err := c.repo.Create(r.Context(), &domain.Blog{
		Title:   title,
		Content: content,
		Image:   image,
	})
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Blog uploaded successfully",
		"blog":    toDTO(*blog),
	})
}

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := c.repo.FindAll(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}

	out := make([]BlogDTO, len(blogs))
	for i, b := range blogs {
		out[i] = toDTO(b)
	}
	c.writeJSON(w, http.StatusOK, map[string]any{"blogs": out})
}

func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	image, err := c.saveImage(r)
	if err != nil {
		c.logger.Error("saving blog image", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
		return
	}

	blog, err := c.repo.Update(r.Context(), id, r.FormValue("title"), r.FormValue("content"), image)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Blog updated successfully",
		"blog":    toDTO(*blog),
	})
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	if err := c.repo.Delete(r.Context(), id); err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]string{"message": "Blog deleted successfully"})
}

// saveImage stores an uploaded image if one came with the form and returns
// its relative path, or nil when the form has no image field.
func (c *Controller) saveImage(r *http.Request) (*string, error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(header.Filename))
	rel, err := c.store.Save(name, file)
	if err != nil {
		return nil, err
	}

	return &rel, nil
}

func (c *Controller) parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

func (c *Controller) handleError(w http.ResponseWriter, err error) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{"error": nfe.Message})
		return
	}

	c.logger.Error("blog request failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
