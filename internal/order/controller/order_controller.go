package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"puramente/internal/dto"
	apperrors "puramente/internal/errors"
	"puramente/internal/uploads"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SubmitOrderUseCase interface {
	Submit(ctx context.Context, req dto.SubmitOrderRequest) (*dto.SubmitOrderResponse, error)
	List(ctx context.Context) ([]dto.OrderDTO, error)
	ListByUser(ctx context.Context, userID string) ([]dto.OrderDTO, error)
}

type OrderController struct {
	useCase SubmitOrderUseCase
	store   *uploads.Store
	logger  *zap.Logger
}

func NewOrderController(useCase SubmitOrderUseCase, store *uploads.Store, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		store:   store,
		logger:  logger,
	}
}

func (c *OrderController) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.useCase.Submit(r.Context(), req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.useCase.List(r.Context())
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.ListOrdersResponse{Orders: orders})
}

func (c *OrderController) ListOrdersByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	orders, err := c.useCase.ListByUser(r.Context(), userID)
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.ListOrdersResponse{Orders: orders})
}

// DownloadWorkbook streams a previously generated file by name. A missing
// file is a 404; anything after existence is confirmed is a server error.
func (c *OrderController) DownloadWorkbook(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	f, info, err := c.store.Open(filename)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{"error": "File not found"})
			return
		}
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeValidationError(w, ve.Message, ve.Details...)
			return
		}
		c.logger.Error("opening file for download", zap.String("filename", filename), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error downloading file"})
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", info.Size()))

	if _, err := io.Copy(w, f); err != nil {
		// Headers are already sent; the broken stream is all we can report.
		c.logger.Error("streaming file to client", zap.String("filename", filename), zap.Error(err))
	}
}

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}

	code := "INTERNAL_ERROR"
	switch {
	case isAllocation(err):
		code = "ALLOCATION_ERROR"
	case isGeneration(err):
		code = "GENERATION_ERROR"
	case isPersistence(err):
		code = "PERSISTENCE_ERROR"
	}

	logger.Error("order request failed", zap.String("code", code), zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   code,
		"message": "Internal Server Error",
		"details": err.Error(),
	})
}

func isAllocation(err error) bool {
	_, ok := apperrors.IsAllocationError(err)
	return ok
}

func isGeneration(err error) bool {
	_, ok := apperrors.IsGenerationError(err)
	return ok
}

func isPersistence(err error) bool {
	_, ok := apperrors.IsPersistenceError(err)
	return ok
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	response := validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}

	c.writeJSON(w, http.StatusBadRequest, response)
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
