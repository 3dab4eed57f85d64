package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"puramente/internal/domain"
	"puramente/internal/dto"
	apperrors "puramente/internal/errors"
)

type CheckoutUseCase interface {
	Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.SubmitOrderResponse, error)
}

type CartRepository interface {
	FindByUser(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, item domain.CartItem) (*domain.Cart, error)
}

type CartController struct {
	useCase CheckoutUseCase
	carts   CartRepository
	logger  *zap.Logger
}

func NewCartController(useCase CheckoutUseCase, carts CartRepository, logger *zap.Logger) *CartController {
	return &CartController{
		useCase: useCase,
		carts:   carts,
		logger:  logger,
	}
}

func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	cart, err := c.carts.FindByUser(r.Context(), userID)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toCartDTO(cart))
}

func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req dto.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.Name == "" || req.Quantity < 1 {
		c.writeValidationError(w, "invalid cart item",
			apperrors.ValidationDetail{Field: "name", Message: "name is required"},
			apperrors.ValidationDetail{Field: "quantity", Message: "quantity must be at least 1"},
		)
		return
	}

	cart, err := c.carts.AddItem(r.Context(), userID, domain.CartItem{
		Name:     req.Name,
		SKU:      req.SKU,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toCartDTO(cart))
}

func (c *CartController) Checkout(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.useCase.Checkout(r.Context(), req)
	if err != nil {
		if _, ok := apperrors.IsValidationError(err); !ok {
			logger.Error("checkout failed", zap.Error(err))
		}
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func toCartDTO(cart *domain.Cart) dto.CartDTO {
	items := make([]dto.CartItemDTO, len(cart.Items))
	for i, it := range cart.Items {
		items[i] = dto.CartItemDTO{
			Name:     it.Name,
			SKU:      it.SKU,
			Quantity: it.Quantity,
			Price:    it.Price,
		}
	}
	return dto.CartDTO{
		UserID:      cart.UserID,
		TotalAmount: cart.TotalAmount,
		Items:       items,
	}
}

func (c *CartController) handleError(w http.ResponseWriter, err error) {
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

	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "Internal Server Error",
		"details": err.Error(),
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *CartController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *CartController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
