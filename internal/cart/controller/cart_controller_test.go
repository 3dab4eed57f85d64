package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"puramente/internal/domain"
	"puramente/internal/dto"
	apperrors "puramente/internal/errors"
)

type mockCheckoutUseCase struct {
	CheckoutFunc func(ctx context.Context, req dto.CheckoutRequest) (*dto.SubmitOrderResponse, error)
}

func (m *mockCheckoutUseCase) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.SubmitOrderResponse, error) {
	return m.CheckoutFunc(ctx, req)
}

type mockCartRepository struct {
	FindByUserFunc func(ctx context.Context, userID string) (*domain.Cart, error)
	AddItemFunc    func(ctx context.Context, userID string, item domain.CartItem) (*domain.Cart, error)
}

func (m *mockCartRepository) FindByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	return m.FindByUserFunc(ctx, userID)
}

func (m *mockCartRepository) AddItem(ctx context.Context, userID string, item domain.CartItem) (*domain.Cart, error) {
	return m.AddItemFunc(ctx, userID, item)
}

func newCartRouter(uc CheckoutUseCase, carts CartRepository) http.Handler {
	c := NewCartController(uc, carts, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/cart/checkout", c.Checkout)
	r.Get("/api/cart/{userId}", c.GetCart)
	r.Post("/api/cart/{userId}/items", c.AddItem)
	return r
}

func TestGetCart_Success(t *testing.T) {
	carts := &mockCartRepository{
		FindByUserFunc: func(ctx context.Context, userID string) (*domain.Cart, error) {
			assert.Equal(t, "u-9", userID)
			return &domain.Cart{
				UserID:      "u-9",
				TotalAmount: 42.5,
				Items:       []domain.CartItem{{Name: "Silver Ring", SKU: "SR-1", Quantity: 2, Price: 21.25}},
			}, nil
		},
	}
	router := newCartRouter(&mockCheckoutUseCase{}, carts)

	req := httptest.NewRequest(http.MethodGet, "/api/cart/u-9", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Silver Ring")
	assert.Contains(t, rec.Body.String(), `"totalAmount":42.5`)
}

func TestGetCart_NotFound(t *testing.T) {
	carts := &mockCartRepository{
		FindByUserFunc: func(ctx context.Context, userID string) (*domain.Cart, error) {
			return nil, apperrors.NewNotFoundError("cart not found")
		},
	}
	router := newCartRouter(&mockCheckoutUseCase{}, carts)

	req := httptest.NewRequest(http.MethodGet, "/api/cart/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestAddItem_Validation(t *testing.T) {
	router := newCartRouter(&mockCheckoutUseCase{}, &mockCartRepository{})

	req := httptest.NewRequest(http.MethodPost, "/api/cart/u-1/items", strings.NewReader(`{"name":"","quantity":0}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAddItem_Success(t *testing.T) {
	carts := &mockCartRepository{
		AddItemFunc: func(ctx context.Context, userID string, item domain.CartItem) (*domain.Cart, error) {
			assert.Equal(t, "u-1", userID)
			assert.Equal(t, "Gold Chain", item.Name)
			return &domain.Cart{
				UserID:      "u-1",
				TotalAmount: 99,
				Items:       []domain.CartItem{item},
			}, nil
		},
	}
	router := newCartRouter(&mockCheckoutUseCase{}, carts)

	body := `{"name":"Gold Chain","sku":"GC-7","quantity":1,"price":99}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/u-1/items", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Gold Chain")
}

func TestCheckout_InvalidJSON(t *testing.T) {
	router := newCartRouter(&mockCheckoutUseCase{}, &mockCartRepository{})

	req := httptest.NewRequest(http.MethodPost, "/api/cart/checkout", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCheckout_EmptyCart(t *testing.T) {
	uc := &mockCheckoutUseCase{
		CheckoutFunc: func(ctx context.Context, req dto.CheckoutRequest) (*dto.SubmitOrderResponse, error) {
			return nil, apperrors.NewValidationError("cart is empty", apperrors.ValidationDetail{
				Field:   "cart",
				Message: "cart has no items",
			})
		},
	}
	router := newCartRouter(uc, &mockCartRepository{})

	body := `{"userId":"u-1","firstName":"John","email":"j@x.com","contactNumber":"1","country":"IN"}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "cart has no items")
}

func TestCheckout_Success(t *testing.T) {
	uc := &mockCheckoutUseCase{
		CheckoutFunc: func(ctx context.Context, req dto.CheckoutRequest) (*dto.SubmitOrderResponse, error) {
			assert.Equal(t, "u-1", req.UserID)
			return &dto.SubmitOrderResponse{
				Message:      "Order submitted successfully!",
				Order:        dto.OrderDTO{OrderID: 7, ExcelFilePath: "/uploads/Order_7.xlsx"},
				DownloadLink: "http://localhost:8000/api/orders/download/Order_7.xlsx",
			}, nil
		},
	}
	router := newCartRouter(uc, &mockCartRepository{})

	body := `{"userId":"u-1","firstName":"John","email":"j@x.com","contactNumber":"1","country":"IN"}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"orderId":7`)
	assert.Contains(t, rec.Body.String(), "Order_7.xlsx")
}
