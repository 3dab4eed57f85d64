package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"puramente/internal/domain"
	"puramente/internal/dto"
	apperrors "puramente/internal/errors"
	"puramente/internal/order/excel"
	orderusecase "puramente/internal/order/usecase"
	"puramente/internal/uploads"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type CartRepository interface {
	FindByUser(ctx context.Context, userID string) (*domain.Cart, error)
	DeleteTx(ctx context.Context, tx *sql.Tx, cartID uint) error
}

type OrderRepository interface {
	CreateTx(ctx context.Context, tx *sql.Tx, order *domain.Order) (*domain.Order, error)
}

type SequenceAllocator interface {
	Next(ctx context.Context, name string) (uint64, error)
}

type WorkbookGenerator interface {
	Generate(fields excel.OrderFields, path string) error
}

// AdminNotifier sends the post-checkout notification mail. Failures are
// logged, never surfaced: the order already committed.
type AdminNotifier interface {
	NotifyOrderPlaced(ctx context.Context, order domain.Order) error
}

// CheckoutUseCase converts a user's cart into an order. The cart delete and
// the order insert share one transaction; the workbook is written before
// either, keeping the no-row-without-file ordering of direct submissions.
type CheckoutUseCase struct {
	db        TransactionManager
	carts     CartRepository
	orders    OrderRepository
	sequences SequenceAllocator
	workbooks WorkbookGenerator
	notifier  AdminNotifier
	store     *uploads.Store
	baseURL   string
	logger    *zap.Logger
}

func NewCheckoutUseCase(
	db TransactionManager,
	carts CartRepository,
	orders OrderRepository,
	sequences SequenceAllocator,
	workbooks WorkbookGenerator,
	notifier AdminNotifier,
	store *uploads.Store,
	baseURL string,
	logger *zap.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		db:        db,
		carts:     carts,
		orders:    orders,
		sequences: sequences,
		workbooks: workbooks,
		notifier:  notifier,
		store:     store,
		baseURL:   baseURL,
		logger:    logger,
	}
}

func (uc *CheckoutUseCase) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.SubmitOrderResponse, error) {
	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	cart, err := uc.carts.FindByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.NewValidationError("cart is empty", apperrors.ValidationDetail{
			Field:   "cart",
			Message: "cart has no items to check out",
		})
	}

	details, err := json.Marshal(cart.LineItems())
	if err != nil {
		return nil, apperrors.NewInternalError("encoding cart items", err)
	}

	orderID, err := uc.sequences.Next(ctx, domain.OrderSequenceName)
	if err != nil {
		return nil, err
	}

	fileName := orderusecase.WorkbookFileName(orderID)
	filePath, err := uc.store.Path(fileName)
	if err != nil {
		return nil, err
	}

	fields := excel.OrderFields{
		FirstName:      req.FirstName,
		Email:          req.Email,
		ContactNumber:  req.ContactNumber,
		CompanyName:    req.CompanyName,
		Country:        req.Country,
		CompanyWebsite: req.CompanyWebsite,
		Message:        req.Message,
		OrderDetails:   string(details),
	}
	if err := uc.workbooks.Generate(fields, filePath); err != nil {
		return nil, err
	}

	userID := req.UserID
	order := &domain.Order{
		ID:             orderID,
		UserID:         &userID,
		FirstName:      req.FirstName,
		Email:          req.Email,
		ContactNumber:  req.ContactNumber,
		Country:        req.Country,
		CompanyName:    req.CompanyName,
		CompanyWebsite: req.CompanyWebsite,
		Message:        req.Message,
		OrderDetails:   string(details),
		ExcelFilePath:  uc.store.RelativePath(fileName),
		Status:         domain.OrderStatusPending,
	}

	created, err := uc.convertCart(ctx, cart, order)
	if err != nil {
		uc.logger.Warn("checkout failed after workbook was written, file left orphaned",
			zap.Uint64("orderId", orderID),
			zap.String("path", filePath),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Info("cart checked out",
		zap.String("userId", req.UserID),
		zap.Uint64("orderId", created.ID))

	if uc.notifier != nil {
		if err := uc.notifier.NotifyOrderPlaced(ctx, *created); err != nil {
			uc.logger.Warn("admin notification failed", zap.Uint64("orderId", created.ID), zap.Error(err))
		}
	}

	return &dto.SubmitOrderResponse{
		Message:      "Order submitted successfully!",
		Order:        dto.NewOrderDTO(*created),
		DownloadLink: uc.baseURL + "/api/orders/download/" + fileName,
	}, nil
}

// convertCart inserts the order and deletes the cart in one transaction.
func (uc *CheckoutUseCase) convertCart(ctx context.Context, cart *domain.Cart, order *domain.Order) (*domain.Order, error) {
	tx, err := uc.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperrors.NewPersistenceError("beginning checkout transaction", err)
	}
	defer tx.Rollback()

	created, err := uc.orders.CreateTx(ctx, tx, order)
	if err != nil {
		if _, ok := apperrors.IsValidationError(err); ok {
			return nil, err
		}
		return nil, apperrors.NewPersistenceError("saving order", err)
	}

	if err := uc.carts.DeleteTx(ctx, tx, cart.ID); err != nil {
		return nil, apperrors.NewPersistenceError("consuming cart", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.NewPersistenceError("committing checkout", err)
	}

	return created, nil
}

func validateCheckout(req dto.CheckoutRequest) error {
	var details []apperrors.ValidationDetail

	required := []struct {
		field string
		value string
	}{
		{"userId", req.UserID},
		{"firstName", req.FirstName},
		{"email", req.Email},
		{"contactNumber", req.ContactNumber},
		{"country", req.Country},
	}

	for _, f := range required {
		if f.value == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   f.field,
				Message: fmt.Sprintf("%s is required", f.field),
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("Missing required fields", details...)
	}

	return nil
}
