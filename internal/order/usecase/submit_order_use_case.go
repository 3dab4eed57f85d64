package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"puramente/internal/domain"
	"puramente/internal/dto"
	apperrors "puramente/internal/errors"
	"puramente/internal/order/excel"
	"puramente/internal/uploads"
)

type SequenceAllocator interface {
	Next(ctx context.Context, name string) (uint64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
}

type WorkbookGenerator interface {
	Generate(fields excel.OrderFields, path string) error
}

// SubmitOrderUseCase runs the submission pipeline:
// validate -> allocate id -> generate workbook -> persist -> build link.
// Steps are ordered so no order row can exist without its workbook on disk.
type SubmitOrderUseCase struct {
	sequences SequenceAllocator
	orders    OrderRepository
	workbooks WorkbookGenerator
	store     *uploads.Store
	baseURL   string
	logger    *zap.Logger
}

func NewSubmitOrderUseCase(
	sequences SequenceAllocator,
	orders OrderRepository,
	workbooks WorkbookGenerator,
	store *uploads.Store,
	baseURL string,
	logger *zap.Logger,
) *SubmitOrderUseCase {
	return &SubmitOrderUseCase{
		sequences: sequences,
		orders:    orders,
		workbooks: workbooks,
		store:     store,
		baseURL:   baseURL,
		logger:    logger,
	}
}

func (uc *SubmitOrderUseCase) Submit(ctx context.Context, req dto.SubmitOrderRequest) (*dto.SubmitOrderResponse, error) {
	if err := validateSubmission(req); err != nil {
		return nil, err
	}

	orderID, err := uc.sequences.Next(ctx, domain.OrderSequenceName)
	if err != nil {
		// Allocation failed: nothing was written, the submission aborts whole.
		return nil, err
	}

	fileName := WorkbookFileName(orderID)
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
		OrderDetails:   req.OrderDetailsText(),
	}

	if err := uc.workbooks.Generate(fields, filePath); err != nil {
		// The allocated id is consumed irreversibly; ids may have gaps.
		return nil, err
	}

	order := &domain.Order{
		ID:             orderID,
		FirstName:      req.FirstName,
		Email:          req.Email,
		ContactNumber:  req.ContactNumber,
		Country:        req.Country,
		CompanyName:    req.CompanyName,
		CompanyWebsite: req.CompanyWebsite,
		Message:        req.Message,
		OrderDetails:   req.OrderDetailsText(),
		ExcelFilePath:  uc.store.RelativePath(fileName),
		Status:         domain.OrderStatusPending,
	}

	created, err := uc.orders.Create(ctx, order)
	if err != nil {
		// Known gap: the workbook stays on disk with no order row referencing
		// it. Logged so the orphan is traceable, no compensating delete.
		uc.logger.Warn("order insert failed after workbook was written, file left orphaned",
			zap.Uint64("orderId", orderID),
			zap.String("path", filePath),
			zap.Error(err))
		if _, ok := apperrors.IsValidationError(err); ok {
			return nil, err
		}
		return nil, apperrors.NewPersistenceError("saving order", err)
	}

	uc.logger.Info("order submitted",
		zap.Uint64("orderId", created.ID),
		zap.String("excelFilePath", created.ExcelFilePath))

	return &dto.SubmitOrderResponse{
		Message:      "Order submitted successfully!",
		Order:        dto.NewOrderDTO(*created),
		DownloadLink: uc.DownloadLink(fileName),
	}, nil
}

// List returns every order newest-id-first, each annotated with a download
// link built from the configured base URL and the stored relative path.
func (uc *SubmitOrderUseCase) List(ctx context.Context) ([]dto.OrderDTO, error) {
	orders, err := uc.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.annotate(orders), nil
}

func (uc *SubmitOrderUseCase) ListByUser(ctx context.Context, userID string) ([]dto.OrderDTO, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("userId is required", apperrors.ValidationDetail{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	orders, err := uc.orders.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.annotate(orders), nil
}

func (uc *SubmitOrderUseCase) annotate(orders []domain.Order) []dto.OrderDTO {
	out := make([]dto.OrderDTO, len(orders))
	for i, order := range orders {
		d := dto.NewOrderDTO(order)
		d.DownloadLink = uc.baseURL + order.ExcelFilePath
		out[i] = d
	}
	return out
}

// DownloadLink points at the download endpoint rather than the static mount,
// matching what submission responses have always returned.
func (uc *SubmitOrderUseCase) DownloadLink(fileName string) string {
	return uc.baseURL + "/api/orders/download/" + fileName
}

// WorkbookFileName derives the storage name from the allocated id, so the
// file is addressable by a later download lookup and names never collide.
func WorkbookFileName(orderID uint64) string {
	return fmt.Sprintf("Order_%d.xlsx", orderID)
}

func validateSubmission(req dto.SubmitOrderRequest) error {
	var details []apperrors.ValidationDetail

	required := []struct {
		field string
		value string
	}{
		{"firstName", req.FirstName},
		{"email", req.Email},
		{"contactNumber", req.ContactNumber},
		{"country", req.Country},
	}

	for _, f := range required {
		if f.value == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("Missing required fields", details...)
	}

	return nil
}
