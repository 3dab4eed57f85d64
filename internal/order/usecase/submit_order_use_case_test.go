package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"puramente/internal/domain"
	"puramente/internal/dto"
	apperrors "puramente/internal/errors"
	"puramente/internal/order/excel"
	"puramente/internal/uploads"
)

// Mock implementations

type mockSequenceAllocator struct {
	NextFunc func(ctx context.Context, name string) (uint64, error)
	calls    int
}

func (m *mockSequenceAllocator) Next(ctx context.Context, name string) (uint64, error) {
	m.calls++
	return m.NextFunc(ctx, name)
}

type mockOrderRepository struct {
	CreateFunc   func(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindAllFunc  func(ctx context.Context) ([]domain.Order, error)
	FindByUserFn func(ctx context.Context, userID string) ([]domain.Order, error)
	createCalls  int
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	m.createCalls++
	return m.CreateFunc(ctx, order)
}

func (m *mockOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockOrderRepository) FindByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return m.FindByUserFn(ctx, userID)
}

type mockGenerator struct {
	GenerateFunc func(fields excel.OrderFields, path string) error
	calls        int
	lastFields   excel.OrderFields
	lastPath     string
}

func (m *mockGenerator) Generate(fields excel.OrderFields, path string) error {
	m.calls++
	m.lastFields = fields
	m.lastPath = path
	if m.GenerateFunc != nil {
		return m.GenerateFunc(fields, path)
	}
	return nil
}

func validRequest() dto.SubmitOrderRequest {
	return dto.SubmitOrderRequest{
		FirstName:     "John",
		Email:         "john@example.com",
		ContactNumber: "1234567890",
		Country:       "India",
		OrderDetails:  json.RawMessage(`[{"name":"Widget","sku":"W1","quantity":3}]`),
	}
}

func newTestUseCase(t *testing.T, seq *mockSequenceAllocator, repo *mockOrderRepository, gen *mockGenerator) *SubmitOrderUseCase {
	t.Helper()
	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)
	return NewSubmitOrderUseCase(seq, repo, gen, store, "http://localhost:8000", zap.NewNop())
}

func TestSubmit_MissingRequiredFields_NoSideEffects(t *testing.T) {
	seq := &mockSequenceAllocator{}
	repo := &mockOrderRepository{}
	gen := &mockGenerator{}
	uc := newTestUseCase(t, seq, repo, gen)

	for _, clear := range []func(*dto.SubmitOrderRequest){
		func(r *dto.SubmitOrderRequest) { r.FirstName = "" },
		func(r *dto.SubmitOrderRequest) { r.Email = "" },
		func(r *dto.SubmitOrderRequest) { r.ContactNumber = "" },
		func(r *dto.SubmitOrderRequest) { r.Country = "" },
	} {
		req := validRequest()
		clear(&req)

		_, err := uc.Submit(context.Background(), req)
		require.Error(t, err)

		_, ok := apperrors.IsValidationError(err)
		assert.True(t, ok)
	}

	assert.Equal(t, 0, seq.calls)
	assert.Equal(t, 0, gen.calls)
	assert.Equal(t, 0, repo.createCalls)
}

func TestSubmit_AllocatorFailure_AbortsBeforeAnyWrite(t *testing.T) {
	seq := &mockSequenceAllocator{
		NextFunc: func(ctx context.Context, name string) (uint64, error) {
			return 0, apperrors.NewAllocationError("incrementing sequence counter", errors.New("connection refused"))
		},
	}
	repo := &mockOrderRepository{}
	gen := &mockGenerator{}
	uc := newTestUseCase(t, seq, repo, gen)

	_, err := uc.Submit(context.Background(), validRequest())
	require.Error(t, err)

	_, ok := apperrors.IsAllocationError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, gen.calls)
	assert.Equal(t, 0, repo.createCalls)
}

func TestSubmit_GeneratorFailure_NoRepositoryRecord(t *testing.T) {
	seq := &mockSequenceAllocator{
		NextFunc: func(ctx context.Context, name string) (uint64, error) { return 5, nil },
	}
	repo := &mockOrderRepository{}
	gen := &mockGenerator{
		GenerateFunc: func(fields excel.OrderFields, path string) error {
			return apperrors.NewGenerationError("writing workbook", errors.New("disk full"))
		},
	}
	uc := newTestUseCase(t, seq, repo, gen)

	_, err := uc.Submit(context.Background(), validRequest())
	require.Error(t, err)

	_, ok := apperrors.IsGenerationError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, repo.createCalls)
}

func TestSubmit_PersistenceFailure_SurfacesPersistenceError(t *testing.T) {
	seq := &mockSequenceAllocator{
		NextFunc: func(ctx context.Context, name string) (uint64, error) { return 6, nil },
	}
	repo := &mockOrderRepository{
		CreateFunc: func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
			return nil, errors.New("deadlock")
		},
	}
	gen := &mockGenerator{}
	uc := newTestUseCase(t, seq, repo, gen)

	_, err := uc.Submit(context.Background(), validRequest())
	require.Error(t, err)

	_, ok := apperrors.IsPersistenceError(err)
	assert.True(t, ok)
}

func TestSubmit_Success(t *testing.T) {
	seq := &mockSequenceAllocator{
		NextFunc: func(ctx context.Context, name string) (uint64, error) {
			assert.Equal(t, domain.OrderSequenceName, name)
			return 7, nil
		},
	}
	repo := &mockOrderRepository{
		CreateFunc: func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
			assert.Equal(t, uint64(7), order.ID)
			assert.Equal(t, "/uploads/Order_7.xlsx", order.ExcelFilePath)
			assert.Equal(t, domain.OrderStatusPending, order.Status)
			return order, nil
		},
	}
	gen := &mockGenerator{}
	uc := newTestUseCase(t, seq, repo, gen)

	resp, err := uc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Order submitted successfully!", resp.Message)
	assert.Equal(t, uint64(7), resp.Order.OrderID)
	assert.Equal(t, "http://localhost:8000/api/orders/download/Order_7.xlsx", resp.DownloadLink)
	assert.Equal(t, filepath.Base(gen.lastPath), "Order_7.xlsx")
	assert.Equal(t, `[{"name":"Widget","sku":"W1","quantity":3}]`, gen.lastFields.OrderDetails)
}

func TestSubmit_StringEncodedOrderDetails_Normalized(t *testing.T) {
	seq := &mockSequenceAllocator{
		NextFunc: func(ctx context.Context, name string) (uint64, error) { return 8, nil },
	}
	repo := &mockOrderRepository{
		CreateFunc: func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
			return order, nil
		},
	}
	gen := &mockGenerator{}
	uc := newTestUseCase(t, seq, repo, gen)

	req := validRequest()
	req.OrderDetails = json.RawMessage(`"[{\"name\":\"Widget\",\"sku\":\"W1\",\"quantity\":3}]"`)

	_, err := uc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, `[{"name":"Widget","sku":"W1","quantity":3}]`, gen.lastFields.OrderDetails)
}

func TestSubmit_PersistenceFailure_LeavesWorkbookOnDisk(t *testing.T) {
	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	seq := &mockSequenceAllocator{
		NextFunc: func(ctx context.Context, name string) (uint64, error) { return 9, nil },
	}
	repo := &mockOrderRepository{
		CreateFunc: func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
			return nil, errors.New("db down")
		},
	}
	gen := &mockGenerator{
		GenerateFunc: func(fields excel.OrderFields, path string) error {
			return os.WriteFile(path, []byte("xlsx"), 0o644)
		},
	}
	uc := NewSubmitOrderUseCase(seq, repo, gen, store, "http://localhost:8000", zap.NewNop())

	_, err = uc.Submit(context.Background(), validRequest())
	require.Error(t, err)

	// The orphaned workbook is deliberately not cleaned up.
	_, statErr := os.Stat(filepath.Join(store.Dir(), "Order_9.xlsx"))
	assert.NoError(t, statErr)
}

func TestList_AnnotatesDownloadLinks(t *testing.T) {
	seq := &mockSequenceAllocator{}
	gen := &mockGenerator{}
	repo := &mockOrderRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Order, error) {
			return []domain.Order{
				{ID: 3, ExcelFilePath: "/uploads/Order_3.xlsx"},
				{ID: 1, ExcelFilePath: "/uploads/Order_1.xlsx"},
			}, nil
		},
	}
	uc := newTestUseCase(t, seq, repo, gen)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, uint64(3), out[0].OrderID)
	assert.Equal(t, "http://localhost:8000/uploads/Order_3.xlsx", out[0].DownloadLink)
	assert.Equal(t, "http://localhost:8000/uploads/Order_1.xlsx", out[1].DownloadLink)
}

func TestListByUser_RequiresUserID(t *testing.T) {
	uc := newTestUseCase(t, &mockSequenceAllocator{}, &mockOrderRepository{}, &mockGenerator{})

	_, err := uc.ListByUser(context.Background(), "")
	require.Error(t, err)

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}
