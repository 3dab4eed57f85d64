package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"puramente/internal/domain"
	"puramente/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const orderColumns = `id, userId, firstName, email, contactNumber, country,
       companyName, companyWebsite, message, orderDetails, excelFilePath,
       status, createdAt`

// Create persists a new order under its allocated id. Mandatory fields are
// re-checked here as defense in depth behind the pipeline validation.
func (r *MySQLOrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	return r.create(ctx, r.db, order)
}

// CreateTx persists the order inside an existing transaction, used by the
// cart checkout so the cart delete and the order insert commit together.
func (r *MySQLOrderRepository) CreateTx(ctx context.Context, tx *sql.Tx, order *domain.Order) (*domain.Order, error) {
	return r.create(ctx, tx, order)
}

func (r *MySQLOrderRepository) create(ctx context.Context, ex execer, order *domain.Order) (*domain.Order, error) {
	if err := validateMandatory(order); err != nil {
		return nil, err
	}

	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	// createdAt is written explicitly so the returned record matches the row
	// even when the insert runs inside an uncommitted transaction.
	query := `
		INSERT INTO Orders (id, userId, firstName, email, contactNumber, country,
		                    companyName, companyWebsite, message, orderDetails,
		                    excelFilePath, status, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := ex.ExecContext(ctx, query,
		order.ID, order.UserID, order.FirstName, order.Email, order.ContactNumber,
		order.Country, order.CompanyName, order.CompanyWebsite, order.Message,
		order.OrderDetails, order.ExcelFilePath, order.Status, order.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}

	return order, nil
}

func validateMandatory(order *domain.Order) error {
	var details []errors.ValidationDetail

	required := []struct {
		field string
		value string
	}{
		{"firstName", order.FirstName},
		{"email", order.Email},
		{"contactNumber", order.ContactNumber},
		{"country", order.Country},
	}

	for _, f := range required {
		if f.value == "" {
			details = append(details, errors.ValidationDetail{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
	}

	if len(details) > 0 {
		return errors.NewValidationError("missing required fields", details...)
	}

	return nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM Orders WHERE id = ?`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.UserID, &order.FirstName, &order.Email, &order.ContactNumber,
		&order.Country, &order.CompanyName, &order.CompanyWebsite, &order.Message,
		&order.OrderDetails, &order.ExcelFilePath, &order.Status, &order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &order, nil
}

// FindByUser returns the owner's orders, newest id first.
func (r *MySQLOrderRepository) FindByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM Orders WHERE userId = ? ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying orders by user: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// FindAll returns every order, newest id first.
func (r *MySQLOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM Orders ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func scanOrders(rows *sql.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.UserID, &order.FirstName, &order.Email, &order.ContactNumber,
			&order.Country, &order.CompanyName, &order.CompanyWebsite, &order.Message,
			&order.OrderDetails, &order.ExcelFilePath, &order.Status, &order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}
