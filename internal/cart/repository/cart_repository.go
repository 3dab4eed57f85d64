package repository

import (
	"context"
	"database/sql"
	"fmt"

	"puramente/internal/domain"
	"puramente/internal/errors"
)

type MySQLCartRepository struct {
	db *sql.DB
}

func NewMySQLCartRepository(db *sql.DB) *MySQLCartRepository {
	return &MySQLCartRepository{db: db}
}

// FindByUser loads the user's cart with its items.
func (r *MySQLCartRepository) FindByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	query := `SELECT id, userId, totalAmount, createdAt, updatedAt FROM Carts WHERE userId = ?`

	var cart domain.Cart
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&cart.ID, &cart.UserID, &cart.TotalAmount, &cart.CreatedAt, &cart.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("cart for user %s not found", userID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying cart by user: %w", err)
	}

	items, err := r.findItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items

	return &cart, nil
}

func (r *MySQLCartRepository) findItems(ctx context.Context, cartID uint) ([]domain.CartItem, error) {
	query := `SELECT id, cartId, name, sku, quantity, price FROM CartItems WHERE cartId = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("querying cart items: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.Name, &item.SKU, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scanning cart item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cart item rows: %w", err)
	}

	return items, nil
}

// AddItem appends to the user's cart, creating the cart row on first use, and
// keeps totalAmount in sync.
func (r *MySQLCartRepository) AddItem(ctx context.Context, userID string, item domain.CartItem) (*domain.Cart, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning cart transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO Carts (userId, totalAmount) VALUES (?, 0)
		 ON DUPLICATE KEY UPDATE userId = userId`, userID)
	if err != nil {
		return nil, fmt.Errorf("ensuring cart row: %w", err)
	}

	var cartID uint
	err = tx.QueryRowContext(ctx, `SELECT id FROM Carts WHERE userId = ?`, userID).Scan(&cartID)
	if err != nil {
		return nil, fmt.Errorf("reading cart id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO CartItems (cartId, name, sku, quantity, price) VALUES (?, ?, ?, ?, ?)`,
		cartID, item.Name, item.SKU, item.Quantity, item.Price)
	if err != nil {
		return nil, fmt.Errorf("inserting cart item: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE Carts SET totalAmount = totalAmount + ? WHERE id = ?`,
		item.Price*float64(item.Quantity), cartID)
	if err != nil {
		return nil, fmt.Errorf("updating cart total: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing cart transaction: %w", err)
	}

	return r.FindByUser(ctx, userID)
}

// DeleteTx removes the cart (items cascade) inside the caller's transaction,
// so checkout consumes the cart atomically with the order insert.
func (r *MySQLCartRepository) DeleteTx(ctx context.Context, tx *sql.Tx, cartID uint) error {
	result, err := tx.ExecContext(ctx, `DELETE FROM Carts WHERE id = ?`, cartID)
	if err != nil {
		return fmt.Errorf("deleting cart: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("cart with id %d not found", cartID))
	}

	return nil
}
