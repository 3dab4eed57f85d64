package repository

import (
	"context"
	"database/sql"
	"fmt"

	"puramente/internal/domain"
	"puramente/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

const productColumns = `id, name, category, description, imageUrl, createdAt, updatedAt`

func (r *MySQLRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM Products ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM Products WHERE id = ?`

	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return &p, nil
}

func (r *MySQLRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	query := `INSERT INTO Products (name, category, description, imageUrl) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, p.Name, p.Category, p.Description, p.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("inserting product: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting last insert id: %w", err)
	}

	return r.FindByID(ctx, uint(lastInsertID))
}

func (r *MySQLRepository) Update(ctx context.Context, id uint, p *domain.Product) (*domain.Product, error) {
	query := `UPDATE Products SET name = ?, category = ?, description = ?, imageUrl = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, p.Name, p.Category, p.Description, p.ImageURL, id)
	if err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		// The row may exist with identical values; distinguish via lookup.
		if _, err := r.FindByID(ctx, id); err != nil {
			return nil, err
		}
	}

	return r.FindByID(ctx, id)
}

func (r *MySQLRepository) Delete(ctx context.Context, id uint) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM Products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}

	return nil
}
