package repository

import (
	"context"
	"database/sql"
	"fmt"

	"puramente/internal/domain"
	"puramente/internal/errors"
)

type MySQLBlogRepository struct {
	db *sql.DB
}

func NewMySQLBlogRepository(db *sql.DB) *MySQLBlogRepository {
	return &MySQLBlogRepository{db: db}
}

func (r *MySQLBlogRepository) Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	query := `INSERT INTO Blogs (title, content, image) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, blog.Title, blog.Content, blog.Image)
	if err != nil {
		return nil, fmt.Errorf("inserting blog: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting last insert id: %w", err)
	}

	return r.FindByID(ctx, uint(lastInsertID))
}

func (r *MySQLBlogRepository) FindByID(ctx context.Context, id uint) (*domain.Blog, error) {
	query := `SELECT id, title, content, image, createdAt FROM Blogs WHERE id = ?`

	var blog domain.Blog
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&blog.ID, &blog.Title, &blog.Content, &blog.Image, &blog.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("blog with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying blog by id: %w", err)
	}

	return &blog, nil
}

// FindAll returns blogs newest first.
func (r *MySQLBlogRepository) FindAll(ctx context.Context) ([]domain.Blog, error) {
	query := `SELECT id, title, content, image, createdAt FROM Blogs ORDER BY createdAt DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying blogs: %w", err)
	}
	defer rows.Close()

	var blogs []domain.Blog
	for rows.Next() {
		var blog domain.Blog
		if err := rows.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.Image, &blog.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning blog row: %w", err)
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blog rows: %w", err)
	}

	return blogs, nil
}

// Update applies only the provided fields; absent fields keep their stored
// values.
func (r *MySQLBlogRepository) Update(ctx context.Context, id uint, title, content string, image *string) (*domain.Blog, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = existing.Title
	}
	if content == "" {
		content = existing.Content
	}
	if image == nil {
		image = existing.Image
	}

	query := `UPDATE Blogs SET title = ?, content = ?, image = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, title, content, image, id); err != nil {
		return nil, fmt.Errorf("updating blog: %w", err)
	}

	return r.FindByID(ctx, id)
}

func (r *MySQLBlogRepository) Delete(ctx context.Context, id uint) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM Blogs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting blog: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("blog with id %d not found", id))
	}

	return nil
}
