package blog

import (
	"database/sql"

	"go.uber.org/zap"

	"puramente/internal/blog/repository"
	"puramente/internal/uploads"
)

func NewModule(db *sql.DB, store *uploads.Store, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLBlogRepository(db)
	return NewController(repo, store, logger)
}
