package product

import (
	"database/sql"

	"go.uber.org/zap"

	"puramente/internal/product/repository"
	"puramente/internal/product/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLRepository(db)
	svc := service.NewService(repo)
	return NewController(svc, logger)
}
