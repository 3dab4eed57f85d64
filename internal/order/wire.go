package order

import (
	"database/sql"

	"go.uber.org/zap"

	"puramente/internal/config"
	"puramente/internal/order/controller"
	"puramente/internal/order/excel"
	"puramente/internal/order/repository"
	"puramente/internal/order/usecase"
	"puramente/internal/uploads"
)

func NewModule(db *sql.DB, store *uploads.Store, cfg *config.Config, logger *zap.Logger) *controller.OrderController {
	sequenceRepo := repository.NewMySQLSequenceRepository(db)
	orderRepo := repository.NewMySQLOrderRepository(db)
	generator := excel.NewGenerator(logger)

	submitUC := usecase.NewSubmitOrderUseCase(
		sequenceRepo,
		orderRepo,
		generator,
		store,
		cfg.App.BaseURL,
		logger,
	)

	return controller.NewOrderController(submitUC, store, logger)
}
