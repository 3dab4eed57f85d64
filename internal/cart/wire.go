package cart

import (
	"database/sql"

	"go.uber.org/zap"

	"puramente/internal/cart/controller"
	cartrepo "puramente/internal/cart/repository"
	"puramente/internal/cart/usecase"
	"puramente/internal/config"
	"puramente/internal/order/excel"
	orderrepo "puramente/internal/order/repository"
	"puramente/internal/uploads"
)

func NewModule(db *sql.DB, store *uploads.Store, notifier usecase.AdminNotifier, cfg *config.Config, logger *zap.Logger) *controller.CartController {
	cartRepo := cartrepo.NewMySQLCartRepository(db)
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	sequenceRepo := orderrepo.NewMySQLSequenceRepository(db)
	generator := excel.NewGenerator(logger)

	checkoutUC := usecase.NewCheckoutUseCase(
		db,
		cartRepo,
		orderRepo,
		sequenceRepo,
		generator,
		notifier,
		store,
		cfg.App.BaseURL,
		logger,
	)

	return controller.NewCartController(checkoutUC, cartRepo, logger)
}
