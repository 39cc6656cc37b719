package routes

import (
	"github.com/abishekkprasad/health-journal/internal/config"
	"github.com/abishekkprasad/health-journal/internal/handlers"
	"github.com/abishekkprasad/health-journal/internal/repository"
	"github.com/abishekkprasad/health-journal/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires stores, services and handlers onto the app. A nil db
// selects the embedded file-backed store at cfg.DataFile.
func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) error {
	var (
		profiles services.ProfileStore
		logs     services.LogStore
		history  services.BodyFatHistoryStore
	)
	if db != nil {
		profiles = repository.NewProfileRepository(db)
		logs = repository.NewLogRepository(db)
		history = repository.NewBodyFatHistoryRepository(db)
	} else {
		store, err := repository.OpenFileStore(cfg.DataFile)
		if err != nil {
			return err
		}
		profiles, logs, history = store, store, store
	}

	journal := services.NewJournalService(profiles, logs, history)

	dashboardHandler := handlers.NewDashboardHandler(journal)
	profileHandler := handlers.NewProfileHandler(journal)
	logHandler := handlers.NewLogHandler(journal)

	app.Get("/", dashboardHandler.Show)
	app.Post("/setup", profileHandler.Setup)
	app.Post("/log", logHandler.Submit)
	app.Post("/update-body-fat", profileHandler.UpdateBodyFat)

	return nil
}
