package main

import (
	"project-tracker-api/internal/auth"
	"project-tracker-api/internal/config"
	"project-tracker-api/internal/database"
	"project-tracker-api/internal/handlers"
	"project-tracker-api/internal/logging"
	"project-tracker-api/internal/realtime"
	"project-tracker-api/internal/repository"
	"project-tracker-api/internal/routes"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.Log)

	// Volatile store: opened empty and rebuilt from the seed set
	db, err := database.Open()
	if err != nil {
		log.Fatal("failed to open store: ", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatal("failed to seed store: ", err)
	}

	gate, err := auth.NewGate(cfg.JWT, cfg.Admin)
	if err != nil {
		log.Fatal("failed to build access gate: ", err)
	}

	hub := realtime.NewHub()

	handler := handlers.New(
		log,
		repository.NewUserRepository(db),
		repository.NewTaskRepository(db),
		repository.NewProjectRepository(db),
		repository.NewNotificationRepository(db),
		gate,
		hub,
	)

	ginRoutes := routes.SetupRoutes(handler, gate)

	addr := ":" + cfg.Server.Port
	log.Infof("server starting on %s", addr)
	if err := ginRoutes.Run(addr); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
