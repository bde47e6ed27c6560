package main

import (
	"log"

	"github.com/damataprodutora/portfolio-backend/config"
	"github.com/damataprodutora/portfolio-backend/internal/auth"
	"github.com/damataprodutora/portfolio-backend/internal/bootstrap"
	"github.com/damataprodutora/portfolio-backend/internal/maintenance"
	"github.com/damataprodutora/portfolio-backend/internal/portfolio"
	"github.com/damataprodutora/portfolio-backend/internal/uploads"
)

const serviceName = "portfolio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	// Missing or malformed credentials are fatal: there is no degraded mode
	// without a valid admin password.
	authSvc, err := auth.NewService(cfg.Storage.CredentialsPath)
	if err != nil {
		log.Fatalf("credential store: %v (run \"seedauth <password>\" to create or repair %s)",
			err, cfg.Storage.CredentialsPath)
	}

	sessions := bootstrap.BuildSessionStore(cfg.Session.RedisAddr, cfg.Session.TTL)
	portfolioStore := portfolio.NewStore(cfg.Storage.PortfolioPath)
	uploadStore := uploads.NewStore(cfg.Storage.UploadDir)

	// Redis expires its own keys; only the in-memory store needs sweeping.
	sessionSweeper, _ := sessions.(maintenance.SessionSweeper)
	sweeper := maintenance.NewSweeper(portfolioStore, uploadStore.Dir(), sessionSweeper)
	sweeper.Start()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Auth:        authSvc,
		Sessions:    sessions,
		Portfolio:   portfolioStore,
		Uploads:     uploadStore,
		StaticDir:   cfg.Storage.StaticDir,
		SessionTTL:  cfg.Session.TTL,
	})

	log.Printf("%s listening on :%s", serviceName, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
