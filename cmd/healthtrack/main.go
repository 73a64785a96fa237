package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "healthtrack/internal/adapter/http"
	"healthtrack/internal/adapter/memory"
	"healthtrack/internal/adapter/postgres"
	"healthtrack/internal/app"
	"healthtrack/internal/domain"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	addr := env("ADDR", ":8080")
	webDir := env("WEB_DIR", "web")

	var (
		entryRepo   domain.EntryRepository
		userRepo    domain.UserRepository
		sessionRepo domain.SessionRepository
	)

	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		entryRepo = db
		userRepo = db
		sessionRepo = postgres.NewSessionRepo(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory storage")
		db := memory.New()
		entryRepo = db
		userRepo = db
		sessionRepo = db.NewSessionRepo()
	}

	entrySvc := app.NewEntryService(entryRepo)
	chartsSvc := app.NewChartsService(entrySvc)
	authSvc := app.NewAuthService(userRepo, sessionRepo)

	srv := adapthttp.New(entrySvc, chartsSvc, authSvc, webDir)
	if cfg, err := oidcFromEnv(); err != nil {
		log.Fatalf("oidc setup: %v", err)
	} else if cfg.Enabled {
		srv = srv.WithOIDC(cfg)
	}

	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// oidcFromEnv builds the SSO configuration when OIDC_ISSUER is set.
func oidcFromEnv() (adapthttp.OIDCConfig, error) {
	issuer := os.Getenv("OIDC_ISSUER")
	if issuer == "" {
		return adapthttp.OIDCConfig{}, nil
	}

	provider, err := oidc.NewProvider(context.Background(), issuer)
	if err != nil {
		return adapthttp.OIDCConfig{}, err
	}

	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
