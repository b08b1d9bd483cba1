package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	accounts "github.com/goliatone/go-accounts"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func main() {
	cfg := configFromEnv()

	dsn := envOr("ACCOUNTS_DSN", "file:accounts.db?cache=shared&mode=rwc")

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer sqldb.Close()

	db := bun.NewDB(sqldb, sqlitedialect.New())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := accounts.RunMigrations(ctx, db); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	repo := accounts.NewRepositoryManager(db)
	repo.MustValidate()

	app := fiber.New(fiber.Config{
		AppName:      "accountsd",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	accounts.RegisterRoutes(app, cfg, repo, accounts.RouterOptions{
		Debug: os.Getenv("ACCOUNTS_DEBUG") != "",
	})

	addr := envOr("ACCOUNTS_ADDR", ":3000")
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Printf("server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func configFromEnv() *accounts.AppConfig {
	cost, _ := strconv.Atoi(os.Getenv("ACCOUNTS_BCRYPT_COST"))
	expiration, _ := strconv.Atoi(os.Getenv("ACCOUNTS_TOKEN_EXPIRATION"))

	return &accounts.AppConfig{
		SigningKey:      envOr("ACCOUNTS_SIGNING_KEY", "dev-signing-key"),
		TokenExpiration: expiration,
		Issuer:          envOr("ACCOUNTS_ISSUER", "go-accounts"),
		Audience:        []string{envOr("ACCOUNTS_AUDIENCE", "go-accounts:api")},
		BcryptCost:      cost,
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
