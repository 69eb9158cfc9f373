package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jawuanlewis/hangman-api/internal/httpserver"
	"github.com/jawuanlewis/hangman-api/internal/session"
	"github.com/jawuanlewis/hangman-api/internal/store"
	"github.com/jawuanlewis/hangman-api/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	db, err := openDB(getEnv("DB_PATH", "./data/app.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	ttl := time.Duration(envInt("GAME_TTL_MINUTES", 60)) * time.Minute
	mem := store.NewMemoryStore(ttl)
	defer mem.Close()

	issuer := session.NewIssuer(getEnv("JWT_SECRET", "dev_secret_change_me"), ttl)

	srv := httpserver.New(mem, issuer, db)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting hangman-api")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
