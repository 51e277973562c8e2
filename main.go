package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/grabble/internal/db"
	"github.com/robalobadob/grabble/internal/dict"
	"github.com/robalobadob/grabble/internal/httpserver"
	"github.com/robalobadob/grabble/internal/store"
	"github.com/robalobadob/grabble/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dictionary := dict.New()
	if err := words.Load(dictionary); err != nil {
		log.Fatal().Err(err).Msg("failed to load wordlist")
	}
	log.Info().Int("words", dictionary.Len()).Msg("dictionary loaded")

	conn, err := db.Open(getEnv("DB_PATH", "./data/grabble.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(dictionary, mem, conn)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting grabble server")
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
