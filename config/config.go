package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	TgToken          string
	DefaultBins      int // сколько корзин строить, если пользователь не указал
	SeriesTTLMinutes int // через сколько минут забывать ряды неактивных чатов
}

var (
	config *Config
	once   sync.Once
)

// GetConfig возвращает singleton экземпляр конфигурации
func GetConfig() *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil {
			log.Println("no .env file, using environment")
		}

		config = &Config{
			TgToken:          os.Getenv("TG_TOKEN"),
			DefaultBins:      envInt("DEFAULT_BINS", 5),
			SeriesTTLMinutes: envInt("SERIES_TTL_MINUTES", 60),
		}
	})
	return config
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}
