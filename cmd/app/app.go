package main

import (
	"log"
	"os"

	"github.com/balapan-kz/go-storefront/internal/app"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	envFile := pflag.String("env-file", ".env", "путь к файлу переменных окружения")
	pflag.Parse()

	// .env нужен только при локальном запуске; его отсутствие — не ошибка.
	if _, err := os.Stat(*envFile); err == nil {
		if err := godotenv.Load(*envFile); err != nil {
			log.Printf("failed to load %s: %v", *envFile, err)
		}
	}

	app.Run()
}
