// @title Bid Server API
// @version 1.0
// @description API для поиска публичных торгов Onbid. Нормализация XML-фида провайдера, дедупликация, экспорт и персональные списки тендеров.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен доступа в формате "Bearer {token}"

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bidserver/database"
	"bidserver/internal/config"
	"bidserver/server"
)

func main() {
	log.Println("Запуск Bid Server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	dbConfig := database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}

	db, err := database.NewDBWithConfig(cfg.DatabasePath, dbConfig)
	if err != nil {
		log.Fatalf("Ошибка открытия базы данных: %v", err)
	}
	defer db.Close()
	log.Printf("База данных: %s", cfg.DatabasePath)

	srv := server.NewServer(cfg, db)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("Ошибка запуска сервера: %v", err)
		}
	}()

	// Graceful shutdown по сигналу
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Получен сигнал завершения, останавливаю сервер...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Ошибка при остановке сервера: %v", err)
	}
}
