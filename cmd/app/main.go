package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"ordertrack/cmd"
	"ordertrack/internal/adapters/out/postgres/deadletterrepo"
	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/adapters/out/postgres/outboxrepo"
	"ordertrack/internal/pkg/logging"
	"ordertrack/internal/pkg/shutdown"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := logging.New()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer app.Close()

	ctx, stop := shutdown.WithSignals(context.Background())
	defer stop()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	consumer := app.CreateQueueConsumer()
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		if err := consumer.Run(ctx); err != nil {
			logger.Error("Queue consumer exited with error", "error", err)
		}
	}()

	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}

	select {
	case <-consumerDone:
	case <-shutdownCtx.Done():
		logger.Warn("Queue consumer did not stop in time, in-flight delivery left for redelivery")
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		QueueDriver:          goDotEnvVariable("QUEUE_DRIVER"),
		KafkaHost:            goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:   goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaOrderTopic:      goDotEnvVariable("KAFKA_ORDER_TOPIC"),
		KafkaDeadLetterTopic: goDotEnvVariable("KAFKA_DEAD_LETTER_TOPIC"),
		RedisAddr:            goDotEnvVariable("REDIS_ADDR"),
		FulfillmentDelay:     goDotEnvVariable("FULFILLMENT_DELAY"),
		RelayBatchSize:       goDotEnvVariable("RELAY_BATCH_SIZE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&outboxrepo.RecordDTO{},
		&deadletterrepo.DeadLetterDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}
