package cmd

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"ordertrack/internal/adapters/in/http"
	"ordertrack/internal/adapters/in/queue"
	"ordertrack/internal/adapters/out/dedup"
	"ordertrack/internal/adapters/out/fulfillment"
	"ordertrack/internal/adapters/out/kafka"
	"ordertrack/internal/adapters/out/memqueue"
	"ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/adapters/out/postgres/deadletterrepo"
	"ordertrack/internal/adapters/out/redisdedup"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/jobs"
	"ordertrack/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	registry   *metrics.Registry
	logger     *slog.Logger

	messageQueue ports.MessageQueue
	processedSet ports.ProcessedSet
	fulfillment  ports.FulfillmentService
	sink         ports.DeadLetterSink

	relayBatchSize int
	closers        []func() error
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:       metrics.NewRegistry(),
		logger:         logger,
		sink:           deadletterrepo.NewGormDeadLetterSink(gormDB),
		relayBatchSize: parseInt(config.RelayBatchSize, jobs.DefaultRelayBatchSize),
	}

	root.messageQueue = root.buildMessageQueue(config)
	root.processedSet = root.buildProcessedSet(config)
	root.fulfillment = fulfillment.NewFixedDelayService(
		parseDuration(config.FulfillmentDelay, fulfillment.DefaultDelay))

	return root
}

func (c *CompositionRoot) buildMessageQueue(config Config) ports.MessageQueue {
	if config.QueueDriver != "kafka" {
		return memqueue.NewQueue(memqueue.DefaultVisibilityTimeout)
	}

	kafkaQueue := kafka.NewQueue(kafka.Config{
		Brokers:         strings.Split(config.KafkaHost, ","),
		Topic:           config.KafkaOrderTopic,
		DeadLetterTopic: config.KafkaDeadLetterTopic,
		GroupID:         config.KafkaConsumerGroup,
	})
	c.closers = append(c.closers, kafkaQueue.Close)
	return kafkaQueue
}

func (c *CompositionRoot) buildProcessedSet(config Config) ports.ProcessedSet {
	if config.RedisAddr == "" {
		return dedup.NewMemorySet(dedup.DefaultCapacity)
	}

	client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
	c.closers = append(c.closers, client.Close)
	return redisdedup.NewSet(client, redisdedup.DefaultTTL)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateFulfillOrderCommandHandler() commands.FulfillOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFulfillOrderCommandHandler(f, c.processedSet, c.fulfillment)
}

func (c *CompositionRoot) CreatePublishOutboxCommandHandler() commands.PublishOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPublishOutboxCommandHandler(f, c.messageQueue, c.registry, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateSubmitOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.registry,
	)
}

func (c *CompositionRoot) CreateQueueConsumer() *queue.Consumer {
	handler := c.CreateFulfillOrderCommandHandler()
	return queue.NewConsumer(c.messageQueue, c.sink, &handler, c.registry, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreatePublishOutboxCommandHandler(), c.relayBatchSize, c.logger)
}

// Close releases external connections held by the adapters.
func (c *CompositionRoot) Close() {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.logger.Error("Failed to close adapter", "error", err)
		}
	}
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
