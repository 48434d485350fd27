package cmd

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	QueueDriver          string
	KafkaHost            string
	KafkaConsumerGroup   string
	KafkaOrderTopic      string
	KafkaDeadLetterTopic string
	RedisAddr            string
	FulfillmentDelay     string
	RelayBatchSize       string
}
