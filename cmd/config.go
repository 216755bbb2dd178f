package cmd

import "time"

type Config struct {
	HTTPPort string
	Debug    bool

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	TrackingCacheTTL time.Duration

	// EventBroker is kafka, rabbitmq or none.
	EventBroker              string
	KafkaHost                string
	KafkaShipmentEventsTopic string
	KafkaPaymentEventsTopic  string
	RabbitMQURL              string
	RabbitMQExchange         string

	JWTSecret string
	JWTTTL    time.Duration

	StripeAPIKey        string
	StripePaymentMethod string
	StripeCustomer      string

	BlobDir     string
	BlobBaseURL string

	BootstrapAdminEmail    string
	BootstrapAdminPassword string

	OverdueScanSchedule  string
	SessionPruneSchedule string

	LogLevel  string
	LogFormat string
}

const (
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
	BrokerNone     = "none"
)
