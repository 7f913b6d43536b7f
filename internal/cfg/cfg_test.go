package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "inventory")
	t.Setenv("BUCKET_NAME", "product-images")
	t.Setenv("MINIO_ROOT_USER", "minio")
	t.Setenv("MINIO_ROOT_PASSWORD", "minio-secret")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_TOPIC", "stock-movements")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	log := logger.NewSlogLogger()

	cfg, err := Load(log)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Http.Port)
	assert.Equal(t, 5*time.Second, cfg.Http.ReadTimeout)
	assert.Equal(t, "8091", cfg.Grpc.Port)
	assert.Equal(t, "localhost", cfg.Db.Host)
	assert.Equal(t, "disable", cfg.Db.SSLMode)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "stock-movements", cfg.Kafka.Topic)
	assert.Equal(t, 3, cfg.Kafka.Partitions)
	assert.Equal(t, 3*time.Minute, cfg.Redis.ProductTTL)
	assert.Equal(t, time.Minute, cfg.Redis.DashboardTTL)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POSTGRES_USER", "")
	log := logger.NewSlogLogger()

	_, err := Load(log)
	require.Error(t, err)
}

func TestLoad_MissingKafkaBrokers(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("KAFKA_BROKERS", "")
	log := logger.NewSlogLogger()

	_, err := Load(log)
	require.Error(t, err)
}

func TestLoad_OverridesAndTTLs(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("PRODUCT_TTL", "10m")
	t.Setenv("DASHBOARD_TTL", "30s")
	t.Setenv("KAFKA_PARTITIONS", "6")
	log := logger.NewSlogLogger()

	cfg, err := Load(log)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Http.Port)
	assert.Equal(t, 10*time.Minute, cfg.Redis.ProductTTL)
	assert.Equal(t, 30*time.Second, cfg.Redis.DashboardTTL)
	assert.Equal(t, 6, cfg.Kafka.Partitions)
}
