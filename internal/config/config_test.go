package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "50051", cfg.GRPC.Port)
	assert.Equal(t, false, cfg.GRPC.EnableHTTPS)
	assert.Equal(t, "cert.pem", cfg.GRPC.CertFileName)
	assert.Equal(t, "key.pem", cfg.GRPC.PrivateKeyFileName)
	assert.Equal(t, "devsecret", cfg.JWT.Secret)
	assert.Equal(t, BackendFile, cfg.Persist.Backend)
	assert.Equal(t, "root", cfg.Persist.Key)
	assert.Equal(t, 200*time.Millisecond, cfg.Persist.Debounce)
	assert.Equal(t, "chat-state", cfg.Storage.Bucket)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 500*time.Millisecond, cfg.Backend.ListLatency)
	assert.Equal(t, 500*time.Millisecond, cfg.Backend.CreateLatency)
	assert.Equal(t, 300*time.Millisecond, cfg.Backend.DeleteLatency)
	assert.Equal(t, 10*time.Minute, cfg.OTP.TTL)
	assert.Equal(t, "@every 1m", cfg.OTP.SweepSchedule)
	assert.Equal(t, 1500*time.Millisecond, cfg.Assistant.ReplyDelay)
	assert.Contains(t, cfg.Directory.URL, "restcountries.com")
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
		{
			name: "grpc config override",
			envVars: map[string]string{
				"GRPC_PORT":                  "8080",
				"GRPC_ENABLE_HTTPS":          "true",
				"GRPC_CERT_FILE_NAME":        "custom.pem",
				"GRPC_PRIVATE_KEY_FILE_NAME": "custom-key.pem",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "8080", cfg.GRPC.Port)
				assert.Equal(t, true, cfg.GRPC.EnableHTTPS)
				assert.Equal(t, "custom.pem", cfg.GRPC.CertFileName)
				assert.Equal(t, "custom-key.pem", cfg.GRPC.PrivateKeyFileName)
			},
		},
		{
			name: "persist config override",
			envVars: map[string]string{
				"PERSIST_BACKEND":  "redis",
				"PERSIST_DEBOUNCE": "1s",
				"REDIS_ADDR":       "cache:6380",
				"REDIS_DB":         "2",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, BackendRedis, cfg.Persist.Backend)
				assert.Equal(t, time.Second, cfg.Persist.Debounce)
				assert.Equal(t, "cache:6380", cfg.Redis.Addr)
				assert.Equal(t, 2, cfg.Redis.DB)
			},
		},
		{
			name: "storage config override",
			envVars: map[string]string{
				"MINIO_ENDPOINT":    "minio.example.com:9000",
				"MINIO_BUCKET_NAME": "custom-bucket",
				"MINIO_USE_SSL":     "true",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "minio.example.com:9000", cfg.Storage.Endpoint)
				assert.Equal(t, "custom-bucket", cfg.Storage.Bucket)
				assert.Equal(t, true, cfg.Storage.UseSSL)
			},
		},
		{
			name: "otp and assistant override",
			envVars: map[string]string{
				"OTP_TTL":                  "30s",
				"OTP_SEND_DELAY":           "0s",
				"ASSISTANT_TEMPLATES_FILE": "/etc/templates.yaml",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, 30*time.Second, cfg.OTP.TTL)
				assert.Equal(t, time.Duration(0), cfg.OTP.SendDelay)
				assert.Equal(t, "/etc/templates.yaml", cfg.Assistant.TemplatesFile)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}

func TestNewConfig_UnknownBackend(t *testing.T) {
	t.Setenv("PERSIST_BACKEND", "floppy")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown persist backend")
}
