package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/crypto/bcrypt"
)

// TestAdminPassword is accepted by the admin credential in NewTestConfig.
const TestAdminPassword = "campus-admin-test"

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	Admin      AdminConfig
	Seed       SeedConfig
	Classifier ClassifierConfig
	Broker     BrokerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"8h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

// AdminConfig holds the shared admin credential. A single shared password is
// only suitable for a demo deployment; production needs per-user accounts.
type AdminConfig struct {
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type SeedConfig struct {
	Enabled bool `envconfig:"SEED_SAMPLE_DATA" default:"true"`
}

type ClassifierConfig struct {
	// none | tfserving | rekognition
	Backend string        `envconfig:"CLASSIFIER_BACKEND" default:"none"`
	Timeout time.Duration `envconfig:"CLASSIFIER_TIMEOUT" default:"10s"`

	TFServingURL string `envconfig:"TFSERVING_PREDICT_URL" default:"http://localhost:8501/v1/models/parking:predict"`

	AWSRegion         string  `envconfig:"AWS_REGION" default:"us-east-1"`
	ProjectVersionARN string  `envconfig:"REKOGNITION_PROJECT_VERSION_ARN" default:""`
	OccupiedLabel     string  `envconfig:"REKOGNITION_OCCUPIED_LABEL" default:"Occupied"`
	MinConfidence     float32 `envconfig:"REKOGNITION_MIN_CONFIDENCE" default:"0"`

	BreakerFailures    uint32        `envconfig:"CLASSIFIER_BREAKER_FAILURES" default:"3"`
	BreakerOpenTimeout time.Duration `envconfig:"CLASSIFIER_BREAKER_OPEN_TIMEOUT" default:"30s"`
}

type BrokerConfig struct {
	URL      string `envconfig:"AMQP_URL" default:""`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"parking.events"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Admin: AdminConfig{
			PasswordHash: testAdminPasswordHash(),
		},
		Seed: SeedConfig{
			Enabled: false,
		},
		Classifier: ClassifierConfig{
			Backend:            "none",
			Timeout:            2 * time.Second,
			OccupiedLabel:      "Occupied",
			BreakerFailures:    3,
			BreakerOpenTimeout: time.Second,
		},
		Broker: BrokerConfig{
			Exchange: "parking.events",
		},
	}
}

func testAdminPasswordHash() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestAdminPassword), bcrypt.MinCost)
	if err != nil {
		panic("failed to hash test admin password: " + err.Error())
	}
	return string(hash)
}
