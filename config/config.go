package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	SpaceX   SpaceXConfig   `yaml:"spacex"`
	Archive  ArchiveConfig  `yaml:"archive"`
	Launches LaunchesConfig `yaml:"launches"`
	Planets  PlanetsConfig  `yaml:"planets"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	// Driver is "postgres" or "memory".
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	LaunchEventsTopic  string   `yaml:"launch_events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type SpaceXConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (s SpaceXConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// ArchiveConfig points at an S3-compatible bucket receiving raw catalog
// snapshots. Archiving is disabled when Endpoint is empty.
type ArchiveConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type LaunchesConfig struct {
	ScheduleLockSeconds int `yaml:"schedule_lock_seconds"`
	MaxScheduleAttempts int `yaml:"max_schedule_attempts"`
}

func (l LaunchesConfig) ScheduleLockTTL() time.Duration {
	return time.Duration(l.ScheduleLockSeconds) * time.Second
}

// PlanetsConfig names the Kepler CSV export loaded into the planets catalog
// at startup. Loading is skipped when CSVPath is empty.
type PlanetsConfig struct {
	CSVPath string `yaml:"csv_path"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8000"
	}
	if c.GRPC.Address == "" {
		c.GRPC.Address = ":9000"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.SpaceX.BaseURL == "" {
		c.SpaceX.BaseURL = "https://api.spacexdata.com/v4"
	}
	if c.SpaceX.TimeoutSeconds == 0 {
		c.SpaceX.TimeoutSeconds = 30
	}
	if c.Launches.ScheduleLockSeconds == 0 {
		c.Launches.ScheduleLockSeconds = 5
	}
	if c.Launches.MaxScheduleAttempts == 0 {
		c.Launches.MaxScheduleAttempts = 5
	}
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.SpaceX.TimeoutSeconds < 0 {
		return fmt.Errorf("spacex.timeout_seconds must be positive")
	}
	if c.Launches.MaxScheduleAttempts < 1 {
		return fmt.Errorf("launches.max_schedule_attempts must be >= 1")
	}
	if c.Archive.Endpoint != "" && c.Archive.Bucket == "" {
		return fmt.Errorf("archive.bucket is required when archive.endpoint is set")
	}
	return nil
}
