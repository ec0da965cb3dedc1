package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type DisputeConfig struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	MetricsServer `yaml:"metrics_server"`
	DisputeDB    `yaml:"dispute_db"`
	KafkaService `yaml:"kafka-service"`
	Escrow       `yaml:"escrow"`
	Lifecycle    `yaml:"lifecycle"`
	LogConfig    `yaml:"log_config"`
}

type MetricsServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"9101"`
}

type DisputeDB struct {
	Dsn            string `yaml:"dsn" env:"DISPUTE_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"dispute-events"`
}

type Escrow struct {
	DepositRate       float64 `yaml:"deposit_rate" env-default:"0.10"`
	FeeRate           float64 `yaml:"fee_rate" env-default:"0.07"`
	MinAmount         float64 `yaml:"min_amount" env-default:"10"`
	MaxAmount         float64 `yaml:"max_amount" env-default:"10000"`
	RoundingPrecision int32   `yaml:"rounding_precision" env-default:"2"`
}

type Lifecycle struct {
	EvidenceWindow    time.Duration `yaml:"evidence_window" env-default:"72h"`
	DecisionWindow    time.Duration `yaml:"decision_window" env-default:"120h"`
	AppealWindow      time.Duration `yaml:"appeal_window" env-default:"24h"`
	SchedulerInterval time.Duration `yaml:"scheduler_interval" env-default:"30s"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
}

func MustLoad() *DisputeConfig {

	// Processing env config variable and file
	configPath := os.Getenv("DISPUTE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("DISPUTE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg DisputeConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
