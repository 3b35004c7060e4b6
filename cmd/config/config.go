package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("facilityhub_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				Environment: viper.GetString("general.environment"),
				LogLevel:    viper.GetString("general.log_level"),
			},
			Postgresql: PostgresqlConfig{
				URL: viper.GetString("database.url"),
				DSN: viper.GetString("database.dsn"),
			},
			Kafka: KafkaConfig{
				Brokers:        viper.GetStringSlice("kafka.brokers"),
				Group:          viper.GetString("kafka.group"),
				SchemaRegistry: viper.GetString("kafka.schema_registry"),
			},
			Redis: RedisConfig{
				Addr:     viper.GetString("redis.addr"),
				Password: viper.GetString("redis.password"),
				DB:       viper.GetInt("redis.db"),
			},
			Reminders: RemindersConfig{
				CheckInterval: viper.GetDuration("reminders.check_interval"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General    GeneralConfig
	Kafka      KafkaConfig
	Postgresql PostgresqlConfig
	Redis      RedisConfig
	Reminders  RemindersConfig
}

type GeneralConfig struct {
	Environment string
	LogLevel    string
}

type KafkaConfig struct {
	Brokers        []string
	Group          string
	SchemaRegistry string
}

type PostgresqlConfig struct {
	URL string
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RemindersConfig struct {
	CheckInterval time.Duration
}
