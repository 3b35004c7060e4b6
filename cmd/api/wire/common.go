package wire

import (
	"os"
	"time"

	"facilityhub-server/cmd/config"
	"facilityhub-server/internal/infra/cache"
	"facilityhub-server/internal/infra/pubsub"
	"facilityhub-server/internal/infra/sql"
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func providePubSubFactory(config config.AppConfig) *pubsub.Factory {
	env, ok := os.LookupEnv("ENV")
	if !ok {
		env = "production"
	}

	return pubsub.NewFactory(pubsub.FactoryOptions{
		Environment:       env,
		KafkaBrokers:      config.Kafka.Brokers,
		ConsumerGroup:     "facilityhub-server",
		SchemaRegistryURL: config.Kafka.SchemaRegistry,
	})
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideDatabase(config config.AppConfig) sql.ORM {
	env, ok := os.LookupEnv("ENV")
	if !ok {
		env = "production"
	}

	if env == "local" {
		orm, err := sql.NewMemoryORM()
		if err != nil {
			panic(err)
		}

		return orm
	}

	db := sql.NewPosgreDatabase(config.Postgresql.URL)
	if err := db.Open(); err != nil {
		panic(err)
	}

	orm, err := sql.NewPosgreORM(config.Postgresql.DSN)
	if err != nil {
		panic(err)
	}

	return orm
}

func provideCache(config config.AppConfig) cache.Cache {
	if config.Redis.Addr != "" {
		redisConfig := cache.DefaultRedisConfig()
		redisConfig.Addr = config.Redis.Addr
		redisConfig.Password = config.Redis.Password
		redisConfig.DB = config.Redis.DB

		instance, err := cache.NewRedisCache(redisConfig)
		if err != nil {
			panic(err)
		}

		return instance
	}

	instance, err := cache.New(cache.DefaultConfig())
	if err != nil {
		panic(err)
	}

	return instance
}

func provideTicker(config config.AppConfig) *time.Ticker {
	interval := config.Reminders.CheckInterval
	if interval <= 0 {
		interval = time.Hour
	}

	return time.NewTicker(interval)
}
