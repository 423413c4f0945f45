package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DriverFile  = "file"
	DriverMongo = "mongo"

	DefaultStoreDriver = DriverFile
	DefaultStorePath   = "data"

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "roomly"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultKafkaTopic = "roomly.booking-events"

	DefaultSeedSource = "seed/seed.example.json"

	DefaultRequestTimeout  = 30 * time.Second
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
