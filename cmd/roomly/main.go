package main

import (
	"context"

	assetshandler "roomly/internal/assets/handler"
	assetsrepo "roomly/internal/assets/repository"
	assetsservice "roomly/internal/assets/service"
	bookingshandler "roomly/internal/bookings/handler"
	bookingsrepo "roomly/internal/bookings/repository"
	bookingsservice "roomly/internal/bookings/service"
	bookingsvalidator "roomly/internal/bookings/validator"
	"roomly/internal/events"
	roomshandler "roomly/internal/rooms/handler"
	roomsrepo "roomly/internal/rooms/repository"
	roomsservice "roomly/internal/rooms/service"
	roomsvalidator "roomly/internal/rooms/validator"
	"roomly/internal/seed"
	snapshothandler "roomly/internal/snapshot/handler"
	snapshotservice "roomly/internal/snapshot/service"
	"roomly/internal/store"
	"roomly/pkg/app"
	"roomly/pkg/config"
	"roomly/pkg/kafka"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	cfg := config.Load("roomly")
	log := cfg.Log

	dataStore := newStore(cfg)

	seed.NewSeeder(dataStore, cfg.SeedSource, log).Run(context.Background())

	publisher := newPublisher(cfg)

	roomRepo := roomsrepo.NewStoreRoomRepository(dataStore)
	assetRepo := assetsrepo.NewStoreAssetRepository(dataStore)
	bookingRepo := bookingsrepo.NewStoreBookingRepository(dataStore)

	roomService := roomsservice.NewRoomService(roomRepo, roomsvalidator.NewRoomValidator(log), log)
	assetService := assetsservice.NewAssetService(assetRepo, log)
	bookingService := bookingsservice.NewBookingService(bookingRepo, bookingsvalidator.NewBookingValidator(log), publisher, log)
	snapshotService := snapshotservice.NewSnapshotService(roomRepo, assetRepo, bookingRepo, log)

	application := app.NewApplication(cfg)
	application.SetHandlers(
		roomshandler.NewRoomHandler(roomService, log),
		assetshandler.NewAssetHandler(assetService, log),
		bookingshandler.NewBookingHandler(bookingService, log),
		snapshothandler.NewSnapshotHandler(snapshotService, log),
	)
	application.Run()
}

func newStore(cfg *config.Config) store.Store {
	log := cfg.Log

	switch cfg.StoreDriver {
	case config.DriverMongo:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			log.Fatal("Failed to ping MongoDB", "error", err)
		}

		log.Info("Connected to MongoDB", "database", cfg.MongoDatabaseName)
		return store.NewMongoStore(client.Database(cfg.MongoDatabaseName))

	default:
		fileStore, err := store.NewFileStore(cfg.StorePath)
		if err != nil {
			log.Fatal("Failed to open file store", "path", cfg.StorePath, "error", err)
		}
		log.Info("Using file store", "path", cfg.StorePath)
		return fileStore
	}
}

func newPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka brokers not configured, booking events disabled")
		return events.NoopPublisher{}
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Kafka producer ready", "topic", cfg.KafkaTopic)
	return events.NewKafkaPublisher(producer, cfg.Log)
}
