package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"planora/internal/application/command"
	"planora/internal/application/images"
	"planora/internal/application/query"
	"planora/internal/application/services"
	"planora/internal/domain/repository"
	"planora/internal/infrastructure/blob"
	"planora/internal/infrastructure/bus"
	httpHandler "planora/internal/infrastructure/http"
	"planora/internal/infrastructure/mongo"
	"planora/pkg/jwt"
	"planora/pkg/logger"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded")
	}

	zapLogger, err := logger.New(getEnv("APP_ENV", "development"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting Planora API...")

	mongoConfig := &mongo.MongoConfig{
		URI:      getEnv("MONGO_URI", ""),
		Database: getEnv("MONGO_DATABASE", "planora"),
		Timeout:  30 * time.Second,
	}

	// Initialize MongoDB client
	mongoClient, err := mongo.NewMongoClient(mongoConfig)
	if err != nil {
		zapLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Close(); err != nil {
			zapLogger.Error("Error closing MongoDB connection", zap.Error(err))
		}
	}()

	if err := mongoClient.Ping(); err != nil {
		zapLogger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}
	zapLogger.Info("Connected to MongoDB")

	// Initialize infrastructure
	database := mongoClient.GetDatabase()
	eventBus := bus.NewAsyncEventBus(zapLogger)
	uowFactory := mongo.NewUnitOfWorkFactory(mongoClient.GetClient(), database)

	blobStore, err := newBlobStore(database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize blob store", zap.Error(err))
	}
	enricher := images.NewEnricher(blobStore)

	jwtManager := jwt.NewJWTManager(getEnv("JWT_SECRET", "dev-secret"), 24*time.Hour)

	// Read repositories for query handlers
	eventRepo := mongo.NewEventRepository(database)
	bookingRepo := mongo.NewBookingRepository(database)
	itemRepo := mongo.NewItemRepository(database)
	clientRepo := mongo.NewClientRepository(database)
	typeRepo := mongo.NewServiceTypeRepository(database)

	// Booking writes requested during event creation run off the bus
	bookingWriter := command.NewBookingWriter(uowFactory, zapLogger)
	if err := bookingWriter.Register(eventBus); err != nil {
		zapLogger.Fatal("Failed to register booking writer", zap.Error(err))
	}

	eventLocks := command.NewEventLocks()

	// Initialize Unit of Work command handlers
	createEventHandler := command.NewCreateEventWithUoWHandler(uowFactory, eventBus)
	editEventHandler := command.NewEditEventWithUoWHandler(uowFactory, eventBus, eventLocks)
	publishEventHandler := command.NewPublishEventWithUoWHandler(uowFactory, eventBus)
	cancelEventHandler := command.NewCancelEventWithUoWHandler(uowFactory, eventBus, eventLocks)
	deleteEventFieldHandler := command.NewDeleteEventFieldWithUoWHandler(uowFactory)
	confirmBookingHandler := command.NewConfirmBookingWithUoWHandler(uowFactory, eventBus, eventLocks)
	rejectBookingHandler := command.NewRejectBookingWithUoWHandler(uowFactory, eventBus, eventLocks)
	createItemHandler := command.NewCreateItemWithUoWHandler(uowFactory)
	editItemHandler := command.NewEditItemWithUoWHandler(uowFactory)
	deleteItemHandler := command.NewDeleteItemWithUoWHandler(uowFactory)
	createClientHandler := command.NewCreateClientWithUoWHandler(uowFactory)
	updateClientHandler := command.NewUpdateClientWithUoWHandler(uowFactory)
	updatePhotosHandler := command.NewUpdateClientPhotosWithUoWHandler(uowFactory)
	deleteClientHandler := command.NewDeleteClientWithUoWHandler(uowFactory)
	registerHandler := command.NewRegisterUserHandler(uowFactory)
	loginHandler := command.NewLoginUserHandler(uowFactory, jwtManager)

	// Initialize query handlers
	listEventsHandler := query.NewListEventsHandler(eventRepo, enricher)
	getEventDetailHandler := query.NewGetEventDetailHandler(eventRepo, itemRepo, enricher)
	listBookingsHandler := query.NewListBookingsByClientHandler(bookingRepo, enricher)
	clientScheduleHandler := query.NewListClientScheduleHandler(bookingRepo)
	getItemHandler := query.NewGetItemHandler(itemRepo, typeRepo, enricher)
	listItemsByTypeHandler := query.NewListItemsByTypeHandler(itemRepo, typeRepo)
	listItemsByClientHandler := query.NewListItemsByClientHandler(itemRepo, enricher)
	searchItemsHandler := query.NewSearchAvailableItemsHandler(itemRepo, clientRepo, typeRepo, enricher)
	getClientHandler := query.NewGetClientHandler(clientRepo)
	listClientsHandler := query.NewListClientsHandler(clientRepo)
	getClientByUserHandler := query.NewGetClientByUserIDHandler(clientRepo)
	getClientImagesHandler := query.NewGetClientImagesHandler(clientRepo, enricher)

	// Initialize application services
	eventService := services.NewEventService(
		createEventHandler,
		editEventHandler,
		publishEventHandler,
		cancelEventHandler,
		deleteEventFieldHandler,
		listEventsHandler,
		getEventDetailHandler,
	)
	bookingService := services.NewBookingService(
		confirmBookingHandler,
		rejectBookingHandler,
		listBookingsHandler,
		clientScheduleHandler,
	)
	itemService := services.NewItemService(
		createItemHandler,
		editItemHandler,
		deleteItemHandler,
		getItemHandler,
		listItemsByTypeHandler,
		listItemsByClientHandler,
		searchItemsHandler,
	)
	clientService := services.NewClientService(
		createClientHandler,
		updateClientHandler,
		updatePhotosHandler,
		deleteClientHandler,
		getClientHandler,
		listClientsHandler,
		getClientByUserHandler,
		getClientImagesHandler,
	)
	userService := services.NewUserService(registerHandler, loginHandler)

	// Start event bus
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := eventBus.Start(ctx); err != nil {
		zapLogger.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Initialize HTTP controllers and routes
	router := httpHandler.NewRouter(httpHandler.Controllers{
		Auth:    httpHandler.NewAuthController(userService),
		Event:   httpHandler.NewEventController(eventService),
		Booking: httpHandler.NewBookingController(bookingService),
		Item:    httpHandler.NewItemController(itemService),
		Client:  httpHandler.NewClientController(clientService),
		Media:   httpHandler.NewMediaController(blobStore),
	}, jwtManager, zapLogger)

	port := getEnv("PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		zapLogger.Info("Server starting", zap.String("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Let in-flight booking writes drain before the store goes away
	eventBus.Wait()
	if err := eventBus.Stop(); err != nil {
		zapLogger.Error("Failed to stop event bus", zap.Error(err))
	}

	zapLogger.Info("Server stopped")
}

// newBlobStore picks the asset storage driver. GridFS keeps assets next to
// the documents; Cloudinary offloads them to the CDN.
func newBlobStore(database *mongodriver.Database) (repository.BlobStore, error) {
	switch getEnv("BLOB_DRIVER", "gridfs") {
	case "cloudinary":
		return blob.NewCloudinaryStore(blob.NewCloudinaryConfigFromEnv())
	default:
		return blob.NewGridFSStore(database, getEnv("BLOB_BUCKET", "assets"))
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
