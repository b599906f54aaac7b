package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"campuslink/internal/adapter/api"
	"campuslink/internal/adapter/api/handler"
	apimiddleware "campuslink/internal/adapter/api/middleware"
	"campuslink/internal/adapter/api/router"
	"campuslink/internal/adapter/repository"
	"campuslink/internal/infrastructure/firebase"
	"campuslink/internal/infrastructure/live"
	"campuslink/internal/infrastructure/ratelimit"
	"campuslink/internal/infrastructure/storage"
	"campuslink/internal/infrastructure/websocket"
	"campuslink/internal/usecase"
	"campuslink/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if credentialsPath == "" {
			credentialsPath = "./service-account.json"
		}
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}
		opt = option.WithCredentialsFile(credentialsPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	followRepo := repository.NewFirestoreFollowRepository(firestoreClient)
	postRepo := repository.NewFirestorePostRepository(firestoreClient)
	commentRepo := repository.NewFirestoreCommentRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	confessionRepo := repository.NewFirestoreConfessionRepository(firestoreClient)
	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	moderationRepo := repository.NewFirestoreModerationRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo, followRepo)
	postUseCase := usecase.NewPostUseCase(postRepo, limiter, cfg.FeedPageSize)
	commentUseCase := usecase.NewCommentUseCase(commentRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, limiter)
	confessionUseCase := usecase.NewConfessionUseCase(confessionRepo, limiter)
	listingUseCase := usecase.NewListingUseCase(listingRepo, chatUseCase, limiter)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	adminUseCase := usecase.NewAdminUseCase(userRepo, postRepo, moderationRepo, firebaseAuthClient)

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	broker := live.NewBroker(ctx, firestoreClient, wsManager)
	wsManager.SetTopicHooks(broker)

	handler.Setup(
		authUseCase,
		userUseCase,
		postUseCase,
		commentUseCase,
		chatUseCase,
		confessionUseCase,
		listingUseCase,
		notificationUseCase,
		adminUseCase,
	)
	handler.SetupFileHandler(storageClient)
	handler.SetupWebSocketHandler(wsManager, authMiddleware, chatUseCase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	router.Setup(e, authMiddleware, adminMiddleware)

	if cfg.Environment == "development" {
		handler.SetupDevTokenHandler(authUseCase)
		router.SetupDevRouter(e)
	}

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
