package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	_ "time/tzdata"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopright/backend/config"
	"github.com/shopright/backend/internal/controller"
	"github.com/shopright/backend/internal/infrastructure/database/mongodb"
	"github.com/shopright/backend/internal/infrastructure/media"
	"github.com/shopright/backend/internal/infrastructure/message-queue/kafka"
	"github.com/shopright/backend/internal/infrastructure/tracing"
	localmiddleware "github.com/shopright/backend/internal/middleware"
	"github.com/shopright/backend/internal/repository"
	"github.com/shopright/backend/internal/service"
	"github.com/shopright/backend/pkg/response"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	mongoURI := fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort)
	db, err := mongodb.ConnectToMongoDB(mongoURI, config.MongoDBConfig.DBName)
	if err != nil {
		panic(err)
	}

	kafkaProducerConn := kafka.CreateKafkaProducer(config)
	defer kafkaProducerConn.Close()
	kafkaProducer := kafka.CreateProducer(kafkaProducerConn)

	kafkaReader := kafka.CreateKafkaReader(config)
	defer kafkaReader.Close()

	mediaStore, err := media.CreateCloudinaryMediaStore(config)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create media store")
	}

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			fmt.Println(err)
		}
	}()

	tracer := traceProvider.Tracer("shopright-backend")

	e := echo.New()
	e.Validator = controller.CreateValidator()
	g := e.Group("/api/v1")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	e.Use(echoprometheus.NewMiddleware(""))
	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	trxHandler := repository.CreateNewMongoDBTrxHandler(db)
	productRepo := repository.CreateNewMongoDBProductRepository(db)
	orderRepo := repository.CreateNewMongoDBOrderRepository(db)
	reviewRepo := repository.CreateNewMongoDBReviewRepository(db)
	cartRepo := repository.CreateNewMongoDBCartRepository(db)
	userRepo := repository.CreateNewMongoDBUserRepository(db)

	productSvc := service.CreateProductService(productRepo)
	orderSvc := service.CreateOrderService(trxHandler, orderRepo, productRepo, reviewRepo, kafkaProducer)
	reviewSvc := service.CreateReviewService(trxHandler, reviewRepo, orderRepo, productRepo)
	cartSvc := service.CreateCartService(cartRepo, productRepo)
	userSvc := service.CreateUserService(userRepo, productRepo, kafkaReader)
	adminSvc := service.CreateAdminService(productRepo, orderRepo, userRepo, mediaStore, kafkaProducer, config)

	go userSvc.ConsumeIdentityEvents()

	authenticated := g.Group("", localmiddleware.Authenticate(userSvc, config.SessionSecret))
	controller.CreateProductController(authenticated, productSvc)
	controller.CreateOrderController(authenticated, orderSvc)
	controller.CreateReviewController(authenticated, reviewSvc)
	controller.CreateCartController(authenticated, cartSvc)
	controller.CreateUserController(authenticated, userSvc)

	admin := g.Group("/admin", localmiddleware.Authenticate(userSvc, config.SessionSecret), localmiddleware.AdminOnly(config.AdminEmail))
	controller.CreateAdminController(admin, adminSvc)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
