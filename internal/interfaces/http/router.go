package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	bookingapp "github.com/anisurarzu/FTB-Server-Demo/internal/application/booking"
	hotelapp "github.com/anisurarzu/FTB-Server-Demo/internal/application/hotel"
	paymentuc "github.com/anisurarzu/FTB-Server-Demo/internal/application/payment/usecases"
	userapp "github.com/anisurarzu/FTB-Server-Demo/internal/application/user"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/auth"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/bkash"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/config"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/ratelimit"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/repository"
	"github.com/anisurarzu/FTB-Server-Demo/internal/interfaces/http/handlers"
	"github.com/anisurarzu/FTB-Server-Demo/internal/interfaces/http/middleware"
	"github.com/anisurarzu/FTB-Server-Demo/internal/interfaces/http/routes"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/utils"
)

// Router wires repositories, services and handlers into a Gin engine.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	paymentHandler    *handlers.PaymentHandler
	bookingHandler    *handlers.BookingHandler
	hotelHandler      *handlers.HotelHandler
	detailsHandler    *handlers.HotelDetailsHandler
	roomNumberHandler *handlers.RoomNumberHandler
	authHandler       *handlers.AuthHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimiter       ratelimit.Limiter
}

// NewRouter creates a new HTTP router with all dependencies.
// redisClient may be nil, in which case rate limiting is disabled.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	engine := gin.New()

	paymentRepo := repository.NewPaymentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	detailsRepo := repository.NewHotelDetailsRepository(db)
	roomNumberRepo := repository.NewRoomNumberRepository(db)
	userRepo := repository.NewUserRepository(db)

	tokenProvider := bkash.NewTokenProvider(cfg.Bkash, log)
	checkoutGateway := bkash.NewClient(cfg.Bkash, tokenProvider, log)

	initiateUC := paymentuc.NewInitiateCheckoutUseCase(paymentRepo, bookingRepo, checkoutGateway, log)
	executeUC := paymentuc.NewExecuteCheckoutUseCase(paymentRepo, bookingRepo, checkoutGateway, log)
	verifyUC := paymentuc.NewVerifyCheckoutUseCase(checkoutGateway, log)
	callbackUC := paymentuc.NewHandleCheckoutCallbackUseCase(paymentRepo, executeUC, log)

	bookingService := bookingapp.NewService(bookingRepo, log)
	hotelService := hotelapp.NewService(hotelRepo, log)
	detailsService := hotelapp.NewDetailsService(detailsRepo, hotelRepo, log)
	roomNumberService := hotelapp.NewRoomNumberService(roomNumberRepo, detailsRepo, log)

	hasher := auth.NewBcryptHasher(cfg.Auth.Password)
	jwtService := auth.NewJWTService(cfg.Auth.JWT)
	userService := userapp.NewService(userRepo, hasher, jwtService, log)

	var limiter ratelimit.Limiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisLimiter(redisClient, log)
	}

	return &Router{
		engine:            engine,
		cfg:               cfg,
		logger:            log,
		paymentHandler:    handlers.NewPaymentHandler(initiateUC, executeUC, verifyUC, callbackUC, log),
		bookingHandler:    handlers.NewBookingHandler(bookingService),
		hotelHandler:      handlers.NewHotelHandler(hotelService),
		detailsHandler:    handlers.NewHotelDetailsHandler(detailsService),
		roomNumberHandler: handlers.NewRoomNumberHandler(roomNumberService),
		authHandler:       handlers.NewAuthHandler(userService),
		authMiddleware:    middleware.NewAuthMiddleware(jwtService, log),
		rateLimiter:       limiter,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "ok", gin.H{"status": "healthy"})
	})

	routes.SetupPaymentRoutes(r.engine, &routes.PaymentRouteConfig{
		PaymentHandler: r.paymentHandler,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupHotelRoutes(r.engine, &routes.HotelRouteConfig{
		HotelHandler:      r.hotelHandler,
		DetailsHandler:    r.detailsHandler,
		RoomNumberHandler: r.roomNumberHandler,
		AuthMiddleware:    r.authMiddleware,
	})

	routes.SetupBookingRoutes(r.engine, &routes.BookingRouteConfig{
		BookingHandler: r.bookingHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
