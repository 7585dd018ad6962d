package api

import (
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/soaeast/crm-api/docs"
	"github.com/soaeast/crm-api/internal/api/handler"
	"github.com/soaeast/crm-api/internal/api/middleware"
	"github.com/soaeast/crm-api/internal/core/service"
	mongodb "github.com/soaeast/crm-api/internal/infrastructure/db/mongo"
	"github.com/soaeast/crm-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: strings.Split(cfg.CORSOrigins, ","),
	}))
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	dealRepo := mongodb.NewDealRepository(db)
	brokerRepo := mongodb.NewBrokerRepository(db)
	channelRepo := mongodb.NewChannelRepository(db)
	integrationRepo := mongodb.NewIntegrationRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	settingsRepo := mongodb.NewSettingsRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour, log)
	orderService := service.NewOrderService(orderRepo, clientRepo, settingsRepo, log)
	roleService := service.NewRoleService(roleRepo, userRepo, log)
	dashboardService := service.NewDashboardService(orderRepo, clientRepo, dealRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientRepo, orderService, dealRepo)
	productHandler := handler.NewProductHandler(productRepo)
	orderHandler := handler.NewOrderHandler(orderService)
	dealHandler := handler.NewDealHandler(dealRepo)
	brokerHandler := handler.NewBrokerHandler(brokerRepo)
	channelHandler := handler.NewChannelHandler(channelRepo)
	integrationHandler := handler.NewIntegrationHandler(integrationRepo)
	messageHandler := handler.NewMessageHandler(messageRepo)
	roleHandler := handler.NewRoleHandler(roleService)
	teamHandler := handler.NewTeamHandler(userRepo, authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	exportHandler := handler.NewExportHandler(clientRepo, productRepo, orderService, dealRepo, brokerRepo, channelRepo)
	settingsHandler := handler.NewSettingsHandler(settingsRepo)
	healthHandler := handler.NewHealthHandler(db)

	// --- Operational endpoints (no auth) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Public auth routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	protected := apiGroup.Group("", middleware.Auth(authService))
	protected.GET("/auth/me", authHandler.Me)

	protected.GET("/clients", clientHandler.List)
	protected.POST("/clients", clientHandler.Create)
	protected.GET("/clients/:id", clientHandler.Get)
	protected.PUT("/clients/:id", clientHandler.Update)
	protected.DELETE("/clients/:id", clientHandler.Delete)
	protected.GET("/clients/:id/orders", clientHandler.Orders)
	protected.GET("/clients/:id/deals", clientHandler.Deals)
	protected.GET("/clients/:id/notes", clientHandler.Notes)
	protected.POST("/clients/:id/notes", clientHandler.CreateNote)
	protected.DELETE("/clients/:id/notes/:noteId", clientHandler.DeleteNote)

	protected.GET("/products", productHandler.List)
	protected.POST("/products", productHandler.Create)
	protected.GET("/products/:id", productHandler.Get)
	protected.PUT("/products/:id", productHandler.Update)
	protected.DELETE("/products/:id", productHandler.Delete)

	protected.GET("/orders", orderHandler.List)
	protected.POST("/orders", orderHandler.Create)
	protected.GET("/orders/:id", orderHandler.Get)
	protected.PUT("/orders/:id", orderHandler.Update)
	protected.DELETE("/orders/:id", orderHandler.Delete)

	protected.GET("/deals", dealHandler.List)
	protected.POST("/deals", dealHandler.Create)
	protected.GET("/deals/:id", dealHandler.Get)
	protected.PUT("/deals/:id", dealHandler.Update)
	protected.DELETE("/deals/:id", dealHandler.Delete)

	protected.GET("/brokers", brokerHandler.List)
	protected.POST("/brokers", brokerHandler.Create)
	protected.GET("/brokers/:id", brokerHandler.Get)
	protected.PUT("/brokers/:id", brokerHandler.Update)
	protected.DELETE("/brokers/:id", brokerHandler.Delete)
	protected.POST("/brokers/:id/record-sale", brokerHandler.RecordSale)

	protected.GET("/channels", channelHandler.List)
	protected.POST("/channels", channelHandler.Create)
	protected.GET("/channels/:id", channelHandler.Get)
	protected.PUT("/channels/:id", channelHandler.Update)
	protected.DELETE("/channels/:id", channelHandler.Delete)

	protected.GET("/integrations", integrationHandler.List)
	protected.POST("/integrations", integrationHandler.Create)
	protected.GET("/integrations/:id", integrationHandler.Get)
	protected.PUT("/integrations/:id", integrationHandler.Update)
	protected.DELETE("/integrations/:id", integrationHandler.Delete)
	protected.POST("/integrations/:id/test", integrationHandler.Test)

	protected.GET("/messages", messageHandler.List)
	protected.POST("/messages", messageHandler.Create)
	protected.PUT("/messages/:id/read", messageHandler.MarkRead)
	protected.DELETE("/messages/:id", messageHandler.Delete)

	protected.GET("/roles", roleHandler.List)
	protected.POST("/roles", roleHandler.Create)
	protected.GET("/roles/:id", roleHandler.Get)
	protected.PUT("/roles/:id", roleHandler.Update)
	protected.DELETE("/roles/:id", roleHandler.Delete)

	protected.GET("/team-members", teamHandler.List)
	protected.POST("/team-members", teamHandler.Create)
	protected.GET("/team-members/:id", teamHandler.Get)
	protected.PUT("/team-members/:id", teamHandler.Update)
	protected.DELETE("/team-members/:id", teamHandler.Delete)

	protected.GET("/dashboard/stats", dashboardHandler.Stats)
	protected.GET("/dashboard/pipeline-summary", dashboardHandler.Pipeline)
	protected.GET("/dashboard/sales-trend", dashboardHandler.SalesTrend)
	protected.GET("/dashboard/recent-deals", dashboardHandler.RecentDeals)

	protected.GET("/export/:type", exportHandler.Export)

	protected.GET("/settings", settingsHandler.Get)
	protected.PUT("/settings", settingsHandler.Update)

	return e
}
