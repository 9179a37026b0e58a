package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/coiffly/coiffly/internal/domain/model"
	"github.com/coiffly/coiffly/internal/server/http/handlers"
	"github.com/coiffly/coiffly/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.SalonFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	bookingHandler := handlers.NewBookingHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.POST("/role", authHandler.SelectRole)

	staffOnly := middleware.RoleRequired(facade, model.RoleCoiffeur, model.RoleSalon)

	bookings := api.Group("/bookings")
	bookings.Use(middleware.AuthRequired(facade))
	bookings.POST("/draft", bookingHandler.StageDraft)
	bookings.GET("/draft", bookingHandler.Draft)
	bookings.DELETE("/draft", bookingHandler.ClearDraft)
	bookings.POST("/confirm", bookingHandler.Confirm)
	bookings.GET("", bookingHandler.List)
	bookings.GET("/active", bookingHandler.Active)
	bookings.GET("/upcoming", bookingHandler.Upcoming)
	bookings.GET("/past", bookingHandler.Past)
	bookings.PATCH("/:id/status", staffOnly, bookingHandler.SetStatus)
	bookings.POST("/:id/cancel", bookingHandler.Cancel)
	bookings.POST("/:id/rating", bookingHandler.Rate)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.POST("", orderHandler.Place)
	orders.GET("", orderHandler.List)
	orders.GET("/active", orderHandler.Active)
	orders.GET("/past", orderHandler.Past)
	orders.PATCH("/:id/status", staffOnly, orderHandler.UpdateStatus)
	orders.POST("/:id/cancel", orderHandler.Cancel)

	return engine
}
