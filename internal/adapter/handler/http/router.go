package http

import (
	"github.com/duka-eats/payflow/internal/adapter/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.Gateway,
	orderHandler *OrderHandler,
	webhookHandler *WebhookHandler,
	adminHandler *AdminHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	{
		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.Checkout)
			orders.GET("/:number", orderHandler.GetOrder)
			orders.POST("/:number/events", orderHandler.ApplyEvent)
			orders.POST("/:number/payment", orderHandler.RetryPayment)
		}

		payments := api.Group("/payments")
		{
			payments.Use(webhookAuth(conf.WebhookSecret))
			payments.POST("/webhook", webhookHandler.Callback)
		}

		admin := api.Group("/admin")
		{
			admin.GET("/disbursements/manual-review", adminHandler.ManualReviewList)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
