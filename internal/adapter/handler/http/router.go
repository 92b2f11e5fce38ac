package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/zumerkk/atlasderslik-sub000/internal/adapter/config"
	"github.com/zumerkk/atlasderslik-sub000/internal/core/port"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	paymentHandler *PaymentHandler) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		payment := api.Group("/payment")
		{
			// The gateway posts here after the buyer finishes; no auth, the
			// token is resolved against the gateway before anything happens.
			payment.POST("/callback", paymentHandler.Callback)

			authed := payment.Group("")
			{
				authed.Use(authCheck(tokenService))
				authed.POST("/initialize", paymentHandler.InitializeCheckout)
				authed.GET("/orders", paymentHandler.ListOrdersByUser)
				authed.GET("/orders/current", paymentHandler.CurrentOrder)
			}
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
