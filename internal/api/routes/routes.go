// internal/api/routes/routes.go
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"agribridge-api-server/internal/analytics"
	"agribridge-api-server/internal/api/handlers"
	"agribridge-api-server/internal/store"
)

// SetupRouter receives the shared dependencies and wires every route.
func SetupRouter(st *store.Store, log *logrus.Logger) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())

	// The API is open to any frontend origin.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	engine := analytics.NewEngine(st, log)

	farmerHandler := &handlers.FarmerHandler{Store: st}
	buyerHandler := &handlers.BuyerHandler{Store: st}
	productHandler := &handlers.ProductHandler{Store: st}
	orderHandler := &handlers.OrderHandler{Store: st}
	routeHandler := &handlers.RouteHandler{Store: st}
	analyticsHandler := &handlers.AnalyticsHandler{Engine: engine}
	systemHandler := &handlers.SystemHandler{Store: st}

	router.GET("/", systemHandler.Root)
	router.GET("/test", systemHandler.TestDatabase)
	router.GET("/schema", systemHandler.GetSchema)

	api := router.Group("/api")
	{
		api.GET("/hello", systemHandler.Hello)

		farmers := api.Group("/farmers")
		{
			farmers.POST("", farmerHandler.CreateFarmer)
			farmers.GET("", farmerHandler.ListFarmers)
		}

		buyers := api.Group("/buyers")
		{
			buyers.POST("", buyerHandler.CreateBuyer)
			buyers.GET("", buyerHandler.ListBuyers)
		}

		products := api.Group("/products")
		{
			products.POST("", productHandler.CreateProduct)
			products.GET("", productHandler.ListProducts)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
		}

		logistics := api.Group("/routes")
		{
			logistics.POST("", routeHandler.CreateRoute)
			logistics.GET("", routeHandler.ListRoutes)
		}

		analyticsGroup := api.Group("/analytics")
		{
			analyticsGroup.GET("/pricing", analyticsHandler.GetPricingTrends)
			analyticsGroup.GET("/demand", analyticsHandler.GetDemandForecast)
			analyticsGroup.GET("/supply", analyticsHandler.GetSupplyOverview)
		}
	}

	return router
}
