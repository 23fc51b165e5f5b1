package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/onurusluca/qrkosta-app/controllers"
	"github.com/onurusluca/qrkosta-app/middlewares"
	"github.com/onurusluca/qrkosta-app/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	sessionSvc := services.NewSessionService(db)
	visitLogger := services.NewVisitLogger(db)
	rateSvc := services.NewRateService()

	shopCtrl := controllers.NewShopController(db, visitLogger)
	tableCtrl := controllers.NewTableController(db, sessionSvc, visitLogger)
	orderCtrl := controllers.NewOrderController(db, sessionSvc)
	rateCtrl := controllers.NewRateController(rateSvc)
	currencyCtrl := controllers.NewCurrencyController()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		api.GET("/rates", rateCtrl.GetRates)

		api.GET("/currency", currencyCtrl.GetCurrency)
		api.PUT("/currency", currencyCtrl.SetCurrency)

		// QR landing card by short id; must register before the
		// :identifier routes so the static "s" segment wins.
		api.GET("/shop/s/:shortId", shopCtrl.GetShopByShortID)

		// Identifier resolution (5-char short id vs slug)
		api.GET("/shop/:identifier", shopCtrl.ResolveShop)
		api.GET("/shop/:identifier/menus", shopCtrl.GetShopMenus)
		api.GET("/shop/:identifier/table/:tableShortId", tableCtrl.ResolveTable)
		api.GET("/shop/:identifier/table/:tableShortId/orders", tableCtrl.GetTableOrders)

		// Legacy lookups with the relaxed 4-6 char short-id fallback
		api.GET("/shops/:slug", shopCtrl.GetShopBySlug)
		api.GET("/shops/:slug/menu", shopCtrl.GetShopMenu)

		// Order submission; write endpoints get the stricter limiter
		submit := api.Group("/")
		submit.Use(middlewares.NewStrictRateLimiter())
		{
			submit.POST("/order", orderCtrl.CreateOrder)
			submit.POST("/shop/:identifier/table/:tableShortId/order", orderCtrl.CreateTableOrder)
		}
	}

	return r
}
