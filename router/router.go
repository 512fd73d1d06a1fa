package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aldirahman/resto-order-api/controllers"
	"github.com/aldirahman/resto-order-api/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Rate limiter global per IP (50 request per detik).
	// Harus didaftarkan sebelum route: gin membekukan chain handler
	// tiap route saat route didaftarkan.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	// Inisialisasi controller
	customerCtrl := controllers.NewCustomerController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	itemCtrl := controllers.NewOrderItemController(db)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "API berjalan",
			"services": []string{"customers", "orders", "menus"},
		})
	})

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login
	auth := r.Group("/")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/customers/login", customerCtrl.Login)
	}

	// -- CUSTOMER --
	r.GET("/customers", customerCtrl.GetAllCustomers)
	r.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
	r.POST("/customers", customerCtrl.CreateCustomer)
	r.PUT("/customers/:customer_id", customerCtrl.UpdateCustomer)
	r.DELETE("/customers/:customer_id", customerCtrl.DeleteCustomer)

	// -- MENU --
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	r.POST("/menus", menuCtrl.CreateMenu)
	r.PUT("/menus/:menu_id", menuCtrl.UpdateMenu)
	r.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

	// -- ORDER --
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.PUT("/orders/:order_id", orderCtrl.UpdateOrder)
	r.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	// -- ORDER ITEM --
	r.GET("/orders/:order_id/items", itemCtrl.GetItemsByOrder)
	r.POST("/orders/:order_id/items", itemCtrl.AddItem)
	r.PUT("/order-items/:order_item_id", itemCtrl.UpdateItem)
	r.DELETE("/order-items/:order_item_id", itemCtrl.DeleteItem)

	return r
}
