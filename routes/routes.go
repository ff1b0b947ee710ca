package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dineshdk1011/college-canteen/controllers"
	"github.com/dineshdk1011/college-canteen/middlewares"
	"github.com/dineshdk1011/college-canteen/repository"
	"github.com/dineshdk1011/college-canteen/services"
)

// Deps is everything the route table needs, built by the composition root.
type Deps struct {
	Catalog  *repository.CatalogRepository
	Cart     *services.CartService
	Checkout *services.CheckoutService
	Orders   *repository.OrderRepository
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	canteenCtl := controllers.NewCanteenController(d.Catalog)
	cartCtl := controllers.NewCartController(d.Cart, d.Catalog)
	orderCtl := controllers.NewOrderController(d.Checkout, d.Orders)

	// Catalog (public, read-only)
	r.GET("/canteens", canteenCtl.List)
	r.GET("/canteens/:id", canteenCtl.Detail)

	// Cart
	cart := r.Group("/cart")
	{
		cart.GET("", cartCtl.Get)
		cart.POST("/items", cartCtl.Add)
		cart.PATCH("/items/qty", cartCtl.UpdateQty)
		cart.DELETE("/items/:itemId", cartCtl.RemoveItem)
		cart.DELETE("", cartCtl.Clear)
	}

	// Checkout + order history
	r.POST("/checkout", orderCtl.Create)
	r.GET("/orders", orderCtl.List)
	r.GET("/orders/:id", orderCtl.Detail)
}
