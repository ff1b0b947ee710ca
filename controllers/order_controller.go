package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dineshdk1011/college-canteen/entity"
	"github.com/dineshdk1011/college-canteen/pkg/resp"
	"github.com/dineshdk1011/college-canteen/repository"
	"github.com/dineshdk1011/college-canteen/services"
)

type OrderController struct {
	Checkout *services.CheckoutService
	Orders   *repository.OrderRepository
}

func NewOrderController(checkout *services.CheckoutService, orders *repository.OrderRepository) *OrderController {
	return &OrderController{Checkout: checkout, Orders: orders}
}

// POST /checkout
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	orderID, err := ctl.Checkout.Checkout(c.Request.Context(), req)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			resp.Conflict(c, "cart is empty")
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{
				"ok":            false,
				"error":         ve.Error(),
				"missingFields": ve.Fields,
			})
		default:
			// persist failure; the cart is still intact, the client may retry
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"orderId": orderID})
}

// GET /orders
func (ctl *OrderController) List(c *gin.Context) {
	orders := ctl.Orders.ListAll(c.Request.Context())
	if orders == nil {
		orders = []entity.Order{}
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	order, ok := ctl.Orders.FindByID(c.Request.Context(), c.Param("id"))
	if !ok {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, order)
}
