package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/dineshdk1011/college-canteen/pkg/resp"
	"github.com/dineshdk1011/college-canteen/repository"
)

type CanteenController struct {
	Catalog *repository.CatalogRepository
}

func NewCanteenController(catalog *repository.CatalogRepository) *CanteenController {
	return &CanteenController{Catalog: catalog}
}

// GET /canteens
func (ctl *CanteenController) List(c *gin.Context) {
	resp.OK(c, ctl.Catalog.List())
}

// GET /canteens/:id
func (ctl *CanteenController) Detail(c *gin.Context) {
	canteen, ok := ctl.Catalog.GetCanteen(c.Param("id"))
	if !ok {
		resp.NotFound(c, "canteen not found")
		return
	}
	resp.OK(c, canteen)
}
