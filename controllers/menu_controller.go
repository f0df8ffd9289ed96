package controllers

import (
	"net/http"
	"strconv"

	"canteen-api/models"
	"canteen-api/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

// GetMenu godoc
// @Summary List menu items
// @Description Public catalog listing, filterable by category; unavailable items hidden unless available=false
// @Tags Menu
// @Produce json
// @Param category query string false "Category filter"
// @Param available query string false "Set to false to include unavailable items"
// @Success 200 {array} models.MenuItem
// @Router /menu [get]
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	category := c.Query("category")
	availableOnly := c.Query("available") != "false"

	items, err := ctrl.menu.List(c.Request.Context(), category, availableOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetMenuItem godoc
// @Summary Get a menu item
// @Tags Menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.MenuItem
// @Failure 404 {object} models.ErrorResponse
// @Router /menu/{id} [get]
func (ctrl *MenuController) GetMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid menu item ID"})
		return
	}

	item, err := ctrl.menu.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// GetCategories godoc
// @Summary List categories
// @Description Sorted distinct categories, prefixed with "All"
// @Tags Menu
// @Produce json
// @Success 200 {array} string
// @Router /menu/categories/list [get]
func (ctrl *MenuController) GetCategories(c *gin.Context) {
	categories, err := ctrl.menu.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}
