package controllers

import (
	"net/http"
	"path/filepath"
	"strconv"

	"canteen-api/config"
	"canteen-api/libs"
	"canteen-api/models"
	"canteen-api/services"
	"canteen-api/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	menu   *services.MenuService
	orders *services.OrderService
	admin  *services.AdminService
}

func NewAdminController(menu *services.MenuService, orders *services.OrderService, admin *services.AdminService) *AdminController {
	return &AdminController{menu: menu, orders: orders, admin: admin}
}

// GetAnalytics godoc
// @Summary Order analytics
// @Description Total/pending/delivered order counts and revenue sum
// @Tags Admin
// @Security AdminKey
// @Produce json
// @Success 200 {object} models.Analytics
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/analytics [get]
func (ctrl *AdminController) GetAnalytics(c *gin.Context) {
	analytics, err := ctrl.admin.Analytics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// GetMenu godoc
// @Summary List all menu items
// @Description Includes unavailable items
// @Tags Admin
// @Security AdminKey
// @Produce json
// @Success 200 {array} models.MenuItem
// @Router /admin/menu [get]
func (ctrl *AdminController) GetMenu(c *gin.Context) {
	items, err := ctrl.menu.List(c.Request.Context(), "", false)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateMenuItem godoc
// @Summary Add a menu item
// @Tags Admin
// @Security AdminKey
// @Accept json
// @Produce json
// @Param request body models.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} models.MenuItem
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/menu [post]
func (ctrl *AdminController) CreateMenuItem(c *gin.Context) {
	var req models.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing required fields"})
		return
	}

	item, err := ctrl.menu.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem godoc
// @Summary Patch a menu item
// @Tags Admin
// @Security AdminKey
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param request body models.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} models.MenuItem
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/menu/{id} [patch]
func (ctrl *AdminController) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid menu item ID"})
		return
	}

	var req models.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	item, err := ctrl.menu.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Tags Admin
// @Security AdminKey
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/menu/{id} [delete]
func (ctrl *AdminController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid menu item ID"})
		return
	}

	if err := ctrl.menu.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted", "id": id})
}

// UploadMenuImage godoc
// @Summary Upload a menu item image
// @Description Stores the image locally, rehosts on cloudinary when configured, and updates the item's image reference
// @Tags Admin
// @Security AdminKey
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Menu item ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.MenuItem
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/menu/{id}/image [post]
func (ctrl *AdminController) UploadMenuImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid menu item ID"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Image file is required"})
		return
	}

	relPath, err := utils.UploadFile(c, fileHeader, "menu")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	imageRef := "/uploads/" + filepath.ToSlash(relPath)
	if libs.CloudinaryConfigured() {
		localPath := filepath.Join(config.AppConfig.UploadDir, relPath)
		if url, upErr := libs.UploadToCloudinary(localPath, "menu"); upErr == nil {
			imageRef = url
		}
	}

	if err := ctrl.menu.SetImage(c.Request.Context(), id, imageRef); err != nil {
		respondError(c, err)
		return
	}

	item, err := ctrl.menu.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// GetOrders godoc
// @Summary List orders with filters
// @Tags Admin
// @Security AdminKey
// @Produce json
// @Param status query string false "Status filter"
// @Param email query string false "Student email filter"
// @Success 200 {array} models.Order
// @Router /admin/orders [get]
func (ctrl *AdminController) GetOrders(c *gin.Context) {
	orders, err := ctrl.orders.List(c.Request.Context(), c.Query("status"), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
