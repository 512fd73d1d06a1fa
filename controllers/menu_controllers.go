package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aldirahman/resto-order-api/models"
	"github.com/aldirahman/resto-order-api/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenus
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var menus []models.Menu
	if err := mc.DB.Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// GetMenuByID
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	idStr := c.Param("menu_id")
	id, _ := strconv.Atoi(idStr)

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrMenuNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}

// CreateMenu
func (mc *MenuController) CreateMenu(c *gin.Context) {
	type ReqBody struct {
		Name     *string `json:"name"`
		Price    *int    `json:"price"`
		Category *string `json:"category"`
		ImageURL *string `json:"image_url"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name == nil || body.Price == nil || body.Category == nil || body.ImageURL == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrIncompleteData)
		return
	}

	menu := models.Menu{
		Name:     *body.Name,
		Price:    *body.Price,
		Category: *body.Category,
		ImageURL: *body.ImageURL,
	}

	if err := mc.DB.Create(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}

// UpdateMenu -> partial patch atas name/price/category/image_url
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	idStr := c.Param("menu_id")
	id, _ := strconv.Atoi(idStr)

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrMenuNotFound)
		return
	}

	type ReqBody struct {
		Name     *string `json:"name"`
		Price    *int    `json:"price"`
		Category *string `json:"category"`
		ImageURL *string `json:"image_url"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name != nil {
		menu.Name = *body.Name
	}
	if body.Price != nil {
		menu.Price = *body.Price
	}
	if body.Category != nil {
		menu.Category = *body.Category
	}
	if body.ImageURL != nil {
		menu.ImageURL = *body.ImageURL
	}

	if err := mc.DB.Save(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu updated", menu)
}

// DeleteMenu -> ditolak selama menu masih direferensikan order item
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	idStr := c.Param("menu_id")
	id, _ := strconv.Atoi(idStr)

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrMenuNotFound)
		return
	}

	var itemCount int64
	if err := mc.DB.Model(&models.OrderItem{}).Where("menu_id = ?", menu.ID).Count(&itemCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if itemCount > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Menu masih digunakan oleh order"))
		return
	}

	if err := mc.DB.Delete(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu dihapus", gin.H{"id_menu": menu.ID})
}
