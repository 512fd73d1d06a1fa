package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aldirahman/resto-order-api/models"
	"github.com/aldirahman/resto-order-api/utils"
)

type OrderItemController struct {
	DB *gorm.DB
}

func NewOrderItemController(db *gorm.DB) *OrderItemController {
	return &OrderItemController{DB: db}
}

// ensureOrderPending: item hanya boleh ditambah/diubah/dihapus selama
// order induknya masih berstatus "pending".
func ensureOrderPending(order models.Order, action string) error {
	if order.Status != "pending" {
		return fmt.Errorf("%s karena status order sudah %s", action, order.Status)
	}
	return nil
}

// GetItemsByOrder -> daftar item sebuah order, di-join dengan nama menu
func (ic *OrderItemController) GetItemsByOrder(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	var order models.Order
	if err := ic.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	items, err := itemDetails(ic.DB, order.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of order items", items)
}

// AddItem -> tambah 1 item ke order yang masih pending.
// Harga menu di-snapshot saat item dibuat; total order naik sebesar subtotal.
func (ic *OrderItemController) AddItem(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	type ReqBody struct {
		MenuID   *uint `json:"menu_id"`
		Quantity *int  `json:"quantity"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.MenuID == nil || body.Quantity == nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("menu_id dan quantity diperlukan"))
		return
	}
	if *body.Quantity <= 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidQuantity)
		return
	}

	var menu models.Menu
	if err := ic.DB.First(&menu, *body.MenuID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrMenuNotFound)
		return
	}

	var order models.Order
	if err := ic.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	if err := ensureOrderPending(order, "Tidak dapat menambah item"); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	price := float64(menu.Price)
	subtotal := price * float64(*body.Quantity)

	item := models.OrderItem{
		OrderID:  order.ID,
		MenuID:   menu.ID,
		Quantity: *body.Quantity,
		Price:    price,
		Subtotal: subtotal,
	}

	tx := ic.DB.Begin()

	if err := tx.Create(&item).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	order.TotalPrice += subtotal
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Item ditambahkan", item)
}

// UpdateItem -> ubah quantity sebuah item; harga snapshot tidak berubah,
// total order disesuaikan sebesar selisih subtotal.
func (ic *OrderItemController) UpdateItem(c *gin.Context) {
	idStr := c.Param("order_item_id")
	id, _ := strconv.Atoi(idStr)

	type ReqBody struct {
		Quantity *int `json:"quantity"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Quantity == nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("Field 'quantity' diperlukan"))
		return
	}
	if *body.Quantity <= 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidQuantity)
		return
	}

	var item models.OrderItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderItemNotFound)
		return
	}

	var order models.Order
	if err := ic.DB.First(&order, item.OrderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	if err := ensureOrderPending(order, "Order tidak dapat diubah"); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	oldSubtotal := item.Subtotal
	item.Quantity = *body.Quantity
	item.Subtotal = item.Price * float64(*body.Quantity)

	tx := ic.DB.Begin()

	if err := tx.Save(&item).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	order.TotalPrice += item.Subtotal - oldSubtotal
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item diperbarui", item)
}

// DeleteItem -> hapus item dan kurangi total order sebesar subtotalnya
func (ic *OrderItemController) DeleteItem(c *gin.Context) {
	idStr := c.Param("order_item_id")
	id, _ := strconv.Atoi(idStr)

	var item models.OrderItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderItemNotFound)
		return
	}

	var order models.Order
	if err := ic.DB.First(&order, item.OrderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	if err := ensureOrderPending(order, "Item tidak dapat dihapus"); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tx := ic.DB.Begin()

	order.TotalPrice -= item.Subtotal
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := tx.Delete(&item).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "OrderItem dihapus", gin.H{"order_item_id": item.ID})
}
