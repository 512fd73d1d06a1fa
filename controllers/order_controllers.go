package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aldirahman/resto-order-api/models"
	"github.com/aldirahman/resto-order-api/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// GetAllOrders -> list orders beserta item yang sudah di-join nama menu
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	results := make([]OrderDetail, 0, len(orders))
	for _, order := range orders {
		detail, err := orderDetail(oc.DB, order)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		results = append(results, detail)
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", results)
}

// GetOrderByID -> detail 1 order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	detail, err := orderDetail(oc.DB, order)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", detail)
}

// CreateOrder -> buat order beserta seluruh item sekaligus.
// Seluruh daftar item divalidasi dulu; kalau ada satu yang tidak valid,
// tidak ada order maupun item yang tersimpan.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type ItemReq struct {
		MenuID   uint `json:"menu_id"`
		Quantity int  `json:"quantity"`
	}

	type ReqBody struct {
		CustomerID    *uint     `json:"customer_id"`
		PaymentMethod *string   `json:"payment_method"`
		Items         []ItemReq `json:"items"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.CustomerID == nil || body.PaymentMethod == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrIncompleteData)
		return
	}

	if len(body.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Field 'items' harus berisi daftar item"))
		return
	}

	// Resolve semua menu dan hitung subtotal sebelum menulis apapun
	var total float64
	orderItems := make([]models.OrderItem, 0, len(body.Items))

	for _, item := range body.Items {
		if item.Quantity <= 0 {
			utils.RespondError(c, http.StatusBadRequest, ErrInvalidQuantity)
			return
		}

		var menu models.Menu
		if err := oc.DB.First(&menu, item.MenuID).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("Menu dengan id %d tidak ditemukan", item.MenuID))
			return
		}

		price := float64(menu.Price)
		subtotal := price * float64(item.Quantity)
		total += subtotal

		orderItems = append(orderItems, models.OrderItem{
			MenuID:   menu.ID,
			Quantity: item.Quantity,
			Price:    price,
			Subtotal: subtotal,
		})
	}

	order := models.Order{
		CustomerID:    *body.CustomerID,
		TotalPrice:    total,
		PaymentMethod: *body.PaymentMethod,
		Status:        "diantar",
		OrderDate:     time.Now(),
	}

	tx := oc.DB.Begin()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	for i := range orderItems {
		orderItems[i].OrderID = order.ID
		if err := tx.Create(&orderItems[i]).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order #%d dibuat, total Rp %s", order.ID, utils.FormatCurrency(total))

	detail, err := orderDetail(oc.DB, order)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order berhasil dibuat", detail)
}

// UpdateOrder -> customer hanya boleh mengubah metode pembayaran
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	type ReqBody struct {
		PaymentMethod *string `json:"payment_method"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.PaymentMethod == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Field 'payment_method' harus ada"))
		return
	}

	order.PaymentMethod = *body.PaymentMethod
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Metode pembayaran berhasil diperbarui", gin.H{
		"order_id":       order.ID,
		"payment_method": order.PaymentMethod,
	})
}

// DeleteOrder -> hapus order beserta seluruh itemnya dalam satu transaksi
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	tx := oc.DB.Begin()

	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order berhasil dihapus", gin.H{"order_id": order.ID})
}
