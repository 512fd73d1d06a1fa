package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aldirahman/resto-order-api/controllers"
	"github.com/aldirahman/resto-order-api/models"
	"github.com/aldirahman/resto-order-api/utils"
)

func setupTestDBForMenus(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:menutest?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.Customer{}, &models.Menu{}, &models.Order{}, &models.OrderItem{})
	if err != nil {
		panic(err)
	}
	db.Exec("DELETE FROM order_items")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM menus")
	db.Exec("DELETE FROM customers")
	return db
}

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	menuCtrl := controllers.NewMenuController(db)
	router.GET("/menus", menuCtrl.GetAllMenus)
	router.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	router.POST("/menus", menuCtrl.CreateMenu)
	router.PUT("/menus/:menu_id", menuCtrl.UpdateMenu)
	router.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
	return router
}

func TestMenuCRUD(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMenus(t)
	router := setupMenuRouter(db)

	payload := map[string]interface{}{
		"name":      "Nasi Goreng",
		"price":     25000,
		"category":  "Makanan",
		"image_url": "http://example.com/nasgor.jpg",
	}
	payloadBytes, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/menus", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	data, ok := createResp["data"].(map[string]interface{})
	assert.True(t, ok)
	menuIDFloat, ok := data["id_menu"].(float64)
	assert.True(t, ok)
	menuID := int(menuIDFloat)

	// Get by ID
	url := "/menus/" + strconv.Itoa(menuID)
	req, _ = http.NewRequest("GET", url, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Partial update: hanya harga
	payloadBytes, _ = json.Marshal(map[string]interface{}{"price": 27000})
	req, _ = http.NewRequest("PUT", url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var menu models.Menu
	db.First(&menu, menuID)
	assert.Equal(t, 27000, menu.Price)
	assert.Equal(t, "Nasi Goreng", menu.Name)

	// Delete
	req, _ = http.NewRequest("DELETE", url, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", url, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMenuIncompleteData(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMenus(t)
	router := setupMenuRouter(db)

	payloadBytes, _ := json.Marshal(map[string]interface{}{
		"name":  "Es Teh",
		"price": 5000,
	})
	req, _ := http.NewRequest("POST", "/menus", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMenuBlockedByOrderItems(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMenus(t)
	router := setupMenuRouter(db)

	menu := models.Menu{Name: "Sate", Price: 20000, Category: "Makanan", ImageURL: ""}
	db.Create(&menu)
	customer := models.Customer{Name: "Alice", Email: "menu-a@x.com", Password: "p", Phone: "555", Address: "1 Rd"}
	db.Create(&customer)
	order := models.Order{CustomerID: customer.ID, PaymentMethod: "cash", Status: "pending", TotalPrice: 20000}
	db.Create(&order)
	item := models.OrderItem{OrderID: order.ID, MenuID: menu.ID, Quantity: 1, Price: 20000, Subtotal: 20000}
	db.Create(&item)

	url := "/menus/" + strconv.Itoa(int(menu.ID))
	req, _ := http.NewRequest("DELETE", url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Menu{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
