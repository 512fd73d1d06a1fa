package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aldirahman/resto-order-api/models"
	"github.com/aldirahman/resto-order-api/router"
	"github.com/aldirahman/resto-order-api/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Menu{}, &models.Order{}, &models.OrderItem{}); err != nil {
		panic(err)
	}
	return db
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var body *bytes.Buffer
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(payloadBytes)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

// TestEndToEndOrderFlow menguji alur utama:
// 1. Buat menu & customer, login
// 2. Buat order dari daftar item (status "diantar", total dihitung)
// 3. Order di-pending-kan, item ditambah/diubah/dihapus, total selalu konsisten
// 4. Hapus order -> item ikut terhapus
func TestEndToEndOrderFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB()
	r := router.SetupRouter(db)

	// Seed menu lewat API
	w, resp := doJSON(t, r, "POST", "/menus", map[string]interface{}{
		"name":      "Ayam Bakar",
		"price":     30000,
		"category":  "Makanan",
		"image_url": "http://example.com/ayam.jpg",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	menuID := int(resp["data"].(map[string]interface{})["id_menu"].(float64))

	// Registrasi customer
	w, resp = doJSON(t, r, "POST", "/customers", map[string]interface{}{
		"name_customer": "Budi",
		"email":         "budi@x.com",
		"password":      "rahasia",
		"phone":         "0812",
		"address":       "Jl. Melati 1",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	customerID := int(resp["data"].(map[string]interface{})["customer_id"].(float64))

	// Login
	w, resp = doJSON(t, r, "POST", "/customers/login", map[string]interface{}{
		"email":    "budi@x.com",
		"password": "rahasia",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, resp["data"].(map[string]interface{})["token"])

	// Buat order: 2x Ayam Bakar = 60000
	w, resp = doJSON(t, r, "POST", "/orders", map[string]interface{}{
		"customer_id":    customerID,
		"payment_method": "cash",
		"items": []map[string]interface{}{
			{"menu_id": menuID, "quantity": 2},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	orderData := resp["data"].(map[string]interface{})
	orderID := int(orderData["order_id"].(float64))
	assert.Equal(t, 60000.0, orderData["total_price"])
	assert.Equal(t, "diantar", orderData["status"])
	// Format tanggal "YYYY-MM-DD HH:MM:SS"
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, orderData["order_date"])

	orderURL := "/orders/" + strconv.Itoa(orderID)

	// Item order yang baru dibuat tidak bisa diubah (status "diantar")
	w, _ = doJSON(t, r, "POST", orderURL+"/items", map[string]interface{}{
		"menu_id":  menuID,
		"quantity": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Kembalikan ke pending (mis. dibatalkan kurir), lalu tambah item
	db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", "pending")

	w, resp = doJSON(t, r, "POST", orderURL+"/items", map[string]interface{}{
		"menu_id":  menuID,
		"quantity": 1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	itemID := int(resp["data"].(map[string]interface{})["order_item_id"].(float64))

	var order models.Order
	db.First(&order, orderID)
	assert.InDelta(t, 90000.0, order.TotalPrice, 1e-9)

	// Ubah quantity item baru: 1 -> 3
	w, _ = doJSON(t, r, "PUT", "/order-items/"+strconv.Itoa(itemID), map[string]interface{}{
		"quantity": 3,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	db.First(&order, orderID)
	assert.InDelta(t, 150000.0, order.TotalPrice, 1e-9)

	// Hapus item baru
	w, _ = doJSON(t, r, "DELETE", "/order-items/"+strconv.Itoa(itemID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	db.First(&order, orderID)
	assert.InDelta(t, 60000.0, order.TotalPrice, 1e-9)

	// Ganti metode pembayaran
	w, _ = doJSON(t, r, "PUT", orderURL, map[string]interface{}{"payment_method": "transfer"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Hapus order -> item ikut hilang
	w, _ = doJSON(t, r, "DELETE", orderURL, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, "GET", orderURL+"/items", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var itemCount int64
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Equal(t, int64(0), itemCount)
}

// Limiter global per IP harus benar-benar terpasang di chain tiap route:
// burst di atas 50 request per detik mulai mendapat 429.
func TestGlobalRateLimiterActive(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB()
	r := router.SetupRouter(db)

	status := make(map[int]int)
	for i := 0; i < 60; i++ {
		req, err := http.NewRequest("GET", "/ping", nil)
		assert.NoError(t, err)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		status[w.Code]++
	}

	assert.Equal(t, 60, status[http.StatusOK]+status[http.StatusTooManyRequests])
	assert.NotZero(t, status[http.StatusTooManyRequests])
	assert.LessOrEqual(t, status[http.StatusOK], 50)
}
