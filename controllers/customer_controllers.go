package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aldirahman/resto-order-api/models"
	"github.com/aldirahman/resto-order-api/utils"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetAllCustomers -> semua customer beserta order dan item-itemnya
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := cc.DB.Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	result := make([]CustomerDetail, 0, len(customers))
	for _, customer := range customers {
		detail, err := customerDetail(cc.DB, customer)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		result = append(result, detail)
	}

	utils.RespondJSON(c, http.StatusOK, "List of customers", result)
}

// GetCustomerByID
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	idStr := c.Param("customer_id")
	id, _ := strconv.Atoi(idStr)

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrCustomerNotFound)
		return
	}

	detail, err := customerDetail(cc.DB, customer)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", detail)
}

// CreateCustomer -> registrasi customer baru
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	type ReqBody struct {
		Name     string `json:"name_customer"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name == "" || body.Email == "" || body.Password == "" || body.Phone == "" || body.Address == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrIncompleteData)
		return
	}

	// Cek duplikasi email (case-insensitive)
	var existing models.Customer
	if err := cc.DB.Where("LOWER(email) = LOWER(?)", body.Email).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrEmailTaken)
		return
	}

	customer := models.Customer{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Phone:    body.Phone,
		Address:  body.Address,
	}

	if err := cc.DB.Create(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Customer berhasil ditambahkan", customer)
}

// UpdateCustomer -> partial patch, hanya field yang dikirim yang diubah
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	idStr := c.Param("customer_id")
	id, _ := strconv.Atoi(idStr)

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrCustomerNotFound)
		return
	}

	type ReqBody struct {
		Name     *string `json:"name_customer"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Phone    *string `json:"phone"`
		Address  *string `json:"address"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Jika email diubah, cek duplikasi terhadap customer lain
	if body.Email != nil && !strings.EqualFold(*body.Email, customer.Email) {
		var existing models.Customer
		if err := cc.DB.Where("LOWER(email) = LOWER(?) AND id <> ?", *body.Email, customer.ID).
			First(&existing).Error; err == nil {
			utils.RespondError(c, http.StatusBadRequest, ErrEmailTaken)
			return
		}
	}

	if body.Name != nil {
		customer.Name = *body.Name
	}
	if body.Email != nil {
		customer.Email = *body.Email
	}
	if body.Password != nil {
		customer.Password = *body.Password
	}
	if body.Phone != nil {
		customer.Phone = *body.Phone
	}
	if body.Address != nil {
		customer.Address = *body.Address
	}

	if err := cc.DB.Save(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer berhasil diperbarui", customer)
}

// DeleteCustomer -> ditolak selama customer masih memiliki order
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	idStr := c.Param("customer_id")
	id, _ := strconv.Atoi(idStr)

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrCustomerNotFound)
		return
	}

	var orderCount int64
	if err := cc.DB.Model(&models.Order{}).Where("customer_id = ?", customer.ID).Count(&orderCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if orderCount > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Customer masih memiliki order"))
		return
	}

	if err := cc.DB.Delete(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer berhasil dihapus", gin.H{"customer_id": customer.ID})
}

// Login -> cek kredensial customer, kembalikan data customer + token sesi
func (cc *CustomerController) Login(c *gin.Context) {
	type ReqBody struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Email == "" || body.Password == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Email dan password harus diisi"))
		return
	}

	var customer models.Customer
	if err := cc.DB.Where("LOWER(email) = LOWER(?)", body.Email).First(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Email tidak ditemukan"))
		return
	}

	// Password masih disimpan plain-text, dibandingkan apa adanya.
	if customer.Password != body.Password {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Password salah"))
		return
	}

	token, err := utils.GenerateToken(customer.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login berhasil", gin.H{
		"customer": gin.H{
			"customer_id":   customer.ID,
			"name_customer": customer.Name,
			"email":         customer.Email,
			"address":       customer.Address,
			"phone":         customer.Phone,
		},
		"token": token,
	})
}
