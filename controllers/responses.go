package controllers

import (
	"gorm.io/gorm"

	"github.com/aldirahman/resto-order-api/models"
)

// Format tanggal pada semua response.
const dateLayout = "2006-01-02 15:04:05"

type OrderItemDetail struct {
	OrderItemID uint    `json:"order_item_id"`
	MenuID      uint    `json:"menu_id"`
	MenuName    string  `json:"menu_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

type OrderDetail struct {
	OrderID       uint              `json:"order_id"`
	CustomerID    uint              `json:"customer_id"`
	TotalPrice    float64           `json:"total_price"`
	PaymentMethod string            `json:"payment_method"`
	Status        string            `json:"status"`
	OrderDate     string            `json:"order_date"`
	Items         []OrderItemDetail `json:"items"`
}

type CustomerDetail struct {
	CustomerID uint          `json:"customer_id"`
	Name       string        `json:"name_customer"`
	Email      string        `json:"email"`
	Password   string        `json:"password"`
	Phone      string        `json:"phone"`
	Address    string        `json:"address"`
	Orders     []OrderDetail `json:"orders"`
}

// itemDetails mengambil item sebuah order yang sudah di-join dengan nama menu.
func itemDetails(db *gorm.DB, orderID uint) ([]OrderItemDetail, error) {
	items := make([]OrderItemDetail, 0)
	err := db.Model(&models.OrderItem{}).
		Select("order_items.id AS order_item_id, order_items.menu_id, menus.name AS menu_name, order_items.quantity, order_items.price, order_items.subtotal").
		Joins("JOIN menus ON menus.id = order_items.menu_id").
		Where("order_items.order_id = ?", orderID).
		Scan(&items).Error
	return items, err
}

func orderDetail(db *gorm.DB, order models.Order) (OrderDetail, error) {
	items, err := itemDetails(db, order.ID)
	if err != nil {
		return OrderDetail{}, err
	}

	return OrderDetail{
		OrderID:       order.ID,
		CustomerID:    order.CustomerID,
		TotalPrice:    order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status,
		OrderDate:     order.OrderDate.Format(dateLayout),
		Items:         items,
	}, nil
}

func customerDetail(db *gorm.DB, customer models.Customer) (CustomerDetail, error) {
	var orders []models.Order
	if err := db.Where("customer_id = ?", customer.ID).Find(&orders).Error; err != nil {
		return CustomerDetail{}, err
	}

	orderList := make([]OrderDetail, 0, len(orders))
	for _, order := range orders {
		detail, err := orderDetail(db, order)
		if err != nil {
			return CustomerDetail{}, err
		}
		orderList = append(orderList, detail)
	}

	return CustomerDetail{
		CustomerID: customer.ID,
		Name:       customer.Name,
		Email:      customer.Email,
		Password:   customer.Password,
		Phone:      customer.Phone,
		Address:    customer.Address,
		Orders:     orderList,
	}, nil
}
