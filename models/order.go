package models

import (
	"time"
)

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"order_id"`
	CustomerID    uint        `gorm:"not null" json:"customer_id"`
	Customer      Customer    `gorm:"foreignKey:CustomerID" json:"-"`
	TotalPrice    float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_price"`
	PaymentMethod string      `gorm:"type:varchar(50);not null" json:"payment_method"`
	Status        string      `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	OrderDate     time.Time   `gorm:"not null" json:"order_date"`
	OrderItems    []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
}
