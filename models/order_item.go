package models

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"order_item_id"`
	OrderID uint `gorm:"not null" json:"order_id"`
	// Omit relasi Order dari JSON agar tidak nesting rekursif
	Order    Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuID   uint    `gorm:"not null" json:"menu_id"`
	Menu     Menu    `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity int     `gorm:"not null;default:1" json:"quantity"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Subtotal float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}
