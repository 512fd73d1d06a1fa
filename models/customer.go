package models

type Customer struct {
	ID       uint    `gorm:"primaryKey" json:"customer_id"`
	Name     string  `gorm:"type:varchar(100);not null" json:"name_customer"`
	Email    string  `gorm:"type:varchar(100);not null;unique" json:"email"`
	Password string  `gorm:"type:varchar(255);not null" json:"password"`
	Phone    string  `gorm:"type:varchar(20);not null" json:"phone"`
	Address  string  `gorm:"type:varchar(255);not null" json:"address"`
	Orders   []Order `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
}
