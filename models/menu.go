package models

// Harga menu disimpan dalam satuan rupiah utuh (integer).
// OrderItem menyimpan snapshot harga sendiri, jadi perubahan harga
// di sini tidak mempengaruhi item yang sudah ada.
type Menu struct {
	ID       uint   `gorm:"primaryKey" json:"id_menu"`
	Name     string `gorm:"type:varchar(150);not null" json:"name"`
	Price    int    `gorm:"not null" json:"price"`
	Category string `gorm:"type:varchar(100);not null" json:"category"`
	ImageURL string `gorm:"type:varchar(255);not null" json:"image_url"`
}
