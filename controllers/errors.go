package controllers

import "errors"

var (
	ErrIncompleteData    = errors.New("Data tidak lengkap")
	ErrEmailTaken        = errors.New("Email sudah terdaftar")
	ErrCustomerNotFound  = errors.New("Customer tidak ditemukan")
	ErrMenuNotFound      = errors.New("Menu tidak ditemukan")
	ErrOrderNotFound     = errors.New("Order tidak ditemukan")
	ErrOrderItemNotFound = errors.New("OrderItem tidak ditemukan")
	ErrInvalidQuantity   = errors.New("quantity harus > 0")
)
