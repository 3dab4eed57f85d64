package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_Creation(t *testing.T) {
	createdAt := time.Now()
	userID := "u-42"

	order := Order{
		ID:             101,
		UserID:         &userID,
		FirstName:      "John",
		Email:          "john@example.com",
		ContactNumber:  "1234567890",
		Country:        "India",
		CompanyName:    "Acme Exports",
		CompanyWebsite: "https://acme.example.com",
		Message:        "Urgent order",
		OrderDetails:   `[{"name":"Widget","sku":"W1","quantity":3}]`,
		ExcelFilePath:  "/uploads/Order_101.xlsx",
		Status:         OrderStatusPending,
		CreatedAt:      createdAt,
	}

	assert.Equal(t, uint64(101), order.ID)
	assert.Equal(t, &userID, order.UserID)
	assert.Equal(t, "John", order.FirstName)
	assert.Equal(t, "/uploads/Order_101.xlsx", order.ExcelFilePath)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, createdAt, order.CreatedAt)
}

func TestOrder_NullableUser(t *testing.T) {
	order := Order{
		ID:            7,
		FirstName:     "Jane",
		Email:         "jane@example.com",
		ContactNumber: "555",
		Country:       "US",
		Status:        OrderStatusPending,
	}

	assert.Nil(t, order.UserID)
}
