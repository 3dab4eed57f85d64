package dto

import (
	"time"

	"puramente/internal/domain"
)

type OrderDTO struct {
	OrderID        uint64    `json:"orderId"`
	UserID         *string   `json:"userId,omitempty"`
	FirstName      string    `json:"firstName"`
	Email          string    `json:"email"`
	ContactNumber  string    `json:"contactNumber"`
	Country        string    `json:"country"`
	CompanyName    string    `json:"companyName,omitempty"`
	CompanyWebsite string    `json:"companyWebsite,omitempty"`
	Message        string    `json:"message,omitempty"`
	OrderDetails   string    `json:"orderDetails,omitempty"`
	ExcelFilePath  string    `json:"excelFilePath"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	DownloadLink   string    `json:"downloadLink,omitempty"`
}

func NewOrderDTO(order domain.Order) OrderDTO {
	return OrderDTO{
		OrderID:        order.ID,
		UserID:         order.UserID,
		FirstName:      order.FirstName,
		Email:          order.Email,
		ContactNumber:  order.ContactNumber,
		Country:        order.Country,
		CompanyName:    order.CompanyName,
		CompanyWebsite: order.CompanyWebsite,
		Message:        order.Message,
		OrderDetails:   order.OrderDetails,
		ExcelFilePath:  order.ExcelFilePath,
		Status:         order.Status,
		CreatedAt:      order.CreatedAt,
	}
}

type SubmitOrderResponse struct {
	Message      string   `json:"message"`
	Order        OrderDTO `json:"order"`
	DownloadLink string   `json:"downloadLink"`
}

type ListOrdersResponse struct {
	Orders []OrderDTO `json:"orders"`
}
