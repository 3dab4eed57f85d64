package dto

// CheckoutRequest converts a user's cart into an order. Contact fields follow
// the same required set as a direct submission.
type CheckoutRequest struct {
	UserID         string `json:"userId"`
	FirstName      string `json:"firstName"`
	Email          string `json:"email"`
	ContactNumber  string `json:"contactNumber"`
	CompanyName    string `json:"companyName"`
	Country        string `json:"country"`
	CompanyWebsite string `json:"companyWebsite"`
	Message        string `json:"message"`
}

type AddCartItemRequest struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type CartItemDTO struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type CartDTO struct {
	UserID      string        `json:"userId"`
	TotalAmount float64       `json:"totalAmount"`
	Items       []CartItemDTO `json:"items"`
}
