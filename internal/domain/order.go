package domain

import "time"

// Order is a persisted order submission. ID comes from the order sequence
// counter, never from table auto-increment, and is assigned exactly once.
// ExcelFilePath is set at creation and never updated.
type Order struct {
	ID             uint64
	UserID         *string
	FirstName      string
	Email          string
	ContactNumber  string
	Country        string
	CompanyName    string
	CompanyWebsite string
	Message        string
	OrderDetails   string
	ExcelFilePath  string
	Status         string
	CreatedAt      time.Time
}

const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
	OrderStatusCanceled  = "Canceled"
)

// OrderSequenceName is the counter row that issues order ids.
const OrderSequenceName = "orderId"
