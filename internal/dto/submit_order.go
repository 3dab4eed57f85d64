package dto

import (
	"bytes"
	"encoding/json"
)

// SubmitOrderRequest carries an order submission. OrderDetails is accepted
// either as a JSON string holding an encoded item list or as the list itself;
// both are kept verbatim and only decoded when the workbook is generated.
type SubmitOrderRequest struct {
	FirstName      string          `json:"firstName"`
	Email          string          `json:"email"`
	ContactNumber  string          `json:"contactNumber"`
	CompanyName    string          `json:"companyName"`
	Country        string          `json:"country"`
	CompanyWebsite string          `json:"companyWebsite"`
	Message        string          `json:"message"`
	OrderDetails   json.RawMessage `json:"orderDetails"`
}

// OrderDetailsText normalizes the dual encoding: a JSON string yields its
// contents, anything else yields the raw JSON text.
func (r SubmitOrderRequest) OrderDetailsText() string {
	raw := bytes.TrimSpace(r.OrderDetails)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}

	return string(raw)
}
