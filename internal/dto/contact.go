package dto

type ContactRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Message        string `json:"message"`
	ContactNumber  string `json:"contactNumber"`
	CompanyName    string `json:"companyName"`
	Country        string `json:"country"`
	CompanyWebsite string `json:"companyWebsite"`
}
