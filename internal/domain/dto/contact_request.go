package dto

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name            string `json:"name" binding:"required,max=200" example:"Jane Doe"`
	Email           string `json:"email" binding:"required,email,max=254" example:"jane@example.com"`
	Phone           string `json:"phone" binding:"omitempty,max=32" example:"+91 98765 43210"`
	Message         string `json:"message" binding:"omitempty,max=4000"`
	CompanyInterest string `json:"company_interest" binding:"omitempty,max=200" example:"Acme Ltd"`
}

// ContactResponse acknowledges a stored lead.
type ContactResponse struct {
	ID string `json:"id" example:"0b6f1c1e-5f7e-4b8f-9a51-1d2b8c7a9e10"`
}

// VisitRequest is the body of POST /api/visits.
type VisitRequest struct {
	Path     string `json:"path" binding:"required,max=2048" example:"/shares-detail/Acme%20Ltd"`
	Referrer string `json:"referrer" binding:"omitempty,max=2048"`
}
