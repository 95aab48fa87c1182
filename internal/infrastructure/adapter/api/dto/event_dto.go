package dto

// PaymentEventRequest is a payment reported by the booking, invoicing or receipt subsystem
type PaymentEventRequest struct {
	DocumentID    string `json:"documentId" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	CustomerRef   string `json:"customerRef"`
	Description   string `json:"description"`
	EventID       string `json:"eventId" binding:"max=100"`
}

// ReversalEventRequest takes back a document payment reported earlier
type ReversalEventRequest struct {
	DocumentKind  string `json:"documentKind" binding:"required,oneof=appointment invoice receipt"`
	DocumentID    string `json:"documentId" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	CustomerRef   string `json:"customerRef"`
	Reason        string `json:"reason" binding:"required"`
	EventID       string `json:"eventId" binding:"max=100"`
}
