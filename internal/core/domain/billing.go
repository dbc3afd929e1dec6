package domain

import "time"

// TimeEntry is a block of hours logged against a project.
type TimeEntry struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	ProjectID   string    `json:"project_id" bson:"project_id"`
	Date        time.Time `json:"date" bson:"date"`
	Hours       float64   `json:"hours" bson:"hours"`
	Description string    `json:"description" bson:"description"`
}

// InvoiceStatus is the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"
)

// Pending reports whether the invoice still awaits payment.
func (s InvoiceStatus) Pending() bool {
	return s == InvoiceDraft || s == InvoiceSent
}

// Invoice bills a project for an amount.
type Invoice struct {
	ID         string        `json:"id" bson:"_id,omitempty"`
	ProjectID  string        `json:"project_id" bson:"project_id"`
	Amount     float64       `json:"amount" bson:"amount"`
	IssuedDate time.Time     `json:"issued_date" bson:"issued_date"`
	Status     InvoiceStatus `json:"status" bson:"status"`
}
