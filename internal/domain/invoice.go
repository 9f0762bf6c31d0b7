package domain

import "time"

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice aggregates billable line items for a member. Items are immutable
// after creation; only status, paid date and payment method mutate.
//
// Invariant: TotalCents = SubtotalCents + TaxCents - DiscountCents where
// SubtotalCents = sum of quantity*unit price over Items.
type Invoice struct {
	ID            int64         `json:"id"`
	Number        string        `json:"number" gorm:"uniqueIndex"`
	MemberID      int64         `json:"member_id" validate:"required"`
	IssueDate     time.Time     `json:"issue_date"`
	DueDate       time.Time     `json:"due_date"`
	Status        InvoiceStatus `json:"status"`
	SubtotalCents int64         `json:"subtotal_cents"`
	TaxCents      int64         `json:"tax_cents"`
	DiscountCents int64         `json:"discount_cents"`
	TotalCents    int64         `json:"total_cents"`
	PaidDate      *time.Time    `json:"paid_date,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Notes         string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Items  []InvoiceItem `json:"items" gorm:"foreignKey:InvoiceID"`
	Member *Member       `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

type InvoiceItem struct {
	ID             int64   `json:"id"`
	InvoiceID      int64   `json:"invoice_id"`
	Description    string  `json:"description" validate:"required"`
	Quantity       int     `json:"quantity" validate:"required,gt=0"`
	UnitPriceCents int64   `json:"unit_price_cents" validate:"gt=0"`
	TaxRate        float64 `json:"tax_rate" validate:"gte=0"`
	DiscountCents  int64   `json:"discount_cents"`
	LineTotalCents int64   `json:"line_total_cents"`
}

// EffectiveStatus resolves the read-time overdue state: a sent invoice past
// its due date reports as overdue without a stored transition.
func (i *Invoice) EffectiveStatus(now time.Time) InvoiceStatus {
	if i.Status == InvoiceSent && now.After(i.DueDate) {
		return InvoiceOverdue
	}
	return i.Status
}
