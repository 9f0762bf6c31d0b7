package invoice

type LineItemRequest struct {
	Description    string  `json:"description" binding:"required"`
	Quantity       int     `json:"quantity" binding:"required,gt=0"`
	UnitPriceCents int64   `json:"unit_price_cents" binding:"required,gt=0"`
	TaxRate        float64 `json:"tax_rate" binding:"gte=0"`
	DiscountCents  int64   `json:"discount_cents" binding:"gte=0"`
}

type GenerateInvoiceRequest struct {
	MemberID int64             `json:"member_id" binding:"required"`
	Items    []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes    string            `json:"notes"`
}

type MarkPaidRequest struct {
	Method string `json:"method" binding:"required,oneof=cash card bank_transfer"`
}
