package inventory

type CreateItemRequest struct {
	Name               string `json:"name" binding:"required"`
	SKU                string `json:"sku"`
	Quantity           int    `json:"quantity" binding:"gte=0"`
	MinQuantity        int    `json:"min_quantity" binding:"gte=0"`
	Unit               string `json:"unit"`
	PurchasePriceCents int64  `json:"purchase_price_cents" binding:"gte=0"`
}

type AdjustStockRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}
