package maintenance

import "time"

type CreateRequestRequest struct {
	SpaceID            int64      `json:"space_id" binding:"required"`
	Title              string     `json:"title" binding:"required"`
	Description        string     `json:"description"`
	Priority           string     `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	ScheduledDate      *time.Time `json:"scheduled_date"`
	EstimatedCostCents int64      `json:"estimated_cost_cents" binding:"gte=0"`
}

type AssignRequest struct {
	AssignedTo    string     `json:"assigned_to" binding:"required"`
	ScheduledDate *time.Time `json:"scheduled_date"`
}

type CompleteRequest struct {
	ActualCostCents *int64 `json:"actual_cost_cents"`
}

type SetSpaceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=operational under_maintenance out_of_order"`
}
