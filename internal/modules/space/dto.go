package space

type CreateSpaceRequest struct {
	Name             string `json:"name" binding:"required"`
	Type             string `json:"type" binding:"required,oneof=desk meeting_room office event_space"`
	Description      string `json:"description"`
	Floor            string `json:"floor"`
	Capacity         int    `json:"capacity" binding:"required,gt=0"`
	HourlyRateCents  int64  `json:"hourly_rate_cents" binding:"gte=0"`
	DailyRateCents   int64  `json:"daily_rate_cents" binding:"gte=0"`
	MonthlyRateCents int64  `json:"monthly_rate_cents" binding:"gte=0"`
}

type CreateMemberRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	BillingAddress string `json:"billing_address"`
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

type UpdateMemberStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive suspended"`
}
