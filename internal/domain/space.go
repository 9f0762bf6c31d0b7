package domain

import "time"

type SpaceType string

const (
	SpaceDesk        SpaceType = "desk"
	SpaceMeetingRoom SpaceType = "meeting_room"
	SpaceOffice      SpaceType = "office"
	SpaceEventSpace  SpaceType = "event_space"
)

type MaintenanceStatus string

const (
	SpaceOperational      MaintenanceStatus = "operational"
	SpaceUnderMaintenance MaintenanceStatus = "under_maintenance"
	SpaceOutOfOrder       MaintenanceStatus = "out_of_order"
)

// Space is a bookable physical resource. All rates are minor currency units.
type Space struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name" validate:"required"`
	Type              SpaceType         `json:"type" validate:"required"`
	Description       string            `json:"description,omitempty" gorm:"type:text"`
	Floor             string            `json:"floor,omitempty"`
	Capacity          int               `json:"capacity" validate:"required,gt=0"`
	HourlyRateCents   int64             `json:"hourly_rate_cents" validate:"gte=0"`
	DailyRateCents    int64             `json:"daily_rate_cents" validate:"gte=0"`
	MonthlyRateCents  int64             `json:"monthly_rate_cents" validate:"gte=0"`
	IsAvailable       bool              `json:"is_available"`
	MaintenanceStatus MaintenanceStatus `json:"maintenance_status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// Bookable reports whether the space can accept reservations at all,
// independent of any time interval.
func (s *Space) Bookable() bool {
	return s.IsAvailable && s.MaintenanceStatus == SpaceOperational
}
