package domain

import "time"

type MaintenancePriority string

const (
	PriorityLow      MaintenancePriority = "low"
	PriorityMedium   MaintenancePriority = "medium"
	PriorityHigh     MaintenancePriority = "high"
	PriorityCritical MaintenancePriority = "critical"
)

type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
)

type MaintenanceRequest struct {
	ID                 int64               `json:"id"`
	SpaceID            int64               `json:"space_id" validate:"required"`
	Title              string              `json:"title" validate:"required"`
	Description        string              `json:"description,omitempty" gorm:"type:text"`
	Priority           MaintenancePriority `json:"priority"`
	Status             RequestStatus       `json:"status"`
	RequestDate        time.Time           `json:"request_date"`
	ScheduledDate      *time.Time          `json:"scheduled_date,omitempty"`
	CompletionDate     *time.Time          `json:"completion_date,omitempty"`
	AssignedTo         string              `json:"assigned_to,omitempty"`
	EstimatedCostCents int64               `json:"estimated_cost_cents,omitempty"`
	ActualCostCents    *int64              `json:"actual_cost_cents,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`

	Space *Space `json:"space,omitempty" gorm:"foreignKey:SpaceID"`
}
