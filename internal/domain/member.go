package domain

import "time"

type MemberStatus string

const (
	MemberActive    MemberStatus = "active"
	MemberInactive  MemberStatus = "inactive"
	MemberSuspended MemberStatus = "suspended"
)

type Member struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name" validate:"required"`
	Email          string       `json:"email" validate:"required,email"`
	Phone          string       `json:"phone,omitempty"`
	Company        string       `json:"company,omitempty"`
	BillingAddress string       `json:"billing_address,omitempty" gorm:"type:text"`
	Status         MemberStatus `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
