package domain

import "time"

type MembershipType string

const (
	MembershipBasic   MembershipType = "Basic"
	MembershipPremium MembershipType = "Premium"
	MembershipVIP     MembershipType = "VIP"
)

func (m MembershipType) Valid() bool {
	switch m {
	case MembershipBasic, MembershipPremium, MembershipVIP:
		return true
	}
	return false
}

type Member struct {
	ID             string
	Name           string
	Email          string
	MembershipType MembershipType
	JoinDate       time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateMemberInput struct {
	Name           string
	Email          string
	MembershipType MembershipType
	JoinDate       *time.Time
	IsActive       *bool
}

// UpdateMemberInput carries only the fields present in the request body.
// Nil pointers mean "leave untouched".
type UpdateMemberInput struct {
	Name           *string
	Email          *string
	MembershipType *MembershipType
	JoinDate       *time.Time
	IsActive       *bool
}
