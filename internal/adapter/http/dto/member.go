package dto

type MemberItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	MembershipType string `json:"membershipType"`
	JoinDate       string `json:"joinDate"`
	IsActive       bool   `json:"isActive"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type CreateMemberRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	MembershipType *string `json:"membershipType"`
	JoinDate       *string `json:"joinDate"`
	IsActive       *bool   `json:"isActive"`
}

type UpdateMemberRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	MembershipType *string `json:"membershipType"`
	JoinDate       *string `json:"joinDate"`
	IsActive       *bool   `json:"isActive"`
}
