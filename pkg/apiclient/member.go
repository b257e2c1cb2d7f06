package apiclient

import (
	"context"
	"net/http"
	"time"
)

type Member struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	MembershipType string    `json:"membershipType"`
	JoinDate       time.Time `json:"joinDate"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreateMember struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	MembershipType string `json:"membershipType"`
}

// MemberPatch is a partial update; nil fields are left untouched.
type MemberPatch struct {
	Name           *string `json:"name,omitempty"`
	Email          *string `json:"email,omitempty"`
	MembershipType *string `json:"membershipType,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

func (c *Client) ListMembers(ctx context.Context) ([]Member, error) {
	var members []Member
	if _, err := c.do(ctx, http.MethodGet, "/api/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) CreateMember(ctx context.Context, in CreateMember) (Member, error) {
	var member Member
	if _, err := c.do(ctx, http.MethodPost, "/api/members", in, &member); err != nil {
		return Member{}, err
	}
	return member, nil
}

func (c *Client) UpdateMember(ctx context.Context, id string, patch MemberPatch) (Member, error) {
	var member Member
	if _, err := c.do(ctx, http.MethodPut, "/api/members/"+id, patch, &member); err != nil {
		return Member{}, err
	}
	return member, nil
}

func (c *Client) DeleteMember(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/members/"+id, nil, nil)
	return err
}
