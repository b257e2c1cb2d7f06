package mapper

import (
	"time"

	"memberdesk/internal/adapter/http/dto"
	"memberdesk/internal/core/domain"
)

func ToMemberItems(members []domain.Member) []dto.MemberItem {
	items := make([]dto.MemberItem, 0, len(members))
	for _, member := range members {
		items = append(items, ToMemberItem(member))
	}
	return items
}

func ToMemberItem(member domain.Member) dto.MemberItem {
	return dto.MemberItem{
		ID:             member.ID,
		Name:           member.Name,
		Email:          member.Email,
		MembershipType: string(member.MembershipType),
		JoinDate:       member.JoinDate.Format(time.RFC3339),
		IsActive:       member.IsActive,
		CreatedAt:      member.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      member.UpdatedAt.Format(time.RFC3339),
	}
}
