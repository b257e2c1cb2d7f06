package service

import (
	"context"
	"strings"
	"time"

	"memberdesk/internal/core/domain"
	"memberdesk/internal/core/ports"
	"memberdesk/internal/core/validation"
)

type MemberService struct {
	memberRepository ports.MemberRepository
}

var _ ports.MemberService = (*MemberService)(nil)

func NewMemberService(memberRepository ports.MemberRepository) *MemberService {
	return &MemberService{memberRepository: memberRepository}
}

func (s *MemberService) List(ctx context.Context) ([]domain.Member, error) {
	return s.memberRepository.List(ctx)
}

func (s *MemberService) GetByID(ctx context.Context, id string) (domain.Member, error) {
	return s.memberRepository.GetByID(ctx, id)
}

// Create validates the candidate, applies creation-time defaults and
// persists it. The email uniqueness constraint is enforced by the store's
// unique index and surfaces as domain.ErrEmailExists.
func (s *MemberService) Create(ctx context.Context, in domain.CreateMemberInput) (domain.Member, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if vErr := validation.NewMember(in); vErr != nil {
		return domain.Member{}, vErr
	}

	now := time.Now().UTC()
	member := domain.Member{
		Name:           in.Name,
		Email:          in.Email,
		MembershipType: in.MembershipType,
		JoinDate:       now,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.JoinDate != nil {
		member.JoinDate = *in.JoinDate
	}
	if in.IsActive != nil {
		member.IsActive = *in.IsActive
	}

	return s.memberRepository.Insert(ctx, member)
}

// Update validates only the supplied fields and merges them onto the
// stored document.
func (s *MemberService) Update(ctx context.Context, id string, in domain.UpdateMemberInput) (domain.Member, error) {
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
	}
	if in.Email != nil {
		trimmed := strings.TrimSpace(*in.Email)
		in.Email = &trimmed
	}

	if vErr := validation.MemberPatch(in); vErr != nil {
		return domain.Member{}, vErr
	}

	return s.memberRepository.Update(ctx, id, in)
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	return s.memberRepository.Delete(ctx, id)
}
