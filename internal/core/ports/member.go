package ports

import (
	"context"

	"memberdesk/internal/core/domain"
)

type MemberRepository interface {
	List(ctx context.Context) ([]domain.Member, error)
	GetByID(ctx context.Context, id string) (domain.Member, error)
	Insert(ctx context.Context, member domain.Member) (domain.Member, error)
	Update(ctx context.Context, id string, in domain.UpdateMemberInput) (domain.Member, error)
	Delete(ctx context.Context, id string) error
}

type MemberService interface {
	List(ctx context.Context) ([]domain.Member, error)
	GetByID(ctx context.Context, id string) (domain.Member, error)
	Create(ctx context.Context, in domain.CreateMemberInput) (domain.Member, error)
	Update(ctx context.Context, id string, in domain.UpdateMemberInput) (domain.Member, error)
	Delete(ctx context.Context, id string) error
}
