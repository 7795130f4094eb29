package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/auth"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/ledger"
	"github.com/AntrikshRawat/spend-manager-f-sub000/pkg/api"
)

var _ api.MemberServiceHandler = (*MemberService)(nil)

// MemberService implements the Connect MemberService.
type MemberService struct {
	ledger     *ledger.Ledger
	jwtManager *auth.JWTManager
}

// NewMemberService creates a new member registration service.
func NewMemberService(l *ledger.Ledger, jwtManager *auth.JWTManager) *MemberService {
	return &MemberService{ledger: l, jwtManager: jwtManager}
}

// CreateMember registers a member and returns a bearer token for it.
func (s *MemberService) CreateMember(ctx context.Context, req *connect.Request[api.CreateMemberRequest]) (*connect.Response[api.CreateMemberResponse], error) {
	slog.Info("CreateMember request", "email", req.Msg.Email)

	member, err := s.ledger.CreateMember(ctx, req.Msg.Email, req.Msg.DisplayName)
	if err != nil {
		slog.Error("CreateMember failed", "email", req.Msg.Email, "error", err)
		return nil, invalidArgumentOr(err)
	}

	token, err := s.jwtManager.Generate(member.ID, member.Email)
	if err != nil {
		slog.Error("Failed to generate token", "member_id", member.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Member registered successfully", "member_id", member.ID)
	return connect.NewResponse(&api.CreateMemberResponse{
		Member: &api.Member{
			ID:          member.ID,
			Email:       member.Email,
			DisplayName: member.DisplayName,
			CreatedAt:   member.CreatedAt,
		},
		Token: token,
	}), nil
}
