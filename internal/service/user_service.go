package service

import (
	"context"

	"github.com/haierkeys/simple-notes-service/internal/dto"
	pkgapp "github.com/haierkeys/simple-notes-service/pkg/app"
	"github.com/haierkeys/simple-notes-service/pkg/code"

	"go.uber.org/zap"
)

// UserService issues auth tokens. There are no accounts and no passwords,
// the identity is asserted by the caller; the token only makes the
// assertion tamper-proof for subsequent requests.
type UserService interface {
	// IssueToken returns a signed token for the given user identity.
	IssueToken(ctx context.Context, params *dto.TokenRequest, ip string) (*dto.TokenResponse, error)
}

type userService struct {
	tokenManager pkgapp.TokenManager
	logger       *zap.Logger
}

// NewUserService creates a UserService.
func NewUserService(tm pkgapp.TokenManager, lg *zap.Logger) UserService {
	return &userService{
		tokenManager: tm,
		logger:       lg,
	}
}

func (s *userService) IssueToken(ctx context.Context, params *dto.TokenRequest, ip string) (*dto.TokenResponse, error) {
	if params.User == "" {
		return nil, code.ErrorUserEmpty
	}

	token, err := s.tokenManager.Generate(params.User, ip)
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	s.logger.Info("token issued", zap.String("user", params.User))

	return &dto.TokenResponse{
		User:  params.User,
		Token: token,
	}, nil
}
