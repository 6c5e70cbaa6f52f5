package contracts

import (
	"context"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.LoginForm) (*responses.Login, string, error)
	Logout(ctx context.Context, session *models.Session) error
	ResolveSession(ctx context.Context, token string) (*models.Session, error)
}
