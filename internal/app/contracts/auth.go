package contracts

import (
	"context"
	"labtrack-service/internal/pkg/dto/requests"
	"labtrack-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionData string) error
}
