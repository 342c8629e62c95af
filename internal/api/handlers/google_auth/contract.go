package google_auth

import (
	"context"

	"github.com/Zero-Index-Tech/ZeroBook/internal/integrations/authservice"
)

type AuthServiceClient interface {
	GetSession(ctx context.Context) (*authservice.Session, error)
	SignInWithProvider(provider string, scopes string, redirectTo string) string
	SignOut(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
