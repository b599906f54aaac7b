package usecase

import (
	"context"
	"io"
	"time"
)

type AuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	GenerateToken(ctx context.Context, uid string) (string, error)
	RevokeSessions(ctx context.Context, uid string) error
	DeleteUser(ctx context.Context, uid string) error
}

type Uploader interface {
	UploadImage(ctx context.Context, file io.Reader, contentType, folder string) (string, error)
}

type Limiter interface {
	Allow(userID, action string) (bool, time.Duration)
}
