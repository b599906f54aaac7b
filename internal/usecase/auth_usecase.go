package usecase

import (
	"context"
	"time"

	"campuslink/internal/domain/entity"
	"campuslink/internal/domain/repository"
	"campuslink/pkg/errors"
	"campuslink/pkg/logger"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	auth     AuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, auth AuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		auth:     auth,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type ProfileSetupInput struct {
	Name      string
	Branch    string
	Year      string
	College   string
	Bio       string
	Instagram string
	Whatsapp  string
	PhotoURL  string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

// Session is the authenticated caller's identity, resolved once per request
// by the auth middleware and passed explicitly from there on.
type Session struct {
	UserID string
	Role   string
	User   *entity.User
}

func (s *Session) IsAdmin() bool {
	return s.Role == entity.RoleAdmin
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.auth.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:        uid,
		Email:     input.Email,
		Name:      input.Name,
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Roll the auth account back so the email is not burned.
		if delErr := uc.auth.DeleteUser(ctx, uid); delErr != nil {
			logger.Error("orphaned auth account %s: %v", uid, delErr)
		}
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, err := uc.auth.GenerateToken(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// CompleteProfile fills in the campus profile fields collected after the
// first sign-in.
func (uc *AuthUseCase) CompleteProfile(ctx context.Context, userID string, input ProfileSetupInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	user.Name = input.Name
	user.Branch = input.Branch
	user.Year = input.Year
	user.College = input.College
	user.Bio = input.Bio
	user.Instagram = input.Instagram
	user.Whatsapp = input.Whatsapp
	if input.PhotoURL != "" {
		user.PhotoURL = input.PhotoURL
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update user record", err)
	}

	return user, nil
}

// CurrentSession verifies a bearer ID token and resolves the caller's
// session. A suspended user is forced out here: their refresh tokens are
// revoked and no profile state is returned.
func (uc *AuthUseCase) CurrentSession(ctx context.Context, idToken string) (*Session, error) {
	uid, err := uc.auth.VerifyToken(ctx, idToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if user.IsSuspended {
		if revErr := uc.auth.RevokeSessions(ctx, uid); revErr != nil {
			logger.Error("failed to revoke sessions for %s: %v", uid, revErr)
		}
		return nil, errors.Forbidden("Account suspended", nil)
	}

	return &Session{UserID: user.ID, Role: user.Role, User: user}, nil
}

// DevToken mints a custom token for a known user. Exposed only in the
// development environment.
func (uc *AuthUseCase) DevToken(ctx context.Context, userID string) (string, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return "", errors.NotFound("User", err)
	}

	token, err := uc.auth.GenerateToken(ctx, userID)
	if err != nil {
		return "", errors.Internal("Failed to generate token", err)
	}
	return token, nil
}
