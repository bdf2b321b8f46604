// Package service contains the application's business logic, sitting between
// the HTTP handlers and the repositories.
package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/notifications"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

const resetCodeTTL = 15 * time.Minute

// UserService provides account registration, authentication and profile
// business logic.
type UserService struct {
	userRepo repository.UserRepository
	mailer   notifications.Mailer
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, mailer notifications.Mailer) *UserService {
	return &UserService{
		userRepo: userRepo,
		mailer:   mailer,
	}
}

// RegisterInput carries the fields accepted at signup.
type RegisterInput struct {
	Handle    string `json:"handle"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Register validates the input, hashes the password and creates the account.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateHandle(in.Handle); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if existing, err := s.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Email already registered")
	}
	if existing, err := s.userRepo.GetByHandle(ctx, in.Handle); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Handle already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Handle:    in.Handle,
		Email:     in.Email,
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the email/password pair and returns the account.
// The same error comes back for an unknown email and a wrong password.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// GetProfile returns the user with computed follower counts.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ProfileUpdate carries the profile fields a user may change. Nil pointers
// mean "leave as is".
type ProfileUpdate struct {
	Handle    *string `json:"handle"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

// UpdateProfile applies a partial update to the caller's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Handle != nil && *in.Handle != user.Handle {
		if err := validation.ValidateHandle(*in.Handle); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		if existing, err := s.userRepo.GetByHandle(ctx, *in.Handle); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, models.NewConflictError("Handle already taken")
		}
		user.Handle = *in.Handle
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.AvatarURL != nil {
		user.AvatarURL = *in.AvatarURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns a page of accounts.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// RequestPasswordReset issues a one-time code and mails it to the account.
// An unknown email reports success so the endpoint cannot be used to probe
// which addresses have accounts.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	code, err := generateResetCode()
	if err != nil {
		return models.NewInternalError(err)
	}

	expires := time.Now().Add(resetCodeTTL)
	user.ResetCode = code
	user.ResetCodeExpiresAt = &expires
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, code); err != nil {
		middleware.Logger.ErrorContext(ctx, "password reset mail failed", "error", err, "user_id", user.ID)
	}
	return nil
}

// ResetPassword redeems a one-time code and sets a new password. The code is
// cleared whether or not it had expired, so each code is single-use.
func (s *UserService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := validation.ValidatePassword(newPassword); err != nil {
		return models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil || user.ResetCode == "" ||
		subtle.ConstantTimeCompare([]byte(user.ResetCode), []byte(code)) != 1 {
		return models.NewUnauthorizedError("Invalid reset code")
	}
	if user.ResetCodeExpiresAt == nil || time.Now().After(*user.ResetCodeExpiresAt) {
		user.ResetCode = ""
		user.ResetCodeExpiresAt = nil
		if err := s.userRepo.Update(ctx, user); err != nil {
			return err
		}
		return models.NewUnauthorizedError("Reset code expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}

	user.Password = string(hash)
	user.ResetCode = ""
	user.ResetCodeExpiresAt = nil
	return s.userRepo.Update(ctx, user)
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
