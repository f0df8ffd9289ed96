package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"canteen-api/models"
	"canteen-api/repositories"
	"canteen-api/utils"
)

// pinValidity is the window between issuing a PIN and it expiring.
const pinValidity = 15 * time.Minute

// UserStore is the slice of the user record store the verification
// workflow depends on.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateForPinRequest(ctx context.Context, user *models.User) error
	MarkVerified(ctx context.Context, id int) error
}

type AuthService struct {
	users UserStore
	mailer Mailer

	// hashPins stores an argon2 encoding of the PIN instead of the
	// plaintext. Verification handles both stored forms, so the flag
	// can be flipped without invalidating outstanding PINs.
	hashPins bool

	// devMode allows the degraded-mode response to echo the PIN.
	devMode bool
}

func NewAuthService(users UserStore, mailer Mailer, hashPins, devMode bool) *AuthService {
	return &AuthService{users: users, mailer: mailer, hashPins: hashPins, devMode: devMode}
}

// RequestPin finds or creates the user, issues a fresh PIN with a
// 15-minute expiry (overwriting any unconsumed one) and dispatches it by
// email. When the mail transport is unconfigured the PIN is returned to
// the caller instead, but only outside production.
func (s *AuthService) RequestPin(ctx context.Context, req models.RequestPinRequest) (*models.PinIssuedResponse, error) {
	if req.Email == "" || req.Name == "" || req.RollNumber == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}

	var dob *time.Time
	if req.DOB != "" {
		parsed, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date of birth", ErrValidation)
		}
		dob = &parsed
	}

	pin := utils.GeneratePin()
	stored := pin
	if s.hashPins {
		encoded, err := utils.HashPin(pin)
		if err != nil {
			return nil, fmt.Errorf("hash pin: %w", err)
		}
		stored = encoded
	}
	expiry := time.Now().Add(pinValidity)

	user, err := s.users.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		user.Name = req.Name
		user.DOB = dob
		user.VerificationPin = &stored
		user.PinExpiry = &expiry
		if err := s.users.UpdateForPinRequest(ctx, user); err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
	case errors.Is(err, repositories.ErrNoRows):
		user = &models.User{
			Email:           req.Email,
			Name:            req.Name,
			RollNumber:      req.RollNumber,
			DOB:             dob,
			VerificationPin: &stored,
			PinExpiry:       &expiry,
		}
		if err := s.users.Create(ctx, user); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return nil, fmt.Errorf("%w: roll number already registered", ErrConflict)
			}
			return nil, fmt.Errorf("create user: %w", err)
		}
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}

	err = s.mailer.Send(req.Email, "Your Cans & Teens Verification PIN", pinEmailBody(req.Name, pin))
	if errors.Is(err, ErrMailerNotConfigured) {
		resp := &models.PinIssuedResponse{
			Message: "PIN generated (email not configured)",
			Email:   req.Email,
		}
		if s.devMode {
			resp.TestPin = pin
		}
		return resp, nil
	}
	if err != nil {
		return nil, fmt.Errorf("send pin email: %w", err)
	}

	return &models.PinIssuedResponse{Message: "PIN sent to email", Email: req.Email}, nil
}

// VerifyPin consumes a previously issued PIN: on success the user is
// marked verified, the pin fields are cleared and a token is issued.
func (s *AuthService) VerifyPin(ctx context.Context, email, pin string) (*models.VerifiedResponse, error) {
	if email == "" || pin == "" {
		return nil, fmt.Errorf("%w: missing email or PIN", ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNoRows) {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user.VerificationPin == nil || !utils.CheckPin(*user.VerificationPin, pin) {
		return nil, ErrInvalidPin
	}
	if user.PinExpiry == nil || time.Now().After(*user.PinExpiry) {
		return nil, ErrPinExpired
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("mark verified: %w", err)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &models.VerifiedResponse{
		Message: "Verification successful",
		Token:   token,
		User: models.UserInfo{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	}, nil
}

// Me returns the record behind a verified token's user id.
func (s *AuthService) Me(ctx context.Context, userID int) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repositories.ErrNoRows) {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
