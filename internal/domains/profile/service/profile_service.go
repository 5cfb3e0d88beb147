package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"dacosta-backend/internal/domains/profile"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/pkg/jwt"
	"dacosta-backend/pkg/logger"
)

// bcryptCost balances hashing time against brute-force resistance.
const bcryptCost = 12

type profileService struct {
	repo profile.Repository
	jwt  *jwt.Manager
}

func NewProfileService(repo profile.Repository, jwtManager *jwt.Manager) profile.Service {
	return &profileService{
		repo: repo,
		jwt:  jwtManager,
	}
}

// normalizeEmail folds the address before validation so case variants of
// one mailbox behave as one account. The email validator also rejects
// uppercase domain parts, so this has to happen first.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and logs it straight in.
func (s *profileService) Register(ctx context.Context, req profile.RegisterRequest) (*profile.LoginResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, profile.ErrEmailAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	p := &profile.Profile{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		FullName:     req.FullName,
		Role:         profile.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("Account registered", map[string]interface{}{"profile_id": p.ID.String()})

	return s.tokenPair(p)
}

// Login verifies credentials. A missing account and a wrong password
// produce the same error so callers cannot probe for registered emails.
func (s *profileService) Login(ctx context.Context, req profile.LoginRequest) (*profile.LoginResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, profile.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password)); err != nil {
		return nil, profile.ErrInvalidCredentials
	}

	if err := s.repo.TouchLastLogin(ctx, p.ID); err != nil {
		logger.Error("Failed to record login time", err)
	}

	return s.tokenPair(p)
}

// Refresh exchanges a valid refresh token for a new pair. The account is
// reloaded so a role change takes effect on the next refresh.
func (s *profileService) Refresh(ctx context.Context, refreshToken string) (*profile.LoginResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, profile.ErrInvalidCredentials
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, profile.ErrInvalidCredentials
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, profile.ErrInvalidCredentials
	}

	return s.tokenPair(p)
}

func (s *profileService) GetByID(ctx context.Context, id uuid.UUID) (*profile.ProfileDTO, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := p.ToDTO()
	return &dto, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, id uuid.UUID, req profile.UpdateProfileRequest) (*profile.ProfileDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		p.FullName = req.FullName
	}
	if req.AvatarURL != nil {
		p.AvatarURL = req.AvatarURL
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	dto := p.ToDTO()
	return &dto, nil
}

func (s *profileService) ChangePassword(ctx context.Context, id uuid.UUID, req profile.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return profile.ErrWrongPassword
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, id, string(newHash)); err != nil {
		return err
	}

	logger.Info("Password changed", map[string]interface{}{"profile_id": id.String()})

	return nil
}

func (s *profileService) List(ctx context.Context, p listing.Params) ([]profile.ProfileDTO, listing.Meta, error) {
	p.Normalize()

	profiles, total, err := s.repo.GetAll(ctx, p)
	if err != nil {
		return nil, listing.Meta{}, err
	}

	dtos := make([]profile.ProfileDTO, 0, len(profiles))
	for _, pr := range profiles {
		dtos = append(dtos, pr.ToDTO())
	}

	return dtos, listing.NewMeta(p, total), nil
}

func (s *profileService) UpdateRole(ctx context.Context, id uuid.UUID, req profile.UpdateRoleRequest) (*profile.ProfileDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.Role.IsValid() {
		return nil, profile.ErrInvalidRole
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Role = req.Role
	if req.Role == profile.RoleArtist {
		p.ArtistID = req.ArtistID
	} else {
		p.ArtistID = nil
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("Role updated", map[string]interface{}{
		"profile_id": id.String(),
		"role":       string(req.Role),
	})

	dto := p.ToDTO()
	return &dto, nil
}

// tokenPair mints an access/refresh pair for the account.
func (s *profileService) tokenPair(p *profile.Profile) (*profile.LoginResponse, error) {
	accessToken, err := s.jwt.GenerateAccessToken(p.ID.String(), p.Email, string(p.Role))
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwt.GenerateRefreshToken(p.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &profile.LoginResponse{
		User:         p.ToDTO(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
