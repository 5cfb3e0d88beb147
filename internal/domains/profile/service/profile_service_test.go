package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dacosta-backend/internal/domains/profile"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/pkg/jwt"
)

// fakeProfileRepo stores profiles in memory with real hashes, so the
// register/login round trip exercises bcrypt and the jwt manager for real.
type fakeProfileRepo struct {
	byID    map[uuid.UUID]*profile.Profile
	touched []uuid.UUID
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byID: map[uuid.UUID]*profile.Profile{}}
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	for _, existing := range f.byID {
		if existing.Email == p.Email {
			return profile.ErrEmailAlreadyExists
		}
	}
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) FindByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	email = strings.ToLower(email)
	for _, p := range f.byID {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.FindByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeProfileRepo) GetAll(ctx context.Context, p listing.Params) ([]profile.Profile, int64, error) {
	out := make([]profile.Profile, 0, len(f.byID))
	for _, pr := range f.byID {
		out = append(out, *pr)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	if _, ok := f.byID[p.ID]; !ok {
		return profile.ErrProfileNotFound
	}
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProfileRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	p, ok := f.byID[id]
	if !ok {
		return profile.ErrProfileNotFound
	}
	p.PasswordHash = passwordHash
	return nil
}

func (f *fakeProfileRepo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	f.touched = append(f.touched, id)
	return nil
}

func newTestService(t *testing.T) (profile.Service, *fakeProfileRepo) {
	t.Helper()
	repo := newFakeProfileRepo()
	mgr := jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour)
	return NewProfileService(repo, mgr), repo
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	resp, err := svc.Register(ctx, profile.RegisterRequest{
		Email:    "Fan@Example.COM",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "fan@example.com", resp.User.Email, "email is stored lowercased")
	assert.Equal(t, profile.RoleUser, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	t.Run("login with differently cased email", func(t *testing.T) {
		// The email validator rejects uppercase domain parts, so the
		// service must lowercase before validating.
		got, err := svc.Login(ctx, profile.LoginRequest{
			Email:    "FAN@EXAMPLE.COM",
			Password: "correct horse",
		})
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, got.User.ID)
	})

	t.Run("login with right password", func(t *testing.T) {
		got, err := svc.Login(ctx, profile.LoginRequest{
			Email:    "fan@example.com",
			Password: "correct horse",
		})
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, got.User.ID)
		assert.Contains(t, repo.touched, resp.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, profile.LoginRequest{
			Email:    "fan@example.com",
			Password: "wrong horse",
		})
		assert.ErrorIs(t, err, profile.ErrInvalidCredentials)
	})

	t.Run("unknown email yields the same error", func(t *testing.T) {
		_, err := svc.Login(ctx, profile.LoginRequest{
			Email:    "nobody@example.com",
			Password: "correct horse",
		})
		assert.ErrorIs(t, err, profile.ErrInvalidCredentials)
	})

	t.Run("duplicate registration rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, profile.RegisterRequest{
			Email:    "fan@example.com",
			Password: "another pass",
		})
		assert.ErrorIs(t, err, profile.ErrEmailAlreadyExists)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		_, err := svc.Register(ctx, profile.RegisterRequest{
			Email:    "short@example.com",
			Password: "abc",
		})
		assert.Error(t, err)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	resp, err := svc.Register(ctx, profile.RegisterRequest{
		Email:    "dj@example.com",
		Password: "long enough",
	})
	require.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		got, err := svc.Refresh(ctx, resp.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, got.User.ID)
		assert.NotEmpty(t, got.AccessToken)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, resp.AccessToken)
		assert.ErrorIs(t, err, profile.ErrInvalidCredentials)
	})

	t.Run("role change shows up on refresh", func(t *testing.T) {
		_, err := svc.UpdateRole(ctx, resp.User.ID, profile.UpdateRoleRequest{Role: profile.RoleAdmin})
		require.NoError(t, err)

		got, err := svc.Refresh(ctx, resp.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, profile.RoleAdmin, got.User.Role)
	})

	t.Run("deleted account", func(t *testing.T) {
		delete(repo.byID, resp.User.ID)
		_, err := svc.Refresh(ctx, resp.RefreshToken)
		assert.ErrorIs(t, err, profile.ErrInvalidCredentials)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	resp, err := svc.Register(ctx, profile.RegisterRequest{
		Email:    "fan@example.com",
		Password: "original pass",
	})
	require.NoError(t, err)
	id := resp.User.ID

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, id, profile.ChangePasswordRequest{
			CurrentPassword: "not it",
			NewPassword:     "replacement pass",
		})
		assert.ErrorIs(t, err, profile.ErrWrongPassword)
	})

	t.Run("successful change invalidates the old password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, id, profile.ChangePasswordRequest{
			CurrentPassword: "original pass",
			NewPassword:     "replacement pass",
		})
		require.NoError(t, err)

		_, err = svc.Login(ctx, profile.LoginRequest{Email: "fan@example.com", Password: "original pass"})
		assert.ErrorIs(t, err, profile.ErrInvalidCredentials)

		_, err = svc.Login(ctx, profile.LoginRequest{Email: "fan@example.com", Password: "replacement pass"})
		assert.NoError(t, err)
	})
}

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	resp, err := svc.Register(ctx, profile.RegisterRequest{
		Email:    "dj@example.com",
		Password: "long enough",
	})
	require.NoError(t, err)
	id := resp.User.ID
	artistID := uuid.New()

	t.Run("artist role links the artist", func(t *testing.T) {
		dto, err := svc.UpdateRole(ctx, id, profile.UpdateRoleRequest{
			Role:     profile.RoleArtist,
			ArtistID: &artistID,
		})
		require.NoError(t, err)
		require.NotNil(t, dto.ArtistID)
		assert.Equal(t, artistID, *dto.ArtistID)
	})

	t.Run("demoting clears the artist link", func(t *testing.T) {
		dto, err := svc.UpdateRole(ctx, id, profile.UpdateRoleRequest{Role: profile.RoleUser})
		require.NoError(t, err)
		assert.Nil(t, dto.ArtistID)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := svc.UpdateRole(ctx, id, profile.UpdateRoleRequest{Role: profile.Role("owner")})
		assert.Error(t, err)
	})
}
