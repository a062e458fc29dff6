// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/signance/backend/internal/application/adapter"
	"github.com/signance/backend/internal/domain/entity"
	domainerror "github.com/signance/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users         map[string]*entity.User
	usernameTaken bool
	emailTaken    bool
	created       *entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	user.ID = 1
	f.created = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsernameOrEmail(_ context.Context, login string) (*entity.User, error) {
	if u, ok := f.users[login]; ok {
		return u, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByUsername(_ context.Context, _ string) (bool, error) {
	return f.usernameTaken, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return f.emailTaken, nil
}

type fakePasswordService struct {
	weak bool
}

func (f *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (f *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

func (f *fakePasswordService) ValidatePasswordStrength(_ string) error {
	if f.weak {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type fakeTokenService struct {
	pairs       int
	invalidated []string
	revoked     map[string]bool
	claims      *adapter.TokenClaims
	validateErr error
}

func (f *fakeTokenService) GenerateTokenPair(_ context.Context, _ uint, _ string) (*adapter.TokenPair, error) {
	f.pairs++
	return &adapter.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (f *fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return f.claims, f.validateErr
}

func (f *fakeTokenService) ValidateRefreshToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return f.claims, f.validateErr
}

func (f *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	f.invalidated = append(f.invalidated, token)
	return nil
}

func (f *fakeTokenService) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return !f.revoked[token], nil
}

func TestRegisterUserUseCase(t *testing.T) {
	t.Run("registers a new user and returns tokens", func(t *testing.T) {
		repo := &fakeUserRepo{}
		uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

		out, err := uc.Execute(context.Background(), RegisterUserInput{
			Username: "maria",
			Email:    "maria@example.com",
			Password: "str0ngPassword",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.ID != 1 {
			t.Errorf("expected assigned ID 1, got %d", out.User.ID)
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Error("expected a token pair")
		}
		if repo.created.PasswordHash != "hashed:str0ngPassword" {
			t.Errorf("expected hashed password to be stored, got %q", repo.created.PasswordHash)
		}
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		uc := NewRegisterUserUseCase(&fakeUserRepo{}, &fakePasswordService{}, &fakeTokenService{})

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Username: "maria",
			Email:    "not-an-email",
			Password: "str0ngPassword",
		})
		assertAuthCode(t, err, domainerror.ErrCodeInvalidEmail)
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(&fakeUserRepo{}, &fakePasswordService{weak: true}, &fakeTokenService{})

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Username: "maria",
			Email:    "maria@example.com",
			Password: "short",
		})
		assertAuthCode(t, err, domainerror.ErrCodeWeakPassword)
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		uc := NewRegisterUserUseCase(&fakeUserRepo{usernameTaken: true}, &fakePasswordService{}, &fakeTokenService{})

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Username: "maria",
			Email:    "maria@example.com",
			Password: "str0ngPassword",
		})
		assertAuthCode(t, err, domainerror.ErrCodeUsernameTaken)
	})

	t.Run("rejects a registered email", func(t *testing.T) {
		uc := NewRegisterUserUseCase(&fakeUserRepo{emailTaken: true}, &fakePasswordService{}, &fakeTokenService{})

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Username: "maria",
			Email:    "maria@example.com",
			Password: "str0ngPassword",
		})
		assertAuthCode(t, err, domainerror.ErrCodeEmailRegistered)
	})
}

func TestLoginUserUseCase(t *testing.T) {
	user := &entity.User{ID: 1, Username: "maria", Email: "maria@example.com", PasswordHash: "hashed:str0ngPassword"}
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"maria":             user,
		"maria@example.com": user,
	}}

	t.Run("logs in with the username", func(t *testing.T) {
		uc := NewLoginUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

		out, err := uc.Execute(context.Background(), LoginUserInput{Login: "maria", Password: "str0ngPassword"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.ID != 1 {
			t.Errorf("expected user ID 1, got %d", out.User.ID)
		}
	})

	t.Run("logs in with the email", func(t *testing.T) {
		uc := NewLoginUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

		_, err := uc.Execute(context.Background(), LoginUserInput{Login: "maria@example.com", Password: "str0ngPassword"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("returns a generic error for an unknown login", func(t *testing.T) {
		uc := NewLoginUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

		_, err := uc.Execute(context.Background(), LoginUserInput{Login: "nobody", Password: "str0ngPassword"})
		assertAuthCode(t, err, domainerror.ErrCodeInvalidCredentials)
	})

	t.Run("returns the same generic error for a wrong password", func(t *testing.T) {
		uc := NewLoginUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

		_, err := uc.Execute(context.Background(), LoginUserInput{Login: "maria", Password: "wrong"})
		assertAuthCode(t, err, domainerror.ErrCodeInvalidCredentials)
	})
}

func TestRefreshTokenUseCase(t *testing.T) {
	t.Run("rotates a valid refresh token", func(t *testing.T) {
		tokens := &fakeTokenService{
			claims:  &adapter.TokenClaims{UserID: 1, Username: "maria"},
			revoked: map[string]bool{},
		}
		uc := NewRefreshTokenUseCase(tokens)

		out, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "old-token"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Error("expected a new token pair")
		}
		if len(tokens.invalidated) != 1 || tokens.invalidated[0] != "old-token" {
			t.Errorf("expected the old token to be invalidated, got %v", tokens.invalidated)
		}
	})

	t.Run("rejects a token that fails validation", func(t *testing.T) {
		tokens := &fakeTokenService{validateErr: domainerror.ErrInvalidToken}
		uc := NewRefreshTokenUseCase(tokens)

		_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "garbage"})
		assertAuthCode(t, err, domainerror.ErrCodeInvalidToken)
	})

	t.Run("rejects a revoked token", func(t *testing.T) {
		tokens := &fakeTokenService{
			claims:  &adapter.TokenClaims{UserID: 1, Username: "maria"},
			revoked: map[string]bool{"revoked-token": true},
		}
		uc := NewRefreshTokenUseCase(tokens)

		_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "revoked-token"})
		assertAuthCode(t, err, domainerror.ErrCodeInvalidToken)
		if len(tokens.invalidated) != 0 {
			t.Errorf("revoked token should not be re-invalidated, got %v", tokens.invalidated)
		}
	})
}

func TestLogoutUserUseCase(t *testing.T) {
	tokens := &fakeTokenService{}
	uc := NewLogoutUserUseCase(tokens)

	out, err := uc.Execute(context.Background(), LogoutUserInput{RefreshToken: "some-token"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message == "" {
		t.Error("expected a confirmation message")
	}
	if len(tokens.invalidated) != 1 {
		t.Errorf("expected the refresh token to be invalidated, got %v", tokens.invalidated)
	}
}

func assertAuthCode(t *testing.T, err error, code domainerror.AuthErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected an AuthError, got %T: %v", err, err)
	}
	if authErr.Code != code {
		t.Errorf("expected code %s, got %s", code, authErr.Code)
	}
}
