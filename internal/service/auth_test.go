package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Sanzzyy/management-finasial/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[string]*model.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func TestAuthRegisterAndLogin(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")
	viper.Set("jwt.expire_hours", 1)
	t.Cleanup(func() { viper.Reset() })

	repo := newFakeUserRepo()
	svc := NewAuthService(repo)
	ctx := context.Background()

	if err := svc.Register(ctx, "Budi", "budi@example.com", "secret123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("password is stored hashed", func(t *testing.T) {
		u := repo.users["budi@example.com"]
		if u.Password == "secret123" {
			t.Error("password stored in plain text")
		}
		if u.ID == "" {
			t.Error("user ID not assigned")
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		err := svc.Register(ctx, "Budi Again", "budi@example.com", "other456")
		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("err = %v, want ErrEmailTaken", err)
		}
	})

	t.Run("login returns a valid token", func(t *testing.T) {
		tokenStr, user, err := svc.Login(ctx, "budi@example.com", "secret123")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if user.Name != "Budi" {
			t.Errorf("user.Name = %q, want Budi", user.Name)
		}

		token, err := jwt.Parse(tokenStr, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		if err != nil || !token.Valid {
			t.Fatalf("token does not verify: %v", err)
		}
		claims := token.Claims.(jwt.MapClaims)
		if claims["user_id"] != user.ID {
			t.Errorf("user_id claim = %v, want %s", claims["user_id"], user.ID)
		}
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, _, errWrongPass := svc.Login(ctx, "budi@example.com", "nope")
		_, _, errNoUser := svc.Login(ctx, "ghost@example.com", "nope")

		if !errors.Is(errWrongPass, ErrInvalidCredentials) {
			t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", errWrongPass)
		}
		if !errors.Is(errNoUser, ErrInvalidCredentials) {
			t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", errNoUser)
		}
	})
}
