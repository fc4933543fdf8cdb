package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/urbanbarber/api/internal/audit"
	domain "github.com/urbanbarber/api/internal/domain/identity"
	"github.com/urbanbarber/api/internal/httperr"
	"github.com/urbanbarber/api/internal/models"
	"github.com/urbanbarber/api/internal/token"
)

// ======================================================
// STUBS
// ======================================================

var errNotFound = errors.New("record not found")

type stubIdentityRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newStubIdentityRepo() *stubIdentityRepo {
	return &stubIdentityRepo{
		users:  make(map[uint]*models.User),
		nextID: 1,
	}
}

func (r *stubIdentityRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, errNotFound
}

func (r *stubIdentityRepo) FindUserByIdentifier(_ context.Context, identifier string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier || u.Phone == identifier {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubIdentityRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubIdentityRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubIdentityRepo) PhoneExists(_ context.Context, phone string) (bool, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubIdentityRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

var _ domain.Repository = (*stubIdentityRepo)(nil)

type nopRecorder struct{}

func (nopRecorder) Log(*uint, string, string, *uint, any) error { return nil }

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopRecorder{})
}

func registered(t *testing.T, repo *stubIdentityRepo) *models.User {
	t.Helper()

	uc := NewRegister(repo, testDispatcher())
	user, err := uc.Execute(context.Background(), RegisterInput{
		Username:  "juanperez",
		FirstName: "Juan",
		LastName:  "Pérez",
		Email:     "juan@example.com",
		Phone:     "3001234567",
		Password:  "MiPassword123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	return user
}

// ======================================================
// REGISTER
// ======================================================

func TestRegister_Success(t *testing.T) {
	repo := newStubIdentityRepo()
	user := registered(t, repo)

	if user.Role != models.RoleClient {
		t.Fatalf("expected client role, got %q", user.Role)
	}
	if user.PasswordHash == "MiPassword123" {
		t.Fatalf("password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("MiPassword123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if _, ok := repo.users[user.ID]; !ok {
		t.Fatalf("user not persisted")
	}
}

func TestRegister_DuplicatesRejectedInOrder(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegisterInput)
		code   string
	}{
		{"username", func(in *RegisterInput) {}, "username_taken"},
		{"email", func(in *RegisterInput) { in.Username = "otro" }, "email_taken"},
		{"phone", func(in *RegisterInput) {
			in.Username = "otro"
			in.Email = "otro@example.com"
		}, "phone_taken"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newStubIdentityRepo()
			registered(t, repo)

			in := RegisterInput{
				Username:  "juanperez",
				FirstName: "Otro",
				LastName:  "Usuario",
				Email:     "juan@example.com",
				Phone:     "3001234567",
				Password:  "pass1234",
			}
			tc.mutate(&in)

			uc := NewRegister(repo, testDispatcher())
			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("expected %q, got %v", tc.code, err)
			}
			if len(repo.users) != 1 {
				t.Fatalf("failed registration must not persist anything")
			}
		})
	}
}

// ======================================================
// LOGIN
// ======================================================

func testIssuer() *token.Issuer {
	return token.NewIssuer("secret", "urbanbarber-api", "urbanbarber-clients")
}

func TestLogin_ByEveryIdentifier(t *testing.T) {
	repo := newStubIdentityRepo()
	user := registered(t, repo)
	uc := NewLogin(repo, testIssuer(), testDispatcher())

	for _, identifier := range []string{user.Username, user.Email, user.Phone} {
		out, err := uc.Execute(context.Background(), LoginInput{
			Identifier: identifier,
			Password:   "MiPassword123",
		})
		if err != nil {
			t.Fatalf("login by %q failed: %v", identifier, err)
		}
		if out.Token == "" || out.User.ID != user.ID {
			t.Fatalf("unexpected login output for %q", identifier)
		}
	}
}

func TestLogin_TokenClaimsAndExpiry(t *testing.T) {
	repo := newStubIdentityRepo()
	user := registered(t, repo)
	uc := NewLogin(repo, testIssuer(), testDispatcher())

	before := time.Now()
	out, err := uc.Execute(context.Background(), LoginInput{
		Identifier: user.Username,
		Password:   "MiPassword123",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	parsed, err := jwt.Parse(out.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}

	claims := parsed.Claims.(jwt.MapClaims)
	if uint(claims["sub"].(float64)) != user.ID {
		t.Fatalf("sub claim mismatch")
	}
	if claims["role"].(string) != models.RoleClient {
		t.Fatalf("role claim mismatch")
	}

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	if exp-iat != int64(token.TTL/time.Second) {
		t.Fatalf("expected 1h expiry, got %ds", exp-iat)
	}
	if iat < before.Unix()-1 || iat > time.Now().Unix()+1 {
		t.Fatalf("iat outside issuance window")
	}
}

func TestLogin_Failures(t *testing.T) {
	repo := newStubIdentityRepo()
	registered(t, repo)
	uc := NewLogin(repo, testIssuer(), testDispatcher())

	_, err := uc.Execute(context.Background(), LoginInput{
		Identifier: "desconocido",
		Password:   "MiPassword123",
	})
	if !httperr.IsBusiness(err, "user_not_found") {
		t.Fatalf("expected user_not_found, got %v", err)
	}

	_, err = uc.Execute(context.Background(), LoginInput{
		Identifier: "juanperez",
		Password:   "wrong",
	})
	if !httperr.IsBusiness(err, "invalid_credentials") {
		t.Fatalf("expected invalid_credentials, got %v", err)
	}
}

// ======================================================
// PROFILE
// ======================================================

func TestGetProfile(t *testing.T) {
	repo := newStubIdentityRepo()
	user := registered(t, repo)
	uc := NewGetProfile(repo)

	got, err := uc.Execute(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got.Username != "juanperez" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if _, err := uc.Execute(context.Background(), 999); !httperr.IsBusiness(err, "user_not_found") {
		t.Fatalf("expected user_not_found, got %v", err)
	}
}
