package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shophub/shophub-api/internal/application/auth"
	"github.com/shophub/shophub-api/internal/application/dto"
	"github.com/shophub/shophub-api/internal/domain"
	"github.com/shophub/shophub-api/internal/domain/entity"
	"github.com/shophub/shophub-api/internal/domain/repository"
	pkgjwt "github.com/shophub/shophub-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "shophub-test"
)

type memUserRepo struct {
	byEmail map[string]*entity.User
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func newAuthUC(repo repository.UserRepository) *auth.UseCase {
	return auth.NewUseCase(repo, testSecret, testIssuer, 60)
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{Name: "Ada Lovelace", Email: "Ada@Example.com", Password: "s3cret99"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreatesUserWithToken(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "ada@example.com", out.User.Email)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	require.NotEmpty(t, out.Token)

	userID, email, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "ada@example.com", email)
	assert.Equal(t, entity.RoleUser, role)

	// Password is stored hashed, never verbatim.
	stored := repo.byEmail["ada@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret99", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())
	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())

	in := registerReq()
	in.Name = "  "
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = registerReq()
	in.Email = ""
	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = registerReq()
	in.Password = "short"
	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_RoundTrip(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())
	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ADA@example.COM", Password: "s3cret99"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Token)
}

// Wrong password and unknown email are indistinguishable to the caller.
func TestLogin_BadCredentials(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())
	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret99"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
