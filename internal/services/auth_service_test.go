package services

import (
	"testing"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	for i := range f.users {
		if f.users[i].Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) CountAll() (int64, error) {
	return int64(len(f.users)), nil
}

// recordingEmailProvider captures sent mail instead of delivering it.
type recordingEmailProvider struct {
	sent []*email.Email
}

func (p *recordingEmailProvider) Send(msg *email.Email) error {
	p.sent = append(p.sent, msg)
	return nil
}

func (p *recordingEmailProvider) Validate() error { return nil }

func setTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 1
	config.AppConfig = cfg
}

func newAuthServiceForTest(t *testing.T) (AuthService, *fakeUserRepo, *recordingEmailProvider) {
	setTestConfig(t)
	repo := &fakeUserRepo{}
	mail := &recordingEmailProvider{}
	return NewAuthService(repo, mail), repo, mail
}

func TestAuthService_Register_CreatesUserAndToken(t *testing.T) {
	svc, repo, mail := newAuthServiceForTest(t)

	res, err := svc.Register(&dto.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.UserRoleEmployer,
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "jane@example.com", res.User.Email)
	assert.Equal(t, models.UserRoleEmployer, res.User.Role)

	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.NotEqual(t, "secret123", stored.PasswordHash, "password must be stored hashed")
	assert.True(t, auth.CheckPasswordHash("secret123", stored.PasswordHash))

	require.Len(t, mail.sent, 1)
	assert.Equal(t, []string{"jane@example.com"}, mail.sent[0].To)
}

func TestAuthService_Register_DefaultsRoleToJobseeker(t *testing.T) {
	svc, repo, _ := newAuthServiceForTest(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, models.UserRoleJobseeker, repo.users[0].Role)
}

func TestAuthService_Register_DuplicateEmailIs400(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	req := &dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret123"}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode, "the legacy contract returns 400 on duplicate email")
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestAuthService_Register_RejectsWeakPassword(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	_, err := svc.Register(&dto.RegisterRequest{Name: "X", Email: "x@example.com", Password: "abc"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	_, err := svc.Register(&dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)

	res, err := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "jane@example.com", res.User.Email)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	_, err := svc.Register(&dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "nope"})
	_, unknownEmail := svc.Login(&dto.LoginRequest{Email: "ghost@example.com", Password: "secret123"})

	// Same error value both ways: no account enumeration through login
	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, apperrors.ErrInvalidCredentials)
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc, repo, _ := newAuthServiceForTest(t)

	_, err := svc.Register(&dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)

	user, err := svc.CurrentUser(repo.users[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)

	_, err = svc.CurrentUser("00000000-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
