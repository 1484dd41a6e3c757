package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rei_do_lanche_backend/internal/models"
	"rei_do_lanche_backend/internal/repositories"
	"rei_do_lanche_backend/internal/services"
)

// fakeAccountRepo is an in-memory AccountRepository.
type fakeAccountRepo struct {
	accounts map[string]*models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*models.Account{}}
}

func (f *fakeAccountRepo) Create(account *models.Account) error {
	for _, existing := range f.accounts {
		if existing.Email == account.Email {
			return repositories.ErrDuplicateKey
		}
	}
	copied := *account
	f.accounts[account.ID] = &copied
	return nil
}

func (f *fakeAccountRepo) GetByEmail(email string) (*models.Account, error) {
	for _, account := range f.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeAccountRepo) GetByID(id string) (*models.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (f *fakeAccountRepo) UpdateAdminPin(id, adminPinHash string) error {
	account, ok := f.accounts[id]
	if !ok {
		return repositories.ErrNotFound
	}
	account.AdminPinHash = adminPinHash
	return nil
}

func registerTestAccount(t *testing.T, svc services.AuthService) *services.AuthResponse {
	t.Helper()
	resp, err := svc.Register(services.RegisterRequest{
		Name:     "Rei do Lanche",
		Email:    "dono@reidolanche.com.br",
		Password: "segredo123",
		AdminPin: "4321",
	})
	require.NoError(t, err)
	return resp
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := services.NewAuthService(newFakeAccountRepo())

	registered := registerTestAccount(t, svc)
	assert.NotEmpty(t, registered.AccountID)
	assert.NotEmpty(t, registered.AccessToken)
	assert.Equal(t, "Rei do Lanche", registered.AccountName)

	logged, err := svc.Login(services.LoginRequest{
		Email:    "dono@reidolanche.com.br",
		Password: "segredo123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.AccountID, logged.AccountID)
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	svc := services.NewAuthService(newFakeAccountRepo())
	registerTestAccount(t, svc)

	_, err := svc.Register(services.RegisterRequest{
		Name:     "Imitador",
		Email:    "dono@reidolanche.com.br",
		Password: "outro123",
		AdminPin: "0000",
	})
	assert.ErrorIs(t, err, services.ErrEmailExists)
}

func TestAuthService_WrongPassword(t *testing.T) {
	svc := services.NewAuthService(newFakeAccountRepo())
	registerTestAccount(t, svc)

	_, err := svc.Login(services.LoginRequest{
		Email:    "dono@reidolanche.com.br",
		Password: "errada",
	})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login(services.LoginRequest{
		Email:    "ninguem@reidolanche.com.br",
		Password: "segredo123",
	})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_VerifyAdminPin(t *testing.T) {
	svc := services.NewAuthService(newFakeAccountRepo())
	registered := registerTestAccount(t, svc)

	assert.NoError(t, svc.VerifyAdminPin(registered.AccountID, "4321"))
	assert.ErrorIs(t, svc.VerifyAdminPin(registered.AccountID, "9999"), services.ErrInvalidAdminPin)
	assert.ErrorIs(t, svc.VerifyAdminPin("missing", "4321"), services.ErrAccountNotFound)
}
