package services

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rei_do_lanche_backend/internal/models"
	"rei_do_lanche_backend/internal/repositories"
	"rei_do_lanche_backend/pkg/utils"
)

// RegisterRequest carries the fields needed to open a new store account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	AdminPin string `json:"adminPin" binding:"required,min=4"`
}

// LoginRequest carries store login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful register or login.
type AuthResponse struct {
	AccountID   string `json:"accountId"`
	AccountName string `json:"accountName"`
	AccessToken string `json:"accessToken"`
}

// AuthService defines the interface for account registration and login.
// The admin PIN gates destructive terminal actions (order deletion, history
// clearing) separately from the login password.
type AuthService interface {
	Register(req RegisterRequest) (*AuthResponse, error)
	Login(req LoginRequest) (*AuthResponse, error)
	VerifyAdminPin(accountID, pin string) error
}

type authService struct {
	accountRepo repositories.AccountRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(ar repositories.AccountRepository) AuthService {
	return &authService{accountRepo: ar}
}

func (s *authService) Register(req RegisterRequest) (*AuthResponse, error) {
	if _, err := s.accountRepo.GetByEmail(req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("checking existing account: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	pinHash, err := bcrypt.GenerateFromPassword([]byte(req.AdminPin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing admin pin: %w", err)
	}

	account := &models.Account{
		ID:           utils.GenerateID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		AdminPinHash: string(pinHash),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.accountRepo.Create(account); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("creating account: %w", err)
	}

	token, err := utils.GenerateAccessToken(account.ID, account.Name)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	return &AuthResponse{AccountID: account.ID, AccountName: account.Name, AccessToken: token}, nil
}

func (s *authService) Login(req LoginRequest) (*AuthResponse, error) {
	account, err := s.accountRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("fetching account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(account.ID, account.Name)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	return &AuthResponse{AccountID: account.ID, AccountName: account.Name, AccessToken: token}, nil
}

func (s *authService) VerifyAdminPin(accountID, pin string) error {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("fetching account: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(account.AdminPinHash), []byte(pin)) != nil {
		return ErrInvalidAdminPin
	}
	return nil
}
