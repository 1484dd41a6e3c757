package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"rei_do_lanche_backend/internal/models"
)

// AccountRepository defines the interface for store account records.
type AccountRepository interface {
	Create(account *models.Account) error
	GetByEmail(email string) (*models.Account, error)
	GetByID(id string) (*models.Account, error)
	UpdateAdminPin(id, adminPinHash string) error
}

type accountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new instance of AccountRepository.
func NewAccountRepository(db *sql.DB) AccountRepository {
	return &accountRepository{db: db}
}

const accountSelect = `SELECT id, name, email, password_hash, admin_pin_hash, created_at FROM accounts`

func (r *accountRepository) Create(account *models.Account) error {
	query := `INSERT INTO accounts (id, name, email, password_hash, admin_pin_hash, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		account.ID, account.Name, account.Email, account.PasswordHash,
		account.AdminPinHash, account.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrDuplicateKey
		}
		return fmt.Errorf("%w: creating account: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *accountRepository) GetByEmail(email string) (*models.Account, error) {
	var account models.Account
	err := r.db.QueryRow(accountSelect+` WHERE email = $1`, email).Scan(
		&account.ID, &account.Name, &account.Email, &account.PasswordHash,
		&account.AdminPinHash, &account.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: querying account by email: %v", ErrDatabaseError, err)
	}
	return &account, nil
}

func (r *accountRepository) GetByID(id string) (*models.Account, error) {
	var account models.Account
	err := r.db.QueryRow(accountSelect+` WHERE id = $1`, id).Scan(
		&account.ID, &account.Name, &account.Email, &account.PasswordHash,
		&account.AdminPinHash, &account.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: querying account %s: %v", ErrDatabaseError, id, err)
	}
	return &account, nil
}

func (r *accountRepository) UpdateAdminPin(id, adminPinHash string) error {
	result, err := r.db.Exec(`UPDATE accounts SET admin_pin_hash = $1 WHERE id = $2`, adminPinHash, id)
	if err != nil {
		return fmt.Errorf("%w: updating admin pin for account %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for account %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
