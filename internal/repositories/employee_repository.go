package repositories

import (
	"database/sql"
	"fmt"

	"rei_do_lanche_backend/internal/models"
)

// EmployeeRepository defines the interface for employee records.
type EmployeeRepository interface {
	ListByAccount(accountID string) ([]models.Employee, error)
	Upsert(executor SQLExecutor, accountID string, emp *models.Employee) error
	UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error
	Delete(executor SQLExecutor, accountID, id string) error
}

type employeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new instance of EmployeeRepository.
func NewEmployeeRepository(db *sql.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

var employeeColumns = columnMap{
	columns: map[string]string{
		"name":          "name",
		"role":          "role",
		"baseSalary":    "base_salary",
		"admissionDate": "admission_date",
		"pixKey":        "pix_key",
		"phone":         "phone",
		"active":        "active",
	},
}

func (r *employeeRepository) ListByAccount(accountID string) ([]models.Employee, error) {
	employees := []models.Employee{}
	query := `SELECT id, name, role, base_salary, admission_date, pix_key, phone, active
	          FROM employees WHERE account_id = $1 ORDER BY name`

	rows, err := r.db.Query(query, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying employees: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var emp models.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Role, &emp.BaseSalary,
			&emp.AdmissionDate, &emp.PixKey, &emp.Phone, &emp.Active); err != nil {
			return nil, fmt.Errorf("%w: scanning employee: %v", ErrDatabaseError, err)
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating employee rows: %v", ErrDatabaseError, err)
	}
	return employees, nil
}

func (r *employeeRepository) Upsert(executor SQLExecutor, accountID string, emp *models.Employee) error {
	query := `INSERT INTO employees
	            (id, account_id, name, role, base_salary, admission_date, pix_key, phone, active)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          ON CONFLICT (account_id, id) DO UPDATE SET
	            name = EXCLUDED.name, role = EXCLUDED.role, base_salary = EXCLUDED.base_salary,
	            admission_date = EXCLUDED.admission_date, pix_key = EXCLUDED.pix_key,
	            phone = EXCLUDED.phone, active = EXCLUDED.active`

	_, err := executor.Exec(query,
		emp.ID, accountID, emp.Name, emp.Role, emp.BaseSalary, emp.AdmissionDate,
		emp.PixKey, emp.Phone, emp.Active,
	)
	if err != nil {
		return fmt.Errorf("%w: upserting employee %s: %v", ErrDatabaseError, emp.ID, err)
	}
	return nil
}

func (r *employeeRepository) UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error {
	return updateRow(executor, employeeColumns, "employees", fields, accountID, id)
}

func (r *employeeRepository) Delete(executor SQLExecutor, accountID, id string) error {
	return deleteRow(executor, "employees", accountID, id)
}
