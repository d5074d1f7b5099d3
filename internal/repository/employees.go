package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
)

func (r *Repository) GetEmployeeByID(id int64) (*domain.Employee, error) {
	query := `
		SELECT email, password_hash, full_name, role, subunit_id, is_fired, created_at, version
		FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		ID: id,
	}

	dst := []any{&employee.Email, &employee.PasswordHash, &employee.FullName, &employee.Role, &employee.SubunitID, &employee.IsFired, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) GetEmployeeByEmail(email string) (*domain.Employee, error) {
	query := `
		SELECT id, password_hash, full_name, role, subunit_id, is_fired, created_at, version
		FROM employees WHERE email = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		Email: email,
	}

	dst := []any{&employee.ID, &employee.PasswordHash, &employee.FullName, &employee.Role, &employee.SubunitID, &employee.IsFired, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(dst...); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	query := `
		INSERT INTO employees (email, password_hash, full_name, role, subunit_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_fired, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{employee.Email, employee.PasswordHash, employee.FullName, employee.Role, employee.SubunitID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.ID, &employee.IsFired, &employee.CreatedAt, &employee.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateEmployee(employee *domain.Employee) error {
	query := `
		UPDATE employees
		SET
			email = $1,
			password_hash = $2,
			full_name = $3,
			role = $4,
			subunit_id = $5,
			is_fired = $6,
			version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{employee.Email, employee.PasswordHash, employee.FullName, employee.Role, employee.SubunitID, employee.IsFired, employee.ID, employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.CreatedAt, &employee.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	query := `
		SELECT id, email, password_hash, full_name, role, subunit_id, is_fired, created_at, version FROM employees
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		dst := []any{&employee.ID, &employee.Email, &employee.PasswordHash, &employee.FullName, &employee.Role, &employee.SubunitID, &employee.IsFired, &employee.CreatedAt, &employee.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) GetEmployeesByIDs(ids []int64) ([]*domain.Employee, error) {
	query := `
		SELECT id, email, password_hash, full_name, role, subunit_id, is_fired, created_at, version
		FROM employees WHERE id = ANY($1)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		dst := []any{&employee.ID, &employee.Email, &employee.PasswordHash, &employee.FullName, &employee.Role, &employee.SubunitID, &employee.IsFired, &employee.CreatedAt, &employee.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) GetFiredEmployeesOfSubunit(subunitID int64, roles []string) ([]*domain.Employee, error) {
	query := `
		SELECT id, email, password_hash, full_name, role, subunit_id, is_fired, created_at, version
		FROM employees WHERE subunit_id = $1 AND is_fired = TRUE AND role = ANY($2)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, subunitID, roles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		dst := []any{&employee.ID, &employee.Email, &employee.PasswordHash, &employee.FullName, &employee.Role, &employee.SubunitID, &employee.IsFired, &employee.CreatedAt, &employee.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
