package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
)

// EnsureInitialAdmin 保证数据库中存在初始管理员及其所属的总部部门。
// 管理员和部门互相引用，所以要在一个事务中分三步建立：
// 先插入 leader 为空的部门，再插入管理员，最后把部门负责人指向管理员。
func (r *Repository) EnsureInitialAdmin(admin *domain.Employee, subunit *domain.Subunit) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 管理员已存在时不做任何事
	var existingID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM employees WHERE email = $1`, admin.Email).Scan(&existingID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	query := `
		INSERT INTO subunits (name, address, phone, email, leader_id)
		VALUES ($1, $2, $3, $4, NULL)
		RETURNING id, created_at, version
	`
	args := []any{subunit.Name, subunit.Address, subunit.Phone, subunit.Email}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&subunit.ID, &subunit.CreatedAt, &subunit.Version); err != nil {
		return err
	}

	query = `
		INSERT INTO employees (email, password_hash, full_name, role, subunit_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_fired, created_at, version
	`
	args = []any{admin.Email, admin.PasswordHash, admin.FullName, admin.Role, subunit.ID}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&admin.ID, &admin.IsFired, &admin.CreatedAt, &admin.Version); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE subunits SET leader_id = $1 WHERE id = $2`, admin.ID, subunit.ID); err != nil {
		return err
	}
	subunit.LeaderID = admin.ID

	return tx.Commit()
}
