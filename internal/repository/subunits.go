package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
)

func (r *Repository) GetSubunitByID(id int64) (*domain.Subunit, error) {
	query := `
		SELECT name, address, phone, email, leader_id, created_at, version
		FROM subunits WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	subunit := &domain.Subunit{
		ID: id,
	}

	dst := []any{&subunit.Name, &subunit.Address, &subunit.Phone, &subunit.Email, &subunit.LeaderID, &subunit.CreatedAt, &subunit.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return subunit, nil
}

func (r *Repository) GetAllSubunits() ([]*domain.Subunit, error) {
	query := `
		SELECT id, name, address, phone, email, leader_id, created_at, version FROM subunits
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subunits := make([]*domain.Subunit, 0)
	for rows.Next() {
		subunit := &domain.Subunit{}
		dst := []any{&subunit.ID, &subunit.Name, &subunit.Address, &subunit.Phone, &subunit.Email, &subunit.LeaderID, &subunit.CreatedAt, &subunit.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		subunits = append(subunits, subunit)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subunits, nil
}

func (r *Repository) GetSubunitsByIDs(ids []int64) ([]*domain.Subunit, error) {
	query := `
		SELECT id, name, address, phone, email, leader_id, created_at, version
		FROM subunits WHERE id = ANY($1)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subunits := make([]*domain.Subunit, 0)
	for rows.Next() {
		subunit := &domain.Subunit{}
		dst := []any{&subunit.ID, &subunit.Name, &subunit.Address, &subunit.Phone, &subunit.Email, &subunit.LeaderID, &subunit.CreatedAt, &subunit.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		subunits = append(subunits, subunit)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subunits, nil
}

func (r *Repository) CreateSubunit(subunit *domain.Subunit) error {
	query := `
		INSERT INTO subunits (name, address, phone, email, leader_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{subunit.Name, subunit.Address, subunit.Phone, subunit.Email, subunit.LeaderID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&subunit.ID, &subunit.CreatedAt, &subunit.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateSubunit(subunit *domain.Subunit) error {
	query := `
		UPDATE subunits
		SET
			name = $1,
			address = $2,
			phone = $3,
			email = $4,
			leader_id = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{subunit.Name, subunit.Address, subunit.Phone, subunit.Email, subunit.LeaderID, subunit.ID, subunit.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&subunit.CreatedAt, &subunit.Version); err != nil {
		return err
	}

	return nil
}
