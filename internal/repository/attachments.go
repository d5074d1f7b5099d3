package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
)

func (r *Repository) CreateAttachment(attachment *domain.Attachment) error {
	query := `
		INSERT INTO attachments (owner_id, file_name, content_type, size)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{attachment.OwnerID, attachment.FileName, attachment.ContentType, attachment.Size}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&attachment.ID, &attachment.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAttachmentByID(id int64) (*domain.Attachment, error) {
	query := `
		SELECT owner_id, file_name, content_type, size, created_at
		FROM attachments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	attachment := &domain.Attachment{
		ID: id,
	}

	dst := []any{&attachment.OwnerID, &attachment.FileName, &attachment.ContentType, &attachment.Size, &attachment.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return attachment, nil
}

// CountAttachments 统计给定 ID 中实际存在的附件数量
func (r *Repository) CountAttachments(ids []int64) (int64, error) {
	query := `
		SELECT count(*) FROM attachments WHERE id = ANY($1)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var count int64
	if err := r.dbpool.QueryRowContext(ctx, query, ids).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
