package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
)

func (r *Repository) getPostAttachmentIDs(ctx context.Context, postID int64) ([]int64, error) {
	query := `
		SELECT id FROM attachments WHERE post_id = $1 ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *Repository) GetPostByID(id int64) (*domain.Post, error) {
	query := `
		SELECT author_id, subunit_id, content, status, created_at, updated_at, version
		FROM posts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	post := &domain.Post{
		ID: id,
	}

	dst := []any{&post.AuthorID, &post.SubunitID, &post.Content, &post.Status, &post.CreatedAt, &post.UpdatedAt, &post.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	attachments, err := r.getPostAttachmentIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Attachments = attachments

	return post, nil
}

// CreatePost 在一个事务中插入帖子并将附件关联到帖子上
// 如果某个附件不存在，返回 sql.ErrNoRows
func (r *Repository) CreatePost(post *domain.Post) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO posts (author_id, subunit_id, content, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at, version
	`

	args := []any{post.AuthorID, post.SubunitID, post.Content, post.Status}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt, &post.Version); err != nil {
		return err
	}

	if len(post.Attachments) > 0 {
		result, err := tx.ExecContext(ctx, `UPDATE attachments SET post_id = $1 WHERE id = ANY($2)`, post.ID, post.Attachments)
		if err != nil {
			return err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected != int64(len(post.Attachments)) {
			return sql.ErrNoRows
		}
	}

	return tx.Commit()
}

// UpdatePostContent 在一个事务中更新帖子内容并重新关联附件
// 如果某个附件不存在，返回 sql.ErrNoRows
func (r *Repository) UpdatePostContent(post *domain.Post) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE posts
		SET
			content = $1,
			updated_at = now(),
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING updated_at, version
	`

	if err := tx.QueryRowContext(ctx, query, post.Content, post.ID, post.Version).Scan(&post.UpdatedAt, &post.Version); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE attachments SET post_id = NULL WHERE post_id = $1`, post.ID); err != nil {
		return err
	}

	if len(post.Attachments) > 0 {
		result, err := tx.ExecContext(ctx, `UPDATE attachments SET post_id = $1 WHERE id = ANY($2)`, post.ID, post.Attachments)
		if err != nil {
			return err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected != int64(len(post.Attachments)) {
			return sql.ErrNoRows
		}
	}

	return tx.Commit()
}

// CreatePostAt 供种子数据使用，可以指定帖子的创建时间
func (r *Repository) CreatePostAt(post *domain.Post, createdAt time.Time) error {
	query := `
		INSERT INTO posts (author_id, subunit_id, content, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, created_at, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{post.AuthorID, post.SubunitID, post.Content, post.Status, createdAt}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt, &post.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdatePostStatus(post *domain.Post) error {
	query := `
		UPDATE posts
		SET
			status = $1,
			updated_at = now(),
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, post.Status, post.ID, post.Version).Scan(&post.UpdatedAt, &post.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeletePost(postID int64, withAttachments bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if withAttachments {
		if _, err := tx.ExecContext(ctx, `DELETE FROM attachments WHERE post_id = $1`, postID); err != nil {
			return err
		}
	}

	// 没有级联删除时，附件的 post_id 由外键的 ON DELETE SET NULL 置空
	if _, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetPostsOfEmployee(employeeID int64) ([]*domain.Post, error) {
	query := `
		SELECT id, subunit_id, content, status, created_at, updated_at, version
		FROM posts WHERE author_id = $1
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post := &domain.Post{AuthorID: employeeID}
		dst := []any{&post.ID, &post.SubunitID, &post.Content, &post.Status, &post.CreatedAt, &post.UpdatedAt, &post.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, post := range posts {
		attachments, err := r.getPostAttachmentIDs(ctx, post.ID)
		if err != nil {
			return nil, err
		}
		post.Attachments = attachments
	}

	return posts, nil
}

// GetPostsByStatuses 按状态分页查询帖子，返回帖子列表和总页数
func (r *Repository) GetPostsByStatuses(statuses []string, page int, reverse bool) ([]*domain.Post, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var total int64
	if err := r.dbpool.QueryRowContext(ctx, `SELECT count(*) FROM posts WHERE status = ANY($1)`, statuses).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := "ASC"
	if reverse {
		order = "DESC"
	}
	query := `
		SELECT id, author_id, subunit_id, content, status, created_at, updated_at, version
		FROM posts WHERE status = ANY($1)
		ORDER BY created_at ` + order + `
		LIMIT $2 OFFSET $3
	`

	pageSize := r.cfg.Pagination.PageSize
	rows, err := r.dbpool.QueryContext(ctx, query, statuses, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post := &domain.Post{}
		dst := []any{&post.ID, &post.AuthorID, &post.SubunitID, &post.Content, &post.Status, &post.CreatedAt, &post.UpdatedAt, &post.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, 0, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for _, post := range posts {
		attachments, err := r.getPostAttachmentIDs(ctx, post.ID)
		if err != nil {
			return nil, 0, err
		}
		post.Attachments = attachments
	}

	pagesCount := (total + int64(pageSize) - 1) / int64(pageSize)
	return posts, pagesCount, nil
}
