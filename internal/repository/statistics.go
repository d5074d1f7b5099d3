package repository

import (
	"context"
	"time"
)

type StatisticsRow struct {
	SubunitID int64
	Month     string
	Count     int64
}

// GetPostsStatistics 按部门和创建月份统计帖子数量，区间为 [start, end)
// subunitIDs 为空时统计所有部门
func (r *Repository) GetPostsStatistics(start, end time.Time, subunitIDs []int64) ([]StatisticsRow, error) {
	query := `
		SELECT subunit_id, to_char(date_trunc('month', created_at), 'YYYY-MM'), count(*)
		FROM posts
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY subunit_id, date_trunc('month', created_at)
	`

	args := []any{start, end}
	if len(subunitIDs) > 0 {
		query = `
			SELECT subunit_id, to_char(date_trunc('month', created_at), 'YYYY-MM'), count(*)
			FROM posts
			WHERE created_at >= $1 AND created_at < $2 AND subunit_id = ANY($3)
			GROUP BY subunit_id, date_trunc('month', created_at)
		`
		args = append(args, subunitIDs)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]StatisticsRow, 0)
	for rows.Next() {
		row := StatisticsRow{}
		if err := rows.Scan(&row.SubunitID, &row.Month, &row.Count); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
