package domain

import (
	"time"
)

type PostStatus string

const (
	StatusUnderConsideration     PostStatus = "under_consideration"
	StatusPosted                 PostStatus = "posted"
	StatusReturnedForImprovement PostStatus = "returned_for_improvement"
	StatusRejected               PostStatus = "rejected"
	StatusArchived               PostStatus = "archived"
)

// ParsePostStatus 解析帖子状态字符串，非法值返回 false
func ParsePostStatus(s string) (PostStatus, bool) {
	switch PostStatus(s) {
	case StatusUnderConsideration, StatusPosted, StatusReturnedForImprovement, StatusRejected, StatusArchived:
		return PostStatus(s), true
	default:
		return "", false
	}
}

type Post struct {
	ID          int64      `json:"id"`
	AuthorID    int64      `json:"authorId"`
	SubunitID   int64      `json:"subunitId"`
	Content     string     `json:"content"`
	Attachments []int64    `json:"attachments"`
	Status      PostStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Version     int32      `json:"-"`
}

// CanTransition 判断帖子状态是否允许从 from 迁移到 to
// 规则：
//   - posted 只能由 under_consideration 迁移而来（批准）
//   - under_consideration、returned_for_improvement、rejected 可以由任何
//     非归档状态迁移而来（打回审核、退回修改、驳回），包括自身
//   - archived 可以由任何非归档状态迁移而来（归档）
//   - 归档的帖子只能通过取消归档迁移到任意非归档状态
func CanTransition(from, to PostStatus) bool {
	if from == StatusArchived {
		// 取消归档，目标状态不允许还是 archived
		return to != StatusArchived
	}

	switch to {
	case StatusPosted:
		return from == StatusUnderConsideration
	case StatusUnderConsideration, StatusReturnedForImprovement, StatusRejected, StatusArchived:
		return true
	default:
		return false
	}
}
