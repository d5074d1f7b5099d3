package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
)

func TestParsePostStatus(t *testing.T) {
	for _, s := range []string{
		"under_consideration", "posted", "returned_for_improvement", "rejected", "archived",
	} {
		status, ok := domain.ParsePostStatus(s)
		assert.True(t, ok, "合法状态应该解析成功: %s", s)
		assert.Equal(t, domain.PostStatus(s), status)
	}

	for _, s := range []string{"", "published", "POSTED", "under consideration"} {
		_, ok := domain.ParsePostStatus(s)
		assert.False(t, ok, "非法状态应该解析失败: %s", s)
	}
}

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name string
		from domain.PostStatus
		to   domain.PostStatus
		want bool
	}{
		{"批准待审核的帖子", domain.StatusUnderConsideration, domain.StatusPosted, true},
		{"退回修改后的帖子不能直接批准", domain.StatusReturnedForImprovement, domain.StatusPosted, false},
		{"驳回后的帖子不能直接批准", domain.StatusRejected, domain.StatusPosted, false},
		{"打回已发布的帖子重新审核", domain.StatusPosted, domain.StatusUnderConsideration, true},
		{"退回待审核的帖子修改", domain.StatusUnderConsideration, domain.StatusReturnedForImprovement, true},
		{"退回已发布的帖子修改", domain.StatusPosted, domain.StatusReturnedForImprovement, true},
		{"驳回待审核的帖子", domain.StatusUnderConsideration, domain.StatusRejected, true},
		{"驳回已发布的帖子", domain.StatusPosted, domain.StatusRejected, true},
		{"归档已发布的帖子", domain.StatusPosted, domain.StatusArchived, true},
		{"归档已驳回的帖子", domain.StatusRejected, domain.StatusArchived, true},
		{"已发布的帖子不能再次批准", domain.StatusPosted, domain.StatusPosted, false},
		{"归档的帖子不能再次归档", domain.StatusArchived, domain.StatusArchived, false},
		{"未知状态不能作为目标", domain.StatusPosted, domain.PostStatus("published"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.CanTransition(tc.from, tc.to))
		})
	}
}

// 打回审核、退回修改、驳回都允许目标状态和当前状态相同
func TestCanTransitionSameState(t *testing.T) {
	for _, status := range []domain.PostStatus{
		domain.StatusUnderConsideration,
		domain.StatusReturnedForImprovement,
		domain.StatusRejected,
	} {
		assert.True(t, domain.CanTransition(status, status), "应该允许 %s 迁移到自身", status)
	}
}

// 归档的帖子可以恢复到任意非归档状态，且只能恢复到非归档状态
func TestCanTransitionUnarchive(t *testing.T) {
	nonArchived := []domain.PostStatus{
		domain.StatusUnderConsideration,
		domain.StatusPosted,
		domain.StatusReturnedForImprovement,
		domain.StatusRejected,
	}

	for _, to := range nonArchived {
		assert.True(t, domain.CanTransition(domain.StatusArchived, to),
			"取消归档应该允许恢复到 %s", to)
	}

	assert.False(t, domain.CanTransition(domain.StatusArchived, domain.StatusArchived),
		"取消归档的目标状态不允许是 archived")
}

// 任何非归档状态都可以归档，归档后又可以恢复到原状态
func TestArchiveRoundTrip(t *testing.T) {
	for _, from := range []domain.PostStatus{
		domain.StatusUnderConsideration,
		domain.StatusPosted,
		domain.StatusReturnedForImprovement,
		domain.StatusRejected,
	} {
		assert.True(t, domain.CanTransition(from, domain.StatusArchived), "应该可以从 %s 归档", from)
		assert.True(t, domain.CanTransition(domain.StatusArchived, from), "应该可以恢复到 %s", from)
	}
}
