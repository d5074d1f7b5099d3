package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePostStatuses(t *testing.T) {
	statuses, invalid := parsePostStatuses("posted,rejected")
	assert.Empty(t, invalid)
	assert.Equal(t, []string{"posted", "rejected"}, statuses)

	// 空元素直接跳过
	statuses, invalid = parsePostStatuses("posted,,rejected,")
	assert.Empty(t, invalid)
	assert.Equal(t, []string{"posted", "rejected"}, statuses)

	// 重复的只算一次
	statuses, invalid = parsePostStatuses("posted,posted")
	assert.Empty(t, invalid)
	assert.Equal(t, []string{"posted"}, statuses)

	// 全是空元素时列表为空
	statuses, invalid = parsePostStatuses(",,")
	assert.Empty(t, invalid)
	assert.Empty(t, statuses)

	// 非法状态返回第一个非法的值
	_, invalid = parsePostStatuses("posted,published")
	assert.Equal(t, "published", invalid)
}

func TestDedupIDs(t *testing.T) {
	assert.Equal(t, []int64{3, 1, 2}, dedupIDs([]int64{3, 1, 3, 2, 1}))
	assert.Empty(t, dedupIDs(nil))
}
