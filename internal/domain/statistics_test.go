package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
)

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-01", domain.MonthKey(2025, 1))
	assert.Equal(t, "2025-12", domain.MonthKey(2025, 12))
	assert.Equal(t, "0999-07", domain.MonthKey(999, 7))
}

func TestMonthsInRange(t *testing.T) {
	assert.Equal(t,
		[]string{"2020-11", "2020-12"},
		domain.MonthsInRange(2020, 11, 2020, 12))

	assert.Equal(t,
		[]string{"2024-11", "2024-12", "2025-01", "2025-02"},
		domain.MonthsInRange(2024, 11, 2025, 2),
		"跨年的区间应该包含两端")

	assert.Equal(t,
		[]string{"2025-06"},
		domain.MonthsInRange(2025, 6, 2025, 6),
		"起止相同的区间只包含一个月")
}

func TestMonthsInRangeInvalid(t *testing.T) {
	assert.Nil(t, domain.MonthsInRange(2025, 0, 2025, 6), "月份为 0 非法")
	assert.Nil(t, domain.MonthsInRange(2025, 1, 2025, 13), "月份为 13 非法")
	assert.Nil(t, domain.MonthsInRange(2025, 6, 2025, 1), "结束时间早于开始时间非法")
	assert.Nil(t, domain.MonthsInRange(2025, 1, 2024, 12), "结束年份早于开始年份非法")
}
