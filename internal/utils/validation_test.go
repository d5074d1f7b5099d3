package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/utils"
)

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, utils.ValidatePassword("Abcdef12"))
	assert.NoError(t, utils.ValidatePassword("P@ssw0rdLong"))

	assert.Error(t, utils.ValidatePassword("Ab1"), "太短的密码应该被拒绝")
	assert.Error(t, utils.ValidatePassword("abcdefg1"), "没有大写字母的密码应该被拒绝")
	assert.Error(t, utils.ValidatePassword("ABCDEFG1"), "没有小写字母的密码应该被拒绝")
	assert.Error(t, utils.ValidatePassword("Abcdefgh"), "没有数字的密码应该被拒绝")
	assert.Error(t, utils.ValidatePassword(""), "空密码应该被拒绝")
}

func TestValidateStatisticsRange(t *testing.T) {
	assert.NoError(t, utils.ValidateStatisticsRange(2024, 11, 2025, 2))
	assert.NoError(t, utils.ValidateStatisticsRange(2025, 6, 2025, 6))

	assert.Error(t, utils.ValidateStatisticsRange(2025, 0, 2025, 6), "月份为 0 非法")
	assert.Error(t, utils.ValidateStatisticsRange(2025, 1, 2025, 13), "月份为 13 非法")
	assert.Error(t, utils.ValidateStatisticsRange(2025, 6, 2025, 1), "同一年内结束月份早于开始月份非法")
	assert.Error(t, utils.ValidateStatisticsRange(2025, 1, 2024, 12), "结束年份早于开始年份非法")
}
