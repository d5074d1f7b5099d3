package utils_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/utils"
)

func TestGenerateRandomOTP(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, pattern, utils.GenerateRandomOTP(), "验证码必须是 6 位数字")
	}
}

func TestGenerateNicknameFromChineseName(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z]+\d{1,3}$`)
	for i := 0; i < 20; i++ {
		nickname := utils.GenerateNicknameFromChineseName(utils.GenerateRandomChineseName())
		assert.Regexp(t, pattern, nickname, "昵称应该是拼音加随机数字")
	}
}

func TestGenerateRandomEmployee(t *testing.T) {
	employee, err := utils.GenerateRandomEmployee("Pa55word", "example.com", 3)
	require.NoError(t, err)

	assert.NotEmpty(t, employee.FullName)
	assert.Regexp(t, `@example\.com$`, employee.Email)
	assert.Equal(t, int64(3), employee.SubunitID)
	assert.NotEqual(t, "Pa55word", employee.PasswordHash, "密码必须经过哈希")
}
