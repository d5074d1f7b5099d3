package utils

import (
	"errors"
	"unicode"
)

// ValidatePassword 检查密码复杂度：至少 8 位，必须同时包含大写字母、小写字母和数字
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("密码长度不能小于 8 位")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return errors.New("密码必须同时包含大写字母、小写字母和数字")
	}

	return nil
}

// ValidateStatisticsRange 检查统计的起止年月是否合法
func ValidateStatisticsRange(startYear, startMonth, endYear, endMonth int) error {
	if startMonth < 1 || startMonth > 12 || endMonth < 1 || endMonth > 12 {
		return errors.New("月份必须在 1 到 12 之间")
	}

	if endYear < startYear || (endYear == startYear && endMonth < startMonth) {
		return errors.New("结束时间不能早于开始时间")
	}

	return nil
}
