package domain

import (
	"fmt"
	"time"
)

// StatisticsMonths 统计结果中每个部门的数据，键为 "YYYY-MM"
type StatisticsMonths map[string]int64

// Statistics 统计结果，键为部门名称
type Statistics map[string]StatisticsMonths

// MonthKey 生成统计结果中使用的月份键
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// MonthsInRange 枚举闭区间内的所有月份键，起止时间非法时返回 nil
func MonthsInRange(startYear, startMonth, endYear, endMonth int) []string {
	if startMonth < 1 || startMonth > 12 || endMonth < 1 || endMonth > 12 {
		return nil
	}

	start := time.Date(startYear, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, time.Month(endMonth), 1, 0, 0, 0, 0, time.UTC)
	if end.Before(start) {
		return nil
	}

	months := []string{}
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 1, 0) {
		months = append(months, MonthKey(cur.Year(), int(cur.Month())))
	}

	return months
}
