package util

import (
	"math"
	"strings"
	"time"
	"unicode"
)

// ValidBandScore 雅思分数 0-9，步长 0.5
func ValidBandScore(score float64) bool {
	if score < 0 || score > 9 {
		return false
	}
	return math.Mod(score*2, 1) == 0
}

// RoundToHalfBand 四舍五入到最近的 0.5
func RoundToHalfBand(score float64) float64 {
	return math.Round(score*2) / 2
}

func ValidPriority(p int) bool {
	return p >= 1 && p <= 5
}

// StrongPassword 至少 8 位，包含大写、小写字母和数字
func StrongPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// ParseDate 解析 YYYY-MM-DD，返回 UTC 零点
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Today 当前日历日期，UTC 零点
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
