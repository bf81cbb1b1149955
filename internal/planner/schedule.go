package planner

import (
	"math"
	"time"
)

const (
	// ReviewWindowDays 考前保留给总复习和模考的天数
	ReviewWindowDays = 7
	// MockTestOffsetDays 模考安排在考试前第几天
	MockTestOffsetDays = 3

	DateLayout     = "2006-01-02"
	PlanNameLayout = "2 Jan 2006"
)

// DateOf 截取日历日期，统一为 UTC 零点，便于按天做差
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween 两个日期之间相差的整天数
func DaysBetween(from, to time.Time) int {
	return int(math.Round(DateOf(to).Sub(DateOf(from)).Hours() / 24))
}

// TaskDate 第 i 个任务的日期：每周一次，再按 i%7 错开星期
func TaskDate(start time.Time, i int) time.Time {
	return DateOf(start).AddDate(0, 0, 7*i+i%7)
}

// ReviewOffsetDays 总复习距考试的天数，直接取部分编号
func ReviewOffsetDays(sectionID uint) int {
	return int(sectionID)
}

// InBlackout 日期是否落在考前复习窗口（或考试当天之后）
func InBlackout(date, testDate time.Time) bool {
	return !DateOf(date).Before(DateOf(testDate).AddDate(0, 0, -ReviewWindowDays))
}

func DefaultPlanName(testDate time.Time) string {
	return "Study Plan for Test on " + testDate.Format(PlanNameLayout)
}
