package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrUsernameTaken      = errors.New("该用户名已被使用")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password must be at least 8 characters and contain upper case, lower case and a digit")
	ErrPermissionDenied   = errors.New("permission denied")

	ErrInvalidScore    = errors.New("score must be between 0 and 9 in steps of 0.5")
	ErrInvalidPriority = errors.New("priority must be between 1 and 5")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidSection  = errors.New("section not found")

	ErrTestNotFound        = errors.New("practice test not found")
	ErrScoreExists         = errors.New("score for this section already recorded")
	ErrWeakAreaNotFound    = errors.New("weak area not found")
	ErrWeakAreaExists      = errors.New("weak area already recorded for this section")
	ErrSessionNotFound     = errors.New("study session not found")
	ErrSessionActive       = errors.New("a study session is already in progress")
	ErrSessionEnded        = errors.New("study session already ended")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrResourceCollected   = errors.New("resource already in collection")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrPlanNotFound        = errors.New("study plan not found")
	ErrPlanItemNotFound    = errors.New("study plan item not found")
	ErrPlanOverlap         = errors.New("an active study plan already covers these dates")
	ErrInvalidDateRange    = errors.New("end date must not be before start date")
	ErrInvalidPlanStatus   = errors.New("invalid plan status")
	ErrInvalidPeriod       = errors.New("period must be one of day, week, month, all")
	ErrInvalidResourceType = errors.New("resource type must be one of book, video, audio, website, exercise, document")
	ErrFileTooLarge        = errors.New("file exceeds the 200 MB limit")
	ErrInvalidFileType     = errors.New("invalid file type")
	ErrTestDateNotSet      = errors.New("set your IELTS test date in your profile first")
)
