package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 文件上传相关常量
const (
	MimeAudio       = "audio/"
	MimeVideo       = "video/"
	MimeImage       = "image/"
	MimePDF         = "application/pdf"
	MimeOctetStream = "application/octet-stream"

	MaxResourceFileSize = 200 << 20
)

var (
	AllowedResourceMimeTypes = []string{MimeAudio, MimeVideo, MimeImage, MimePDF, "text/plain", "application/ogg"}
)

// 统计周期
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)
