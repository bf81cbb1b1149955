package util

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ValidateMimeType 深度校验文件 MIME 类型
// allowedTypes: 允许的 MIME 前缀或完整类型，如 "audio/", "video/", "application/pdf"
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, fmt.Errorf("%w: %s", ErrInvalidFileType, mimeType)
}

func IsAudio(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeAudio) || mimeType == "application/ogg"
}

func IsVideo(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeVideo)
}

// ResourceObjectName 上传对象名：resources/2026/10/<uuid>.ext
func ResourceObjectName(original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	return "resources/" + now.Format("2006/01") + "/" + uuid.New().String() + ext
}
