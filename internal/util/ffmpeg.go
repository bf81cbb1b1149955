package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// MediaInfo 音视频资源的基本信息
type MediaInfo struct {
	Duration float64 `json:"duration"` // 秒
	Format   string  `json:"format"`
	Codec    string  `json:"codec"`
	Size     int64   `json:"size"`
}

// GetMediaInfo 使用 ffprobe 读取听力音频或视频的时长
func GetMediaInfo(path string) (*MediaInfo, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("媒体文件不存在: %w", err)
	}

	jsonOutput, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("获取媒体信息失败: %w", err)
	}
	return parseProbeOutput(jsonOutput, fileInfo.Size())
}

func parseProbeOutput(jsonOutput string, fallbackSize int64) (*MediaInfo, error) {
	var result struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
			CodecName string `json:"codec_name"`
		} `json:"streams"`
		Format struct {
			Duration string `json:"duration"`
			Size     string `json:"size"`
			Format   string `json:"format_name"`
		} `json:"format"`
	}

	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return nil, fmt.Errorf("解析媒体信息失败: %w", err)
	}

	// 优先取音频流，纯视频资源再取视频流
	codec := ""
	for _, stream := range result.Streams {
		if stream.CodecType == "audio" {
			codec = stream.CodecName
			break
		}
	}
	if codec == "" && len(result.Streams) > 0 {
		codec = result.Streams[0].CodecName
	}

	duration, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		duration = 0
	}

	size, err := strconv.ParseInt(result.Format.Size, 10, 64)
	if err != nil {
		size = fallbackSize
	}

	format := "unknown"
	if result.Format.Format != "" {
		format = strings.Split(result.Format.Format, ",")[0]
	}

	return &MediaInfo{
		Duration: duration,
		Format:   format,
		Codec:    codec,
		Size:     size,
	}, nil
}
