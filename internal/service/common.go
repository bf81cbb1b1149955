package service

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// now 服务层统一的时间来源，数据库按 UTC 存储
var now = func() time.Time {
	return time.Now().UTC()
}

// mapNotFound 把 gorm 的记录不存在转换为业务错误
func mapNotFound(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
