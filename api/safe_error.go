package api

import (
	"errors"

	"fintrack/config"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情，避免信息泄露
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}

// mysqlDuplicateEntry MySQL 唯一索引冲突错误码
const mysqlDuplicateEntry = 1062

// isDuplicateKeyError 判断写入是否撞上唯一索引
// 先查先写存在竞态窗口，最终一致性由唯一索引兜底，冲突要映射为 400 而不是 500
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
