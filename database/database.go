package database

import (
	"fmt"
	"log"

	"fintrack/config"
	"fintrack/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init 建立数据库连接并完成迁移
// 返回的句柄由调用方注入到各处理器，不保留包级全局状态
func Init(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	gormLogLevel := logger.Warn
	if cfg.Server.Mode != "release" {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// 连接池参数
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// 自动迁移数据库表
	if err := db.AutoMigrate(
		&models.User{},
		&models.Expense{},
		&models.Debt{},
	); err != nil {
		return nil, err
	}

	// 兼容历史数据：老版本 debts 没有 status 字段，统一补成 unpaid
	_ = db.Model(&models.Debt{}).
		Where("status IS NULL OR status = ''").
		Update("status", models.DebtStatusUnpaid).Error

	log.Println("数据库初始化成功")
	return db, nil
}
