package api

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"fintrack/models"

	"github.com/go-playground/validator/v10"
)

// FieldError 单个字段的校验违规
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldName 结构体字段名转 JSON 风格（首字母小写）
func fieldName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// BindingErrors 将 gin 绑定错误翻译为逐字段的违规列表
// 非 validator 错误（如 JSON 语法错误）归为 body 字段的一条违规
func BindingErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	out := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		name := fieldName(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", name)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
		case "email":
			msg = "Please provide a valid email"
		case "gte":
			msg = fmt.Sprintf("%s must be a non-negative number", name)
		case "oneof":
			msg = fmt.Sprintf("Invalid %s", name)
		default:
			msg = fmt.Sprintf("%s is invalid", name)
		}
		out = append(out, FieldError{Field: name, Message: msg})
	}
	return out
}

// 客户端提交的日期格式，YYYY-MM-DD 或带时间的 RFC3339
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate 解析交易日期
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("无法解析日期: %q", value)
}

// validateDate 解析日期并拒绝服务器当前时刻之后的值
func validateDate(value string) (time.Time, *FieldError) {
	t, err := ParseDate(value)
	if err != nil {
		return time.Time{}, &FieldError{Field: "date", Message: "Date must be a valid date (YYYY-MM-DD)"}
	}
	if t.After(time.Now()) {
		return time.Time{}, &FieldError{Field: "date", Message: "Date cannot be in the future"}
	}
	return t, nil
}

// validateYearValue 年份必须为 1900 至当前年份之间的整数
func validateYearValue(year int) *FieldError {
	if year < 1900 || year > time.Now().Year() {
		return &FieldError{Field: "year", Message: "Invalid year"}
	}
	return nil
}

// checkDateConsistency 派生字段一致性：month/year 必须等于 date 的自然月与年份
// month、year 传 nil 表示未提交该字段，不参与比对
func checkDateConsistency(date time.Time, month *string, year *int) *FieldError {
	if month != nil && *month != models.MonthName(int(date.Month())) {
		return &FieldError{Field: "month", Message: "Date does not match provided month or year"}
	}
	if year != nil && *year != date.Year() {
		return &FieldError{Field: "year", Message: "Date does not match provided month or year"}
	}
	return nil
}
