package errors

import "errors"

// ErrMissingSection 排课数据引用了尚未导入的开课记录。
// 属于运行顺序问题（应先执行课表导入），不做自动重试
var ErrMissingSection = errors.New("开课记录尚未导入")
