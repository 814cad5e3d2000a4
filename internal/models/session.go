package models

import "time"

// Session 一次完整的秒表会话，复位时生成
type Session struct {
	ID         int64
	StartedAt  time.Time
	DurationMs int64 // 以毫秒为单位
	LapCount   int
}
