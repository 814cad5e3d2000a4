package models

// Lap 一次计次记录，创建后不再修改
type Lap struct {
	Index     int    // 序号，从 1 开始
	Display   string // 计次时刻的格式化时间
	ElapsedMs int64
}
