package timer

import "time"

// Clock 时间源接口，测试时可注入假时钟
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock 默认使用系统时间
var SystemClock Clock = systemClock{}
