package timer

import "fmt"

// FormatElapsed 将毫秒数转换为 mm:ss.hh 显示格式
// 分钟不设上限，百分秒向下取整
func FormatElapsed(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	minutes := ms / 60000
	seconds := ms % 60000 / 1000
	hundredths := ms % 1000 / 10
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, hundredths)
}
