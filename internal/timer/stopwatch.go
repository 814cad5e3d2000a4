package timer

import (
	"sync"
	"time"

	"Stopwatch/internal/models"
)

// DefaultTickInterval 默认刷新间隔，约 60Hz
const DefaultTickInterval = 16 * time.Millisecond

// Stopwatch 表示一个秒表计时引擎
// 运行时后台协程按固定间隔重新计算已计时长并通过 onTick 回调发布
type Stopwatch struct {
	mu       sync.Mutex
	running  bool          // 是否正在计时
	startRef time.Time     // 合成起点 = 当前时间 - 已计时长
	elapsed  time.Duration // 最近一次计算出的已计时长
	laps     []models.Lap  // 计次记录，按时间顺序
	interval time.Duration
	clock    Clock
	onTick   func(elapsedMs int64) // 计时回调函数
	stopChan chan struct{}
}

// New 创建一个新的秒表，interval 非正时使用默认间隔
func New(interval time.Duration) *Stopwatch {
	return NewWithClock(interval, SystemClock)
}

// NewWithClock 创建使用指定时钟的秒表
func NewWithClock(interval time.Duration, clock Clock) *Stopwatch {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if clock == nil {
		clock = SystemClock
	}
	return &Stopwatch{
		interval: interval,
		clock:    clock,
	}
}

// SetOnTick 设置计时回调函数，每次重新计算（包括复位归零）时调用
func (s *Stopwatch) SetOnTick(callback func(elapsedMs int64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTick = callback
}

// Start 开始计时
// 已在计时中则不做任何事；从暂停恢复时以 当前时间-已计时长 为合成起点继续
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.startRef = s.clock.Now().Add(-s.elapsed)
	s.stopChan = make(chan struct{})

	go s.run(s.stopChan)
}

func (s *Stopwatch) run(stop chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if !s.running {
				s.mu.Unlock()
				return
			}
			s.elapsed = s.clock.Now().Sub(s.startRef)
			if s.onTick != nil {
				s.onTick(s.elapsed.Milliseconds())
			}
			s.mu.Unlock()
		}
	}
}

// Pause 暂停计时，已计时长保持最后一次计算的值
// 返回后不会再有回调触发
func (s *Stopwatch) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pauseLocked()
}

func (s *Stopwatch) pauseLocked() {
	if !s.running {
		return
	}
	s.running = false
	close(s.stopChan)
}

// Reset 复位：暂停并清零，清空计次记录，最后发布一次归零回调
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pauseLocked()
	s.elapsed = 0
	s.laps = nil
	if s.onTick != nil {
		s.onTick(0)
	}
}

// Lap 记录一次计次，返回生成的记录
// 仅在计时中有效，暂停状态下返回 false
func (s *Stopwatch) Lap() (models.Lap, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return models.Lap{}, false
	}
	ms := s.elapsed.Milliseconds()
	lap := models.Lap{
		Index:     len(s.laps) + 1,
		Display:   FormatElapsed(ms),
		ElapsedMs: ms,
	}
	s.laps = append(s.laps, lap)
	return lap, true
}

// CurrentTime 返回最近一次计算出的毫秒数，无副作用
func (s *Stopwatch) CurrentTime() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed.Milliseconds()
}

// Running 返回是否正在计时
func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Laps 返回按时间顺序的计次记录副本
func (s *Stopwatch) Laps() []models.Lap {
	s.mu.Lock()
	defer s.mu.Unlock()
	laps := make([]models.Lap, len(s.laps))
	copy(laps, s.laps)
	return laps
}
