package timer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInterval = 5 * time.Millisecond

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// tickRecorder 线程安全地记录回调
type tickRecorder struct {
	mu    sync.Mutex
	ticks []int64
}

func (r *tickRecorder) record(ms int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks = append(r.ticks, ms)
}

func (r *tickRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ticks)
}

func (r *tickRecorder) last() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ticks) == 0 {
		return -1
	}
	return r.ticks[len(r.ticks)-1]
}

func TestElapsedFollowsClock(t *testing.T) {
	clock := newFakeClock()
	sw := NewWithClock(testInterval, clock)
	defer sw.Pause()

	sw.Start()
	clock.Advance(1234 * time.Millisecond)

	require.Eventually(t, func() bool {
		return sw.CurrentTime() == 1234
	}, time.Second, testInterval)
}

func TestPauseFreezesElapsed(t *testing.T) {
	clock := newFakeClock()
	sw := NewWithClock(testInterval, clock)
	rec := &tickRecorder{}
	sw.SetOnTick(rec.record)

	sw.Start()
	clock.Advance(500 * time.Millisecond)
	require.Eventually(t, func() bool {
		return sw.CurrentTime() == 500
	}, time.Second, testInterval)

	sw.Pause()
	frozen := sw.CurrentTime()
	seen := rec.count()

	// 暂停后时钟继续走，读数和回调都不再变化
	clock.Advance(700 * time.Millisecond)
	time.Sleep(5 * testInterval)
	assert.Equal(t, frozen, sw.CurrentTime())
	assert.Equal(t, seen, rec.count())
}

func TestResumeContinuesFromPausedValue(t *testing.T) {
	clock := newFakeClock()
	sw := NewWithClock(testInterval, clock)
	defer sw.Pause()

	sw.Start()
	clock.Advance(500 * time.Millisecond)
	require.Eventually(t, func() bool {
		return sw.CurrentTime() == 500
	}, time.Second, testInterval)
	sw.Pause()

	// 暂停期间流逝的时间不计入
	clock.Advance(10 * time.Second)
	sw.Start()
	clock.Advance(250 * time.Millisecond)
	require.Eventually(t, func() bool {
		return sw.CurrentTime() == 750
	}, time.Second, testInterval)
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	clock := newFakeClock()
	sw := NewWithClock(testInterval, clock)

	sw.Start()
	clock.Advance(300 * time.Millisecond)
	require.Eventually(t, func() bool {
		return sw.CurrentTime() == 300
	}, time.Second, testInterval)

	// 再次 Start 不改变起点，也不产生第二个循环
	sw.Start()
	assert.True(t, sw.Running())
	clock.Advance(200 * time.Millisecond)
	require.Eventually(t, func() bool {
		return sw.CurrentTime() == 500
	}, time.Second, testInterval)

	rec := &tickRecorder{}
	sw.SetOnTick(rec.record)
	sw.Pause()
	seen := rec.count()
	time.Sleep(5 * testInterval)
	assert.Equal(t, seen, rec.count())
}

func TestLapRecordsFormattedElapsed(t *testing.T) {
	clock := newFakeClock()
	sw := NewWithClock(testInterval, clock)
	defer sw.Pause()

	sw.Start()
	moments := []int64{100, 250, 400}
	var advanced int64
	for _, m := range moments {
		clock.Advance(time.Duration(m-advanced) * time.Millisecond)
		advanced = m
		require.Eventually(t, func() bool {
			return sw.CurrentTime() == m
		}, time.Second, testInterval)
		_, ok := sw.Lap()
		require.True(t, ok)
	}

	laps := sw.Laps()
	require.Len(t, laps, 3)
	for i, lap := range laps {
		assert.Equal(t, i+1, lap.Index)
		assert.Equal(t, moments[i], lap.ElapsedMs)
		assert.Equal(t, FormatElapsed(moments[i]), lap.Display)
	}
}

func TestLapWhilePausedRejected(t *testing.T) {
	sw := New(testInterval)
	_, ok := sw.Lap()
	assert.False(t, ok)
	assert.Empty(t, sw.Laps())
}

// 完整场景：开始 → 计时超过 1 秒 → 计次 → 暂停 → 复位
func TestStartLapPauseResetScenario(t *testing.T) {
	clock := newFakeClock()
	sw := NewWithClock(testInterval, clock)
	rec := &tickRecorder{}
	sw.SetOnTick(rec.record)

	sw.Start()
	clock.Advance(1200 * time.Millisecond)
	require.Eventually(t, func() bool {
		return sw.CurrentTime() == 1200
	}, time.Second, testInterval)

	lap, ok := sw.Lap()
	require.True(t, ok)
	assert.Equal(t, "00:01.20", lap.Display)
	require.Len(t, sw.Laps(), 1)

	sw.Pause()
	sw.Reset()

	assert.EqualValues(t, 0, sw.CurrentTime())
	assert.Empty(t, sw.Laps())
	assert.False(t, sw.Running())
	// 复位会发布最后一次归零回调
	assert.EqualValues(t, 0, rec.last())
}

func TestResetWhileRunningStopsLoop(t *testing.T) {
	clock := newFakeClock()
	sw := NewWithClock(testInterval, clock)
	rec := &tickRecorder{}
	sw.SetOnTick(rec.record)

	sw.Start()
	clock.Advance(800 * time.Millisecond)
	require.Eventually(t, func() bool {
		return sw.CurrentTime() == 800
	}, time.Second, testInterval)

	sw.Reset()
	assert.False(t, sw.Running())
	assert.EqualValues(t, 0, sw.CurrentTime())

	seen := rec.count()
	clock.Advance(time.Second)
	time.Sleep(5 * testInterval)
	assert.Equal(t, seen, rec.count())
}

func TestElapsedNonDecreasingRealClock(t *testing.T) {
	sw := New(testInterval)
	rec := &tickRecorder{}
	sw.SetOnTick(rec.record)

	sw.Start()
	time.Sleep(100 * time.Millisecond)
	sw.Pause()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.NotEmpty(t, rec.ticks)
	for i := 1; i < len(rec.ticks); i++ {
		assert.GreaterOrEqual(t, rec.ticks[i], rec.ticks[i-1])
	}
	assert.Greater(t, rec.ticks[len(rec.ticks)-1], int64(0))
}

func TestNonPositiveIntervalUsesDefault(t *testing.T) {
	sw := New(0)
	assert.Equal(t, DefaultTickInterval, sw.interval)
	sw = New(-time.Second)
	assert.Equal(t, DefaultTickInterval, sw.interval)
}
