package ui

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"Stopwatch/internal/config"
	"Stopwatch/internal/models"
	"Stopwatch/internal/storage"
	"Stopwatch/internal/timer"
)

// 定义颜色常量
var (
	timeColor  = color.NRGBA{R: 25, G: 25, B: 25, A: 255}  // 时间文本
	countColor = color.NRGBA{R: 80, G: 80, B: 80, A: 255}  // 较浅的计数文本
)

// StopwatchView 秒表主界面
type StopwatchView struct {
	container *fyne.Container
	engine    *timer.Stopwatch
	db        *storage.Database
	cfg       *config.Manager

	// UI 组件
	timeLabel   *canvas.Text
	ring        *progressRing
	startButton *widget.Button
	lapButton   *widget.Button // 计次/复位双用按钮
	countLabel  *canvas.Text
	lapList     *widget.List

	laps      []models.Lap // 按时间顺序保存，列表倒序展示
	startedAt time.Time
}

// NewStopwatchView 创建秒表界面并接管引擎的回调
func NewStopwatchView(engine *timer.Stopwatch, db *storage.Database, cfg *config.Manager) *StopwatchView {
	sv := &StopwatchView{
		engine: engine,
		db:     db,
		cfg:    cfg,
	}
	setVolume(cfg.GetConfig().Timer.Volume)

	// 初始化 UI 组件
	sv.timeLabel = canvas.NewText(timer.FormatElapsed(0), timeColor)
	sv.timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	sv.timeLabel.TextSize = 40
	sv.timeLabel.Alignment = fyne.TextAlignCenter

	sv.countLabel = canvas.NewText("计次: 0", countColor)
	sv.countLabel.TextSize = 16
	sv.countLabel.Alignment = fyne.TextAlignCenter

	sv.ring = newProgressRing()

	sv.lapList = widget.NewList(
		func() int { return len(sv.laps) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			// 最近一次计次显示在最上面
			lap := sv.laps[len(sv.laps)-1-i]
			o.(*widget.Label).SetText(fmt.Sprintf("#%02d  %s", lap.Index, lap.Display))
		},
	)

	// 创建主要控制按钮并设置样式
	sv.startButton = widget.NewButtonWithIcon("开始", theme.MediaPlayIcon(), sv.toggleTimer)
	sv.startButton.Importance = widget.HighImportance

	sv.lapButton = widget.NewButtonWithIcon("计次", theme.ContentAddIcon(), sv.lapOrReset)
	sv.lapButton.Importance = widget.MediumImportance
	sv.lapButton.Disable()

	// 时间标签叠在进度环中央
	display := container.NewMax(
		sv.ring.Object(),
		container.NewCenter(sv.timeLabel),
	)

	controls := container.NewGridWithColumns(2,
		sv.lapButton,
		sv.startButton,
	)

	top := container.NewVBox(
		container.NewPadded(display),
		sv.countLabel,
		container.NewPadded(controls),
	)

	sv.container = container.NewBorder(top, nil, nil, nil, sv.lapList)

	// 设置回调
	sv.engine.SetOnTick(func(elapsedMs int64) {
		sv.timeLabel.Text = timer.FormatElapsed(elapsedMs)
		sv.timeLabel.Refresh()
		sv.ring.SetProgress(float64(elapsedMs%60000) / 60000)
	})

	return sv
}

func (sv *StopwatchView) toggleTimer() {
	if sv.engine.Running() {
		sv.engine.Pause()
		sv.startButton.SetIcon(theme.MediaPlayIcon())
		sv.startButton.SetText("开始")
	} else {
		if sv.engine.CurrentTime() == 0 {
			sv.startedAt = time.Now()
		}
		sv.engine.Start()
		sv.startButton.SetIcon(theme.MediaPauseIcon())
		sv.startButton.SetText("暂停")
	}
	sv.updateLapButton()
}

// 计次/复位按钮：计时中是计次，暂停且有读数时是复位，其余情况不可用
func (sv *StopwatchView) updateLapButton() {
	if sv.engine.Running() {
		sv.lapButton.SetText("计次")
		sv.lapButton.SetIcon(theme.ContentAddIcon())
		sv.lapButton.Enable()
	} else if sv.engine.CurrentTime() > 0 {
		sv.lapButton.SetText("复位")
		sv.lapButton.SetIcon(theme.MediaReplayIcon())
		sv.lapButton.Enable()
	} else {
		sv.lapButton.SetText("计次")
		sv.lapButton.SetIcon(theme.ContentAddIcon())
		sv.lapButton.Disable()
	}
}

func (sv *StopwatchView) lapOrReset() {
	if sv.engine.Running() {
		sv.recordLap()
	} else if sv.engine.CurrentTime() > 0 {
		sv.reset()
	}
}

func (sv *StopwatchView) recordLap() {
	lap, ok := sv.engine.Lap()
	if !ok {
		return
	}
	sv.laps = append(sv.laps, lap)
	sv.countLabel.Text = fmt.Sprintf("计次: %d", len(sv.laps))
	sv.countLabel.Refresh()
	sv.lapList.Refresh()

	if sv.cfg.GetConfig().Timer.LapSound {
		go playSound(SoundLap)
	}
}

func (sv *StopwatchView) reset() {
	sv.saveSession()

	sv.engine.Reset() // 归零回调会刷新时间标签和进度环
	sv.laps = nil
	sv.countLabel.Text = "计次: 0"
	sv.countLabel.Refresh()
	sv.lapList.Refresh()
	sv.updateLapButton()

	if sv.cfg.GetConfig().Timer.LapSound {
		go playSound(SoundReset)
	}
}

// 复位前把本次会话写入数据库
func (sv *StopwatchView) saveSession() {
	duration := sv.engine.CurrentTime()
	if duration == 0 || sv.db == nil {
		return
	}

	session := &models.Session{
		StartedAt:  sv.startedAt,
		DurationMs: duration,
		LapCount:   len(sv.laps),
	}
	if err := sv.db.SaveSession(session); err != nil {
		log.Error("保存会话记录失败", "err", err)
	}
}

func (sv *StopwatchView) Container() *fyne.Container {
	return sv.container
}
