package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"Stopwatch/internal/storage"
	"Stopwatch/internal/timer"
)

type StatsView struct {
	container    *fyne.Container
	db           *storage.Database
	dateRange    *widget.Select
	sessionStats *widget.Label
	recentList   *widget.Label
	refreshBtn   *widget.Button
}

func NewStatsView(db *storage.Database) *StatsView {
	sv := &StatsView{
		db:           db,
		sessionStats: widget.NewLabel(""),
		recentList:   widget.NewLabel(""),
	}
	sv.setup()
	return sv
}

func (sv *StatsView) setup() {
	// 创建标题
	title := widget.NewLabelWithStyle("Statistics", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	// 创建刷新按钮
	sv.refreshBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		if selected := sv.dateRange.Selected; selected != "" {
			sv.updateStats(selected)
		}
	})

	// 创建日期范围选择器
	sv.dateRange = widget.NewSelect(
		[]string{"Today", "This Week", "This Month", "All Time"},
		func(selected string) {
			sv.updateStats(selected)
		},
	)

	// 创建顶部工具栏
	toolbar := container.NewHBox(
		widget.NewLabel("Time Range:"),
		sv.dateRange,
		sv.refreshBtn,
	)

	// 创建统计信息容器
	statsContainer := container.NewHBox(
		container.NewVBox(
			widget.NewLabelWithStyle("Session Statistics", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			sv.sessionStats,
		),
		container.NewVBox(
			widget.NewLabelWithStyle("Recent Sessions", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			sv.recentList,
		),
	)

	// 组织整体布局
	sv.container = container.NewVBox(
		title,
		toolbar,
		statsContainer,
	)

	// 设置默认选中值并更新统计
	sv.dateRange.SetSelected("Today")
}

func (sv *StatsView) updateStats(timeRange string) {
	var startDate, endDate time.Time
	now := time.Now()
	endDate = now

	// 根据选择的时间范围设置开始时间
	switch timeRange {
	case "Today":
		startDate = now.Truncate(24 * time.Hour)
	case "This Week":
		startDate = now.AddDate(0, 0, -int(now.Weekday()))
		startDate = startDate.Truncate(24 * time.Hour)
	case "This Month":
		startDate = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case "All Time":
		startDate = time.Time{} // 零值表示不限制开始时间
	}

	// 获取会话统计
	stats, err := sv.db.GetSessionStats(startDate, endDate)
	if err != nil {
		log.Error("获取会话统计失败", "err", err)
		return
	}

	sv.sessionStats.SetText(fmt.Sprintf(
		"Total Sessions: %d\n"+
			"Total Time: %s\n"+
			"Longest: %s\n"+
			"Average: %s\n"+
			"Total Laps: %d",
		stats.TotalSessions,
		timer.FormatElapsed(stats.TotalDuration),
		timer.FormatElapsed(stats.LongestDuration),
		timer.FormatElapsed(int64(stats.AverageDuration)),
		stats.TotalLaps,
	))

	// 最近会话列表
	sessions, err := sv.db.GetRecentSessions(5)
	if err != nil {
		log.Error("获取最近会话失败", "err", err)
		return
	}

	text := ""
	for _, session := range sessions {
		text += fmt.Sprintf("%s  %s (%d laps)\n",
			session.StartedAt.Format("01-02 15:04"),
			timer.FormatElapsed(session.DurationMs),
			session.LapCount,
		)
	}
	if text == "" {
		text = "No sessions yet"
	}
	sv.recentList.SetText(text)
}

func (sv *StatsView) Container() *fyne.Container {
	return sv.container
}
