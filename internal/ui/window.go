package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/charmbracelet/log"

	"Stopwatch/internal/config"
	"Stopwatch/internal/storage"
	"Stopwatch/internal/timer"
)

type MainWindow struct {
	window        fyne.Window
	stopwatch     *StopwatchView
	db            *storage.Database
	configManager *config.Manager
}

func NewMainWindow(app fyne.App, configManager *config.Manager) *MainWindow {
	cfg := configManager.GetConfig()

	// 数据库打不开时只丢掉统计功能，秒表本身照常工作
	db, err := storage.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Error("打开数据库失败", "err", err)
		db = nil
	}

	engine := timer.New(cfg.Timer.TickInterval)

	w := &MainWindow{
		window:        app.NewWindow(cfg.App.Name),
		configManager: configManager,
		db:            db,
		stopwatch:     NewStopwatchView(engine, db, configManager),
	}
	w.setup()
	return w
}

func (w *MainWindow) SetSize(width, height float32) {
	w.window.Resize(fyne.NewSize(width, height))
}

func (w *MainWindow) setup() {
	tabs := container.NewAppTabs(
		container.NewTabItem("秒表", w.stopwatch.Container()),
	)
	if w.db != nil {
		stats := NewStatsView(w.db)
		tabs.Append(container.NewTabItem("统计", stats.Container()))
	}

	w.window.SetContent(tabs)
	w.window.Resize(fyne.NewSize(400, 600))
}

func (w *MainWindow) Show() {
	w.window.ShowAndRun()
}
