package main

import (
	"Stopwatch/internal/config"
	"Stopwatch/internal/ui"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/charmbracelet/log"
)

func main() {
	// 初始化配置管理器
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatal("加载配置失败", "err", err)
	}

	// 创建应用
	myApp := app.New()

	// 应用主题设置
	cfg := configManager.GetConfig()
	if cfg.Theme.DarkMode {
		myApp.Settings().SetTheme(theme.DarkTheme())
	}

	// 创建主窗口
	mainWindow := ui.NewMainWindow(myApp, configManager)

	// 设置窗口大小
	mainWindow.SetSize(float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight))

	mainWindow.Show()
}
