package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Timer    TimerConfig    `yaml:"timer"`
	Theme    ThemeConfig    `yaml:"theme"`
	Database DatabaseConfig `yaml:"database"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

type TimerConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	LapSound     bool          `yaml:"lap_sound"`
	Volume       float64       `yaml:"volume"`
}

type ThemeConfig struct {
	DarkMode bool `yaml:"dark_mode"`
	FontSize int  `yaml:"font_size"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// 默认配置
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:         "秒表",
			Version:      "1.0.0",
			WindowWidth:  400,
			WindowHeight: 600,
		},
		Timer: TimerConfig{
			TickInterval: 16 * time.Millisecond,
			LapSound:     true,
			Volume:       1.0,
		},
		Theme: ThemeConfig{
			DarkMode: false,
			FontSize: 14,
		},
		Database: DatabaseConfig{
			Path: "stopwatch.db",
		},
	}
}

type Manager struct {
	config     *Config
	configPath string
}

func NewManager() (*Manager, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(configDir, "config.yaml")
	manager := &Manager{
		configPath: configPath,
	}

	// 加载或创建配置
	if err := manager.loadConfig(); err != nil {
		manager.config = DefaultConfig()
		if err := manager.SaveConfig(); err != nil {
			return nil, err
		}
	}

	return manager, nil
}

func (m *Manager) loadConfig() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) SaveConfig() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}

	// 确保配置目录存在
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(m.configPath, data, 0644)
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

// 获取配置文件目录
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	// 在用户目录下创建应用配置目录
	configDir := filepath.Join(homeDir, ".stopwatch")
	return configDir, nil
}

// 更新配置的便捷方法
func (m *Manager) UpdateTimerConfig(config TimerConfig) error {
	m.config.Timer = config
	return m.SaveConfig()
}

func (m *Manager) UpdateThemeConfig(config ThemeConfig) error {
	m.config.Theme = config
	return m.SaveConfig()
}
