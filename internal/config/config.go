package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Admin    AdminConfig    `toml:"admin"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP-сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AdminConfig настройки админского доступа
// Токен из окружения (ADMIN_TOKEN) имеет приоритет над файлом
type AdminConfig struct {
	Token string `toml:"token"`
}

// ScheduleConfig политика расписания салона
// Единственное место, где задаются размер слота и границы рабочего дня
type ScheduleConfig struct {
	OpenTime         string `toml:"open_time"`          // "09:00"
	CloseTime        string `toml:"close_time"`         // "21:00", граница окончания процедур
	SlotMinutes      int    `toml:"slot_minutes"`       // 30
	LockTTLSeconds   int    `toml:"lock_ttl_seconds"`   // 30
	LockSweepMinutes int    `toml:"lock_sweep_minutes"` // 5
	RetentionMonths  int    `toml:"retention_months"`   // 3
}

// Load читает конфигурацию из TOML-файла и применяет переменные окружения
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if token := os.Getenv("ADMIN_TOKEN"); token != "" {
		cfg.Admin.Token = token
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Schedule.SlotMinutes <= 0 {
		return fmt.Errorf("config: schedule.slot_minutes must be positive")
	}
	if c.Schedule.LockTTLSeconds <= 0 {
		return fmt.Errorf("config: schedule.lock_ttl_seconds must be positive")
	}
	if c.Schedule.LockSweepMinutes <= 0 {
		return fmt.Errorf("config: schedule.lock_sweep_minutes must be positive")
	}
	if c.Schedule.RetentionMonths <= 0 {
		return fmt.Errorf("config: schedule.retention_months must be positive")
	}
	return nil
}
