// Package config загрузка конфигурации сервиса из TOML файла.
// Значения вида ${ENV_VAR} разворачиваются из переменных окружения.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	ProfileService ProfileServiceConfig `toml:"profile_service"`
	Booking        BookingConfig        `toml:"booking"`
	Pricing        PricingConfig        `toml:"pricing"`

	// Holidays праздничные дни по годам: "2026" -> ["2026-01-01", ...].
	// Список статический и требует ежегодного обновления.
	Holidays map[string][]string `toml:"holidays"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ProfileServiceConfig настройки клиента профильного сервиса
// (лояльность, баллы, реферальные связи)
type ProfileServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// BookingConfig бизнес-настройки бронирования
type BookingConfig struct {
	CancelNoticeBusinessDays     int     `toml:"cancel_notice_business_days"`
	RescheduleNoticeBusinessDays int     `toml:"reschedule_notice_business_days"`
	Managers                     []int64 `toml:"managers"`
}

// IsManager проверяет, входит ли пользователь в список менеджеров студии
func (b BookingConfig) IsManager(userID int64) bool {
	for _, id := range b.Managers {
		if id == userID {
			return true
		}
	}
	return false
}

// PricingConfig тарифы и ставки скидок
type PricingConfig struct {
	NormalPrice  float64 `toml:"normal_price"`
	WeekendPrice float64 `toml:"weekend_price"`
	HolidayPrice float64 `toml:"holiday_price"`

	LastMinutePercent    float64 `toml:"last_minute_percent"`
	LastMinuteWindowDays int     `toml:"last_minute_window_days"`
	LoyaltySecondPercent float64 `toml:"loyalty_second_percent"`
	LoyaltyThirdPercent  float64 `toml:"loyalty_third_percent"`
	LoyaltyFourthPercent float64 `toml:"loyalty_fourth_percent"`
	ReferralPercent      float64 `toml:"referral_percent"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Поддержка ${ENV_VAR} плейсхолдеров
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if _, err := toml.Decode(expanded, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "ps-booking"
	}
	if c.ProfileService.Timeout == 0 {
		c.ProfileService.Timeout = 5
	}
	if c.Booking.CancelNoticeBusinessDays == 0 {
		c.Booking.CancelNoticeBusinessDays = 5
	}
	if c.Booking.RescheduleNoticeBusinessDays == 0 {
		c.Booking.RescheduleNoticeBusinessDays = 3
	}
	if c.Pricing.NormalPrice == 0 {
		c.Pricing.NormalPrice = 1500
	}
	if c.Pricing.WeekendPrice == 0 {
		c.Pricing.WeekendPrice = 2000
	}
	if c.Pricing.HolidayPrice == 0 {
		c.Pricing.HolidayPrice = 2500
	}
	if c.Pricing.LastMinutePercent == 0 {
		c.Pricing.LastMinutePercent = 15
	}
	if c.Pricing.LastMinuteWindowDays == 0 {
		c.Pricing.LastMinuteWindowDays = 3
	}
	if c.Pricing.LoyaltySecondPercent == 0 {
		c.Pricing.LoyaltySecondPercent = 5
	}
	if c.Pricing.LoyaltyThirdPercent == 0 {
		c.Pricing.LoyaltyThirdPercent = 10
	}
	if c.Pricing.LoyaltyFourthPercent == 0 {
		c.Pricing.LoyaltyFourthPercent = 15
	}
	if c.Pricing.ReferralPercent == 0 {
		c.Pricing.ReferralPercent = 10
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.ProfileService.URL == "" {
		return fmt.Errorf("config: profile_service.url is required")
	}
	if _, err := c.HolidayTable(); err != nil {
		return err
	}
	return nil
}

// HolidayTable парсит секцию holidays в таблицу год -> даты
func (c *Config) HolidayTable() (map[int][]time.Time, error) {
	table := make(map[int][]time.Time, len(c.Holidays))

	for yearStr, dates := range c.Holidays {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("config: invalid holidays year %q", yearStr)
		}

		parsed := make([]time.Time, 0, len(dates))
		for _, ds := range dates {
			d, err := time.Parse("2006-01-02", ds)
			if err != nil {
				return nil, fmt.Errorf("config: invalid holiday date %q for year %d", ds, year)
			}
			parsed = append(parsed, d)
		}
		table[year] = parsed
	}

	return table, nil
}
