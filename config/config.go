package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Inbox workload specifics
	Ingest    IngestConfig
	Scheduler SchedulerConfig
	Senders   SenderConfig
	Projects  ProjectConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// IngestConfig guards the inbound message webhook.
type IngestConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// SchedulerConfig carries every tunable of the extraction and scheduling
// pipeline. All values have working defaults; the pattern tables themselves
// are compiled code, not configuration.
type SchedulerConfig struct {
	Timezone           string
	DailyCapacityHours float64

	// Effort hours charged per priority tier.
	EffortHours map[string]float64

	// Recommendation thresholds.
	MaxCriticalPerDay    int     // More critical tasks due one day than this triggers a warning
	SenderDominanceShare float64 // One sender owning more than this share of critical tasks triggers a warning

	// Deadline resolution knobs.
	ContextRadius       int          // Chars searched around a clause for deadline/urgency phrases
	EndOfBusinessHour   int          // Default deadline hour when the phrase has no explicit time
	DefaultDeadlineDays int          // Fallback when nothing resolves
	WeekDeadlineWeekday time.Weekday // "this week" anchor, conventionally Friday
	NextWeekWeekday     time.Weekday // "next week" anchor, conventionally Wednesday

	// Priority fallback.
	SenderHighThreshold float64 // Sender weight at or above this classifies high
}

// SenderConfig is the read-only sender importance table.
type SenderConfig struct {
	Weights map[string]float64
}

// ProjectConfig maps project tags to the keywords that select them.
type ProjectConfig struct {
	Keywords map[string][]string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Ingest webhook
	cfg.Ingest.Enabled = viper.GetBool("ingest.enabled")
	cfg.Ingest.Secret = viper.GetString("ingest.secret")
	if secret := viper.GetString("ingest_secret"); secret != "" {
		cfg.Ingest.Secret = secret
	}
	cfg.Ingest.RateLimitPerMin = viper.GetInt("ingest.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("ingest.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Ingest.AllowedIPs = ips

	// Scheduler
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	cfg.Scheduler.DailyCapacityHours = viper.GetFloat64("scheduler.daily_capacity_hours")
	cfg.Scheduler.EffortHours = effortHoursFromViper()
	cfg.Scheduler.MaxCriticalPerDay = viper.GetInt("scheduler.max_critical_per_day")
	cfg.Scheduler.SenderDominanceShare = viper.GetFloat64("scheduler.sender_dominance_share")
	cfg.Scheduler.ContextRadius = viper.GetInt("scheduler.context_radius")
	cfg.Scheduler.EndOfBusinessHour = viper.GetInt("scheduler.end_of_business_hour")
	cfg.Scheduler.DefaultDeadlineDays = viper.GetInt("scheduler.default_deadline_days")
	cfg.Scheduler.SenderHighThreshold = viper.GetFloat64("scheduler.sender_high_threshold")

	var err error
	cfg.Scheduler.WeekDeadlineWeekday, err = parseWeekday(viper.GetString("scheduler.week_deadline_weekday"))
	if err != nil {
		return nil, fmt.Errorf("scheduler.week_deadline_weekday: %w", err)
	}
	cfg.Scheduler.NextWeekWeekday, err = parseWeekday(viper.GetString("scheduler.next_week_weekday"))
	if err != nil {
		return nil, fmt.Errorf("scheduler.next_week_weekday: %w", err)
	}

	// Sender weights and project keywords
	cfg.Senders.Weights = map[string]float64{}
	for sender, weight := range viper.GetStringMap("senders.weights") {
		switch v := weight.(type) {
		case float64:
			cfg.Senders.Weights[sender] = v
		case int:
			cfg.Senders.Weights[sender] = float64(v)
		}
	}
	cfg.Projects.Keywords = viper.GetStringMapStringSlice("projects.keywords")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("ingest.enabled", true)
	viper.SetDefault("ingest.rate_limit_per_min", 60)

	viper.SetDefault("scheduler.timezone", "UTC")
	viper.SetDefault("scheduler.daily_capacity_hours", 8.0)
	viper.SetDefault("scheduler.effort_hours.critical", 2.0)
	viper.SetDefault("scheduler.effort_hours.high", 1.5)
	viper.SetDefault("scheduler.effort_hours.medium", 1.0)
	viper.SetDefault("scheduler.effort_hours.low", 0.5)
	viper.SetDefault("scheduler.effort_hours.optional", 0.25)
	viper.SetDefault("scheduler.max_critical_per_day", 2)
	viper.SetDefault("scheduler.sender_dominance_share", 0.5)
	viper.SetDefault("scheduler.context_radius", 200)
	viper.SetDefault("scheduler.end_of_business_hour", 17)
	viper.SetDefault("scheduler.default_deadline_days", 7)
	viper.SetDefault("scheduler.week_deadline_weekday", "friday")
	viper.SetDefault("scheduler.next_week_weekday", "wednesday")
	viper.SetDefault("scheduler.sender_high_threshold", 0.8)
}

func effortHoursFromViper() map[string]float64 {
	out := map[string]float64{}
	for tier, hours := range viper.GetStringMap("scheduler.effort_hours") {
		switch v := hours.(type) {
		case float64:
			out[tier] = v
		case int:
			out[tier] = float64(v)
		}
	}
	return out
}

func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}
