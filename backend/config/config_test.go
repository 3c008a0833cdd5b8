package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("期望默认端口 8000，实际=%d", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("期望默认驱动 sqlite，实际=%s", cfg.Database.Driver)
	}
	if !cfg.Feature.EnforceReferences {
		t.Error("期望默认开启外键校验")
	}
	if cfg.Report.DefaultLimit != 10 || cfg.Report.MaxLimit != 100 {
		t.Errorf("期望报表限制 10/100，实际=%d/%d", cfg.Report.DefaultLimit, cfg.Report.MaxLimit)
	}
	if cfg.RateLimit.Window != time.Minute {
		t.Errorf("期望限流窗口 1m，实际=%s", cfg.RateLimit.Window)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("期望配置文件覆盖 log.level=debug，实际=%s", cfg.Log.Level)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CAMPUS_SERVER_PORT", "9090")
	t.Setenv("CAMPUS_FEATURE_ENFORCE_REFERENCES", "false")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 8000\n"), 0o600); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("期望环境变量覆盖端口为 9090，实际=%d", cfg.Server.Port)
	}
	if cfg.Feature.EnforceReferences {
		t.Error("期望环境变量关闭外键校验")
	}
}

func validConfig() *Config {
	return &Config{
		Server:    ServerConfig{Port: 8000},
		Database:  DatabaseConfig{Driver: DriverSQLite, SQLitePath: "test.db"},
		Report:    ReportConfig{DefaultLimit: 10, MaxLimit: 100},
		RateLimit: RateLimitConfig{Enabled: true, Limit: 10, Window: time.Second},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"合法配置", func(c *Config) {}, false},
		{"端口越界", func(c *Config) { c.Server.Port = 70000 }, true},
		{"未知驱动", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"sqlite 路径为空", func(c *Config) { c.Database.SQLitePath = "" }, true},
		{"postgres 驱动", func(c *Config) { c.Database.Driver = DriverPostgres }, false},
		{"默认条数超过上限", func(c *Config) { c.Report.DefaultLimit = 101 }, true},
		{"上限为 0", func(c *Config) { c.Report.MaxLimit = 0 }, true},
		{"限流窗口为 0", func(c *Config) { c.RateLimit.Window = 0 }, true},
		{"关闭限流时忽略窗口", func(c *Config) { c.RateLimit.Enabled = false; c.RateLimit.Window = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestSQLiteDSN(t *testing.T) {
	c := &DatabaseConfig{SQLitePath: "campus.db"}
	if got := c.SQLiteDSN(true); got != "campus.db?_foreign_keys=on" {
		t.Errorf("期望开启外键参数，实际=%s", got)
	}
	if got := c.SQLiteDSN(false); got != "campus.db" {
		t.Errorf("期望不带参数，实际=%s", got)
	}
}
