package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	JwtSecret string `yaml:"jwt_secret" json:"jwt_secret"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system" json:"system"`
	Web      WebConfig `yaml:"web" json:"web"`
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
}

func (c *AppConfig) GetLogDir() string {
	return c.System.Workdir + "/logs"
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "AffiliateStore",
		Location: "Asia/Kolkata",
		Workdir:  "/var/affistore",
		Debug:    true,
	},
	Web: WebConfig{
		Host:      "0.0.0.0",
		Port:      5000,
		JwtSecret: "9b6d1a0a7c9b6d1a0a7c",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "affistore",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/affistore/affistore.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvInt64Value(name string, f func(v int64)) {
	var evalue = os.Getenv(name)
	if evalue == "" {
		return
	}
	var p int64
	if _, err := fmt.Sscanf(evalue, "%d", &p); err == nil {
		f(p)
	}
}

// LoadConfig reads the YAML config file when present and applies
// environment overrides on top of the defaults.
func LoadConfig(cfile string) *AppConfig {
	if cfile == "" {
		cfile = "affistore.yml"
	}
	cfg := DefaultAppConfig
	if _, err := os.Stat(cfile); err == nil {
		data, err := os.ReadFile(cfile)
		if err != nil {
			panic(err)
		}
		cfg = new(AppConfig)
		if err := yaml.Unmarshal(data, cfg); err != nil {
			panic(err)
		}
	}

	setEnvValue("AFFISTORE_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("AFFISTORE_SYSTEM_DEBUG", func(v string) { cfg.System.Debug = v == "true" })
	setEnvValue("AFFISTORE_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("AFFISTORE_WEB_SECRET", func(v string) { cfg.Web.JwtSecret = v })
	setEnvInt64Value("AFFISTORE_WEB_PORT", func(v int64) { cfg.Web.Port = int(v) })
	setEnvValue("AFFISTORE_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvInt64Value("AFFISTORE_DB_PORT", func(v int64) { cfg.Database.Port = int(v) })
	setEnvValue("AFFISTORE_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("AFFISTORE_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("AFFISTORE_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvValue("AFFISTORE_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })

	return cfg
}
