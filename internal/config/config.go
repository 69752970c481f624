package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config 總配置結構
type Config struct {
	App      AppConfig      `yaml:"app"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Auth     AuthConfig     `yaml:"auth"`
	Redis    RedisConfig    `yaml:"redis"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	WSS      WSSConfig      `yaml:"wss"`
}

type AppConfig struct {
	Name     string `yaml:"name"`
	Env      string `yaml:"env"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	GrpcPort int    `yaml:"grpc_port"` // gRPC Health Port (0 = 不啟動)
}

// UpstreamConfig 下游服務 (users / rooms) 的連線設定
type UpstreamConfig struct {
	UsersURL   string `yaml:"users_url"`
	RoomsURL   string `yaml:"rooms_url"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	// DecodeFailureStatus Token 解碼失敗時回傳的 HTTP Status
	// 舊版前端預期 500，預設為 401
	DecodeFailureStatus int `yaml:"decode_failure_status"`
}

type RedisConfig struct {
	Addr         string `yaml:"addr"`
	Password     string `yaml:"password"`
	DB           int    `yaml:"db"`
	EventChannel string `yaml:"event_channel"`
}

type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type WSSConfig struct {
	Path            string   `yaml:"path"`
	AllowedOrigins  []string `yaml:"allowed_origins"`
	ReadBufferSize  int      `yaml:"read_buffer_size"`
	WriteBufferSize int      `yaml:"write_buffer_size"`
	WriteWaitSec    int      `yaml:"write_wait_sec"`
	PongWaitSec     int      `yaml:"pong_wait_sec"`
	MaxMessageSize  int64    `yaml:"max_message_size"`
}

// Enabled Redis 是否有設定 (未設定時 Lifecycle Event 不會發布)
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// Enabled MySQL 是否有設定 (未設定時不寫 Audit)
func (c MySQLConfig) Enabled() bool {
	return c.Host != ""
}

// DSN 組出 gorm mysql driver 使用的連線字串
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// Load 讀取設定檔
// 優先讀取 config/config.yaml，然後使用環境變數覆蓋
func Load(configPath ...string) (*Config, error) {
	dir := "./config"
	if len(configPath) > 0 {
		dir = configPath[0]
	}
	fullPath := filepath.Join(dir, "config.yaml")

	var cfg Config

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file at %s: %w", fullPath, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml at %s: %w", fullPath, err)
	}

	overrideWithEnv(&cfg)
	applyDefaults(&cfg)

	if cfg.Upstream.UsersURL == "" || cfg.Upstream.RoomsURL == "" {
		return nil, fmt.Errorf("upstream users_url and rooms_url are required")
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Port == 0 {
		cfg.App.Port = 8080
	}
	if cfg.Upstream.TimeoutSec == 0 {
		cfg.Upstream.TimeoutSec = 10
	}
	if cfg.Auth.DecodeFailureStatus == 0 {
		cfg.Auth.DecodeFailureStatus = 401
	}
	if cfg.Redis.EventChannel == "" {
		cfg.Redis.EventChannel = "gateway:lifecycle"
	}
	if cfg.MySQL.Port == 0 {
		cfg.MySQL.Port = 3306
	}
	if cfg.WSS.Path == "" {
		cfg.WSS.Path = "/events"
	}
}

func overrideWithEnv(cfg *Config) {
	// App
	if env := os.Getenv(EnvAppEnv); env != "" {
		cfg.App.Env = env
	}
	if val := os.Getenv(EnvHost); val != "" {
		cfg.App.Host = val
	}
	if portVal := os.Getenv(EnvPort); portVal != "" {
		if p, err := strconv.Atoi(portVal); err == nil {
			cfg.App.Port = p
		}
	}
	if grpcPortVal := os.Getenv(EnvGrpcPort); grpcPortVal != "" {
		if p, err := strconv.Atoi(grpcPortVal); err == nil {
			cfg.App.GrpcPort = p
		}
	}

	// Upstream
	if val := os.Getenv(EnvUsersServerURL); val != "" {
		cfg.Upstream.UsersURL = val
	}
	if val := os.Getenv(EnvRoomsServerURL); val != "" {
		cfg.Upstream.RoomsURL = val
	}

	// Auth
	if val := os.Getenv(EnvJWTSecret); val != "" {
		cfg.Auth.JWTSecret = val
	}

	// MySQL
	if val := os.Getenv(EnvMySQLHost); val != "" {
		cfg.MySQL.Host = val
	}
	if val := os.Getenv(EnvMySQLPassword); val != "" {
		cfg.MySQL.Password = val
	}
	if val := os.Getenv(EnvMySQLUser); val != "" {
		cfg.MySQL.User = val
	}
	if val := os.Getenv(EnvMySQLDB); val != "" {
		cfg.MySQL.DBName = val
	}
	if val := os.Getenv(EnvMySQLPort); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.MySQL.Port = p
		}
	}

	// Redis
	if val := os.Getenv(EnvRedisAddr); val != "" {
		cfg.Redis.Addr = val
	}
	if val := os.Getenv(EnvRedisPassword); val != "" {
		cfg.Redis.Password = val
	}
}
