package config

// Environment Variable Keys
const (
	// EnvAppEnv 定義應用程式執行環境 (local, dev, prod)
	EnvAppEnv = "APP_ENV"

	// EnvHost 定義 HTTP 服務綁定的 Host
	EnvHost = "HOST"

	// EnvPort 定義 HTTP/Websocket 服務 Port
	EnvPort = "PORT"

	// EnvGrpcPort 定義 gRPC Health 服務 Port
	EnvGrpcPort = "GRPC_PORT"

	// EnvUsersServerURL 定義 Users 服務 Base URL
	EnvUsersServerURL = "USERS_SERVER_URL"

	// EnvRoomsServerURL 定義 Rooms 服務 Base URL
	EnvRoomsServerURL = "ROOMS_SERVER_URL"

	// EnvJWTSecret 定義驗證 accesstoken 的 HMAC 密鑰
	EnvJWTSecret = "JWT_SECRET"

	// EnvRedisAddr 定義 Redis 服務地址 (host:port)
	EnvRedisAddr = "REDIS_ADDR"

	// EnvRedisPassword 定義 Redis 密碼
	EnvRedisPassword = "REDIS_PASSWORD"

	// EnvMySQLHost 定義 MySQL 主機
	EnvMySQLHost = "MYSQL_HOST"

	// EnvMySQLUser 定義 MySQL 使用者
	EnvMySQLUser = "MYSQL_USER"

	// EnvMySQLDB 定義 MySQL 資料庫名稱
	EnvMySQLDB = "MYSQL_DB"

	// EnvMySQLPort 定義 MySQL Port
	EnvMySQLPort = "MYSQL_PORT"

	// EnvMySQLPassword 定義 MySQL 密碼
	EnvMySQLPassword = "MYSQL_PASSWORD"
)
