package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8080"
	defaultMigrations = "migrations"
	defaultSecret     = "SecRetKey"
	defaultEnv        = EnvLocal
	defaultSMTPPort   = 587
	defaultFolder     = "securenest"
)

type Config struct {
	Env    string
	Server server
	DB     db
	Auth   auth
	Cipher cipher
	Minio  minio
	SMTP   smtp
}

type server struct {
	RunAddress string
}

type db struct {
	DatabaseURI string
	Migrations  string
}

type auth struct {
	// Secret signs session tokens.
	Secret string
}

type cipher struct {
	// KeyHex is the 32-byte AES key, hex-encoded. When empty, the key is
	// derived from Passphrase.
	KeyHex     string
	Passphrase string
}

type minio struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	// Folder prefixes every uploaded object key for this deployment.
	Folder string
	UseSSL bool
}

type smtp struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// MustLoad reads the .env file (when present) and the environment and
// returns the process-wide configuration. Constructed once at startup and
// passed by reference into component constructors.
func MustLoad(envPath string) *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	cfg := &Config{
		Env: viper.GetString("app_env"),
		Server: server{
			RunAddress: viper.GetString("run_address"),
		},
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Auth: auth{
			Secret: viper.GetString("jwt_secret"),
		},
		Cipher: cipher{
			KeyHex:     viper.GetString("cipher_key"),
			Passphrase: viper.GetString("cipher_passphrase"),
		},
		Minio: minio{
			Endpoint:  viper.GetString("minio_endpoint"),
			AccessKey: viper.GetString("minio_access_key"),
			SecretKey: viper.GetString("minio_secret_key"),
			Bucket:    viper.GetString("minio_bucket"),
			Folder:    viper.GetString("minio_folder"),
			UseSSL:    viper.GetBool("minio_use_ssl"),
		},
		SMTP: smtp{
			Host:     viper.GetString("smtp_host"),
			Port:     viper.GetInt("smtp_port"),
			User:     viper.GetString("smtp_user"),
			Password: viper.GetString("smtp_password"),
			From:     viper.GetString("smtp_from"),
		},
	}

	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.Server.RunAddress == "" {
		cfg.Server.RunAddress = defaultRunAddress
	}
	if cfg.DB.Migrations == "" {
		cfg.DB.Migrations = defaultMigrations
	}
	if cfg.Auth.Secret == "" {
		cfg.Auth.Secret = defaultSecret
	}
	if cfg.Minio.Folder == "" {
		cfg.Minio.Folder = defaultFolder
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = defaultSMTPPort
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}
}
