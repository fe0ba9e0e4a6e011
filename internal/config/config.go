package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string `yaml:"env" env:"ENV" env-required:"true"`
	UploadsPath string `yaml:"uploads_path" env:"UPLOADS_PATH" env-default:"./uploads"`
	Database    `yaml:"database"`
	HTTPServer  `yaml:"http_server"`
	Auth        AuthConfig   `yaml:"auth"`
	Import      ImportConfig `yaml:"import"`
}

type Database struct {
	// Driver selects the storage backend: mysql, sqlite or memory.
	Driver     string `yaml:"driver" env:"DB_DRIVER" env-default:"mysql"`
	Host       string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port       int    `yaml:"port" env:"DB_PORT" env-default:"3306"`
	UsernameDB string `yaml:"username-db" env:"DB_USERNAME" env-default:"ht5play"`
	Password   string `yaml:"password" env:"DB_PASSWORD"`
	DBName     string `yaml:"dbname" env:"DB_NAME" env-default:"ht5play"`
	Path       string `yaml:"path" env:"DB_PATH" env-default:"ht5play.db"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
	Cors        []string      `yaml:"cors" env-default:"http://localhost:3000"`
}

type AuthConfig struct {
	Secret            string        `yaml:"secret" env:"AUTH_SECRET" env-required:"true"`
	AdminEmail        string        `yaml:"admin_email" env:"ADMIN_EMAIL" env-required:"true"`
	AdminPasswordHash string        `yaml:"admin_password_hash" env:"ADMIN_PASSWORD_HASH" env-required:"true"`
	TokenTTL          time.Duration `yaml:"token_ttl" env-default:"24h"`
}

type ImportConfig struct {
	GameMonetizeFeed     string        `yaml:"gamemonetize_feed" env-default:"https://gamemonetize.com/feed.php?format=0"`
	GameDistributionFeed string        `yaml:"gamedistribution_feed" env-default:"https://gamedistribution.com/rss"`
	Timeout              time.Duration `yaml:"timeout" env-default:"10s"`
}

func MustLoad() *Config {
	configPath := flag.String("config", "", "path to config yaml file")
	flag.Parse()
	if *configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", *configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(*configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s - %s", *configPath, err)
	}

	return &cfg
}

func (cfg *Database) GetDSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?parseTime=true",
		cfg.UsernameDB,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
	)
}
