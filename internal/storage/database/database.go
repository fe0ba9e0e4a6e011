package database

import (
	"errors"
	"fmt"

	"ht5play/internal/config"
	"ht5play/internal/models"
	"ht5play/internal/storage"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage is the gorm-backed implementation of storage.Storage. The
// dialector is chosen by config: mysql in deployments, the pure-Go
// sqlite driver for local runs.
type Storage struct {
	DB *gorm.DB
}

func New(cfg config.Database) (*Storage, error) {
	const op = "storage.database.New"

	var dial gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dial = sqlite.Open(cfg.Path)
	case "mysql", "mariadb":
		dial = mysql.Open(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("%s: unknown driver %q", op, cfg.Driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Migrate() error {
	const op = "storage.database.Migrate"

	err := s.DB.AutoMigrate(
		&models.Category{},
		&models.Game{},
		&models.Blog{},
		&models.Page{},
		&models.Menu{},
		&models.Ad{},
		&models.Settings{},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Storage) Games() storage.GameStore          { return &gameStore{db: s.DB} }
func (s *Storage) Categories() storage.CategoryStore { return &categoryStore{db: s.DB} }
func (s *Storage) Blogs() storage.BlogStore          { return &blogStore{db: s.DB} }
func (s *Storage) Pages() storage.PageStore          { return &pageStore{db: s.DB} }
func (s *Storage) Menus() storage.MenuStore          { return &menuStore{db: s.DB} }
func (s *Storage) Ads() storage.AdStore              { return &adStore{db: s.DB} }
func (s *Storage) Settings() storage.SettingsStore   { return &settingsStore{db: s.DB} }

// wrap translates gorm's record-not-found into the storage sentinel so
// callers never depend on gorm error values.
func wrap(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
