package catalog

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tauraamui/hubschema/pkg/catalog/models"
	"github.com/tauraamui/hubschema/pkg/catalog/repos"
	"github.com/tauraamui/hubschema/pkg/log"
	"github.com/tauraamui/xerror"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	vendorName       = "tauraamui"
	appName          = "hubschema"
	databaseFileName = "catalog.db"
	databaseEnv      = "HUB_SCHEMA_DB"
)

var (
	ErrCreateDBFile    = xerror.New("unable to create database file")
	ErrDBAlreadyExists = xerror.New("database file already exists")
)

var uc = os.UserCacheDir
var fs = afero.NewOsFs()

// Setup creates the catalog database file and its tables.
func Setup() error {
	log.Info("Creating catalog database file...")

	if err := createFile(); err != nil {
		return err
	}

	if _, err := Connect(); err != nil {
		return err
	}

	log.Info("Created catalog database")
	return nil
}

func Destroy() error {
	dbFilePath, err := resolveDBPath(uc)
	if err != nil {
		return xerror.Errorf("unable to delete database file: %w", err)
	}

	return fs.Remove(dbFilePath)
}

func Connect() (repos.GormWrapper, error) {
	dbPath, err := resolveDBPath(uc)
	if err != nil {
		return nil, err
	}

	return Open(dbPath)
}

// Open connects to the sqlite database at dsn, migrating its tables.
func Open(dsn string) (repos.GormWrapper, error) {
	log.Debug("Connecting to DB: %s", dsn)
	db, err := openDBConnection(dsn)
	if err != nil {
		return nil, xerror.Errorf("unable to open db connection: %w", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		return nil, xerror.Errorf("unable to run automigrations: %w", err)
	}

	return repos.Wrap(db), nil
}

var openDBConnection = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
}

func resolveDBPath(uc func() (string, error)) (string, error) {
	databasePath := os.Getenv(databaseEnv)
	if len(databasePath) > 0 {
		return databasePath, nil
	}

	databaseParentDir, err := uc()
	if err != nil {
		return "", xerror.Errorf("unable to resolve %s database file location: %w", databaseFileName, err)
	}

	return filepath.Join(
		databaseParentDir,
		vendorName,
		appName,
		databaseFileName), nil
}

func createFile() error {
	path, err := resolveDBPath(uc)
	if err != nil {
		return err
	}

	if _, err := fs.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := fs.MkdirAll(filepath.Dir(path), os.ModeDir|os.ModePerm); err != nil {
			return xerror.Errorf("%v: %w", ErrCreateDBFile, err)
		}

		f, err := fs.Create(path)
		if err != nil {
			return xerror.Errorf("%v: %w", ErrCreateDBFile, err)
		}
		return f.Close()
	}

	return xerror.Errorf("%w: %s", ErrDBAlreadyExists, path)
}
