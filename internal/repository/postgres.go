package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormLogger "gorm.io/gorm/logger"

	"github.com/nanakim-star/trc20bot/internal/models"
	"github.com/nanakim-star/trc20bot/pkg/logger"
)

const (
	msgAddressExists    = "Wallet address already exists"
	msgNewAddressExists = "New wallet address already exists"
	msgWalletNotFound   = "Wallet not found"
)

type PostgresDB struct {
	logger *logger.Logger

	Conn *gorm.DB
}

// Option tunes the connection pool.
type Option func(*gorm.DB) error

// WithMaxOpenConns caps the number of open connections.
func WithMaxOpenConns(n int) Option {
	return func(db *gorm.DB) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		sqlDB.SetMaxOpenConns(n)
		return nil
	}
}

// NewPostgresDB connects to PostgreSQL using a DSN or a postgres:// URL.
func NewPostgresDB(dsn string, logger *logger.Logger, opts ...Option) (*PostgresDB, error) {
	return Open(postgres.Open(dsn), logger, opts...)
}

// Open connects through the given dialector and migrates the schema.
func Open(dialector gorm.Dialector, logger *logger.Logger, opts ...Option) (*PostgresDB, error) {
	// Configure GORM logger to suppress "record not found" messages
	gormLogger := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger, TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", dialector.Name(), err)
	}

	for _, opt := range opts {
		if err := opt(db); err != nil {
			return nil, fmt.Errorf("failed to configure connection pool: %w", err)
		}
	}

	if err := db.AutoMigrate(&models.Wallet{}, &models.User{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	logger.Info("Successfully connected to database", "dialect", dialector.Name())
	return &PostgresDB{Conn: db, logger: logger}, nil
}

func (db *PostgresDB) Close() error {
	sqlDB, err := db.Conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

func (db *PostgresDB) ListWallets(ctx context.Context) ([]*models.Wallet, error) {
	var wallets []*models.Wallet
	if err := db.Conn.WithContext(ctx).Order("id").Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

func (db *PostgresDB) GetWalletByAddress(ctx context.Context, address string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := db.Conn.WithContext(ctx).Where("address = ?", address).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (db *PostgresDB) CreateWallet(ctx context.Context, wallet *models.Wallet) error {
	err := db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := addressTaken(tx, wallet.Address, 0)
		if err != nil {
			return err
		}
		if taken {
			return models.NewError(models.ErrConflict, msgAddressExists)
		}
		return tx.Create(wallet).Error
	})
	if err != nil {
		return classify(err, msgAddressExists, "failed to create new wallet")
	}
	db.logger.Debug("Wallet created", "id", wallet.ID, "address", wallet.Address)
	return nil
}

func (db *PostgresDB) UpdateWallet(ctx context.Context, id uint, patch *models.WalletPatch) (*models.Wallet, error) {
	var wallet models.Wallet
	err := db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&wallet, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewError(models.ErrNotFound, msgWalletNotFound)
			}
			return err
		}

		if patch.ChangesAddress(&wallet) {
			taken, err := addressTaken(tx, *patch.Address, wallet.ID)
			if err != nil {
				return err
			}
			if taken {
				return models.NewError(models.ErrConflict, msgNewAddressExists)
			}
		}

		patch.Apply(&wallet)
		return tx.Save(&wallet).Error
	})
	if err != nil {
		return nil, classify(err, msgNewAddressExists, "failed to update wallet")
	}
	return &wallet, nil
}

func (db *PostgresDB) DeleteWallet(ctx context.Context, id uint) error {
	result := db.Conn.WithContext(ctx).Delete(&models.Wallet{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewError(models.ErrNotFound, msgWalletNotFound)
	}
	return nil
}

func (db *PostgresDB) GetUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := db.Conn.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (db *PostgresDB) SaveUser(ctx context.Context, username, passwordHash string) (bool, error) {
	created := false
	err := db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.Where("username = ?", username).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Create(&models.User{Username: username, PasswordHash: passwordHash}).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&user).Update("password_hash", passwordHash).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to save user: %w", err)
	}
	return created, nil
}

// addressTaken reports whether a wallet other than excludeID owns address.
func addressTaken(tx *gorm.DB, address string, excludeID uint) (bool, error) {
	query := tx.Model(&models.Wallet{}).Where("address = ?", address)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check wallet address: %w", err)
	}
	return count > 0, nil
}

// classify keeps classified errors as they are, turns a unique index
// violation into a conflict and wraps everything else.
func classify(err error, conflictMsg, action string) error {
	var modelErr *models.Error
	if errors.As(err, &modelErr) {
		return modelErr
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.NewError(models.ErrConflict, conflictMsg)
	}
	return fmt.Errorf("%s: %w", action, err)
}
