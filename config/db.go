package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cabin-backend/models"
	"cabin-backend/utils"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	// Date columns must come back as UTC so calendar-date comparisons in the
	// engine line up with request dates parsed as UTC midnight.
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "cabin_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the MySQL connection, migrates the schema, and seeds
// the initial data.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Cabin{},
		&models.Guest{},
		&models.Booking{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase creates a default admin account and a starter cabin inventory
// on an empty database.
func SeedDatabase() {
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := utils.HashPassword(envOrDefault("ADMIN_PASSWORD", "admin123"))
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				Username:     "admin",
				PasswordHash: hash,
				Surname:      "Admin",
				Role:         models.RoleAdmin,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var cabinCount int64
	DB.Model(&models.Cabin{}).Count(&cabinCount)
	if cabinCount == 0 {
		cabins := []models.Cabin{
			{Name: "Forest Lodge", PricePerNight: decimal.NewFromInt(2000), MaxGuests: 4, IsActive: true, Amenities: datatypes.JSON(`["fireplace","sauna"]`)},
			{Name: "Lakeside Cabin", PricePerNight: decimal.NewFromInt(3500), MaxGuests: 6, IsActive: true, Amenities: datatypes.JSON(`["pier","barbecue"]`)},
			{Name: "Hilltop Hut", PricePerNight: decimal.NewFromInt(1500), MaxGuests: 2, IsActive: true, Amenities: datatypes.JSON(`["fireplace"]`)},
		}
		if err := DB.Create(&cabins).Error; err != nil {
			log.Printf("warning: failed to seed cabins: %v", err)
		} else {
			log.Println("Cabins seeded")
		}
	}
}
