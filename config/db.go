package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hive-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, nil
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
	dbName := envOrDefault("DB_NAME", "hive_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// SeedDatabase ensures a default establishment and admin exist so a fresh
// install is immediately usable. Credentials come from env so the defaults
// never ship to production unchanged.
func SeedDatabase() {
	var estCount int64
	DB.Model(&models.Establishment{}).Count(&estCount)

	var establishment models.Establishment
	if estCount == 0 {
		establishment = models.Establishment{
			EName:   envOrDefault("SEED_ESTABLISHMENT_NAME", "Hive Dormitory"),
			Address: envOrDefault("SEED_ESTABLISHMENT_ADDRESS", ""),
		}
		if err := DB.Create(&establishment).Error; err != nil {
			log.Printf("warning: failed to seed establishment: %v", err)
			return
		}
		log.Println("Default establishment seeded")
	} else {
		if err := DB.First(&establishment).Error; err != nil {
			log.Printf("warning: failed to load establishment for seeding: %v", err)
			return
		}
	}

	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword(
			[]byte(envOrDefault("SEED_ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
			return
		}
		admin := models.Admin{
			EstablishmentID: establishment.EstablishmentID,
			AdminFirstName:  "Admin",
			AdminLastName:   "User",
			AdminEmail:      envOrDefault("SEED_ADMIN_EMAIL", "admin@hive.local"),
			Password:        string(hash),
			Verified:        true,
		}
		if err := DB.Create(&admin).Error; err != nil {
			log.Printf("warning: failed to create default admin: %v", err)
		} else {
			log.Println("Default admin seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Info,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Establishment{},
		&models.Admin{},
		&models.Room{},
		&models.Tenant{},
		&models.Request{},
		&models.Utility{},
		&models.Notice{},
		&models.Fix{},
		&models.Event{},
		&models.Feedback{},
		&models.ActivityLog{},
		&models.PasswordReset{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
