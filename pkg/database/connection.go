package database

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"golang.org/x/crypto/bcrypt"

	"faultmesh/internal/models"
)

var DB *gorm.DB

// InitDB opens the sqlite file at dbPath, migrates the schema, and
// seeds the default admin account.
func InitDB(dbPath string) {
	var err error

	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	DB, err = gorm.Open(sqlite.Open(dbPath), cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	migrateDB()
	createDefaultAdmin()
}

func migrateDB() {
	if err := DB.AutoMigrate(&models.User{}, &models.Run{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
}

// createDefaultAdmin seeds a single bcrypt-hashed admin account on
// first boot; subsequent boots find it already present and skip.
func createDefaultAdmin() {
	var count int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash default admin password: %v", err)
	}

	admin := models.User{
		Username: "admin",
		Password: string(passwordHash),
		Email:    "admin@example.com",
		Role:     models.RoleAdmin,
	}

	if result := DB.Create(&admin); result.Error != nil {
		log.Fatalf("failed to create default admin account: %v", result.Error)
	} else {
		log.Println("created default admin account (username: admin, password: admin123)")
	}
}

// GetDB returns the process-wide database handle.
func GetDB() *gorm.DB {
	return DB
}
