package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"katgen/internal/auth"
	"katgen/internal/httpserver"
	"katgen/internal/logger"
	"katgen/internal/models"
	"katgen/internal/oracle"
)

func main() {
	_ = godotenv.Load()
	lg := logger.New()
	defer lg.Sync()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		lg.Fatalw("DATABASE_URL is empty")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}
	if err := db.AutoMigrate(&models.Role{}, &models.User{}, &models.Session{}, &models.AuditLog{}, &models.Run{}, &models.Vector{}); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}
	seedDefaultAdmin(db, lg)

	orcName := os.Getenv("KATGEN_ORACLE")
	if orcName == "" {
		orcName = "builtin"
	}
	if _, err := oracle.Select(orcName, os.Getenv("KATGEN_OPENSSL_BIN")); err != nil {
		lg.Fatalw("bad oracle config", "error", err)
	}

	router := httpserver.NewRouter(db, lg, orcName)
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}
	lg.Infow("listening", "port", port, "oracle", orcName)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		lg.Fatalw("server stopped", "error", err)
	}
}

func seedDefaultAdmin(db *gorm.DB, lg *zap.SugaredLogger) {
	db.Exec("INSERT INTO roles(name) VALUES ('Administrator') ON CONFLICT DO NOTHING")
	db.Exec("INSERT INTO roles(name) VALUES ('User') ON CONFLICT DO NOTHING")
	email := strings.ToLower(os.Getenv("ADMIN_EMAIL"))
	if email == "" {
		email = "admin@katgen.local"
	}
	var count int64
	db.Model(&models.User{}).Where("LOWER(email)=?", email).Count(&count)
	if count > 0 {
		return
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
	}
	hash, _ := auth.HashPassword(password)
	u := models.User{Email: email, PasswordHash: hash, IsActive: true, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	if err := db.Create(&u).Error; err == nil {
		var adminRole models.Role
		if err := db.First(&adminRole, "name = 'Administrator'").Error; err == nil {
			_ = db.Model(&u).Association("Roles").Append(&adminRole)
		}
	}
	lg.Infow("seeded default admin", "email", email)
}
