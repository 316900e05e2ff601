// Package db opens the application database and runs migrations.
package db

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	artentity "art_backend/internal/feature/art/domain/entity"
	authentity "art_backend/internal/feature/auth/domain/entity"
	typeentity "art_backend/internal/feature/arttype/domain/entity"
)

// OpenDB connects to postgres using DB_* environment variables and migrates
// the schema. Migration order matters: Art carries foreign keys to User and
// Type, so the parents go first.
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)

	// TranslateError maps driver errors onto gorm sentinels such as
	// gorm.ErrDuplicatedKey, which the adapters rely on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}

	if err := db.AutoMigrate(
		&authentity.User{},
		&typeentity.Type{},
		&artentity.Art{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
