package config

import (
	"fmt"
	model "fll/repository"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// One active assignment per (user, event): soft-deleted rows stay behind, so
// a plain unique index on the full table would collide with them.
var indexQueries = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS jurados_usuario_evento_activo ON jurados (usuario_id, evento_id) WHERE activo`,
}

func InitDB(host string, port string, user string, password string, dbName string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&model.Event{},
		&model.Team{},
		&model.User{},
		&model.Judge{},
		&model.Rubric{},
		&model.Aspect{},
		&model.Level{},
		&model.Score{},
	)
	if err != nil {
		return nil, err
	}

	for _, query := range indexQueries {
		x := db.Exec(query)
		if x.Error != nil {
			if strings.Contains(x.Error.Error(), "already exists") {
				continue
			}
			return nil, x.Error
		}
	}
	return db, nil
}
