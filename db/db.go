package db

import (
	"fmt"
	"log"

	"github.com/pressfeedhq/pressfeed/config"
	"github.com/pressfeedhq/pressfeed/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormDB struct {
	DB *gorm.DB
}

func GetDB(c *config.Config) *GormDB {
	gormDB := &GormDB{}
	gormDB.Init(c)
	return gormDB
}

func (g *GormDB) Init(c *config.Config) {
	g.DB = getPostgresDB(c)

	if err := Migrate(g.DB); err != nil {
		log.Fatalf("unable to run migrations: %v", err)
	}
}

func getPostgresDB(c *config.Config) *gorm.DB {
	log.Printf("Connecting to postgres: %s@%s:%d/%s", c.PostgresUser, c.PostgresHost, c.PostgresPort, c.PostgresDB)
	postgresDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort)

	gormConfig := &gorm.Config{}
	if c.Env != "prod" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN: postgresDSN,
	}), gormConfig)
	if err != nil {
		log.Fatal(err)
	}

	return gormDB
}

// Migrate runs AutoMigrate for every model. Exported so test fixtures can
// apply the same schema to their own database.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Blacklist{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	if err != nil {
		return fmt.Errorf("migrations error: %v", err)
	}
	return nil
}

// SeedGroups makes sure the starter groups exist. Group management has no
// public endpoint, so new installs get a usable set out of the box.
func SeedGroups(db *gorm.DB) error {
	groups := []models.Group{
		{Slug: "general", Title: "General", Description: "Anything goes"},
		{Slug: "tech", Title: "Technology", Description: "Software, hardware and everything between"},
	}

	for _, group := range groups {
		if err := db.FirstOrCreate(&group, models.Group{Slug: group.Slug}).Error; err != nil {
			return err
		}
	}

	return nil
}
