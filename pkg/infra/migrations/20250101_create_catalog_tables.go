package migrations

import (
	"github.com/NeuralTrust/ToolFinder/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250101_create_catalog_tables",
		Name: "Create categories and tools tables",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS categories (
					id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					name        TEXT NOT NULL,
					slug        TEXT NOT NULL UNIQUE,
					description TEXT NOT NULL DEFAULT '',
					icon        TEXT NOT NULL DEFAULT '',
					color       TEXT NOT NULL DEFAULT '',
					"order"     INTEGER NOT NULL DEFAULT 0,
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS tools (
					id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					name        TEXT NOT NULL,
					description TEXT NOT NULL,
					url         TEXT NOT NULL,
					category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
					tags        TEXT[] NOT NULL DEFAULT '{}',
					is_trending BOOLEAN NOT NULL DEFAULT FALSE,
					"order"     INTEGER NOT NULL DEFAULT 0,
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_tools_category_id ON tools (category_id);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_tools_trending ON tools (is_trending) WHERE is_trending;
			`).Error
		},

		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP TABLE IF EXISTS tools;`).Error; err != nil {
				return err
			}
			return db.Exec(`DROP TABLE IF EXISTS categories;`).Error
		},
	})
}
