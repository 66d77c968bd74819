package migrations

import (
	"github.com/NeuralTrust/ToolFinder/pkg/infra/database"
	"gorm.io/gorm"
)

// The embedding column has no fixed dimension so the provider can be swapped.
// match_tools only compares vectors of the same dimension as the query.
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250102_add_tool_embeddings",
		Name: "Add pgvector embedding column and match_tools function",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS vector;`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				ALTER TABLE tools
					ADD COLUMN IF NOT EXISTS embedding vector,
					ADD COLUMN IF NOT EXISTS embedding_model TEXT;
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE OR REPLACE FUNCTION match_tools(
					query_embedding vector,
					match_threshold FLOAT,
					match_count INT
				)
				RETURNS TABLE (
					id UUID,
					name TEXT,
					description TEXT,
					url TEXT,
					category_id UUID,
					tags TEXT[],
					is_trending BOOLEAN,
					"order" INTEGER,
					created_at TIMESTAMPTZ,
					similarity FLOAT
				)
				LANGUAGE sql STABLE
				AS $$
					SELECT
						t.id, t.name, t.description, t.url, t.category_id, t.tags,
						t.is_trending, t."order", t.created_at,
						1 - (t.embedding <=> query_embedding) AS similarity
					FROM tools t
					WHERE t.embedding IS NOT NULL
						AND vector_dims(t.embedding) = vector_dims(query_embedding)
						AND 1 - (t.embedding <=> query_embedding) > match_threshold
					ORDER BY t.embedding <=> query_embedding
					LIMIT match_count;
				$$;
			`).Error
		},

		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP FUNCTION IF EXISTS match_tools(vector, FLOAT, INT);`).Error; err != nil {
				return err
			}
			return db.Exec(`
				ALTER TABLE tools
					DROP COLUMN IF EXISTS embedding,
					DROP COLUMN IF EXISTS embedding_model;
			`).Error
		},
	})
}
