package migrations

import (
	"github.com/NeuralTrust/ToolFinder/pkg/infra/database"
	"gorm.io/gorm"
)

// match_tools only compares vectors written by the query's embedding model.
// Equal dimensions do not make two models' vectors comparable, so rows left
// over from a previous model stay invisible until reindexed.
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250104_match_tools_by_model",
		Name: "Restrict match_tools to the query embedding model",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`DROP FUNCTION IF EXISTS match_tools(vector, FLOAT, INT);`).Error; err != nil {
				return err
			}
			if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_tools_embedding_model ON tools (embedding_model);`).Error; err != nil {
				return err
			}
			return db.Exec(`
				CREATE OR REPLACE FUNCTION match_tools(
					query_embedding vector,
					match_model TEXT,
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
						AND t.embedding_model = match_model
						AND vector_dims(t.embedding) = vector_dims(query_embedding)
						AND 1 - (t.embedding <=> query_embedding) > match_threshold
					ORDER BY t.embedding <=> query_embedding
					LIMIT match_count;
				$$;
			`).Error
		},

		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP FUNCTION IF EXISTS match_tools(vector, TEXT, FLOAT, INT);`).Error; err != nil {
				return err
			}
			if err := db.Exec(`DROP INDEX IF EXISTS idx_tools_embedding_model;`).Error; err != nil {
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
	})
}
