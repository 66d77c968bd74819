package migrations

import (
	"github.com/NeuralTrust/ToolFinder/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250103_seed_categories",
		Name: "Seed default categories",

		Up: func(db *gorm.DB) error {
			return db.Exec(`
				INSERT INTO categories (name, slug, description, icon, color, "order") VALUES
					('Video', 'video', 'Generate, edit and enhance videos', 'Video', '#EF4444', 1),
					('Image', 'image', 'Create and edit images and artwork', 'Image', '#8B5CF6', 2),
					('Writing', 'writing', 'Write, rewrite and proofread text', 'PenTool', '#3B82F6', 3),
					('Code', 'code', 'Write, review and debug code', 'Code', '#10B981', 4),
					('Audio', 'audio', 'Voice, music and speech tools', 'Music', '#F59E0B', 5),
					('Chat', 'chat', 'Assistants and chatbots', 'MessageSquare', '#06B6D4', 6),
					('Design', 'design', 'UI, logos and presentations', 'Palette', '#EC4899', 7),
					('Productivity', 'productivity', 'Notes, meetings and automation', 'Zap', '#84CC16', 8),
					('Research', 'research', 'Search, summarise and analyse', 'Search', '#6366F1', 9),
					('Marketing', 'marketing', 'Ads, SEO and social media', 'Megaphone', '#F97316', 10)
				ON CONFLICT (slug) DO NOTHING;
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`
				DELETE FROM categories WHERE slug IN (
					'video', 'image', 'writing', 'code', 'audio',
					'chat', 'design', 'productivity', 'research', 'marketing'
				);
			`).Error
		},
	})
}
