package database

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migration IDs start with a yyyymmdd date and are applied in lexical order.
type Migration struct {
	ID   string
	Name string
	Up   func(db *gorm.DB) error
	Down func(db *gorm.DB) error
}

var migrationsRegistry = make(map[string]Migration)

func RegisterMigration(m Migration) {
	if m.ID == "" {
		panic("migration ID must not be empty")
	}
	if _, exists := migrationsRegistry[m.ID]; exists {
		panic(fmt.Sprintf("migration with ID %s already registered", m.ID))
	}
	migrationsRegistry[m.ID] = m
}

type MigrationsManager struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewMigrationsManager(db *gorm.DB, logger *logrus.Logger) *MigrationsManager {
	return &MigrationsManager{db: db, logger: logger}
}

func (m *MigrationsManager) ensureVersionTable() error {
	return m.db.Exec(`
CREATE TABLE IF NOT EXISTS public.schema_migrations (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`).Error
}

func (m *MigrationsManager) appliedIDs() (map[string]struct{}, error) {
	var ids []string
	if err := m.db.Raw("SELECT id FROM public.schema_migrations").Scan(&ids).Error; err != nil {
		return nil, err
	}
	applied := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		applied[id] = struct{}{}
	}
	return applied, nil
}

// pendingMigrations returns the registered migrations missing from applied,
// oldest first.
func pendingMigrations(applied map[string]struct{}) []Migration {
	pending := make([]Migration, 0, len(migrationsRegistry))
	for id, mig := range migrationsRegistry {
		if _, ok := applied[id]; !ok {
			pending = append(pending, mig)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].ID < pending[j].ID })
	return pending
}

// ApplyPending runs every pending migration in its own transaction, together
// with the row that records it.
func (m *MigrationsManager) ApplyPending() error {
	if err := m.ensureVersionTable(); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}
	applied, err := m.appliedIDs()
	if err != nil {
		return fmt.Errorf("load applied migrations: %w", err)
	}

	pending := pendingMigrations(applied)
	if len(pending) == 0 {
		m.logger.Debug("schema is up to date")
		return nil
	}
	for _, mig := range pending {
		if mig.Up == nil {
			return fmt.Errorf("migration %s has no Up function", mig.ID)
		}
		start := time.Now()
		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := mig.Up(tx); err != nil {
				return err
			}
			return tx.Exec(
				"INSERT INTO public.schema_migrations (id, name, applied_at) VALUES (?, ?, ?)",
				mig.ID, mig.Name, time.Now(),
			).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %s (%s): %w", mig.ID, mig.Name, err)
		}
		m.logger.WithFields(logrus.Fields{
			"migration": mig.ID,
			"duration":  time.Since(start).String(),
		}).Info("applied migration")
	}
	return nil
}
