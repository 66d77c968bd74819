package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func registerForTest(t *testing.T, ids ...string) {
	t.Helper()
	for _, id := range ids {
		RegisterMigration(Migration{ID: id, Name: id})
	}
	t.Cleanup(func() {
		for _, id := range ids {
			delete(migrationsRegistry, id)
		}
	})
}

func TestRegisterMigration_DuplicatePanics(t *testing.T) {
	registerForTest(t, "99990101_test_duplicate")

	assert.Panics(t, func() {
		RegisterMigration(Migration{ID: "99990101_test_duplicate", Name: "second"})
	})
}

func TestRegisterMigration_EmptyIDPanics(t *testing.T) {
	assert.Panics(t, func() {
		RegisterMigration(Migration{Name: "nameless"})
	})
}

func TestPendingMigrations_SkipsAppliedAndSortsByID(t *testing.T) {
	registerForTest(t, "99990103_c", "99990101_a", "99990102_b")

	applied := map[string]struct{}{"99990102_b": {}}
	for id := range migrationsRegistry {
		if !strings.HasPrefix(id, "9999") {
			applied[id] = struct{}{}
		}
	}

	pending := pendingMigrations(applied)

	ids := make([]string, 0, len(pending))
	for _, m := range pending {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"99990101_a", "99990103_c"}, ids)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "tools", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=tools sslmode=disable", cfg.DSN())
}
