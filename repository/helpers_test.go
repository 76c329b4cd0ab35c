package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ariebrainware/fitbuddy-api/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var ctx = context.Background()

// setupTestDB opens a private in-memory SQLite database with every table migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repotest_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.Tables...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) model.User {
	t.Helper()
	u := model.User{Name: name, Age: 30, Gender: "F", Phone: "555", Email: name + "@x.com", Password: "argon2id$stored"}
	require.NoError(t, CreateUser(ctx, db, &u))
	return u
}

func seedDisease(t *testing.T, db *gorm.DB, d model.Disease) model.Disease {
	t.Helper()
	require.NoError(t, db.Create(&d).Error)
	return d
}
