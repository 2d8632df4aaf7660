package service

import (
	"math/rand"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/crickmart/backend/internal/models"
	"github.com/crickmart/backend/internal/repo"
	"github.com/crickmart/backend/internal/teams"
)

var testSecret = []byte("test-secret")

func initTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// Every pooled connection gets its own :memory: database; keep one.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}))
	return &repo.GormRepo{DB: gdb}
}

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return &AuthService{
		Repo:      initTestRepo(t),
		Teams:     teams.NewPicker(rand.NewSource(1)),
		JWTSecret: testSecret,
	}
}
