package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ai-link-navigator/app/server/models"
)

func newGormStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Group{}, &models.Link{}))
	return NewGorm(db)
}

func TestGormUsersReplaceAll(t *testing.T) {
	st := newGormStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveUsers(ctx, []models.User{
		{Username: "admin", PasswordHash: "h1", Role: models.RoleAdmin},
		{Username: "user", PasswordHash: "h2", Role: models.RoleUser},
	}))

	// 整表替换：旧记录不保留
	require.NoError(t, st.SaveUsers(ctx, []models.User{
		{Username: "solo", PasswordHash: "h3", Role: models.RoleAdmin},
	}))

	out, err := st.LoadUsers(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "solo", out[0].Username)
	assert.Equal(t, "h3", out[0].PasswordHash)
}

func TestGormCatalogRoundTrip(t *testing.T) {
	st := newGormStore(t)
	ctx := context.Background()

	in := &models.Catalog{Groups: []models.Group{
		{ID: "g2", Title: "B", Order: 2},
		{ID: "g1", Title: "A", Order: 1, Links: []models.Link{
			{ID: "l2", Title: "second", URL: "https://2", Order: 2},
			{ID: "l1", Title: "first", URL: "https://1", Order: 1},
		}},
	}}
	require.NoError(t, st.SaveCatalog(ctx, in))

	out, err := st.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, out.Groups, 2)

	// 读出时按 order 升序
	assert.Equal(t, "g1", out.Groups[0].ID)
	assert.Equal(t, "g2", out.Groups[1].ID)
	require.Len(t, out.Groups[0].Links, 2)
	assert.Equal(t, "l1", out.Groups[0].Links[0].ID)
	assert.Equal(t, "l2", out.Groups[0].Links[1].ID)
}

func TestGormCatalogFullReplace(t *testing.T) {
	st := newGormStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveCatalog(ctx, &models.Catalog{Groups: []models.Group{
		{ID: "g1", Title: "old", Order: 1, Links: []models.Link{
			{ID: "l1", Title: "old link", URL: "https://old", Order: 1},
		}},
	}}))

	// 再次保存是全量覆盖，包括复用同一批 ID
	require.NoError(t, st.SaveCatalog(ctx, &models.Catalog{Groups: []models.Group{
		{ID: "g1", Title: "new", Order: 1, Links: []models.Link{
			{ID: "l1", Title: "new link", URL: "https://new", Order: 1},
		}},
	}}))

	out, err := st.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, out.Groups, 1)
	assert.Equal(t, "new", out.Groups[0].Title)
	assert.Equal(t, "https://new", out.Groups[0].Links[0].URL)

	// 清空也是一次合法的整体替换
	require.NoError(t, st.SaveCatalog(ctx, &models.Catalog{Groups: []models.Group{}}))
	out, err = st.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Empty(t, out.Groups)
}
