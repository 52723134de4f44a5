package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ai-link-navigator/app/server/apperrors"
	"ai-link-navigator/app/server/models"
	"ai-link-navigator/app/server/storage"
)

func TestReplaceGetRoundTrip(t *testing.T) {
	svc := New(storage.NewFile(t.TempDir()), zap.NewNop())
	ctx := context.Background()

	in := &models.Catalog{Groups: []models.Group{
		{
			ID: "g1", Title: "AI", Order: 1,
			Links: []models.Link{
				{ID: "l1", Title: "X", URL: "https://x", Order: 1},
			},
		},
	}}
	require.NoError(t, svc.Replace(ctx, in))

	out := svc.Get(ctx)
	require.Len(t, out.Groups, 1)
	assert.Equal(t, "g1", out.Groups[0].ID)
	assert.Equal(t, "AI", out.Groups[0].Title)
	require.Len(t, out.Groups[0].Links, 1)
	assert.Equal(t, "l1", out.Groups[0].Links[0].ID)
}

func TestGetOrdersByOrderField(t *testing.T) {
	svc := New(storage.NewFile(t.TempDir()), zap.NewNop())
	ctx := context.Background()

	in := &models.Catalog{Groups: []models.Group{
		{ID: "g2", Title: "B", Order: 2, Links: []models.Link{
			{ID: "l2", Title: "second", URL: "https://2", Order: 2},
			{ID: "l1", Title: "first", URL: "https://1", Order: 1},
		}},
		{ID: "g1", Title: "A", Order: 1},
	}}
	require.NoError(t, svc.Replace(ctx, in))

	out := svc.Get(ctx)
	require.Len(t, out.Groups, 2)
	assert.Equal(t, "g1", out.Groups[0].ID)
	assert.Equal(t, "g2", out.Groups[1].ID)
	assert.Equal(t, "l1", out.Groups[1].Links[0].ID)
	assert.Equal(t, "l2", out.Groups[1].Links[1].ID)
}

type brokenStore struct{}

func (brokenStore) LoadUsers(context.Context) ([]models.User, error) {
	return nil, errors.Join(apperrors.ErrStorageFailure, errors.New("boom"))
}
func (brokenStore) SaveUsers(context.Context, []models.User) error {
	return errors.Join(apperrors.ErrStorageFailure, errors.New("boom"))
}
func (brokenStore) LoadCatalog(context.Context) (*models.Catalog, error) {
	return nil, errors.Join(apperrors.ErrStorageFailure, errors.New("boom"))
}
func (brokenStore) SaveCatalog(context.Context, *models.Catalog) error {
	return errors.Join(apperrors.ErrStorageFailure, errors.New("boom"))
}

func TestGetDegradesToEmptyOnStorageFailure(t *testing.T) {
	svc := New(brokenStore{}, zap.NewNop())

	out := svc.Get(context.Background())
	require.NotNil(t, out)
	assert.Empty(t, out.Groups)
}

func TestReplaceSurfacesStorageFailure(t *testing.T) {
	svc := New(brokenStore{}, zap.NewNop())

	err := svc.Replace(context.Background(), &models.Catalog{})
	assert.ErrorIs(t, err, apperrors.ErrStorageFailure)
}
