package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe-api/internal/apperrors"
	"wardrobe-api/internal/models"
)

func TestClothesCRUD(t *testing.T) {
	svc := NewClothesService(newTestDB(t))

	created, err := svc.CreateClothes(models.Clothes{Name: "T-SHIRT", Color: "Black", Size: "XLL"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "T-SHIRT", created.Name)

	got, err := svc.GetClothesByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := svc.UpdateClothes(created.ID, models.Clothes{Name: "Pants", Color: "Black", Size: "L"})
	require.NoError(t, err)
	assert.Equal(t, "Pants", updated.Name)

	got, err = svc.GetClothesByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	count, err := svc.DeleteClothes(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = svc.GetClothesByID(created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetAllClothes_EmptyIsArray(t *testing.T) {
	svc := NewClothesService(newTestDB(t))

	items, err := svc.GetAllClothes()
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetAllClothes(t *testing.T) {
	svc := NewClothesService(newTestDB(t))

	_, err := svc.CreateClothes(models.Clothes{Name: "Hat", Color: "Red", Size: "M"})
	require.NoError(t, err)
	_, err = svc.CreateClothes(models.Clothes{Name: "Socks", Color: "White", Size: "S"})
	require.NoError(t, err)

	items, err := svc.GetAllClothes()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Hat", items[0].Name)
	assert.Equal(t, "Socks", items[1].Name)
}

func TestCreateClothes_Validation(t *testing.T) {
	svc := NewClothesService(newTestDB(t))

	_, err := svc.CreateClothes(models.Clothes{Color: "Black"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateClothes_NotFound(t *testing.T) {
	svc := NewClothesService(newTestDB(t))

	_, err := svc.UpdateClothes(42, models.Clothes{Name: "Pants"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteClothes_UnknownIDIsZero(t *testing.T) {
	svc := NewClothesService(newTestDB(t))

	count, err := svc.DeleteClothes(42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
