package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhulucas/dhl-fm-mapping-tool/internal/models"
)

func testFeature(id string) models.Feature {
	return models.NewFeature(-82.9988, 39.9612, models.FacilityProperties{
		ID:        id,
		Name:      "Columbus Distribution Center",
		Type:      "distribution",
		Address:   "100 Commerce Way, Columbus, OH",
		SizeSqft:  250000,
		Employees: 120,
	})
}

func TestInsertAndFindByID(t *testing.T) {
	data := models.NewFeatureCollection()
	f := testFeature("DC-001")

	require.NoError(t, Insert(&data, f))

	got, ok := FindByID(data, "DC-001")
	require.True(t, ok)
	assert.Equal(t, f, got)
}

func TestInsertMissingFields(t *testing.T) {
	data := models.NewFeatureCollection()
	f := testFeature("DC-001")
	f.Properties.Name = ""
	f.Properties.Address = ""

	err := Insert(&data, f)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"name", "address"}, vErr.Missing)
	assert.Empty(t, data.Features)
}

func TestInsertDuplicateID(t *testing.T) {
	data := models.NewFeatureCollection()
	require.NoError(t, Insert(&data, testFeature("DC-001")))

	err := Insert(&data, testFeature("DC-001"))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Len(t, data.Features, 1)
}

func TestFindByIDAbsent(t *testing.T) {
	data := models.NewFeatureCollection()
	_, ok := FindByID(data, "DC-404")
	assert.False(t, ok)
}

func TestReplacePreservesPositionAndTrustsBodyID(t *testing.T) {
	data := models.NewFeatureCollection()
	require.NoError(t, Insert(&data, testFeature("DC-001")))
	require.NoError(t, Insert(&data, testFeature("DC-002")))
	require.NoError(t, Insert(&data, testFeature("DC-003")))

	// Bản ghi mới mang id khác với id tra cứu; id trong body được giữ nguyên.
	replacement := testFeature("DC-999")
	require.NoError(t, Replace(&data, "DC-002", replacement))

	assert.Equal(t, "DC-999", data.Features[1].Properties.ID)
	assert.Len(t, data.Features, 3)

	_, ok := FindByID(data, "DC-002")
	assert.False(t, ok)
}

func TestReplaceNotFound(t *testing.T) {
	data := models.NewFeatureCollection()
	err := Replace(&data, "DC-404", testFeature("DC-404"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReturnsRemoved(t *testing.T) {
	data := models.NewFeatureCollection()
	f := testFeature("DC-001")
	require.NoError(t, Insert(&data, f))

	removed, err := Delete(&data, "DC-001")
	require.NoError(t, err)
	assert.Equal(t, f, removed)

	_, ok := FindByID(data, "DC-001")
	assert.False(t, ok)
	assert.Empty(t, data.Features)
}

func TestDeleteNotFound(t *testing.T) {
	data := models.NewFeatureCollection()
	_, err := Delete(&data, "DC-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "data.json"))

	data, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FeatureCollection", data.Type)
	assert.NotNil(t, data.Features)
	assert.Empty(t, data.Features)
}

func TestFileStoreSaveLoadRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "data.json"))

	data := models.NewFeatureCollection()
	require.NoError(t, Insert(&data, testFeature("DC-001")))
	require.NoError(t, s.Save(context.Background(), data))

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
}

func TestFileStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "data.json"))

	require.NoError(t, s.Save(context.Background(), models.NewFeatureCollection()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.json", entries[0].Name())
}

func TestFileStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
	assert.False(t, errors.Is(err, os.ErrNotExist))
}
