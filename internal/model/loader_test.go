package model

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	loader := NewLoader(TypeRandomForest, "testdata/model.json", "testdata/columns.json")

	artifacts, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, 8, artifacts.Schema.Len())
	assert.Equal(t, TypeRandomForest, artifacts.Model.Kind())
}

func TestLoader_CachesFirstResult(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	columnsPath := filepath.Join(dir, "columns.json")
	copyFile(t, "testdata/model.json", modelPath)
	copyFile(t, "testdata/columns.json", columnsPath)

	loader := NewLoader(TypeRandomForest, modelPath, columnsPath)
	first, err := loader.Load()
	require.NoError(t, err)

	require.NoError(t, os.Remove(modelPath))
	require.NoError(t, os.Remove(columnsPath))

	second, err := loader.Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoader_ConcurrentLoad(t *testing.T) {
	loader := NewLoader(TypeRandomForest, "testdata/model.json", "testdata/columns.json")

	var wg sync.WaitGroup
	results := make([]*Artifacts, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = loader.Load()
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestLoader_MissingArtifact(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name        string
		modelPath   string
		columnsPath string
	}{
		{"model missing", filepath.Join(dir, "absent.json"), "testdata/columns.json"},
		{"columns missing", "testdata/model.json", filepath.Join(dir, "absent.json")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(TypeRandomForest, tt.modelPath, tt.columnsPath)
			_, err := loader.Load()
			assert.ErrorIs(t, err, ErrMissingArtifact)

			_, err = loader.Load()
			assert.ErrorIs(t, err, ErrMissingArtifact)
		})
	}
}

func TestLoader_WidthMismatch(t *testing.T) {
	loader := NewLoader(TypeRandomForest, "testdata/model.json", "testdata/narrow_columns.json")
	_, err := loader.Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingArtifact)
}

func TestLoadColumns_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "a list"}`), 0o600))

	_, err := LoadColumns(path)
	assert.Error(t, err)
}

func copyFile(t *testing.T, from, to string) {
	t.Helper()
	data, err := os.ReadFile(from)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(to, data, 0o600))
}
