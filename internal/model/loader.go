package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/Domenick1991/farecast/internal/features"
)

// ErrMissingArtifact is returned when the model file or the column file does not exist.
var ErrMissingArtifact = errors.New("model artifact not found")

// Artifacts is what a prediction needs: the model and the columns it was trained on.
type Artifacts struct {
	Model  Regressor
	Schema *features.Schema
}

func LoadModel(modelType, path string) (Regressor, error) {
	switch modelType {
	case TypeRandomForest, TypeDecisionTree:
		payload, err := readArtifact(path)
		if err != nil {
			return nil, err
		}
		forest, err := decodeForest(payload, modelType)
		if err != nil {
			return nil, fmt.Errorf("load model %s: %w", path, err)
		}
		return forest, nil
	default:
		return nil, fmt.Errorf("unsupported model type %q", modelType)
	}
}

func LoadColumns(path string) (*features.Schema, error) {
	payload, err := readArtifact(path)
	if err != nil {
		return nil, err
	}
	var columns []string
	if err := json.Unmarshal(payload, &columns); err != nil {
		return nil, fmt.Errorf("decode columns %s: %w", path, err)
	}
	schema, err := features.NewSchema(columns)
	if err != nil {
		return nil, fmt.Errorf("load columns %s: %w", path, err)
	}
	return schema, nil
}

func readArtifact(path string) ([]byte, error) {
	payload, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingArtifact, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return payload, nil
}

// Loader reads the artifacts on first use and hands out the same result afterwards,
// including a failed one. It is safe for concurrent use.
type Loader struct {
	modelType   string
	modelPath   string
	columnsPath string

	once      sync.Once
	artifacts *Artifacts
	err       error
}

func NewLoader(modelType, modelPath, columnsPath string) *Loader {
	return &Loader{modelType: modelType, modelPath: modelPath, columnsPath: columnsPath}
}

func (l *Loader) Load() (*Artifacts, error) {
	l.once.Do(func() {
		l.artifacts, l.err = l.load()
	})
	return l.artifacts, l.err
}

// Files returns the model and column file locations.
func (l *Loader) Files() []string {
	return []string{l.modelPath, l.columnsPath}
}

func (l *Loader) load() (*Artifacts, error) {
	for _, path := range l.Files() {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingArtifact, path)
		}
	}

	model, err := LoadModel(l.modelType, l.modelPath)
	if err != nil {
		return nil, err
	}
	schema, err := LoadColumns(l.columnsPath)
	if err != nil {
		return nil, err
	}
	if model.NumFeatures() != schema.Len() {
		return nil, fmt.Errorf("model expects %d features, column file lists %d", model.NumFeatures(), schema.Len())
	}
	return &Artifacts{Model: model, Schema: schema}, nil
}
