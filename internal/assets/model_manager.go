// internal/assets/model_manager.go
package assets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"go-city-builder/internal/defs"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelManager loads, caches and unloads one 3D model per building type.
// A type without a model file gets a box sized to its footprint.
type ModelManager struct {
	dir      string
	cellSize float32
	models   map[string]rl.Model
	logger   *slog.Logger
}

// NewModelManager creates a manager that looks for <dir>/models/<id>.obj.
func NewModelManager(dir string, cellSize float64, logger *slog.Logger) *ModelManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &ModelManager{
		dir:      dir,
		cellSize: float32(cellSize),
		models:   make(map[string]rl.Model),
		logger:   logger,
	}
}

// loadSingleModel loads a model file for t, falling back to a generated box.
func (m *ModelManager) loadSingleModel(t defs.BuildingTemplate) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("raylib panicked while loading model, using a box", "template", t.ID, "panic", r)
			m.models[t.ID] = m.boxModel(t)
		}
	}()

	if _, ok := m.models[t.ID]; ok {
		return
	}

	modelPath := filepath.Join(m.dir, "models", fmt.Sprintf("%s.obj", t.ID))
	if _, err := os.Stat(modelPath); err != nil {
		m.models[t.ID] = m.boxModel(t)
		return
	}

	model := rl.LoadModel(modelPath)
	if model.MeshCount == 0 {
		m.logger.Warn("model file is empty, using a box", "template", t.ID, "path", modelPath)
		m.models[t.ID] = m.boxModel(t)
		return
	}

	texturePath := filepath.Join(m.dir, "textures", fmt.Sprintf("%s.png", t.ID))
	if _, err := os.Stat(texturePath); err == nil {
		texture := rl.LoadTexture(texturePath)
		if texture.ID > 0 {
			rl.SetMaterialTexture(model.Materials, rl.MapDiffuse, texture)
		} else {
			m.logger.Warn("failed to load texture", "template", t.ID, "path", texturePath)
		}
	}

	m.models[t.ID] = model
	m.logger.Debug("loaded model", "template", t.ID, "path", modelPath)
}

func (m *ModelManager) boxModel(t defs.BuildingTemplate) rl.Model {
	mesh := rl.GenMeshCube(
		float32(t.Width)*m.cellSize,
		float32(t.Height)*m.cellSize,
		float32(t.Length)*m.cellSize,
	)
	return rl.LoadModelFromMesh(mesh)
}

// LoadCatalog loads models for every building type.
func (m *ModelManager) LoadCatalog(catalog defs.Catalog) {
	for _, t := range catalog {
		m.loadSingleModel(t)
	}
}

// Model returns the model of a building type.
func (m *ModelManager) Model(id string) (rl.Model, bool) {
	model, ok := m.models[id]
	return model, ok
}

// Cleanup unloads every model.
func (m *ModelManager) Cleanup() {
	for id, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, id)
	}
}
