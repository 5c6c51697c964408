package loader

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature is a module mounting routes on the application.
type Feature interface {
	Name() string
	IsEnabled() bool
	Load(app fiber.Router) error
}

// Manager holds the registered features.
type Manager struct {
	features []Feature
	logger   *zap.Logger
}

// NewManager creates an empty manager.
func NewManager(l *zap.Logger) *Manager {
	if l == nil {
		l = zap.NewNop()
	}
	return &Manager{logger: l}
}

// Register adds a feature. Features load in registration order.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// Features returns the registered features.
func (m *Manager) Features() []Feature {
	return m.features
}

// LoadAll loads every enabled feature, stopping at the first failure.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			m.logger.Debug("Feature disabled", zap.String("feature", f.Name()))
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
		m.logger.Info("Feature loaded", zap.String("feature", f.Name()))
	}
	return nil
}
