package toml

import (
	"context"
	"sync"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/bnema/meshsos/internal/ports"
	"github.com/spf13/viper"
)

const (
	prefsPathKey = "prefs.path"
	prefsFile    = "prefs.toml"
)

type PrefsRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.AlertPrefsRepository = (*PrefsRepository)(nil)

func NewPrefsRepository(cfg *viper.Viper) (*PrefsRepository, error) {
	path, err := resolvePath(cfg, prefsPathKey, prefsFile)
	if err != nil {
		return nil, err
	}

	return &PrefsRepository{path: path, mu: lockForPath(path)}, nil
}

// Get returns the stored preferences. Keys missing from the file keep their
// default value.
func (r *PrefsRepository) Get(ctx context.Context) (domain.AlertPrefs, error) {
	if err := ctx.Err(); err != nil {
		return domain.AlertPrefs{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.AlertPrefs{}, err
	}

	prefs := domain.DefaultAlertPrefs()
	if file.Alerts != nil {
		if file.Alerts.Sound != nil {
			prefs.Sound = *file.Alerts.Sound
		}
		if file.Alerts.Haptic != nil {
			prefs.Haptic = *file.Alerts.Haptic
		}
	}

	return prefs, nil
}

func (r *PrefsRepository) Save(ctx context.Context, prefs domain.AlertPrefs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	sound, haptic := prefs.Sound, prefs.Haptic
	file.Alerts = &alertSchema{Sound: &sound, Haptic: &haptic}

	return writeTOMLFile(r.path, file)
}

func (r *PrefsRepository) readSchema() (prefsFileSchema, error) {
	var file prefsFileSchema
	if err := readTOMLFile(r.path, "prefs", &file); err != nil {
		return prefsFileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return prefsFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}
