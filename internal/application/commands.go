package application

import (
	"github.com/bnema/meshsos/internal/domain"
)

type SendSOSCommand struct {
	Text     string
	Location *domain.Location
}

// AlertPrefsUpdate changes only the fields that are set.
type AlertPrefsUpdate struct {
	Sound  *bool
	Haptic *bool
}

func (u AlertPrefsUpdate) apply(prefs domain.AlertPrefs) domain.AlertPrefs {
	if u.Sound != nil {
		prefs.Sound = *u.Sound
	}
	if u.Haptic != nil {
		prefs.Haptic = *u.Haptic
	}
	return prefs
}

func (u AlertPrefsUpdate) Empty() bool {
	return u.Sound == nil && u.Haptic == nil
}
