package dedupe

import (
	"github.com/rs/zerolog"

	"github.com/ThomasCrouzet/simdedupe/internal/model"
)

// Remover deletes a device by udid.
type Remover interface {
	Delete(udid string) error
}

// DeleteAll deletes every device in order. A failed delete is logged and
// the remaining devices are still attempted.
func DeleteAll(rm Remover, devices []model.Device, log zerolog.Logger) {
	for _, d := range devices {
		if err := rm.Delete(d.Identifier()); err != nil {
			log.Warn().Err(err).Str("udid", d.Identifier()).Str("name", d.Name()).Msg("delete failed")
			continue
		}
		log.Debug().Str("udid", d.Identifier()).Msg("deleted")
	}
}
