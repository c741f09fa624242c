package dedupe

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ThomasCrouzet/simdedupe/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeRemover struct {
	deleted []string
	fail    map[string]error
}

func (f *fakeRemover) Delete(udid string) error {
	f.deleted = append(f.deleted, udid)
	return f.fail[udid]
}

func TestDeleteAllInOrder(t *testing.T) {
	rm := &fakeRemover{}
	devices := []model.Device{dev("B", ios17, iphone, 1), dev("D", ios17, ipad, 3)}

	DeleteAll(rm, devices, zerolog.Nop())

	assert.Equal(t, []string{"B", "D"}, rm.deleted)
}

func TestDeleteAllContinuesAfterFailure(t *testing.T) {
	var logs bytes.Buffer
	rm := &fakeRemover{fail: map[string]error{"B": errors.New("device is booted")}}
	devices := []model.Device{dev("B", ios17, iphone, 1), dev("C", ios17, iphone, 2)}

	DeleteAll(rm, devices, zerolog.New(&logs).Level(zerolog.WarnLevel))

	assert.Equal(t, []string{"B", "C"}, rm.deleted)
	assert.Contains(t, logs.String(), `"udid":"B"`)
	assert.Contains(t, logs.String(), "device is booted")
	assert.NotContains(t, logs.String(), `"udid":"C"`)
}

func TestDeleteAllNothing(t *testing.T) {
	rm := &fakeRemover{}
	DeleteAll(rm, nil, zerolog.Nop())
	assert.Empty(t, rm.deleted)
}
