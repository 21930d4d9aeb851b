package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/syscmd/pkg/domain/model"
)

func TestEncodeRecord(t *testing.T) {
	t.Run("exposes exactly command, name and output", func(t *testing.T) {
		record := &model.CommandRecord{
			ID:        42,
			Command:   "ifconfig",
			Name:      "ifconfig",
			Output:    "lo: flags=73<UP,LOOPBACK,RUNNING>",
			CreatedAt: time.Now(),
		}

		raw, err := json.Marshal(model.EncodeRecord(record))
		gt.NoError(t, err)

		var fields map[string]any
		gt.NoError(t, json.Unmarshal(raw, &fields))
		gt.Equal(t, len(fields), 3)
		gt.Equal(t, fields["command"], any("ifconfig"))
		gt.Equal(t, fields["name"], any("ifconfig"))
		gt.Equal(t, fields["output"], any("lo: flags=73<UP,LOOPBACK,RUNNING>"))
	})

	t.Run("empty fields are still present", func(t *testing.T) {
		raw, err := json.Marshal(model.EncodeRecord(&model.CommandRecord{}))
		gt.NoError(t, err)
		gt.Equal(t, string(raw), `{"command":"","name":"","output":""}`)
	})

	t.Run("nil record encodes to empty payload", func(t *testing.T) {
		gt.Equal(t, model.EncodeRecord(nil), model.RecordPayload{})
	})
}

func TestDecodeRecord(t *testing.T) {
	payload := model.RecordPayload{
		Command: "touchfile",
		Name:    "touchfile",
		Output:  "Файл a.txt создан",
	}

	record := model.DecodeRecord(payload)
	gt.Equal(t, record.ID, int64(0))
	gt.True(t, record.CreatedAt.IsZero())
	gt.Equal(t, model.EncodeRecord(record), payload)
}
