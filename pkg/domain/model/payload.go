package model

// RecordPayload is the public JSON shape of a CommandRecord
type RecordPayload struct {
	Command string `json:"command"`
	Name    string `json:"name"`
	Output  string `json:"output"`
}

// EncodeRecord projects a record onto its public fields. ID and CreatedAt are dropped.
func EncodeRecord(r *CommandRecord) RecordPayload {
	if r == nil {
		return RecordPayload{}
	}
	return RecordPayload{
		Command: r.Command,
		Name:    r.Name,
		Output:  r.Output,
	}
}

// DecodeRecord builds an unsaved record from a payload. The service never
// decodes client input into records; this exists for API clients and tests.
func DecodeRecord(p RecordPayload) *CommandRecord {
	return &CommandRecord{
		Command: p.Command,
		Name:    p.Name,
		Output:  p.Output,
	}
}
