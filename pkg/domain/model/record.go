package model

import "time"

const (
	// ActionIfconfig is the only command keyword the network-info action accepts
	ActionIfconfig = "ifconfig"
	// ActionTouchfile labels records produced by the file-creation action
	ActionTouchfile = "touchfile"
)

// CommandRecord is one persisted row of the action log
type CommandRecord struct {
	ID        int64
	Command   string
	Name      string
	Output    string
	CreatedAt time.Time
}
