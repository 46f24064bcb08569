package activity

import "time"

// Action identifies the kind of user action that produced an entry.
type Action string

const (
	ActionCellEdit     Action = "cell_edit"
	ActionRichTextEdit Action = "richtext_edit"
	ActionCreate       Action = "rule_created"
	ActionCopy         Action = "rule_copied"
	ActionDelete       Action = "rule_deleted"
	ActionPublish      Action = "rule_published"
	ActionExport       Action = "csv_export"
)

// Entry is one event in the activity log: who did what to which target,
// with the old and new values when a single field changed. Entries back the
// Logs screen and the toast notifications.
type Entry struct {
	ID        int64     `json:"id"`
	User      string    `json:"user"`
	Action    Action    `json:"action"`
	Target    string    `json:"target"`
	Details   string    `json:"details,omitempty"`
	RuleID    string    `json:"rule_id,omitempty"`
	OldValue  string    `json:"old_value,omitempty"`
	NewValue  string    `json:"new_value,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
