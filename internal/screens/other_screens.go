package screens

import (
	"strconv"

	"github.com/planops/ruleboard/internal/collateral"
	"github.com/planops/ruleboard/internal/domain/activity"
	"github.com/planops/ruleboard/internal/domain/user"
	"github.com/planops/ruleboard/internal/grid"
)

// LogsSchema shows the activity log.
func LogsSchema() grid.Schema[activity.Entry] {
	return grid.Schema[activity.Entry]{
		ID: func(e activity.Entry) string { return strconv.FormatInt(e.ID, 10) },
		Columns: []grid.Column[activity.Entry]{
			{Key: "created_at", Title: "When", Kind: grid.KindComputed, Value: func(e activity.Entry) any { return e.CreatedAt.Format("01/02/2006 15:04:05") }},
			{Key: "user", Title: "User", Kind: grid.KindCategory, Value: func(e activity.Entry) any { return e.User }},
			{Key: "action", Title: "Action", Kind: grid.KindCategory, Value: func(e activity.Entry) any { return string(e.Action) }},
			{Key: "target", Title: "Target", Kind: grid.KindText, Value: func(e activity.Entry) any { return e.Target }},
			{Key: "rule_id", Title: "Rule ID", Kind: grid.KindIdentifier, Value: func(e activity.Entry) any { return e.RuleID }},
			{Key: "old_value", Title: "Old Value", Kind: grid.KindText, Value: func(e activity.Entry) any { return e.OldValue }},
			{Key: "new_value", Title: "New Value", Kind: grid.KindText, Value: func(e activity.Entry) any { return e.NewValue }},
		},
	}
}

// UsersSchema shows the user management grid.
func UsersSchema() grid.Schema[user.User] {
	return grid.Schema[user.User]{
		ID: func(u user.User) string { return u.ID },
		Columns: []grid.Column[user.User]{
			{Key: "name", Title: "Name", Kind: grid.KindText, Editable: true, Value: func(u user.User) any { return u.Name }},
			{Key: "email", Title: "Email", Kind: grid.KindText, Editable: true, Value: func(u user.User) any { return u.Email }},
			{Key: "role", Title: "Role", Kind: grid.KindCategory, Editable: true, Value: func(u user.User) any { return u.Role }},
			{Key: "active", Title: "Active", Kind: grid.KindFlag, Value: func(u user.User) any { return u.Active }},
		},
	}
}

// QueuedSchema shows the queued collateral jobs.
func QueuedSchema() grid.Schema[collateral.QueuedJob] {
	return grid.Schema[collateral.QueuedJob]{
		ID: func(j collateral.QueuedJob) string { return j.ID },
		Columns: []grid.Column[collateral.QueuedJob]{
			{Key: "job_id", Title: "Job ID", Kind: grid.KindIdentifier, Value: func(j collateral.QueuedJob) any { return j.JobID }},
			{Key: "document_name", Title: "Document", Kind: grid.KindText, Value: func(j collateral.QueuedJob) any { return j.DocumentName }},
			{Key: "collateral", Title: "Collateral", Kind: grid.KindCategory, Value: func(j collateral.QueuedJob) any { return string(j.Collateral) }},
			{Key: "requested_by", Title: "Requested By", Kind: grid.KindCategory, Value: func(j collateral.QueuedJob) any { return j.RequestedBy }},
			{Key: "queued_date", Title: "Queued", Kind: grid.KindDate, Value: func(j collateral.QueuedJob) any { return j.QueuedDate }},
			{Key: "status", Title: "Status", Kind: grid.KindCategory, Value: func(j collateral.QueuedJob) any { return j.Status }},
			{Key: "complete", Title: "Complete", Kind: grid.KindFlag, Value: func(j collateral.QueuedJob) any { return j.Complete }},
		},
	}
}

// PortfolioSchema shows the plan portfolio tracker.
func PortfolioSchema() grid.Schema[collateral.PortfolioItem] {
	return grid.Schema[collateral.PortfolioItem]{
		ID: func(p collateral.PortfolioItem) string { return p.ID },
		Columns: []grid.Column[collateral.PortfolioItem]{
			{Key: "plan_id", Title: "Plan ID", Kind: grid.KindIdentifier, Value: func(p collateral.PortfolioItem) any { return p.PlanID }},
			{Key: "plan_name", Title: "Plan Name", Kind: grid.KindText, Value: func(p collateral.PortfolioItem) any { return p.PlanName }},
			{Key: "collateral", Title: "Collateral", Kind: grid.KindCategory, Value: func(p collateral.PortfolioItem) any { return string(p.Collateral) }},
			{Key: "state", Title: "State", Kind: grid.KindCategory, Value: func(p collateral.PortfolioItem) any { return p.State }},
			{Key: "due_date", Title: "Due", Kind: grid.KindDate, Value: func(p collateral.PortfolioItem) any { return p.DueDate }},
			{Key: "status", Title: "Status", Kind: grid.KindCategory, Value: func(p collateral.PortfolioItem) any { return p.Status }},
			{Key: "on_track", Title: "On Track", Kind: grid.KindFlag, Value: func(p collateral.PortfolioItem) any { return p.OnTrack }},
		},
	}
}
