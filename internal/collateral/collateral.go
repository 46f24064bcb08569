// Package collateral defines the output document categories and the
// document records picked on the Generate screen. The per-collateral-type
// column schemas are a looked-up table rather than branching code, so
// adding a collateral type means adding a row here.
package collateral

import "github.com/planops/ruleboard/internal/grid"

// Type is a category of output document.
type Type string

const (
	TypeANOC      Type = "Medicare ANOC"
	TypeEOC       Type = "Medicare EOC"
	TypeSB        Type = "Summary of Benefits"
	TypePortfolio Type = "Portfolio"
)

// Types lists the known collateral types in picker order.
func Types() []Type {
	return []Type{TypeANOC, TypeEOC, TypeSB, TypePortfolio}
}

// Document is one pickable plan document on the Generate screen.
type Document struct {
	ID         string `json:"id" yaml:"id"`
	DocumentID string `json:"document_id" yaml:"document_id"`
	Name       string `json:"name" yaml:"name"`
	Collateral Type   `json:"collateral" yaml:"collateral"`
	PlanType   string `json:"plan_type" yaml:"plan_type"`
	ContractID string `json:"contract_id" yaml:"contract_id"`
	PBP        string `json:"pbp" yaml:"pbp"`
	PlanYear   string `json:"plan_year" yaml:"plan_year"`
	State      string `json:"state" yaml:"state"`
	County     string `json:"county" yaml:"county"`
	Status     string `json:"status" yaml:"status"`
	Queued     bool   `json:"queued" yaml:"queued"`
}

// QueuedJob is one row of the Queued Collateral screen.
type QueuedJob struct {
	ID           string `json:"id" yaml:"id"`
	JobID        string `json:"job_id" yaml:"job_id"`
	DocumentName string `json:"document_name" yaml:"document_name"`
	Collateral   Type   `json:"collateral" yaml:"collateral"`
	RequestedBy  string `json:"requested_by" yaml:"requested_by"`
	QueuedDate   string `json:"queued_date" yaml:"queued_date"`
	Status       string `json:"status" yaml:"status"`
	Complete     bool   `json:"complete" yaml:"complete"`
}

// PortfolioItem is one row of the Portfolio screen.
type PortfolioItem struct {
	ID         string `json:"id" yaml:"id"`
	PlanID     string `json:"plan_id" yaml:"plan_id"`
	PlanName   string `json:"plan_name" yaml:"plan_name"`
	Collateral Type   `json:"collateral" yaml:"collateral"`
	State      string `json:"state" yaml:"state"`
	DueDate    string `json:"due_date" yaml:"due_date"`
	Status     string `json:"status" yaml:"status"`
	OnTrack    bool   `json:"on_track" yaml:"on_track"`
}

// baseDocumentColumns are shared by every picker schema.
func baseDocumentColumns() []grid.Column[Document] {
	return []grid.Column[Document]{
		{Key: "document_id", Title: "Document ID", Kind: grid.KindIdentifier, Value: func(d Document) any { return d.DocumentID }},
		{Key: "name", Title: "Document Name", Kind: grid.KindText, Value: func(d Document) any { return d.Name }},
		{Key: "plan_year", Title: "Plan Year", Kind: grid.KindCategory, Value: func(d Document) any { return d.PlanYear }},
		{Key: "status", Title: "Status", Kind: grid.KindCategory, Value: func(d Document) any { return d.Status }},
		{Key: "queued", Title: "Queued", Kind: grid.KindFlag, Value: func(d Document) any { return d.Queued }},
	}
}

// pickerColumns maps each collateral type to the extra columns its document
// picker shows. Medicare collateral identifies plans by contract/PBP;
// portfolio collateral is sliced geographically.
var pickerColumns = map[Type][]grid.Column[Document]{
	TypeANOC: {
		{Key: "contract_id", Title: "Contract ID", Kind: grid.KindCategory, Value: func(d Document) any { return d.ContractID }},
		{Key: "pbp", Title: "PBP", Kind: grid.KindCategory, Value: func(d Document) any { return d.PBP }},
	},
	TypeEOC: {
		{Key: "contract_id", Title: "Contract ID", Kind: grid.KindCategory, Value: func(d Document) any { return d.ContractID }},
		{Key: "pbp", Title: "PBP", Kind: grid.KindCategory, Value: func(d Document) any { return d.PBP }},
		{Key: "plan_type", Title: "Plan Type", Kind: grid.KindCategory, Value: func(d Document) any { return d.PlanType }},
	},
	TypeSB: {
		{Key: "plan_type", Title: "Plan Type", Kind: grid.KindCategory, Value: func(d Document) any { return d.PlanType }},
	},
	TypePortfolio: {
		{Key: "state", Title: "State", Kind: grid.KindCategory, Value: func(d Document) any { return d.State }},
		{Key: "county", Title: "County", Kind: grid.KindCategory, Value: func(d Document) any { return d.County }},
	},
}

// PickerSchema returns the document-picker column schema for a collateral
// type. Unknown types get the base columns only.
func PickerSchema(t Type) grid.Schema[Document] {
	cols := baseDocumentColumns()
	cols = append(cols, pickerColumns[t]...)
	return grid.Schema[Document]{
		Columns: cols,
		ID:      func(d Document) string { return d.ID },
	}
}
