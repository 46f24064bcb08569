package rule

import "time"

// Status is the translation workflow status of one language's text.
type Status string

const (
	StatusDraft    Status = "Draft"
	StatusInReview Status = "In Review"
	StatusApproved Status = "Approved"
)

// Rule is one content rule: bilingual rich text plus plan metadata. ID is
// the immutable store identity; RuleID is the human-facing business
// identifier (R + 4 digits) and may be regenerated on copy.
type Rule struct {
	ID             string    `json:"id" yaml:"id"`
	RuleID         string    `json:"rule_id" yaml:"rule_id"`
	Name           string    `json:"name" yaml:"name"`
	BusinessArea   string    `json:"business_area" yaml:"business_area"`
	BenefitType    string    `json:"benefit_type" yaml:"benefit_type"`
	Template       string    `json:"template" yaml:"template"`
	CollateralType string    `json:"collateral_type" yaml:"collateral_type"`
	EnglishText    string    `json:"english_text" yaml:"english_text"`
	SpanishText    string    `json:"spanish_text" yaml:"spanish_text"`
	EnglishStatus  Status    `json:"english_status" yaml:"english_status"`
	SpanishStatus  Status    `json:"spanish_status" yaml:"spanish_status"`
	EffectiveDate  string    `json:"effective_date" yaml:"effective_date"`
	Version        string    `json:"version" yaml:"version"`
	Published      bool      `json:"published" yaml:"published"`
	CreatedBy      string    `json:"created_by" yaml:"created_by"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
	LastModified   time.Time `json:"last_modified" yaml:"last_modified"`
}
