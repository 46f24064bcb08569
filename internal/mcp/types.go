package mcp

import (
	"github.com/planops/ruleboard/internal/domain/rule"
	"github.com/planops/ruleboard/internal/screens"
)

type ListScreensParams struct{}

type QueryRulesParams struct {
	TextFilters  map[string]string   `json:"text_filters,omitempty" jsonschema:"substring filters keyed by column (e.g. name, business_area)"`
	ValueFilters map[string][]string `json:"value_filters,omitempty" jsonschema:"exact-match filters keyed by column"`
	FlagFilters  map[string]string   `json:"flag_filters,omitempty" jsonschema:"boolean filters keyed by column: all, true or false"`
	SortKey      string              `json:"sort_key,omitempty" jsonschema:"column to sort by"`
	SortDesc     bool                `json:"sort_desc,omitempty" jsonschema:"sort descending"`
	Page         int                 `json:"page,omitempty" jsonschema:"1-based page number; out-of-range pages clamp"`
	PageSize     int                 `json:"page_size,omitempty" jsonschema:"rows per page"`
}

type GetRuleParams struct {
	RuleID string `json:"rule_id" jsonschema:"the R#### rule identifier"`
}

type CreateRuleParams struct {
	Name           string `json:"name"`
	BusinessArea   string `json:"business_area"`
	BenefitType    string `json:"benefit_type,omitempty"`
	Template       string `json:"template,omitempty"`
	CollateralType string `json:"collateral_type,omitempty"`
	EnglishText    string `json:"english_text,omitempty"`
	SpanishText    string `json:"spanish_text,omitempty"`
	EffectiveDate  string `json:"effective_date,omitempty"`
	User           string `json:"user,omitempty"`
}

type UpdateCellParams struct {
	RuleID string `json:"rule_id" jsonschema:"the R#### rule identifier"`
	Field  string `json:"field" jsonschema:"column key of the cell to change"`
	Value  string `json:"value"`
	User   string `json:"user,omitempty"`
}

type SaveRichTextParams struct {
	RuleID      string `json:"rule_id" jsonschema:"the R#### rule identifier"`
	EnglishText string `json:"english_text"`
	SpanishText string `json:"spanish_text"`
	User        string `json:"user,omitempty"`
}

type CopyRuleParams struct {
	RuleID string `json:"rule_id" jsonschema:"the R#### identifier of the rule to copy"`
	User   string `json:"user,omitempty"`
}

type BulkRuleParams struct {
	RuleIDs []string `json:"rule_ids" jsonschema:"R#### identifiers of the selected rules"`
	User    string   `json:"user,omitempty"`
}

type ListActivityParams struct {
	RuleID string `json:"rule_id,omitempty" jsonschema:"filter by rule identifier"`
	User   string `json:"user,omitempty" jsonschema:"filter by user"`
	Action string `json:"action,omitempty" jsonschema:"filter by action kind"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

type ExportRulesParams struct {
	QueryRulesParams
}

type QueryRulesResult struct {
	Rows       []rule.Rule `json:"rows"`
	TotalRows  int         `json:"total_rows"`
	TotalPages int         `json:"total_pages"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
}

type DeleteResult struct {
	Deleted int `json:"deleted"`
}

type PublishResult struct {
	Published []rule.Rule `json:"published"`
	Count     int         `json:"count"`
}

type ExportResult struct {
	Filename string `json:"filename"`
	CSV      string `json:"csv"`
}

type ListScreensResult struct {
	Screens []screens.Info `json:"screens"`
}
