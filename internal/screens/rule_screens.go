package screens

import (
	"github.com/planops/ruleboard/internal/grid"
	"github.com/planops/ruleboard/internal/domain/rule"
)

// RuleSchema is the full rule column configuration; the rule-backed screens
// show ordered subsets of it.
func RuleSchema() grid.Schema[rule.Rule] {
	return grid.Schema[rule.Rule]{
		ID: func(r rule.Rule) string { return r.ID },
		Columns: []grid.Column[rule.Rule]{
			{Key: "rule_id", Title: "Rule ID", Kind: grid.KindIdentifier, Value: func(r rule.Rule) any { return r.RuleID }},
			{Key: "name", Title: "Rule Name", Kind: grid.KindText, Editable: true, Value: func(r rule.Rule) any { return r.Name }},
			{Key: "business_area", Title: "Business Area", Kind: grid.KindCategory, Editable: true, Value: func(r rule.Rule) any { return r.BusinessArea }},
			{Key: "benefit_type", Title: "Benefit Type", Kind: grid.KindCategory, Editable: true, Value: func(r rule.Rule) any { return r.BenefitType }},
			{Key: "template", Title: "Template", Kind: grid.KindCategory, Editable: true, Value: func(r rule.Rule) any { return r.Template }},
			{Key: "collateral_type", Title: "Collateral", Kind: grid.KindCategory, Value: func(r rule.Rule) any { return r.CollateralType }},
			{Key: "english_text", Title: "English Content", Kind: grid.KindRichText, Editable: true, Value: func(r rule.Rule) any { return r.EnglishText }},
			{Key: "spanish_text", Title: "Spanish Content", Kind: grid.KindRichText, Editable: true, Value: func(r rule.Rule) any { return r.SpanishText }},
			{Key: "english_status", Title: "English Status", Kind: grid.KindCategory, Editable: true, Value: func(r rule.Rule) any { return string(r.EnglishStatus) }},
			{Key: "spanish_status", Title: "Spanish Status", Kind: grid.KindCategory, Editable: true, Value: func(r rule.Rule) any { return string(r.SpanishStatus) }},
			{Key: "effective_date", Title: "Effective Date", Kind: grid.KindDate, Editable: true, Value: func(r rule.Rule) any { return r.EffectiveDate }},
			{Key: "version", Title: "Version", Kind: grid.KindComputed, Value: func(r rule.Rule) any { return r.Version }},
			{Key: "published", Title: "Published", Kind: grid.KindFlag, Value: func(r rule.Rule) any { return r.Published }},
			{Key: "created_by", Title: "Created By", Kind: grid.KindComputed, Value: func(r rule.Rule) any { return r.CreatedBy }},
			{Key: "last_modified", Title: "Last Modified", Kind: grid.KindComputed, Value: func(r rule.Rule) any { return r.LastModified.Format("01/02/2006 15:04") }},
		},
	}
}

// RuleGridSchema is the main editing grid.
func RuleGridSchema() grid.Schema[rule.Rule] {
	return RuleSchema()
}

// PublishSchema is the release-focused view.
func PublishSchema() grid.Schema[rule.Rule] {
	return subset(RuleSchema(),
		"rule_id", "name", "business_area", "collateral_type",
		"effective_date", "version", "published", "last_modified")
}

// CollaborateSchema is the translation-workflow view.
func CollaborateSchema() grid.Schema[rule.Rule] {
	return subset(RuleSchema(),
		"rule_id", "name", "english_text", "spanish_text",
		"english_status", "spanish_status", "last_modified")
}
