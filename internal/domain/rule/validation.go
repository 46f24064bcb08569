package rule

import "strings"

// editableFields names the fields an inline cell edit may touch. RuleID and
// the computed/timestamp fields are never inline-editable; the bilingual
// text fields go through the rich-text dialog path instead, and Published
// only moves through Publish.
var editableFields = map[string]func(*Rule, string){
	"name":           func(r *Rule, v string) { r.Name = v },
	"business_area":  func(r *Rule, v string) { r.BusinessArea = v },
	"benefit_type":   func(r *Rule, v string) { r.BenefitType = v },
	"template":       func(r *Rule, v string) { r.Template = v },
	"effective_date": func(r *Rule, v string) { r.EffectiveDate = v },
	"english_status": func(r *Rule, v string) { r.EnglishStatus = Status(v) },
	"spanish_status": func(r *Rule, v string) { r.SpanishStatus = Status(v) },
}

// fieldValue reads the current value of an editable field, for activity
// logging of old/new pairs.
func fieldValue(r *Rule, field string) string {
	switch field {
	case "name":
		return r.Name
	case "business_area":
		return r.BusinessArea
	case "benefit_type":
		return r.BenefitType
	case "template":
		return r.Template
	case "effective_date":
		return r.EffectiveDate
	case "english_status":
		return string(r.EnglishStatus)
	case "spanish_status":
		return string(r.SpanishStatus)
	default:
		return ""
	}
}

// ValidateCreateInput validates fields required to create a rule.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(req.BusinessArea) == "" {
		return ErrInvalidInput
	}
	return nil
}
