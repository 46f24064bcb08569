package mcp

import (
	"errors"
	"fmt"

	"github.com/planops/ruleboard/internal/domain/rule"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, rule.ErrRuleNotFound):
		return &APIError{Code: "RULE_NOT_FOUND", Message: "rule not found", RecoveryHint: "Check the R#### identifier"}
	case errors.Is(err, rule.ErrRuleLocked):
		return &APIError{Code: "RULE_LOCKED", Message: "published rules are read-only", RecoveryHint: "Use copy_rule to make an editable draft"}
	case errors.Is(err, rule.ErrPublishedDelete):
		return &APIError{Code: "PUBLISHED_DELETE", Message: "selection includes a published rule", RecoveryHint: "Remove published rules from the selection"}
	case errors.Is(err, rule.ErrNothingToPublish):
		return &APIError{Code: "NOTHING_TO_PUBLISH", Message: "every selected rule is already published", RecoveryHint: "Select at least one unpublished rule"}
	case errors.Is(err, rule.ErrUnknownField):
		return &APIError{Code: "UNKNOWN_FIELD", Message: "field is not inline editable", RecoveryHint: "Use save_rule_text for rich-text content"}
	case errors.Is(err, rule.ErrDeclined):
		return &APIError{Code: "DECLINED", Message: "confirmation declined", RecoveryHint: "Nothing was deleted"}
	case errors.Is(err, rule.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "invalid input", RecoveryHint: "Name and business area are required"}
	default:
		return nil
	}
}
