package rule

import "errors"

var (
	// ErrRuleNotFound indicates the rule doesn't exist.
	ErrRuleNotFound = errors.New("rule not found")
	// ErrRuleLocked indicates the rule is published and cannot be edited.
	ErrRuleLocked = errors.New("published rules cannot be edited")
	// ErrPublishedDelete indicates a delete selection contained a published rule.
	ErrPublishedDelete = errors.New("published rules cannot be deleted")
	// ErrNothingToPublish indicates every selected rule was already published.
	ErrNothingToPublish = errors.New("all selected rules are already published")
	// ErrUnpublishForbidden indicates an attempt to clear the published flag.
	ErrUnpublishForbidden = errors.New("published rules cannot be unpublished")
	// ErrUnknownField indicates a cell edit named a field that doesn't exist
	// or is not inline-editable.
	ErrUnknownField = errors.New("unknown or non-editable field")
	// ErrDeclined indicates the user declined the confirmation prompt.
	ErrDeclined = errors.New("action declined")
	// ErrInvalidInput indicates invalid input for rule operations.
	ErrInvalidInput = errors.New("invalid rule input")
)
