package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planops/ruleboard/internal/domain/rule"
)

type createRuleBody struct {
	Name           string `json:"name"`
	BusinessArea   string `json:"business_area"`
	BenefitType    string `json:"benefit_type"`
	Template       string `json:"template"`
	CollateralType string `json:"collateral_type"`
	EnglishText    string `json:"english_text"`
	SpanishText    string `json:"spanish_text"`
	EffectiveDate  string `json:"effective_date"`
	User           string `json:"user"`
}

func (s *Server) handleCreateRule(w http.ResponseWriter, r *http.Request) {
	var body createRuleBody
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	created, err := s.rules.Create(r.Context(), rule.CreateRequest{
		Name:           body.Name,
		BusinessArea:   body.BusinessArea,
		BenefitType:    body.BenefitType,
		Template:       body.Template,
		CollateralType: body.CollateralType,
		EnglishText:    body.EnglishText,
		SpanishText:    body.SpanishText,
		EffectiveDate:  body.EffectiveDate,
		User:           body.User,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetRule(w http.ResponseWriter, r *http.Request) {
	found, err := s.rules.Get(r.Context(), chi.URLParam(r, "ruleID"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

type updateCellBody struct {
	Value string `json:"value"`
	User  string `json:"user"`
}

func (s *Server) handleUpdateCell(w http.ResponseWriter, r *http.Request) {
	var body updateCellBody
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	updated, err := s.rules.UpdateCell(r.Context(), rule.UpdateCellRequest{
		RuleID: chi.URLParam(r, "ruleID"),
		Field:  chi.URLParam(r, "field"),
		Value:  body.Value,
		User:   body.User,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type richTextBody struct {
	EnglishText string `json:"english_text"`
	SpanishText string `json:"spanish_text"`
	User        string `json:"user"`
}

func (s *Server) handleSaveRichText(w http.ResponseWriter, r *http.Request) {
	var body richTextBody
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	updated, err := s.rules.SaveRichText(r.Context(), rule.RichTextRequest{
		RuleID:      chi.URLParam(r, "ruleID"),
		EnglishText: body.EnglishText,
		SpanishText: body.SpanishText,
		User:        body.User,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type copyRuleBody struct {
	User string `json:"user"`
}

func (s *Server) handleCopyRule(w http.ResponseWriter, r *http.Request) {
	var body copyRuleBody
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	clone, err := s.rules.Copy(r.Context(), chi.URLParam(r, "ruleID"), body.User)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, clone)
}

type bulkBody struct {
	RuleIDs []string `json:"rule_ids"`
	User    string   `json:"user"`
}

func (s *Server) handleDeleteRules(w http.ResponseWriter, r *http.Request) {
	var body bulkBody
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	deleted, err := s.rules.Delete(r.Context(), rule.BulkRequest{RuleIDs: body.RuleIDs, User: body.User})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}

func (s *Server) handlePublishRules(w http.ResponseWriter, r *http.Request) {
	var body bulkBody
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	published, err := s.rules.Publish(r.Context(), rule.BulkRequest{RuleIDs: body.RuleIDs, User: body.User})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"published": published,
		"count":     len(published),
	})
}
