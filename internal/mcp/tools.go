package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blackwell-systems/lettergrade/internal/engine"
	"github.com/blackwell-systems/lettergrade/internal/lexicon"
)

// AnalyseArgs are the arguments of the analyse_cover_letter tool.
type AnalyseArgs struct {
	Text    string `json:"text"`
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
}

// RoleEntry is one role in the list_roles result.
type RoleEntry struct {
	Name     string `json:"name"`
	Keywords int    `json:"keywords"`
}

// RolesResult is the list_roles result.
type RolesResult struct {
	Roles []RoleEntry `json:"roles"`
}

var (
	noArgsSchema   = json.RawMessage(`{"type":"object","properties":{},"additionalProperties":false}`)
	analyseSchema  = json.RawMessage(`{"type":"object","properties":{"text":{"type":"string","description":"Full cover letter text"},"role":{"type":"string","description":"Target role name, see list_roles"},"company":{"type":"string","description":"Company the letter is addressed to"}},"required":["text"],"additionalProperties":false}`)
	errMissingText = errors.New("text is required")
)

// addTools registers the tool handlers on s.
func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "analyse_cover_letter",
		Description: "Score a cover letter on structure, keywords, personalisation, action verbs and readability; returns red flags and up to five recommendations.",
		InputSchema: analyseSchema,
		Handler:     s.handleAnalyse,
	})
	s.registerTool(toolDef{
		Name:        "list_roles",
		Description: "Role names accepted by analyse_cover_letter, with their role-specific keyword counts.",
		InputSchema: noArgsSchema,
		Handler:     s.handleListRoles,
	})
}

func (s *Server) handleAnalyse(raw json.RawMessage) (any, error) {
	var args AnalyseArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	// The engine scores empty text fine, but a caller sending none has
	// almost certainly lost the letter on the way in.
	if strings.TrimSpace(args.Text) == "" {
		return nil, errMissingText
	}
	if err := engine.CheckInput(args.Text, s.maxInputChars); err != nil {
		return nil, err
	}
	analysis, err := s.engine.AnalyseNamed(args.Text, args.Role, args.Company)
	if err != nil {
		return nil, err
	}
	return analysis, nil
}

func (s *Server) handleListRoles(json.RawMessage) (any, error) {
	lex := s.engine.Lexicon()
	res := RolesResult{Roles: make([]RoleEntry, 0, len(lexicon.Roles()))}
	for _, r := range lexicon.Roles() {
		res.Roles = append(res.Roles, RoleEntry{Name: r.String(), Keywords: len(lex.RoleKeywords[r])})
	}
	return res, nil
}
