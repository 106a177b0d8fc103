package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/blackwell-systems/lettergrade/internal/engine"
	"github.com/blackwell-systems/lettergrade/internal/lexicon"
)

// maxBodyBytes caps request bodies before JSON decoding.
const maxBodyBytes = 4 << 20

// AnalyseRequest is the body of POST /api/v1/analyse.
type AnalyseRequest struct {
	Text    string `json:"text" binding:"required"`
	Role    string `json:"role" binding:"max=100"`
	Company string `json:"company" binding:"max=200"`
}

// RoleEntry is one role in the GET /api/v1/roles response.
type RoleEntry struct {
	Name     string `json:"name"`
	Keywords int    `json:"keywords"`
}

// ErrorBody is the standard error object.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorBody.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "version": s.version})
}

func (s *Server) handleAnalyse(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var req AnalyseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.reject(c, http.StatusRequestEntityTooLarge, "input_too_large", "request body too large")
			return
		}
		s.reject(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.reject(c, http.StatusBadRequest, "invalid_request", "text is required")
		return
	}
	if err := engine.CheckInput(req.Text, s.maxInputChars); err != nil {
		s.reject(c, http.StatusRequestEntityTooLarge, "input_too_large", err.Error())
		return
	}

	analysis, err := s.engine.AnalyseNamed(req.Text, req.Role, req.Company)
	if err != nil {
		if errors.Is(err, lexicon.ErrUnknownRole) {
			s.reject(c, http.StatusBadRequest, "unknown_role", err.Error())
			return
		}
		s.log.Error("analysis failed", zap.String("request_id", RequestIDFromContext(c)), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "internal", "analysis failed")
		return
	}

	s.metrics.observeAnalysis(analysis.Classification.Label, analysis.OverallPercentage)
	c.JSON(http.StatusOK, analysis)
}

func (s *Server) handleRoles(c *gin.Context) {
	lex := s.engine.Lexicon()
	roles := make([]RoleEntry, 0, len(lexicon.Roles()))
	for _, r := range lexicon.Roles() {
		roles = append(roles, RoleEntry{Name: r.String(), Keywords: len(lex.RoleKeywords[r])})
	}
	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

// reject counts a refused analyse request and writes the error response.
func (s *Server) reject(c *gin.Context, status int, code, message string) {
	s.metrics.observeRejected(code)
	s.log.Debug("analyse request rejected",
		zap.String("request_id", RequestIDFromContext(c)),
		zap.String("code", code),
		zap.String("message", message),
	)
	respondError(c, status, code, message)
}
