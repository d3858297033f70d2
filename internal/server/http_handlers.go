package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"talentscout/internal/candidate"
	"talentscout/internal/conversation"
	talentscoutErrors "talentscout/internal/errors"
	"talentscout/internal/export"
)

// createSessionHandler allocates a new interview session.
func (s *Server) createSessionHandler(w http.ResponseWriter, r *http.Request) {
	session, err := s.Sessions.Create()
	if err != nil {
		s.Logger.LogError(err, "Failed to create session")
		writeErrorResponse(w, "Session limit reached", "Try again later", http.StatusServiceUnavailable)
		return
	}

	s.Logger.Info("Session created", "session_id", session.ID)
	writeJSONResponse(w, http.StatusCreated, SessionResponse{
		SessionID: session.ID,
		State:     string(session.Engine.State()),
	})
}

// messageHandler feeds one candidate utterance to a session's engine.
func (s *Server) messageHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req MessageRequest
	if err := parseJSONRequest(r, &req); err != nil {
		writeErrorResponse(w, "Invalid request", err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeErrorResponse(w, "Invalid request", "message must not be empty", http.StatusBadRequest)
		return
	}

	session.Lock()
	defer session.Unlock()

	engine := session.Engine
	stateBefore := engine.State()
	endedBefore := engine.Ended()

	reply := engine.Respond(r.Context(), req.Message)

	if s.Metrics != nil {
		s.Metrics.MessagesProcessed.WithLabelValues(string(stateBefore)).Inc()
		if engine.State() == conversation.StateCompleted && stateBefore != conversation.StateCompleted {
			s.Metrics.SessionsCompleted.Inc()
		}
		if engine.Ended() && !endedBefore {
			s.Metrics.SessionsEnded.Inc()
		}
	}

	writeJSONResponse(w, http.StatusOK, MessageResponse{
		Reply: reply,
		State: string(engine.State()),
		Ended: engine.Ended(),
	})
}

// getSessionHandler returns a snapshot of the collected candidate data.
// Field values pass through input sanitization before display.
func (s *Server) getSessionHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	engine := session.Engine
	record := engine.Record()

	fields := make([]map[string]string, 0)
	for _, field := range record.Fields() {
		fields = append(fields, map[string]string{
			"key":   field.Key,
			"value": candidate.SanitizeInput(field.Value),
		})
	}

	response := map[string]any{
		"session_id":       session.ID,
		"state":            string(engine.State()),
		"ended":            engine.Ended(),
		"created_at":       session.CreatedAt.Format(time.RFC3339),
		"fields":           fields,
		"completed_fields": record.CompletedFieldCount(),
	}

	validation := make(map[string]bool)
	if record.Email != "" {
		validation["email"] = candidate.ValidateEmail(record.Email)
	}
	if record.Phone != "" {
		validation["phone"] = candidate.ValidatePhone(record.Phone)
	}
	if len(validation) > 0 {
		response["validation"] = validation
	}
	if record.Experience != "" {
		if years, ok := candidate.ExtractYearsOfExperience(record.Experience); ok {
			response["experience_years"] = years
		}
	}
	if record.TechStack != "" {
		response["tech_profile"] = candidate.FormatTechStackDisplay(record.TechStack)
	}
	if questions := engine.Questions(); len(questions) > 0 {
		qs := make([]map[string]string, 0, len(questions))
		for _, q := range questions {
			qs = append(qs, map[string]string{
				"question":   q,
				"difficulty": candidate.ClassifyDifficulty(q, record.TechStack),
			})
		}
		response["questions"] = qs
	}
	if engine.State() == conversation.StateCompleted {
		response["summary"] = export.GenerateSummary(*record)
	}

	writeJSONResponse(w, http.StatusOK, response)
}

// resetSessionHandler discards a session's progress, keeping its ID.
func (s *Server) resetSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	session, err := s.Sessions.Reset(id)
	if err != nil {
		writeErrorResponse(w, "Session not found", "No session with the given ID", http.StatusNotFound)
		return
	}

	s.Logger.Info("Session reset", "session_id", id)
	writeJSONResponse(w, http.StatusOK, SessionResponse{
		SessionID: session.ID,
		State:     string(session.Engine.State()),
	})
}

// deleteSessionHandler removes a session.
func (s *Server) deleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.Sessions.Delete(id); err != nil {
		writeErrorResponse(w, "Session not found", "No session with the given ID", http.StatusNotFound)
		return
	}

	s.Logger.Info("Session deleted", "session_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// exportHandler serializes the candidate record in the requested format.
func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = s.AppConfig.AppSettings().DefaultFormat
	}

	session.Lock()
	record := *session.Engine.Record()
	session.Unlock()

	data, err := export.Export(record, format)
	if err != nil {
		var appErr *talentscoutErrors.AppError
		if errors.As(err, &appErr) && appErr.Code == talentscoutErrors.ErrCodeUnsupportedFormat {
			writeErrorResponse(w, "Unsupported format",
				fmt.Sprintf("supported formats: %s", strings.Join(export.SupportedFormats, ", ")),
				http.StatusBadRequest)
			return
		}
		s.Logger.LogError(err, "Export failed", "session_id", session.ID, "format", format)
		writeErrorResponse(w, "Export failed", "Internal error", http.StatusInternalServerError)
		return
	}

	if s.Metrics != nil {
		s.Metrics.Exports.WithLabelValues(strings.ToLower(format)).Inc()
	}

	filename := fmt.Sprintf("candidate_%s.%s", time.Now().Format("20060102_150405"), strings.ToLower(format))
	if strings.EqualFold(format, "csv") {
		w.Header().Set("Content-Type", "text/csv")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := io.WriteString(w, data); err != nil {
		log.Printf("Failed to write export response: %v", err)
	}
}

// scoreHandler computes the completion and quality score for a session.
func (s *Server) scoreHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	session.Lock()
	record := *session.Engine.Record()
	session.Unlock()

	writeJSONResponse(w, http.StatusOK, export.ScoreInterview(record))
}

// healthHandler reports service and AI model status. A missing or unreachable
// model degrades the status without failing the check, since interviews still
// run on local fallbacks.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":  "healthy",
		"service": "talentscout",
		"version": s.Version,
		"sessions": map[string]any{
			"active": s.Sessions.Count(),
		},
	}

	if s.Provider == nil {
		response["ai"] = map[string]any{
			"available": false,
			"mode":      "fallback",
		}
	} else {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		info := s.Provider.GetModelInfo(ctx)
		response["ai"] = info
		if !info.Available {
			response["status"] = "degraded"
		}
	}

	writeJSONResponse(w, http.StatusOK, response)
}

// statsHandler exposes operational counters and effective configuration.
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"service":        "talentscout",
		"version":        s.Version,
		"uptime_seconds": int64(time.Since(s.startTime).Seconds()),
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
		"sessions": map[string]any{
			"active": s.Sessions.Count(),
			"max":    s.AppConfig.Server.Session.MaxSessions,
			"ttl":    s.AppConfig.Server.Session.TTL.String(),
		},
		"interview": map[string]any{
			"max_questions": s.AppConfig.InterviewSettings().MaxQuestions,
		},
		"ai": map[string]any{
			"provider": s.AppConfig.AI.Provider,
			"model":    s.AppConfig.AI.Model,
			"fallback": s.Provider == nil,
		},
	}

	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	writeJSONResponse(w, http.StatusOK, response)
}

// lookupSession resolves the {id} path segment, writing a 404 on miss.
func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	session, err := s.Sessions.Get(r.PathValue("id"))
	if err != nil {
		writeErrorResponse(w, "Session not found", "No session with the given ID", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

func writeJSONResponse(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}
