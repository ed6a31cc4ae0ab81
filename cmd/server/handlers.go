package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/studypal/engine/internal/classify"
	"github.com/studypal/engine/internal/feedback"
	"github.com/studypal/engine/internal/studyplan"
	"github.com/studypal/engine/internal/textproc"
)

// newMux wires the thin HTTP layer over the engine. Handlers only decode
// input, call the service, and encode the structured result.
func newMux(a *app) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)

	mux.HandleFunc("POST /api/quiz/generate", a.handleGenerateQuiz)
	mux.HandleFunc("POST /api/progress/attempts", a.handleLogAttempt)
	mux.HandleFunc("GET /api/progress/{user}/stats", a.handleStats)
	mux.HandleFunc("GET /api/progress/{user}/path", a.handleLearningPath)
	mux.HandleFunc("GET /api/progress/{user}/dashboard", a.handleDashboard)
	mux.HandleFunc("GET /api/resources/suggest", a.handleSuggestResources)
	mux.HandleFunc("POST /api/feedback", a.handleFeedback)
	mux.HandleFunc("POST /api/summarize", a.handleSummarize)
	mux.HandleFunc("POST /api/studyplan", a.handleStudyPlan)
	mux.HandleFunc("GET /ws/events", a.handleEventFeed)
	return mux
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (a *app) handleReadyz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !a.classifier.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"degraded","classifier":"untrained"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

func (a *app) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text         string `json:"text"`
		Topic        string `json:"topic"`
		MaxQuestions int    `json:"max_questions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	questions, err := a.generator.Generate(req.Text, req.Topic, req.MaxQuestions)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"topic":         req.Topic,
		"num_questions": len(questions),
		"questions":     questions,
	})
}

func (a *app) handleLogAttempt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID     string `json:"user_id"`
		Topic      string `json:"topic"`
		Difficulty string `json:"difficulty"`
		Correct    bool   `json:"correct"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := a.progress.LogResult(r.Context(), req.UserID, req.Topic, req.Difficulty, req.Correct); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "logged"})
}

func (a *app) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.progress.Stats(r.Context(), r.PathValue("user"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (a *app) handleLearningPath(w http.ResponseWriter, r *http.Request) {
	profile, err := a.progress.Recommend(r.Context(), r.PathValue("user"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (a *app) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := a.progress.UserDashboard(r.Context(), r.PathValue("user"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (a *app) handleSuggestResources(w http.ResponseWriter, r *http.Request) {
	topN := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := parsePositiveInt(v); err == nil {
			topN = n
		}
	}
	suggestions := a.suggester.Suggest(r.URL.Query().Get("q"), topN)
	writeJSON(w, http.StatusOK, map[string]any{"resources": suggestions})
}

func (a *app) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Accuracy float64 `json:"accuracy"`
		Subject  string  `json:"subject"`
		Text     string  `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp := map[string]any{
		"level":   feedback.Bucket(req.Accuracy),
		"message": a.feedback.Generate(req.Accuracy, req.Subject),
	}
	if req.Text != "" {
		resp["tips"] = feedback.StudyTips(req.Text, req.Subject, 3)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *app) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text         string `json:"text"`
		MaxSentences int    `json:"max_sentences"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	summary := textproc.Summarize(req.Text, req.MaxSentences)
	writeJSON(w, http.StatusOK, map[string]any{
		"summary": summary,
		"stats":   textproc.SummaryStatsFor(req.Text, summary),
	})
}

func (a *app) handleStudyPlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Subject    string  `json:"subject"`
		TotalHours float64 `json:"total_hours"`
		Difficulty string  `json:"difficulty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}

	difficulty, err := classify.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	plan, err := studyplan.Generate(req.Subject, req.TotalHours, difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// handleEventFeed streams logged quiz attempts to a websocket client until
// the client goes away.
func (a *app) handleEventFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	events, cancel := a.hub.Subscribe()
	defer cancel()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "server shutting down")
			return
		case attempt, ok := <-events:
			if !ok {
				return
			}
			if err := wsjson.Write(ctx, conn, attempt); err != nil {
				return
			}
		}
	}
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("value must be positive, got %d", n)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encoding failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
