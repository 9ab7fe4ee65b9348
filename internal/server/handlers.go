package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/fitverse/internal/library"
	"github.com/claude/fitverse/internal/profile"
	"github.com/claude/fitverse/internal/session"
	"github.com/claude/fitverse/internal/templates"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// --- Session lifecycle ---

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)
	if err := s.sessions.Start(userID); err != nil {
		writeSessionError(w, err)
		return
	}
	s.handleActiveWorkout(w, r)
}

func (s *Server) handleStartFromTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TemplateID string `json:"template_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	tpl, ok := templates.Find(req.TemplateID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}

	userID := userIDFromContext(r)
	if err := s.sessions.StartFromTemplate(userID, tpl); err != nil {
		writeSessionError(w, err)
		return
	}
	s.handleActiveWorkout(w, r)
}

func (s *Server) handleActiveWorkout(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Session(userIDFromContext(r))
	active, ok := sess.Active()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"active": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"active":        true,
		"workout":       active,
		"elapsed_sec":   sess.Elapsed(),
		"timer_running": sess.TimerRunning(),
	})
}

func (s *Server) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExerciseID string `json:"exercise_id"`
		Name       string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if req.ExerciseID == "" {
		req.ExerciseID = uuid.NewString()
	}

	sess := s.sessions.Session(userIDFromContext(r))
	if err := sess.AddExercise(req.ExerciseID, req.Name); err != nil {
		writeSessionError(w, err)
		return
	}
	s.handleActiveWorkout(w, r)
}

func (s *Server) handleAddSet(w http.ResponseWriter, r *http.Request) {
	exerciseIdx, err := indexParam(r, "exercise")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sess := s.sessions.Session(userIDFromContext(r))
	if err := sess.AddSet(exerciseIdx); err != nil {
		writeSessionError(w, err)
		return
	}
	s.handleActiveWorkout(w, r)
}

func (s *Server) handleUpdateSet(w http.ResponseWriter, r *http.Request) {
	exerciseIdx, err := indexParam(r, "exercise")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	setIdx, err := indexParam(r, "set")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var patch session.SetPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	sess := s.sessions.Session(userIDFromContext(r))
	if err := sess.UpdateSet(exerciseIdx, setIdx, patch); err != nil {
		writeSessionError(w, err)
		return
	}
	s.handleActiveWorkout(w, r)
}

func (s *Server) handleRemoveSet(w http.ResponseWriter, r *http.Request) {
	exerciseIdx, err := indexParam(r, "exercise")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	setIdx, err := indexParam(r, "set")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sess := s.sessions.Session(userIDFromContext(r))
	if err := sess.RemoveSet(exerciseIdx, setIdx); err != nil {
		writeSessionError(w, err)
		return
	}
	s.handleActiveWorkout(w, r)
}

func (s *Server) handlePauseTimer(w http.ResponseWriter, r *http.Request) {
	s.sessions.Pause(userIDFromContext(r))
	s.handleActiveWorkout(w, r)
}

func (s *Server) handleResumeTimer(w http.ResponseWriter, r *http.Request) {
	s.sessions.Resume(userIDFromContext(r))
	s.handleActiveWorkout(w, r)
}

func (s *Server) handleSetPhoto(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PhotoURL string `json:"photo_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.sessions.Session(userIDFromContext(r)).SetPhoto(req.PhotoURL)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFinish(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PhotoURL string `json:"photo_url"`
	}
	// Body is optional for finish.
	_ = json.NewDecoder(r.Body).Decode(&req)

	userID := userIDFromContext(r)
	finished, err := s.sessions.Finish(r.Context(), userID, req.PhotoURL)
	if err != nil {
		s.log.Error("finish failed", "user", userID, "error", err)
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, finished)
}

func (s *Server) handleDiscard(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Discard(userIDFromContext(r)); err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "discarded"})
}

// --- History, records, aggregates ---

func (s *Server) handleQueryWorkouts(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	workouts, err := s.db.QueryWorkouts(r.Context(), userIDFromContext(r), start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	workoutID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}

	detail, err := s.db.GetWorkout(r.Context(), userIDFromContext(r), workoutID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if detail == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	bests, err := s.db.ListBests(r.Context(), userIDFromContext(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, bests)
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)

	stats, err := s.db.GetUserStats(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	streak, err := s.db.Streak(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	weekly, err := s.db.GetWeeklySummary(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"lifetime":  stats,
		"streak":    streak,
		"this_week": weekly,
	})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, templates.All())
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, library.All())
}

// --- Profile ---

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, ok, err := s.db.GetProfile(r.Context(), userIDFromContext(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "profile not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"profile": p,
		"targets": profile.CalcTargets(p),
	})
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var p profile.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	p.UserID = userIDFromContext(r)

	if err := s.db.UpsertProfile(r.Context(), p); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"profile": p,
		"targets": profile.CalcTargets(p),
	})
}

// --- Helpers ---

// writeSessionError maps session errors to HTTP responses: validation
// failures are client errors with an actionable message, a busy finish
// is a conflict, anything else is a server error.
func writeSessionError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrWorkoutActive),
		errors.Is(err, session.ErrFinishInProgress):
		status = http.StatusConflict
	case errors.Is(err, session.ErrNoActiveWorkout),
		errors.Is(err, session.ErrNoExercises),
		errors.Is(err, session.ErrNoCompletedSets),
		errors.Is(err, session.ErrIndexOutOfRange),
		errors.Is(err, session.ErrLastSet):
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func indexParam(r *http.Request, name string) (int, error) {
	idx, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, errors.New("invalid " + name + " index")
	}
	return idx, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" {
		// Default: last 30 days
		end = time.Now()
		start = end.AddDate(0, 0, -30)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}
	return
}
