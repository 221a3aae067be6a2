package webui

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quan0401/quizz/internal/files"
	"github.com/quan0401/quizz/internal/notice"
	"github.com/quan0401/quizz/internal/provider"
	"github.com/quan0401/quizz/internal/quiz"
)

type errorResponse struct {
	Error  string         `json:"error"`
	Notice *notice.Notice `json:"notice,omitempty"`
}

type quizResponse struct {
	ID        string            `json:"id"`
	Submitted bool              `json:"submitted"`
	Score     *quiz.Score       `json:"score,omitempty"`
	Answered  int               `json:"answered"`
	Total     int               `json:"total"`
	Items     []quiz.ReviewItem `json:"items"`
}

type selectRequest struct {
	Index  int    `json:"index"`
	Option string `json:"option"`
}

type selectResponse struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

type submitResponse struct {
	Score  quiz.Score    `json:"score"`
	Notice notice.Notice `json:"notice"`
}

type generateRequest struct {
	Topic string `json:"knowledge_scope"`
	Count int    `json:"num_questions"`
}

type filesResponse struct {
	Files  []files.Record `json:"files"`
	Notice *notice.Notice `json:"notice,omitempty"`
}

type deleteResponse struct {
	Notice notice.Notice `json:"notice"`
}

func (a *App) handleAPIQuiz(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	res := quizResponse{
		ID:       a.session.ID(),
		Answered: a.session.Answered(),
		Total:    a.session.Len(),
		Items:    a.session.Review(),
	}
	if score, ok := a.session.Score(); ok {
		res.Submitted = true
		res.Score = &score
	}
	a.mu.Unlock()
	writeJSON(w, http.StatusOK, res)
}

func (a *App) handleAPISelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	a.mu.Lock()
	err := a.session.Select(req.Index, req.Option)
	res := selectResponse{Answered: a.session.Answered(), Total: a.session.Len()}
	a.mu.Unlock()

	switch {
	case errors.Is(err, quiz.ErrSubmitted):
		writeNoticeError(w, http.StatusConflict, "submitted", notice.Warning(quiz.WarnSubmitted))
	case errors.Is(err, quiz.ErrIndexOutOfRange):
		writeError(w, http.StatusBadRequest, "index_out_of_range")
	case errors.Is(err, quiz.ErrUnknownOption):
		writeError(w, http.StatusBadRequest, "unknown_option")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal_error")
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

func (a *App) handleAPISubmit(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	score, err := a.session.Submit()
	a.mu.Unlock()

	switch {
	case errors.Is(err, quiz.ErrIncomplete):
		writeNoticeError(w, http.StatusUnprocessableEntity, "incomplete", notice.Warning(quiz.WarnIncomplete))
	case errors.Is(err, quiz.ErrSubmitted):
		writeNoticeError(w, http.StatusConflict, "submitted", notice.Warning(quiz.WarnSubmitted))
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal_error")
	default:
		writeJSON(w, http.StatusOK, submitResponse{Score: score, Notice: notice.Success("Answers submitted.")})
	}
}

func (a *App) handleAPIGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	res, err := a.provider.Generate(r.Context(), req.Topic, req.Count)
	if err != nil {
		writeNoticeError(w, http.StatusBadRequest, "invalid_request", notice.Warning(provider.InputMessage(err)))
		return
	}
	a.mu.Lock()
	a.topic, a.count, a.generated = req.Topic, req.Count, res
	a.mu.Unlock()
	writeJSON(w, http.StatusOK, res)
}

func (a *App) handleAPIFiles(w http.ResponseWriter, r *http.Request) {
	res := filesResponse{}
	if n, err := a.files.Refresh(r.Context()); err != nil {
		res.Notice = &n
	}
	res.Files = a.files.Records()
	if res.Files == nil {
		res.Files = []files.Record{}
	}
	writeJSON(w, http.StatusOK, res)
}

func (a *App) handleAPIFileDelete(w http.ResponseWriter, r *http.Request) {
	id, err := fileID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	n, err := a.files.Delete(r.Context(), id)
	if err != nil {
		writeNoticeError(w, http.StatusBadGateway, "delete_failed", n)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Notice: n})
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorResponse{Error: code})
}

func writeNoticeError(w http.ResponseWriter, status int, code string, n notice.Notice) {
	writeJSON(w, status, errorResponse{Error: code, Notice: &n})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		data = []byte(`{"error":"internal_error"}`)
	}
	writeBytes(w, status, data)
}

func writeBytes(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}
