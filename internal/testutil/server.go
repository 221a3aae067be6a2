package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/quan0401/quizz/pkg/backend"
)

// FakeBackend is an in-memory stand-in for the remote question and file service.
// Zero HTTP status fields mean 200; empty status fields mean "success".
type FakeBackend struct {
	mu sync.Mutex

	faqs          []backend.FAQ
	faqStatus     string
	faqHTTPStatus int
	faqRequests   []backend.CreateFAQRequest

	files          []backend.File
	listStatus     string
	listHTTPStatus int

	deleteStatus     string
	deleteHTTPStatus int
	deleted          []string
}

// BackendInstance represents a running fake service.
type BackendInstance struct {
	BaseURL string
	Fake    *FakeBackend
	Close   func()
}

// StartBackend launches the fake service on a local test server.
func StartBackend(t testing.TB) *BackendInstance {
	t.Helper()
	fake := NewFakeBackend()
	server := httptest.NewServer(fake.Handler())
	t.Cleanup(server.Close)
	return &BackendInstance{
		BaseURL: server.URL,
		Fake:    fake,
		Close:   server.Close,
	}
}

// NewFakeBackend returns a fake that answers generation requests with SampleFAQs.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{faqs: SampleFAQs()}
}

// SampleFAQs returns two well-formed generated questions.
func SampleFAQs() []backend.FAQ {
	return []backend.FAQ{
		{Question: "What is 2+2?", RightAnswer: "4", WrongAnswer1: "3", WrongAnswer2: "5", WrongAnswer3: "22"},
		{Question: "Capital of France?", RightAnswer: "Paris", WrongAnswer1: "Rome", WrongAnswer2: "Berlin", WrongAnswer3: "Madrid"},
	}
}

// SetFAQs replaces the generation response body.
func (f *FakeBackend) SetFAQs(status string, faqs []backend.FAQ) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faqStatus, f.faqs = status, faqs
}

// FailFAQ makes generation answer with the given HTTP status.
func (f *FakeBackend) FailFAQ(httpStatus int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faqHTTPStatus = httpStatus
}

// SetFiles replaces the stored documents.
func (f *FakeBackend) SetFiles(files ...backend.File) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files = slices.Clone(files)
}

// SetListStatus sets the body status and HTTP status for listing.
func (f *FakeBackend) SetListStatus(status string, httpStatus int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listStatus, f.listHTTPStatus = status, httpStatus
}

// SetDeleteStatus sets the body status and HTTP status for deletion.
func (f *FakeBackend) SetDeleteStatus(status string, httpStatus int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteStatus, f.deleteHTTPStatus = status, httpStatus
}

// Files returns the documents still stored.
func (f *FakeBackend) Files() []backend.File {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.files)
}

// FAQRequests returns every generation request received.
func (f *FakeBackend) FAQRequests() []backend.CreateFAQRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.faqRequests)
}

// Deleted returns the identifiers deleted successfully.
func (f *FakeBackend) Deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.deleted)
}

// Handler routes the service paths.
func (f *FakeBackend) Handler() http.Handler {
	router := mux.NewRouter().UseEncodedPath()
	router.HandleFunc(backend.PathCreateFAQ, f.handleCreateFAQ).Methods(http.MethodPost)
	router.HandleFunc(backend.PathListFiles, f.handleListFiles).Methods(http.MethodGet)
	router.HandleFunc(backend.PathDeleteFile+"{id}", f.handleDeleteFile).Methods(http.MethodDelete)
	return router
}

func (f *FakeBackend) handleCreateFAQ(w http.ResponseWriter, r *http.Request) {
	var req backend.CreateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, backend.StatusResponse{Status: "error"})
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faqRequests = append(f.faqRequests, req)
	writeJSON(w, f.faqHTTPStatus, backend.CreateFAQResponse{
		Status: statusOrSuccess(f.faqStatus),
		FAQs:   f.faqs,
	})
}

func (f *FakeBackend) handleListFiles(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, f.listHTTPStatus, backend.ListFilesResponse{
		Status: statusOrSuccess(f.listStatus),
		Files:  slices.Clone(f.files),
	})
}

func (f *FakeBackend) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	id, err := url.PathUnescape(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, backend.StatusResponse{Status: "error"})
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	status := statusOrSuccess(f.deleteStatus)
	if f.deleteHTTPStatus != 0 && f.deleteHTTPStatus != http.StatusOK {
		writeJSON(w, f.deleteHTTPStatus, backend.StatusResponse{Status: "error"})
		return
	}
	if status == backend.StatusSuccess {
		idx := slices.IndexFunc(f.files, func(file backend.File) bool { return file.ID == id })
		if idx < 0 {
			writeJSON(w, http.StatusOK, backend.StatusResponse{Status: "not_found"})
			return
		}
		f.files = slices.Delete(f.files, idx, idx+1)
		f.deleted = append(f.deleted, id)
	}
	writeJSON(w, http.StatusOK, backend.StatusResponse{Status: status})
}

func statusOrSuccess(status string) string {
	if status == "" {
		return backend.StatusSuccess
	}
	return status
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
