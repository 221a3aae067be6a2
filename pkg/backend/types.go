// Package backend describes the wire types of the remote question-generation
// and file-management service.
package backend

import (
	"context"
	"fmt"
)

// StatusSuccess is the status value the service reports on success.
const StatusSuccess = "success"

// Service paths relative to the configured base URL.
const (
	PathCreateFAQ  = "/api/faq/create_and_save_faq/"
	PathListFiles  = "/api/file_manager/get_files/"
	PathDeleteFile = "/api/file_manager/delete_file/"
)

// CreateFAQRequest asks the service to generate questions for a knowledge scope.
type CreateFAQRequest struct {
	KnowledgeScope string `json:"knowledge_scope"`
	NumQuestions   int    `json:"num_questions"`
}

// FAQ is one generated question as returned by the service.
type FAQ struct {
	Question     string `json:"question"`
	RightAnswer  string `json:"right_answer"`
	WrongAnswer1 string `json:"wrong_answer_1"`
	WrongAnswer2 string `json:"wrong_answer_2"`
	WrongAnswer3 string `json:"wrong_answer_3"`
}

// CreateFAQResponse carries the generated questions.
type CreateFAQResponse struct {
	Status string `json:"status"`
	FAQs   []FAQ  `json:"faqs"`
}

// File is a document record held by the file-management service.
type File struct {
	ID         string `json:"_id"`
	Filename   string `json:"filename"`
	UploadDate string `json:"upload_date"`
}

// ListFilesResponse carries the stored documents.
type ListFilesResponse struct {
	Status string `json:"status"`
	Files  []File `json:"files"`
}

// StatusResponse is the bare acknowledgement returned by mutating calls.
type StatusResponse struct {
	Status string `json:"status"`
}

// Client is the set of remote operations the application depends on.
type Client interface {
	CreateFAQ(ctx context.Context, req CreateFAQRequest) (CreateFAQResponse, error)
	ListFiles(ctx context.Context) (ListFilesResponse, error)
	DeleteFile(ctx context.Context, id string) (StatusResponse, error)
}

// StatusError reports a response that was not a success, either by HTTP code or
// by the status field in the body.
type StatusError struct {
	HTTPStatus int
	Status     string
	Message    string
}

// Error returns a readable message for the failed status.
func (err *StatusError) Error() string {
	switch {
	case err.Message != "":
		return fmt.Sprintf("http %d: %s", err.HTTPStatus, err.Message)
	case err.Status != "":
		return fmt.Sprintf("http %d: status %q", err.HTTPStatus, err.Status)
	default:
		return fmt.Sprintf("http %d", err.HTTPStatus)
	}
}
