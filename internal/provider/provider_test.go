package provider

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quan0401/quizz/internal/lib/logger"
	"github.com/quan0401/quizz/internal/notice"
	"github.com/quan0401/quizz/internal/question"
	"github.com/quan0401/quizz/internal/testutil"
	"github.com/quan0401/quizz/pkg/backend"
	"github.com/quan0401/quizz/pkg/backend/httpclient"
)

type stubClient struct {
	calls int
	res   backend.CreateFAQResponse
	err   error
}

func (s *stubClient) CreateFAQ(context.Context, backend.CreateFAQRequest) (backend.CreateFAQResponse, error) {
	s.calls++
	return s.res, s.err
}

func (s *stubClient) ListFiles(context.Context) (backend.ListFilesResponse, error) {
	return backend.ListFilesResponse{}, errors.New("not implemented")
}

func (s *stubClient) DeleteFile(context.Context, string) (backend.StatusResponse, error) {
	return backend.StatusResponse{}, errors.New("not implemented")
}

func newProvider(t *testing.T) (*Provider, *testutil.FakeBackend) {
	t.Helper()
	instance := testutil.StartBackend(t)
	return New(httpclient.New(instance.BaseURL), nil, logger.Discard()), instance.Fake
}

func TestGenerateSuccess(t *testing.T) {
	p, fake := newProvider(t)

	res, err := p.Generate(testutil.Context(t, 0), "  basic   maths ", 2)
	require.NoError(t, err)

	assert.False(t, res.Fallback)
	assert.Equal(t, notice.Success(MsgGenerated), res.Notice)
	require.Len(t, res.Questions, 2)
	assert.Equal(t, "What is 2+2?", res.Questions[0].Prompt)
	assert.Equal(t, "4", res.Questions[0].CorrectAnswer)
	assert.Equal(t, [3]string{"3", "5", "22"}, res.Questions[0].IncorrectAnswers)

	requests := fake.FAQRequests()
	require.Len(t, requests, 1)
	assert.Equal(t, backend.CreateFAQRequest{KnowledgeScope: "basic maths", NumQuestions: 2}, requests[0])
}

func TestGenerateStatusFailureFallsBack(t *testing.T) {
	p, fake := newProvider(t)
	fake.SetFAQs("error", nil)

	res, err := p.Generate(testutil.Context(t, 0), "history", 3)
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, notice.Error(MsgStatusFallback), res.Notice)
	assert.Equal(t, question.GeneratorDefaults(), res.Questions)
}

func TestGenerateHTTPFailureFallsBack(t *testing.T) {
	p, fake := newProvider(t)
	fake.FailFAQ(http.StatusInternalServerError)

	res, err := p.Generate(testutil.Context(t, 0), "history", 3)
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, notice.Error(MsgStatusFallback), res.Notice)
}

func TestGenerateTransportErrorFallsBack(t *testing.T) {
	stub := &stubClient{err: errors.New("connection refused")}
	p := New(stub, nil, logger.Discard())

	res, err := p.Generate(context.Background(), "history", 3)
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, notice.Error(MsgErrorFallback), res.Notice)
	assert.Len(t, res.Questions, 2)
}

func TestGenerateSuccessWithoutFAQsFallsBack(t *testing.T) {
	p, fake := newProvider(t)
	fake.SetFAQs(backend.StatusSuccess, nil)

	res, err := p.Generate(testutil.Context(t, 0), "history", 3)
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, notice.Error(MsgStatusFallback), res.Notice)
}

func TestGenerateDropsInvalidEntries(t *testing.T) {
	stub := &stubClient{res: backend.CreateFAQResponse{
		Status: backend.StatusSuccess,
		FAQs: []backend.FAQ{
			{Question: "Dup?", RightAnswer: "a", WrongAnswer1: "a", WrongAnswer2: "b", WrongAnswer3: "c"},
			{Question: "Ok?", RightAnswer: "a", WrongAnswer1: "b", WrongAnswer2: "c", WrongAnswer3: "d"},
			{Question: "", RightAnswer: "a", WrongAnswer1: "b", WrongAnswer2: "c", WrongAnswer3: "d"},
		},
	}}
	p := New(stub, nil, logger.Discard())

	res, err := p.Generate(context.Background(), "letters", 3)
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	require.Len(t, res.Questions, 1)
	assert.Equal(t, "Ok?", res.Questions[0].Prompt)
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	stub := &stubClient{}
	p := New(stub, nil, logger.Discard())

	_, err := p.Generate(context.Background(), "   ", 3)
	require.ErrorIs(t, err, ErrTopicRequired)
	assert.Equal(t, MsgTopicRequired, InputMessage(err))

	_, err = p.Generate(context.Background(), "history", 0)
	require.ErrorIs(t, err, ErrInvalidCount)
	assert.Equal(t, MsgCountRequired, InputMessage(err))

	assert.Zero(t, stub.calls)
}

func TestFallbackIsCopied(t *testing.T) {
	fallback := question.QuizDefaults()
	p := New(&stubClient{err: errors.New("down")}, fallback, logger.Discard())

	res, err := p.Generate(context.Background(), "budget", 1)
	require.NoError(t, err)
	res.Questions[0].Prompt = "changed"
	assert.NotEqual(t, "changed", fallback[0].Prompt)
}

func TestGenerateMapsEveryFAQ(t *testing.T) {
	p, fake := newProvider(t)
	faqs := testutil.RandomFAQs(42, 25)
	fake.SetFAQs(backend.StatusSuccess, faqs)

	res, err := p.Generate(testutil.Context(t, 0), "anything", len(faqs))
	require.NoError(t, err)
	require.False(t, res.Fallback)
	require.Len(t, res.Questions, len(faqs))
	for i, q := range res.Questions {
		assert.Equal(t, FromFAQ(faqs[i]), q)
		assert.NoError(t, question.Validate(q))
	}
}
