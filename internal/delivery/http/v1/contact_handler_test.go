package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"estate-site-backend/config"
	"estate-site-backend/internal/domain"
	"estate-site-backend/internal/metrics"
	"estate-site-backend/internal/usecase"
	"estate-site-backend/pkg/email"
	"estate-site-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg email.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func (m *MockSender) IsConfigured() bool {
	return m.Called().Bool(0)
}

func (m *MockSender) Name() string {
	return "mock"
}

type testServer struct {
	router  *gin.Engine
	sender  *MockSender
	metrics *metrics.Metrics
}

func newTestServer(t *testing.T, configured bool) *testServer {
	t.Helper()

	cfg := &config.Config{
		GinMode:             gin.TestMode,
		ContactFromEmail:    "Website <web@example.com>",
		ContactEmailTo:      "info@example.com",
		ContactMaxBodyBytes: 1024,
	}

	sender := new(MockSender)
	sender.On("IsConfigured").Return(configured)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	contactUC := usecase.NewContactUsecase(sender, validation.New(), usecase.ContactSettings{
		From:            cfg.ContactFromEmail,
		To:              cfg.ContactEmailTo,
		DispatchTimeout: time.Second,
	}, zap.NewNop(), m)

	router := NewRouter(RouterDeps{
		ContactUC: contactUC,
		HealthUC:  usecase.NewHealthUsecase(sender),
		Metrics:   m,
		Gatherer:  reg,
		Logger:    zap.NewNop(),
		Config:    cfg,
	})

	return &testServer{router: router, sender: sender, metrics: m}
}

func (s *testServer) post(body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)
	return w
}

const validBody = `{"name":"Jane Doe","email":"jane@example.com","phone":"","message":"I would like more information please."}`

func TestSubmitContact_Success(t *testing.T) {
	s := newTestServer(t, true)
	s.sender.On("Send", mock.Anything, mock.MatchedBy(func(msg email.Message) bool {
		return msg.Subject == "Contact form: Jane Doe" &&
			msg.ReplyTo == "jane@example.com" &&
			!strings.Contains(msg.HTML, "tel:")
	})).Return("abc123", nil).Once()

	w := s.post(validBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"id":"abc123"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	s.sender.AssertExpectations(t)
}

func TestSubmitContact_SuccessWithoutID(t *testing.T) {
	s := newTestServer(t, true)
	s.sender.On("Send", mock.Anything, mock.Anything).Return("", nil).Once()

	w := s.post(validBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestSubmitContact_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"email":"jane@example.com","message":"I would like more information please."}`, domain.MsgNameRequired},
		{"short name", `{"name":" J ","email":"jane@example.com","message":"I would like more information please."}`, domain.MsgNameRequired},
		{"numeric email", `{"name":"Jane","email":123,"message":"I would like more information please."}`, domain.MsgEmailRequired},
		{"bad email", `{"name":"Jane","email":"jane@example","message":"I would like more information please."}`, domain.MsgEmailInvalid},
		{"bad phone", `{"name":"Jane","email":"jane@example.com","phone":"abc123","message":"I would like more information please."}`, domain.MsgPhoneInvalid},
		{"short message", `{"name":"Jane","email":"jane@example.com","message":"too short"}`, domain.MsgMessageRequired},
		{"not json", `name=Jane`, domain.MsgInvalidBody},
		{"empty body", ``, domain.MsgInvalidBody},
		{"json array", `[1,2,3]`, domain.MsgInvalidBody},
		{"json null", `null`, domain.MsgInvalidBody},
		{"trailing garbage", validBody + ` garbage{`, domain.MsgInvalidBody},
		{"two objects", validBody + validBody, domain.MsgInvalidBody},
		{"body too large", `{"name":"Jane","email":"jane@example.com","message":"` + strings.Repeat("a", 2048) + `"}`, domain.MsgInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, true)

			w := s.post(tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"`+tt.want+`"}`, w.Body.String())
			s.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitContact_ProviderFailure(t *testing.T) {
	s := newTestServer(t, true)
	s.sender.On("Send", mock.Anything, mock.Anything).
		Return("", errors.New("resend: 403 The domain example.com is not verified")).Once()

	w := s.post(validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to send message. Please try again or contact us directly."}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "not verified")
	s.sender.AssertNumberOfCalls(t, "Send", 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeFailed)))
}

func TestSubmitContact_ProviderTimeout(t *testing.T) {
	s := newTestServer(t, true)
	s.sender.On("Send", mock.Anything, mock.Anything).Return("", context.DeadlineExceeded).Once()

	w := s.post(validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSubmitContact_NotConfiguredBeforeParsing(t *testing.T) {
	s := newTestServer(t, false)

	for _, body := range []string{validBody, `not json at all`, `{"name":"J"}`} {
		w := s.post(body)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"error":"Contact form is not configured. Please try again later."}`, w.Body.String())
	}
	s.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	assert.Equal(t, 3.0, testutil.ToFloat64(s.metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeUnconfigured)))
}

func TestHealthAndMetricsRoutes(t *testing.T) {
	s := newTestServer(t, true)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","email_provider":"mock","contact_form":"configured"}`, w.Body.String())

	s.metrics.Submission(metrics.OutcomeSent)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `contact_submissions_total{outcome="sent"} 1`)
}
