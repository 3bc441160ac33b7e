package handlers

import (
	"context"
	"net/http"
	"time"

	"tempconv/internal/history"
	"tempconv/internal/models"
	"tempconv/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	user      models.User
	signUpErr error
	token     models.AccessToken
	tokenErr  error
	users     []models.User
	parseID   int
	parseErr  error

	lastUsername   string
	lastPassword   string
	lastParseToken string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (models.User, error) {
	m.lastUsername, m.lastPassword = username, password
	return m.user, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (models.AccessToken, error) {
	m.lastUsername, m.lastPassword = username, password
	return m.token, m.tokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}
func (m *mockAuth) Users(ctx context.Context) ([]models.User, error) {
	return m.users, nil
}

type mockConverter struct {
	view     models.Conversion
	convErr  error
	swap     service.SwapResult
	swapErr  error
	state    models.ConverterState
	stateErr error

	lastParams   service.ConvertParams
	convertCalls int
	swapCalls    int
}

func (m *mockConverter) Convert(ctx context.Context, p service.ConvertParams) (models.Conversion, error) {
	m.convertCalls++
	m.lastParams = p
	return m.view, m.convErr
}
func (m *mockConverter) Swap(ctx context.Context) (service.SwapResult, error) {
	m.swapCalls++
	return m.swap, m.swapErr
}
func (m *mockConverter) State(ctx context.Context) (models.ConverterState, error) {
	return m.state, m.stateErr
}

type mockHistory struct {
	view    models.HistoryView
	editOK  bool
	saved   models.ConversionRecord
	saveErr error
	delErr  error
	clrErr  error

	lastEditID   int64
	lastSaveID   int64
	lastParams   service.ConvertParams
	lastDeleteID int64
	cancelCalls  int
	deleted      bool
	cleared      bool
}

func (m *mockHistory) Add(ctx context.Context, p service.ConvertParams) (models.ConversionRecord, error) {
	m.lastParams = p
	return m.saved, m.saveErr
}
func (m *mockHistory) View() models.HistoryView { return m.view }
func (m *mockHistory) Edit(id int64) bool {
	m.lastEditID = id
	return m.editOK
}
func (m *mockHistory) SaveEdit(ctx context.Context, id int64, p service.ConvertParams) (models.ConversionRecord, error) {
	m.lastSaveID = id
	m.lastParams = p
	return m.saved, m.saveErr
}
func (m *mockHistory) CancelEdit() { m.cancelCalls++ }

// Delete and ClearAll consult the confirmer the way the real store does.
func (m *mockHistory) Delete(ctx context.Context, id int64, c history.Confirmer) (bool, error) {
	m.lastDeleteID = id
	if !c.Confirm(history.ConfirmDeleteMessage) {
		return false, nil
	}
	m.deleted = m.delErr == nil
	return true, m.delErr
}
func (m *mockHistory) ClearAll(ctx context.Context, c history.Confirmer) (bool, error) {
	if !c.Confirm(history.ConfirmClearMessage) {
		return false, nil
	}
	m.cleared = m.clrErr == nil
	return true, m.clrErr
}

type mockNotifier struct {
	active []models.Notification
	pushed []models.Notification
}

func (m *mockNotifier) Push(kind, message string) models.Notification {
	n := models.Notification{Kind: kind, Message: message}
	m.pushed = append(m.pushed, n)
	return n
}
func (m *mockNotifier) Active() []models.Notification {
	return m.active
}
func (m *mockNotifier) Run(ctx context.Context, tick time.Duration) {}

type mockEventLog struct {
	resp      []models.HistoryEvent
	err       error
	lastFrom  time.Time
	lastTo    time.Time
	lastType  string
	lastLimit int
}

func (m *mockEventLog) Record(ctx context.Context, typ, description string, metadata any) error {
	return nil
}
func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.HistoryEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	m.lastLimit = f.Limit
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, true)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func addHeaders(req *http.Request, h http.Header) {
	for k, vv := range h {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
}
