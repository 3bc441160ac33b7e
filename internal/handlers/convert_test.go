package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tempconv/internal/conversion"
	"tempconv/internal/models"
	"tempconv/internal/service"
)

func doJSON(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	addHeaders(req, authHeader("valid"))
	r.ServeHTTP(w, req)
	return w
}

func TestConvertHandler_AcceptsNumberAndText(t *testing.T) {
	conv := &mockConverter{view: models.Conversion{ResultDisplay: "97.88", TargetSymbol: "°F"}}
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, Converter: conv, Notifier: &mockNotifier{}}
	r := newTestRouter(s)

	cases := []struct {
		name string
		body string
		want float64
	}{
		{"json number", `{"value":36.6,"from":"celsius","to":"fahrenheit"}`, 36.6},
		{"numeric text", `{"value":" 36.6 ","from":"c","to":"F"}`, 36.6},
		{"zero", `{"value":0,"from":"celsius","to":"fahrenheit"}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/v1/convert", tc.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
			}
			if conv.lastParams.Value != tc.want {
				t.Fatalf("value: got %v, want %v", conv.lastParams.Value, tc.want)
			}
			if conv.lastParams.From != models.Celsius || conv.lastParams.To != models.Fahrenheit {
				t.Fatalf("unexpected scales: %+v", conv.lastParams)
			}
			var out models.Conversion
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.ResultDisplay != "97.88" {
				t.Fatalf("unexpected response: %+v", out)
			}
		})
	}
}

func TestConvertHandler_RejectsInvalidInput(t *testing.T) {
	conv := &mockConverter{}
	notes := &mockNotifier{}
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, Converter: conv, Notifier: notes}
	r := newTestRouter(s)

	cases := []struct {
		name       string
		body       string
		wantNotify bool
	}{
		{"missing value", `{"from":"celsius","to":"kelvin"}`, true},
		{"not a number", `{"value":"abc","from":"celsius","to":"kelvin"}`, true},
		{"trailing garbage", `{"value":"12abc","from":"celsius","to":"kelvin"}`, true},
		{"empty text", `{"value":"","from":"celsius","to":"kelvin"}`, true},
		{"unknown scale", `{"value":1,"from":"delisle","to":"kelvin"}`, false},
		{"malformed json", `{"value":`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			notes.pushed = nil
			w := doJSON(t, r, http.MethodPost, "/api/v1/convert", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (body=%s)", w.Code, w.Body.String())
			}
			if got := len(notes.pushed) == 1; got != tc.wantNotify {
				t.Fatalf("notification pushed=%v, want %v", got, tc.wantNotify)
			}
			if tc.wantNotify && notes.pushed[0].Message != service.MsgInvalidNumber {
				t.Fatalf("unexpected notification: %+v", notes.pushed[0])
			}
		})
	}
	if conv.convertCalls != 0 {
		t.Fatalf("Convert should not be called, got %d calls", conv.convertCalls)
	}
}

func TestConvertHandler_ErrorMapping(t *testing.T) {
	conv := &mockConverter{}
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, Converter: conv, Notifier: &mockNotifier{}}
	r := newTestRouter(s)
	body := `{"value":1,"from":"celsius","to":"kelvin"}`

	conv.convErr = conversion.ErrInvalidInput
	if w := doJSON(t, r, http.MethodPost, "/api/v1/convert", body); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid input, got %d", w.Code)
	}

	conv.convErr = errors.New("disk full")
	w := doJSON(t, r, http.MethodPost, "/api/v1/convert", body)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var out map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out["error"] != errInternal {
		t.Fatalf("internal details must not leak: %v", out)
	}
}

func TestConvertHandler_SwapAndState(t *testing.T) {
	conv := &mockConverter{
		swap:  service.SwapResult{State: models.ConverterState{ID: 1, SourceScale: models.Fahrenheit, TargetScale: models.Celsius}},
		state: models.ConverterState{ID: 1, SourceScale: models.Celsius, TargetScale: models.Fahrenheit},
	}
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, Converter: conv}
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/api/v1/convert/swap", "")
	if w.Code != http.StatusOK {
		t.Fatalf("swap status=%d, body=%s", w.Code, w.Body.String())
	}
	var res service.SwapResult
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res.State.SourceScale != models.Fahrenheit || res.Conversion != nil {
		t.Fatalf("unexpected swap result: %+v", res)
	}
	if conv.swapCalls != 1 {
		t.Fatalf("expected one Swap call, got %d", conv.swapCalls)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/convert/state", "")
	if w.Code != http.StatusOK {
		t.Fatalf("state status=%d, body=%s", w.Code, w.Body.String())
	}
	var st models.ConverterState
	_ = json.Unmarshal(w.Body.Bytes(), &st)
	if st.SourceScale != models.Celsius || st.TargetScale != models.Fahrenheit {
		t.Fatalf("unexpected state: %+v", st)
	}

	conv.stateErr = errors.New("db down")
	if w := doJSON(t, r, http.MethodGet, "/api/v1/convert/state", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on state error, got %d", w.Code)
	}
}

func TestScalesHandler(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}})

	w := doJSON(t, r, http.MethodGet, "/api/v1/scales", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var out []scaleInfo
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 4 || out[0].Name != models.Celsius || out[0].Symbol != "°C" || out[2].Symbol != "K" {
		t.Fatalf("unexpected scales: %+v", out)
	}
}
