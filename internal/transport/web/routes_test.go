package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/avstrong/hotelrates/internal/inquiry"
	"github.com/avstrong/hotelrates/internal/logger"
	"github.com/avstrong/hotelrates/internal/pricing"
)

type responderFunc func(text string) (string, error)

func (f responderFunc) GenerateResponse(text string) (string, error) {
	return f(text)
}

func newTestServer(t *testing.T, r responder) http.Handler {
	t.Helper()

	conf := Conf{
		L:                 logger.NewNop(),
		Host:              "localhost",
		Port:              "0",
		ReadHeaderTimeout: time.Second,
		LivenessEndpoint:  "/liveness",
	}

	if r == nil {
		resp, err := inquiry.New(conf.L, pricing.Default())
		if err != nil {
			t.Fatalf("inquiry.New: %v", err)
		}

		r = resp
	}

	srv, err := New(context.Background(), conf, r, pricing.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return srv.Srv().Handler
}

func postInquiry(h http.Handler, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries/v1", strings.NewReader(body))
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestInquiryHandler(t *testing.T) {
	h := newTestServer(t, nil)

	rec := postInquiry(h, `{"text":"What are the rates for a Deluxe room?"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body)
	}

	var out InquiryOutput
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !strings.Contains(out.Reply, "- High Season: $950 per night") {
		t.Errorf("reply = %q, want Deluxe season prices", out.Reply)
	}

	if _, err := uuid.Parse(out.ID); err != nil {
		t.Errorf("id %q is not a uuid: %v", out.ID, err)
	}

	if got := rec.Header().Get(requestIDHeader); got != out.ID {
		t.Errorf("%s header = %q, want %q", requestIDHeader, got, out.ID)
	}
}

func TestInquiryHandlerKeepsRequestID(t *testing.T) {
	h := newTestServer(t, nil)
	id := uuid.NewString()

	rec := postInquiry(h, `{"text":"Superior on 2024-07-15"}`, http.Header{requestIDHeader: {id}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out InquiryOutput
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if out.ID != id {
		t.Errorf("id = %q, want %q", out.ID, id)
	}
}

func TestInquiryHandlerDateErrorIsReply(t *testing.T) {
	h := newTestServer(t, nil)

	rec := postInquiry(h, `{"text":"Deluxe on 31-04-2024"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out InquiryOutput
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if out.Reply != "day is out of range for month" {
		t.Errorf("reply = %q", out.Reply)
	}
}

func TestInquiryHandlerRejectsBadInput(t *testing.T) {
	h := newTestServer(t, nil)

	if rec := postInquiry(h, `{"text":`, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed json: status = %d, want 400", rec.Code)
	}

	rec := postInquiry(h, `{"text":"   "}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank text: status = %d, want 400", rec.Code)
	}

	var fields map[string][]string
	if err := json.NewDecoder(rec.Body).Decode(&fields); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(fields["text"]) == 0 {
		t.Errorf("fields = %v, want a text error", fields)
	}

	long := `{"text":"` + strings.Repeat("a", maxInquiryLength+1) + `"}`
	if rec := postInquiry(h, long, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("long text: status = %d, want 400", rec.Code)
	}
}

func TestInquiryHandlerFailures(t *testing.T) {
	failing := newTestServer(t, responderFunc(func(string) (string, error) {
		return "", pricing.ErrUnknownRoomType
	}))

	if rec := postInquiry(failing, `{"text":"hi"}`, nil); rec.Code != http.StatusInternalServerError {
		t.Errorf("responder error: status = %d, want 500", rec.Code)
	}

	panicking := newTestServer(t, responderFunc(func(string) (string, error) {
		panic(errors.New("boom"))
	}))

	if rec := postInquiry(panicking, `{"text":"hi"}`, nil); rec.Code != http.StatusInternalServerError {
		t.Errorf("responder panic: status = %d, want 500", rec.Code)
	}
}

func TestRatesHandler(t *testing.T) {
	h := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rates/v1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out RatesOutput
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(out.Rooms) != 4 || out.Rooms[0].Name != "Classic Deluxe" {
		t.Fatalf("rooms = %+v", out.Rooms)
	}

	if out.Rooms[3].Prices[pricing.HighSeason] != 850 {
		t.Errorf("G-House high season = %d, want 850", out.Rooms[3].Prices[pricing.HighSeason])
	}

	if len(out.Seasons) != 4 {
		t.Errorf("seasons = %+v", out.Seasons)
	}
}

func TestLiveness(t *testing.T) {
	h := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/liveness", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inquiries/v1", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET inquiries: status = %d, want 405", rec.Code)
	}
}
