package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

func (s *Server) inquiryHandler(w http.ResponseWriter, r *http.Request) {
	var input InquiryInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	var inputErr *InputError

	if err := input.validate(); errors.As(err, &inputErr) {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	reply, err := s.responder.GenerateResponse(input.Text)
	if err != nil {
		s.l.LogErrorf("Could not answer inquiry: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, InquiryOutput{
		ID:    requestIDFromContext(r.Context()),
		Reply: reply,
	})
}

func (s *Server) ratesHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, RatesOutput{
		Rooms:   s.rates.Rooms(),
		Seasons: s.rates.Anchors(),
	})
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

func (s *Server) addRoutes(r *http.ServeMux) {
	middlewares := []func(http.Handler) http.Handler{s.loggerMiddleware(), s.recoverMiddleware(), s.requestIDMiddleware()}

	r.Handle(
		"POST /api/inquiries/v1",
		s.applyMiddlewares(http.HandlerFunc(s.inquiryHandler), middlewares...),
	)
	r.Handle(
		"GET /api/rates/v1",
		s.applyMiddlewares(http.HandlerFunc(s.ratesHandler), middlewares...),
	)
	r.Handle(
		fmt.Sprintf("GET %s", s.conf.LivenessEndpoint),
		s.applyMiddlewares(http.HandlerFunc(s.livenessHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
}

func newRequestID() string {
	return uuid.NewString()
}
