package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/avstrong/hotelrates/internal/logger"
	"github.com/avstrong/hotelrates/internal/pricing"
)

type responder interface {
	GenerateResponse(text string) (string, error)
}

type Server struct {
	srv       *http.Server
	router    *http.ServeMux
	l         *logger.Logger
	conf      Conf
	responder responder
	rates     *pricing.RateCard
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
}

func New(ctx context.Context, conf Conf, responder responder, rates *pricing.RateCard) (*Server, error) {
	mux := http.NewServeMux()

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		ErrorLog:          conf.ServerLogger,
		Handler:           mux,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:       srv,
		router:    mux,
		l:         conf.L,
		conf:      conf,
		responder: responder,
		rates:     rates,
	}

	server.addRoutes(mux)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}
