// Package http serves the system command actions over a JSON HTTP API
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/syscmd/pkg/domain"
	"github.com/m-mizutani/syscmd/pkg/domain/model"
	"github.com/m-mizutani/syscmd/pkg/usecase"
)

const (
	PathNetworkInfo = "/apps/systemcommands/ifconfig/"
	PathTouchFile   = "/apps/systemcommands/touchfile/"
	PathHealth      = "/healthz"

	msgInvalidCommand   = "Неверная команда"
	msgFilenameRequired = "Имя файла не указано"
	msgFileCreation     = "Ошибка создания файла"
	msgInternal         = "internal server error"
)

// Actions is the behavior the server exposes. *usecase.SystemCommand implements it.
type Actions interface {
	NetworkInfo(ctx context.Context, command string) (*model.CommandRecord, error)
	TouchFile(ctx context.Context, filename string) (*model.CommandRecord, error)
}

// Server routes requests to the action handlers
type Server struct {
	actions Actions
	logger  *slog.Logger
	mux     *http.ServeMux
}

type route struct {
	method  string
	path    string
	handler func(w http.ResponseWriter, r *http.Request)
}

// New creates a Server. A nil logger discards logs.
func New(actions Actions, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		actions: actions,
		logger:  logger,
		mux:     http.NewServeMux(),
	}

	for _, rt := range s.routes() {
		s.mux.HandleFunc(rt.pattern(), rt.handler)
	}
	return s
}

// pattern matches the path exactly, including paths with a trailing slash
func (rt route) pattern() string {
	if strings.HasSuffix(rt.path, "/") {
		return rt.method + " " + rt.path + "{$}"
	}
	return rt.method + " " + rt.path
}

func (s *Server) routes() []route {
	return []route{
		{method: http.MethodPost, path: PathNetworkInfo, handler: s.handleNetworkInfo},
		{method: http.MethodPost, path: PathTouchFile, handler: s.handleTouchFile},
		{method: http.MethodGet, path: PathHealth, handler: s.handleHealth},
	}
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withRequestLogger(s.logger, s.mux).ServeHTTP(w, r)
}

func (s *Server) handleNetworkInfo(w http.ResponseWriter, r *http.Request) {
	fields := readFields(r)

	record, err := s.actions.NetworkInfo(r.Context(), fields["command"])
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, model.EncodeRecord(record))
}

func (s *Server) handleTouchFile(w http.ResponseWriter, r *http.Request) {
	fields := readFields(r)

	record, err := s.actions.TouchFile(r.Context(), fields["filename"])
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, model.EncodeRecord(record))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCommand):
		writeError(w, http.StatusBadRequest, msgInvalidCommand)
	case errors.Is(err, domain.ErrFilenameRequired):
		writeError(w, http.StatusBadRequest, msgFilenameRequired)
	case errors.Is(err, domain.ErrFileCreation):
		writeError(w, http.StatusBadRequest, msgFileCreation+": "+usecase.FileCreationDetail(err))
	default:
		ctxlog.From(r.Context()).Error("Request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(body)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	logger := ctxlog.From(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return goerr.Wrap(err, "http server stopped", goerr.V("addr", addr))
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "failed to shut down http server")
	}
	return nil
}
