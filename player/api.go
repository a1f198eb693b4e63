package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 3 * time.Second

type apiFunc func(w http.ResponseWriter, r *http.Request) error

func makeHTTPHandlerFunc(f apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			JSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		}
	}
}

func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// APIServer exposes the session read-only and accepts the same command
// lines as standard input.
type APIServer struct {
	listenAddr string
	session    *Session
	hands      *HandTracker
	dispatcher *Dispatcher
}

func NewAPIServer(listenAddr string, session *Session, hands *HandTracker, dispatcher *Dispatcher) *APIServer {
	return &APIServer{
		listenAddr: listenAddr,
		session:    session,
		hands:      hands,
		dispatcher: dispatcher,
	}
}

func (s *APIServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(enableCORS)

	r.HandleFunc("/api/health", makeHTTPHandlerFunc(s.handleHealth)).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/session", makeHTTPHandlerFunc(s.handleGetSession)).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/hands", makeHTTPHandlerFunc(s.handleGetHands)).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/command", makeHTTPHandlerFunc(s.handleCommand)).Methods("POST", "OPTIONS")
	return r
}

// Run serves until ctx is cancelled.
func (s *APIServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.listenAddr,
		Handler: s.Router(),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.Errorf("API server shutdown: %s", err)
		}
	}()

	logrus.WithFields(logrus.Fields{
		"addr": s.listenAddr,
	}).Info("API Server starting...")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type HandsResponse struct {
	Hands []Hand `json:"hands"`
}

type CommandRequest struct {
	Line string `json:"line"`
}

func (s *APIServer) handleHealth(w http.ResponseWriter, r *http.Request) error {
	return JSON(w, http.StatusOK, map[string]any{
		"status":     "healthy",
		"registered": s.session.Registered(),
	})
}

func (s *APIServer) handleGetSession(w http.ResponseWriter, r *http.Request) error {
	return JSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *APIServer) handleGetHands(w http.ResponseWriter, r *http.Request) error {
	return JSON(w, http.StatusOK, HandsResponse{Hands: s.hands.Hands()})
}

func (s *APIServer) handleCommand(w http.ResponseWriter, r *http.Request) error {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return fmt.Errorf("invalid request body: %s", err)
	}
	if isQuit(req.Line) {
		return errors.New("quit is only accepted on standard input")
	}
	if _, err := s.dispatcher.Execute(req.Line); err != nil {
		return err
	}
	return JSON(w, http.StatusOK, map[string]any{
		"status":     "OK",
		"registered": s.session.Registered(),
	})
}
