// Package apitest provides an in-memory wish API for tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/wexinc/wishmachine/internal/wish"
)

// Request records one call the server received.
type Request struct {
	Method    string
	Path      string
	Body      string
	UserAgent string
}

// Server is a fake wish backend. It serves the same routes as the real API
// and keeps wishes in memory, newest first.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	wishes   map[int64]wish.Wish
	nextID   int64
	clock    time.Time
	requests []Request
	fail     map[string]int
	raw      map[string]string
}

// NewServer starts a fake backend. Call Close when done.
func NewServer() *Server {
	s := &Server{
		wishes: make(map[int64]wish.Wish),
		nextID: 1,
		clock:  time.Date(2024, 3, 9, 8, 5, 0, 0, time.UTC),
		fail:   make(map[string]int),
		raw:    make(map[string]string),
	}

	r := mux.NewRouter()
	r.Use(s.record)
	r.HandleFunc("/api/wishes", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/api/wishes", s.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/api/wishes/{id:[0-9]+}", s.handleGet).Methods(http.MethodGet)
	r.HandleFunc("/api/wishes/{id:[0-9]+}", s.handleDelete).Methods(http.MethodDelete)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	s.Server = httptest.NewServer(r)
	return s
}

// Seed stores a wish with the given author and text and returns it.
func (s *Server) Seed(name, text string) wish.Wish {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(name, text)
}

// FailWith makes every request matching "METHOD /path" answer with status.
// Paths are the route templates, e.g. "DELETE /api/wishes/{id}".
func (s *Server) FailWith(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[route] = status
}

// RespondRaw makes requests matching route answer 200 with body verbatim.
func (s *Server) RespondRaw(route, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw[route] = body
}

// Wishes returns the stored wishes, newest first.
func (s *Server) Wishes() []wish.Wish {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted()
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// CountRequests counts received requests with the given method.
func (s *Server) CountRequests(method string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method {
			n++
		}
	}
	return n
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body.Close()
			r.Body = io.NopCloser(bytes.NewReader(body))
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			Body:      string(body),
			UserAgent: r.UserAgent(),
		})
		route := routeKey(r)
		status, failing := s.fail[route]
		raw, isRaw := s.raw[route]
		s.mu.Unlock()

		if failing {
			writeJSON(w, status, map[string]string{"detail": http.StatusText(status)})
			return
		}
		if isRaw {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(raw))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.sorted())
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req wish.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "invalid body"})
		return
	}

	s.mu.Lock()
	created := s.insert(req.Name, req.Wish)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, created)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	s.mu.Lock()
	found, ok := s.wishes[id]
	s.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Wish not found"})
		return
	}
	writeJSON(w, http.StatusOK, found)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	s.mu.Lock()
	_, ok := s.wishes[id]
	delete(s.wishes, id)
	s.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Wish not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Wish deleted successfully"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": s.now().Format("2006-01-02T15:04:05.999999"),
	})
}

// insert stores a wish. Callers hold s.mu.
func (s *Server) insert(name, text string) wish.Wish {
	s.clock = s.clock.Add(time.Minute)
	w := wish.Wish{
		ID:        s.nextID,
		Name:      name,
		Wish:      text,
		CreatedAt: s.clock.Format("2006-01-02T15:04:05.999999"),
	}
	s.wishes[w.ID] = w
	s.nextID++
	return w
}

// sorted returns wishes newest first. Callers hold s.mu.
func (s *Server) sorted() []wish.Wish {
	out := make([]wish.Wish, 0, len(s.wishes))
	for _, w := range s.wishes {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (s *Server) now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock
}

func routeKey(r *http.Request) string {
	path := r.URL.Path
	if strings.HasPrefix(path, "/api/wishes/") {
		path = "/api/wishes/{id}"
	}
	return r.Method + " " + path
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
