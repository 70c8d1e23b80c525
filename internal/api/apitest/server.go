// Package apitest provides an in-process stand-in for the conversion service.
// It answers the same routes with canned bodies and records every request so
// tests can assert on what the client sent.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/ytget/multi-converter/internal/model"
)

// Request is one call received by the fake service
type Request struct {
	Method      string
	Path        string
	ContentType string
	RequestID   string
	Body        map[string]any
	RawBody     string
}

// Reply is a canned response
type Reply struct {
	Status int
	Body   string
	Delay  time.Duration
}

// Server is a fake conversion service
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
	replies  map[string]Reply
}

// DefaultInfo is the body served on /api/info unless replaced
const DefaultInfo = `{"name":"Multi-Converter Application","version":"1.0.0",` +
	`"description":"A comprehensive converter application with multiple conversion types",` +
	`"features":["Length Converter","Weight Converter","Temperature Converter",` +
	`"Volume Converter","Currency Converter","Number Base Converter"]}`

// NewServer starts a fake service. Callers must Close it.
func NewServer() *Server {
	s := &Server{
		replies: map[string]Reply{
			"/health":    {Status: http.StatusOK, Body: `{"status":"healthy","message":"Application is running"}`},
			"/api/info":  {Status: http.StatusOK, Body: DefaultInfo},
			"/api/units": {Status: http.StatusOK, Body: unitsBody()},
		},
	}

	router := httprouter.New()
	router.GET("/health", s.serve)
	router.GET("/api/units", s.serve)
	router.GET("/api/info", s.serve)
	router.POST("/api/convert/:category", s.serve)

	s.Server = httptest.NewServer(router)
	return s
}

// SetReply replaces the response served on path
func (s *Server) SetReply(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[path] = Reply{Status: status, Body: body}
}

// SetConversion serves a conversion reply for category
func (s *Server) SetConversion(category model.Category, status int, body string) {
	s.SetReply(category.Endpoint(), status, body)
}

// SetDelay holds responses on path for d, or until the client gives up
func (s *Server) SetDelay(path string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reply := s.replies[path]
	reply.Delay = d
	s.replies[path] = reply
}

// Requests returns a copy of every request received so far
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestCount returns how many requests hit path
func (s *Server) RequestCount(path string) int {
	count := 0
	for _, r := range s.Requests() {
		if r.Path == path {
			count++
		}
	}
	return count
}

// LastRequest returns the most recent request, if any
func (s *Server) LastRequest() (Request, bool) {
	reqs := s.Requests()
	if len(reqs) == 0 {
		return Request{}, false
	}
	return reqs[len(reqs)-1], true
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	raw, _ := io.ReadAll(r.Body)

	recorded := Request{
		Method:      r.Method,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		RequestID:   r.Header.Get("X-Request-ID"),
		RawBody:     string(raw),
	}
	if len(raw) > 0 {
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err == nil {
			recorded.Body = body
		}
	}

	s.mu.Lock()
	s.requests = append(s.requests, recorded)
	reply, ok := s.replies[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		reply = Reply{Status: http.StatusBadRequest, Body: `{"success":false,"error":"no reply configured"}`}
	}

	if reply.Delay > 0 {
		select {
		case <-time.After(reply.Delay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = io.WriteString(w, reply.Body)
}

func unitsBody() string {
	payload := make(map[string][]string)
	for category, units := range model.DefaultUnitCatalog() {
		payload[category.CatalogKey()] = units
	}
	data, _ := json.Marshal(payload)
	return string(data)
}
