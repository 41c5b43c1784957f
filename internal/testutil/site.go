package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// Route is a canned response of the fake site.
type Route struct {
	Status      int // defaults to 200
	Body        string
	ContentType string // defaults to text/html; charset=utf-8
	Headers     map[string]string
	Delay       time.Duration
}

// RecordedRequest is a request received by the fake site.
type RecordedRequest struct {
	Method string
	Path   string
	Query  string
	Form   map[string]string
	Header http.Header
}

// FakeSite is an httptest server answering fixed routes keyed by path.
type FakeSite struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]Route
	requests []RecordedRequest
}

// NewFakeSite starts a fake site closed when the test ends. Unknown paths answer 404.
func NewFakeSite(t *testing.T, routes map[string]Route) *FakeSite {
	t.Helper()
	site := &FakeSite{routes: routes}
	site.Server = httptest.NewServer(http.HandlerFunc(site.serve))
	t.Cleanup(site.Close)
	return site
}

// SetRoute adds or replaces a route.
func (s *FakeSite) SetRoute(path string, route Route) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = route
}

// Requests returns the requests received so far.
func (s *FakeSite) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// CountPath returns how many requests hit path.
func (s *FakeSite) CountPath(path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Path == path {
			n++
		}
	}
	return n
}

func (s *FakeSite) serve(w http.ResponseWriter, r *http.Request) {
	form := map[string]string{}
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err == nil {
			for k := range r.PostForm {
				form[k] = r.PostForm.Get(k)
			}
		}
	}

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Form:   form,
		Header: r.Header.Clone(),
	})
	route, ok := s.routes[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	contentType := route.ContentType
	if contentType == "" {
		contentType = "text/html; charset=utf-8"
	}
	status := route.Status
	if status == 0 {
		status = http.StatusOK
	}
	if route.Delay > 0 {
		select {
		case <-time.After(route.Delay):
		case <-r.Context().Done():
			return
		}
	}
	for k, v := range route.Headers {
		w.Header().Set(k, v)
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(route.Body))
}
