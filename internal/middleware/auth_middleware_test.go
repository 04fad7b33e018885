package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"parlour-backend-go/internal/auth"
)

var testSecret = []byte("gate-test-secret")

// fakeRoleLookup resolves admin status from a fixed set of emails.
type fakeRoleLookup struct {
	admins map[string]bool
	err    error
}

func (f *fakeRoleLookup) IsAdmin(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.admins[email], nil
}

// spyHandler records how often the route handler behind the gate ran.
type spyHandler struct {
	calls int
	email string
}

func (s *spyHandler) handle(c *gin.Context) {
	s.calls++
	if p, ok := PrincipalFrom(c); ok {
		s.email = p.Email
	}
	c.Status(http.StatusOK)
}

func newGateRouter(t *testing.T, roles RoleLookup) (*gin.Engine, *AccessGate) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gate := NewAccessGate(testSecret, roles, nil)
	return gin.New(), gate
}

func issueToken(t *testing.T, email string, ttl time.Duration) string {
	t.Helper()
	tok, err := auth.Issue(email, testSecret, ttl)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	return tok
}

func doRequest(router *gin.Engine, method, target, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	router, gate := newGateRouter(t, &fakeRoleLookup{})
	spy := &spyHandler{}
	router.GET("/protected", gate.RequireAuth(), spy.handle)

	w := doRequest(router, http.MethodGet, "/protected", "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want %d", w.Code, http.StatusUnauthorized)
	}
	if spy.calls != 0 {
		t.Fatalf("handler ran %d times, want 0", spy.calls)
	}
}

func TestRequireAuth_BadScheme(t *testing.T) {
	router, gate := newGateRouter(t, &fakeRoleLookup{})
	spy := &spyHandler{}
	router.GET("/protected", gate.RequireAuth(), spy.handle)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want %d", w.Code, http.StatusUnauthorized)
	}
	if spy.calls != 0 {
		t.Fatalf("handler ran %d times, want 0", spy.calls)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	router, gate := newGateRouter(t, &fakeRoleLookup{})
	spy := &spyHandler{}
	router.GET("/protected", gate.RequireAuth(), spy.handle)

	w := doRequest(router, http.MethodGet, "/protected", issueToken(t, "a@x.com", -time.Minute))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want %d", w.Code, http.StatusUnauthorized)
	}
	if spy.calls != 0 {
		t.Fatalf("handler ran %d times, want 0", spy.calls)
	}
}

func TestRequireAuth_AttachesPrincipal(t *testing.T) {
	router, gate := newGateRouter(t, &fakeRoleLookup{})
	spy := &spyHandler{}
	router.GET("/protected", gate.RequireAuth(), spy.handle)

	w := doRequest(router, http.MethodGet, "/protected", issueToken(t, "a@x.com", time.Hour))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d", w.Code, http.StatusOK)
	}
	if spy.calls != 1 {
		t.Fatalf("handler ran %d times, want 1", spy.calls)
	}
	if spy.email != "a@x.com" {
		t.Fatalf("principal email: got %q want %q", spy.email, "a@x.com")
	}
}

func TestRequireAdmin_NonAdminRejected(t *testing.T) {
	router, gate := newGateRouter(t, &fakeRoleLookup{admins: map[string]bool{"boss@x.com": true}})
	spy := &spyHandler{}
	router.GET("/admin", gate.RequireAuth(), gate.RequireAdmin(), spy.handle)

	w := doRequest(router, http.MethodGet, "/admin", issueToken(t, "member@x.com", time.Hour))

	if w.Code != http.StatusForbidden {
		t.Fatalf("status: got %d want %d", w.Code, http.StatusForbidden)
	}
	if spy.calls != 0 {
		t.Fatalf("handler ran %d times, want 0", spy.calls)
	}
}

func TestRequireAdmin_UnknownUserRejected(t *testing.T) {
	router, gate := newGateRouter(t, &fakeRoleLookup{})
	spy := &spyHandler{}
	router.GET("/admin", gate.RequireAuth(), gate.RequireAdmin(), spy.handle)

	w := doRequest(router, http.MethodGet, "/admin", issueToken(t, "ghost@x.com", time.Hour))

	if w.Code != http.StatusForbidden {
		t.Fatalf("status: got %d want %d", w.Code, http.StatusForbidden)
	}
	if spy.calls != 0 {
		t.Fatalf("handler ran %d times, want 0", spy.calls)
	}
}

func TestRequireAdmin_AdminAdmitted(t *testing.T) {
	router, gate := newGateRouter(t, &fakeRoleLookup{admins: map[string]bool{"boss@x.com": true}})
	spy := &spyHandler{}
	router.GET("/admin", gate.RequireAuth(), gate.RequireAdmin(), spy.handle)

	w := doRequest(router, http.MethodGet, "/admin", issueToken(t, "boss@x.com", time.Hour))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d", w.Code, http.StatusOK)
	}
	if spy.calls != 1 {
		t.Fatalf("handler ran %d times, want 1", spy.calls)
	}
}

func TestRequireSelfOrAdmin(t *testing.T) {
	cases := []struct {
		name       string
		caller     string
		target     string
		wantStatus int
		wantCalls  int
	}{
		{"self passes", "a@x.com", "a@x.com", http.StatusOK, 1},
		{"other non-admin rejected", "a@x.com", "b@x.com", http.StatusForbidden, 0},
		{"other admin passes", "boss@x.com", "b@x.com", http.StatusOK, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, gate := newGateRouter(t, &fakeRoleLookup{admins: map[string]bool{"boss@x.com": true}})
			spy := &spyHandler{}
			router.GET("/owned/:email", gate.RequireAuth(), gate.RequireSelfOrAdmin(PathEmail("email")), spy.handle)

			w := doRequest(router, http.MethodGet, "/owned/"+tc.target, issueToken(t, tc.caller, time.Hour))

			if w.Code != tc.wantStatus {
				t.Fatalf("status: got %d want %d", w.Code, tc.wantStatus)
			}
			if spy.calls != tc.wantCalls {
				t.Fatalf("handler ran %d times, want %d", spy.calls, tc.wantCalls)
			}
		})
	}
}

func TestRequireSelfOrAdmin_QueryEmailMissingAdmitted(t *testing.T) {
	router, gate := newGateRouter(t, &fakeRoleLookup{})
	spy := &spyHandler{}
	router.GET("/owned", gate.RequireAuth(), gate.RequireSelfOrAdmin(QueryEmail("email")), spy.handle)

	// No email query at all: the gate admits and the handler decides.
	w := doRequest(router, http.MethodGet, "/owned", issueToken(t, "a@x.com", time.Hour))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d", w.Code, http.StatusOK)
	}
	if spy.calls != 1 {
		t.Fatalf("handler ran %d times, want 1", spy.calls)
	}
}

func TestRequireAdmin_WithoutAuthRejected(t *testing.T) {
	router, gate := newGateRouter(t, &fakeRoleLookup{admins: map[string]bool{"boss@x.com": true}})
	spy := &spyHandler{}
	// Misconfigured chain: RequireAdmin without RequireAuth must still reject.
	router.GET("/admin", gate.RequireAdmin(), spy.handle)

	w := doRequest(router, http.MethodGet, "/admin", issueToken(t, "boss@x.com", time.Hour))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want %d", w.Code, http.StatusUnauthorized)
	}
	if spy.calls != 0 {
		t.Fatalf("handler ran %d times, want 0", spy.calls)
	}
}
