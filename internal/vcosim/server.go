// Package vcosim is an in-process mock of the orchestrator portal API. It
// mirrors the RPC-over-POST surface under /portal/rest closely enough to
// exercise the client SDK end to end: cookie login, token auth, the portal's
// 200-with-error-envelope failure convention, and response payloads using
// every wire form the value types accept.
package vcosim

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sdwanops/vcoctl/pkg/types"
)

// SessionCookie is the cookie name the real portal uses for login sessions.
const SessionCookie = "velocloud.session"

// Portal error codes reproduced by the simulator.
const (
	codeInvalidCredentials = -32000
	codeExpiredSession     = -950
	codeNotFound           = 2000
)

// Config holds the credentials the simulator accepts.
type Config struct {
	// Username and Password accepted by login/operatorLogin.
	Username string
	Password string
	// Token accepted as "Authorization: Token <t>".
	Token string
}

// Server is the mock portal.
type Server struct {
	cfg    Config
	router chi.Router
	logger zerolog.Logger

	mu       sync.Mutex
	sessions map[string]struct{}

	properties []types.SystemPropertyRecord
	gateways   []types.Gateway
}

// New constructs a simulator preloaded with the canned fixtures.
func New(cfg Config) *Server {
	s := &Server{
		cfg:        cfg,
		logger:     log.With().Str("component", "vcosim").Logger(),
		sessions:   make(map[string]struct{}),
		properties: fixtureProperties(),
		gateways:   parseGatewayFixtures(),
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the configured router.
func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Route("/portal/rest", func(r chi.Router) {
		r.Post("/login/operatorLogin", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/systemProperty/getSystemProperties", s.handleGetSystemProperties)
			r.Post("/network/getNetworkGateways", s.handleGetNetworkGateways)
			r.Post("/metrics/getGatewayStatusMetrics", s.handleGetGatewayStatusMetrics)
		})
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("portal request")
		next.ServeHTTP(w, r)
	})
}

// requireAuth admits requests carrying either a valid session cookie or the
// configured API token. Failures come back the portal way: HTTP 200 with an
// error envelope.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.Token != "" && r.Header.Get("Authorization") == "Token "+s.cfg.Token {
			next.ServeHTTP(w, r)
			return
		}
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			s.mu.Lock()
			_, ok := s.sessions[cookie.Value]
			s.mu.Unlock()
			if ok {
				next.ServeHTTP(w, r)
				return
			}
		}
		s.writeError(w, codeExpiredSession, "expired session")
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var auth types.AuthObject
	if err := json.NewDecoder(r.Body).Decode(&auth); err != nil {
		s.writeError(w, codeInvalidCredentials, "malformed login body")
		return
	}
	if auth.Username != s.cfg.Username || auth.Password != s.cfg.Password {
		s.writeError(w, codeInvalidCredentials, "invalid credentials")
		return
	}

	session := uuid.NewString()
	s.mu.Lock()
	s.sessions[session] = struct{}{}
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    session,
		Path:     "/",
		HttpOnly: true,
	})
	// The real portal sends an empty body on successful login.
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleGetSystemProperties(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.properties)
}

func (s *Server) handleGetNetworkGateways(w http.ResponseWriter, r *http.Request) {
	// Served raw to preserve the mixed wire forms the fixture carries.
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(rawGateways)); err != nil {
		s.logger.Error().Err(err).Msg("writing response")
	}
}

func (s *Server) handleGetGatewayStatusMetrics(w http.ResponseWriter, r *http.Request) {
	var req types.GatewayStatusMetricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, codeNotFound, "malformed metrics request")
		return
	}

	for _, gw := range s.gateways {
		if gw.ID == req.GatewayID {
			s.writeJSON(w, fixtureMetricsSeries(req))
			return
		}
	}
	s.writeError(w, codeNotFound, "no such gateway")
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("encoding response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, message string) {
	s.writeJSON(w, map[string]any{
		"error": map[string]any{"code": code, "message": message},
	})
}
