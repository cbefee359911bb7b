// Package server exposes the member design engine over a small JSON
// API. It is a thin shell: every handler decodes an input record, runs
// the corresponding pure stage and encodes the result record.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/bs8110"
	"github.com/me-yeatz/Beamsafe-Mypro/internal/member"
)

// Server routes design requests to the engine.
type Server struct {
	par     bs8110.Parameters
	limiter *ipRateLimiter
}

// New creates a Server bound to a parameter set.
func New(par bs8110.Parameters) *Server {
	return &Server{
		par:     par,
		limiter: newIPRateLimiter(5, 10),
	}
}

// Router builds the API routes.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.limiter.middleware, logMiddleware)

	api.HandleFunc("/beam", handle(s.par, member.DesignBeam)).Methods("POST")
	api.HandleFunc("/column", handle(s.par, member.DesignColumn)).Methods("POST")
	api.HandleFunc("/footing", handle(s.par, member.DesignFooting)).Methods("POST")
	api.HandleFunc("/groundbeam", handle(s.par, member.DesignGroundBeam)).Methods("POST")
	api.HandleFunc("/pipeline", handle(s.par, member.Design)).Methods("POST")

	return cors(r)
}

// handle adapts a stage function into a JSON handler. An incomplete
// input reports 422 with an idle marker rather than an error: absence
// of a result is the normal state for an empty form, not a failure.
func handle[In any, Out any](par bs8110.Parameters, stage func(In, bs8110.Parameters) (*Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		out, err := stage(in, par)
		if err != nil {
			if errors.Is(err, member.ErrIncompleteInput) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(map[string]string{"status": "idle", "reason": err.Error()})
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// ipRateLimiter keeps a token bucket per remote address.
type ipRateLimiter struct {
	mu  sync.Mutex
	ips map[string]*rate.Limiter
	r   rate.Limit
	b   int
}

func newIPRateLimiter(r rate.Limit, b int) *ipRateLimiter {
	return &ipRateLimiter{
		ips: make(map[string]*rate.Limiter),
		r:   r,
		b:   b,
	}
}

func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.ips[ip]
	if !exists {
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[ip] = limiter
	}
	return limiter
}

func (i *ipRateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !i.getLimiter(r.RemoteAddr).Allow() {
			http.Error(w, "Too Many Requests. Try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
