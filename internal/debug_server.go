package internal

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"chat-bootstrap/services"
	"chat-bootstrap/store"
)

// NewMux wires the store's read accessors and the auth operations onto
// a plain ServeMux. This is a development/read surface, not a public
// API: the store is only ever mutated through Register here, every
// other route is a snapshot read.
func NewMux(s *store.Store, authService services.IAuthService) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.AllUsersByName())
	})
	mux.HandleFunc("GET /conversations", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.AllConversations())
	})
	mux.HandleFunc("GET /messages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.AllMessages())
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]int{
			"users":         len(s.AllUsersByID()),
			"conversations": len(s.AllConversations()),
			"messages":      len(s.AllMessages()),
		})
	})

	mux.HandleFunc("POST /register", credentialHandler(authService.Register))
	mux.HandleFunc("POST /login", credentialHandler(authService.Login))

	return mux
}

// StartDebugServer serves the mux in the background. Errors other than
// startup misconfiguration are not interesting on a debug surface.
func StartDebugServer(s *store.Store, authService services.IAuthService, port int, log *slog.Logger) {
	mux := NewMux(s, authService)
	go func() {
		addr := fmt.Sprintf(":%d", port)
		log.Info("debug server listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error("debug server stopped", "error", err)
		}
	}()
}

type credentialsPayload struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func credentialHandler(op func(name, password string) (services.Token, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload credentialsPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		token, err := op(payload.Name, payload.Password)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		writeJSON(w, map[string]string{"token": string(token)})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
