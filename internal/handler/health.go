package handler

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

type HealthHandler struct {
	usersFile        string
	appointmentsFile string
}

func NewHealthHandler(usersFile, appointmentsFile string) *HealthHandler {
	return &HealthHandler{usersFile: usersFile, appointmentsFile: appointmentsFile}
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"version":   "1.0.0",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Readiness verifies the data directories backing both stores are reachable.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{
		"users_store":        checkDir(h.usersFile),
		"appointments_store": checkDir(h.appointmentsFile),
	}

	status := "ok"
	httpStatus := http.StatusOK
	for name, state := range checks {
		if state != "ok" {
			slog.Warn("readiness check failed", "check", name)
			status = "down"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	RespondJSON(w, httpStatus, map[string]any{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}

func checkDir(file string) string {
	info, err := os.Stat(filepath.Dir(file))
	if err != nil || !info.IsDir() {
		return "down"
	}
	return "ok"
}
