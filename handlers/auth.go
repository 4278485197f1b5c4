package handlers

import (
	"encoding/json"
	"mime"
	"net/http"
	"time"

	"gridiron/config"
	"gridiron/middleware"
	"gridiron/models"

	"github.com/rs/zerolog/hlog"
	"golang.org/x/crypto/bcrypt"
)

const adminName = "admin"

type AdminHandler struct {
	config *config.Config
	store  Snapshots
}

func NewAdminHandler(cfg *config.Config, store Snapshots) *AdminHandler {
	return &AdminHandler{
		config: cfg,
		store:  store,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login exchanges the admin password for a bearer token. The token is also
// set as a cookie for browser use.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.config.AdminEnabled() {
		writeErrorMessage(w, r, http.StatusNotFound, "admin API is disabled")
		return
	}

	password, ok := readPassword(r)
	if !ok {
		writeErrorMessage(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.config.AdminPasswordHash), []byte(password)); err != nil {
		hlog.FromRequest(r).Warn().Msg("Admin login rejected")
		writeErrorMessage(w, r, http.StatusUnauthorized, "invalid credentials")
		return
	}

	op := &models.Operator{Name: adminName, Role: models.RoleAdmin}
	token, err := middleware.GenerateToken(op, h.config.JWTExpiration)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed to generate token")
		writeErrorMessage(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/admin",
		HttpOnly: true,
		Secure:   h.config.IsProduction(),
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.config.JWTExpiration.Seconds()),
	})
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Reload re-reads the roster file. A failed load still replaces the snapshot
// with an empty one.
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	op := middleware.GetOperatorFromContext(r.Context())
	if op == nil || !op.CanReload() {
		writeErrorMessage(w, r, http.StatusForbidden, "forbidden")
		return
	}

	ds, err := h.store.Reload(r.Context())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("operator", op.Name).Msg("Roster reload failed")
		writeErrorMessage(w, r, http.StatusInternalServerError, "reload failed")
		return
	}

	hlog.FromRequest(r).Info().Str("operator", op.Name).Int("rows", ds.Len()).Msg("Roster reloaded")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows":      ds.Len(),
		"loaded_at": ds.LoadedAt.Format(time.RFC3339),
	})
}

func readPassword(r *http.Request) (string, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", false
		}
		return req.Password, true
	}

	if err := r.ParseForm(); err != nil {
		return "", false
	}
	return r.FormValue("password"), true
}
