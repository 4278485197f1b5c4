package handlers

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"
	"unicode"

	"gridiron/csvdata"
	"gridiron/metrics"
	"gridiron/models"
	"gridiron/roster"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/hlog"
)

// Snapshots is the read side of the roster store plus its reload hook.
type Snapshots interface {
	Dataset() *roster.Dataset
	Reload(ctx context.Context) (*roster.Dataset, error)
}

type RosterHandler struct {
	store     Snapshots
	templates map[string]*template.Template
}

func NewRosterHandler(store Snapshots, templates map[string]*template.Template) *RosterHandler {
	return &RosterHandler{
		store:     store,
		templates: templates,
	}
}

// Index renders the selector page with every team and week in the snapshot.
func (h *RosterHandler) Index(w http.ResponseWriter, r *http.Request) {
	ds := h.store.Dataset()
	data := map[string]interface{}{
		"Teams": ds.Teams(),
		"Weeks": ds.Weeks(),
	}
	if !ds.LoadedAt.IsZero() {
		data["LoadedAt"] = ds.LoadedAt.Format(time.RFC1123)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates["index"].ExecuteTemplate(w, "base", data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed to render index")
	}
}

func (h *RosterHandler) TeamWeeks(w http.ResponseWriter, r *http.Request) {
	weeks, err := h.store.Dataset().TeamWeeks(r.URL.Query().Get("team"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.TeamWeeksResponse{AvailableWeeks: weeks})
}

func (h *RosterHandler) Roster(w http.ResponseWriter, r *http.Request) {
	resp, ok := h.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// RosterCSV serves the same lookup as Roster as a CSV attachment, one line
// per player with the position group first.
func (h *RosterHandler) RosterCSV(w http.ResponseWriter, r *http.Request) {
	resp, ok := h.resolve(w, r)
	if !ok {
		return
	}

	filename := fmt.Sprintf("roster_%s_week%d.csv", fileSafe(resp.TeamInfo.Name), resp.Week)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := writeRosterCSV(gocsv.DefaultCSVWriter(w), resp); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed to write roster CSV")
	}
}

func writeRosterCSV(writer gocsv.CSVWriter, resp *models.RosterResponse) error {
	header := []string{"group"}
	wroteHeader := false
	for _, g := range resp.Roster {
		for _, p := range g.Players {
			if !wroteHeader {
				if err := writer.Write(append(header, p.Columns...)); err != nil {
					return err
				}
				wroteHeader = true
			}
			record := make([]string, 0, len(p.Values)+1)
			record = append(record, g.Name)
			for _, v := range p.Values {
				record = append(record, csvdata.Format(v))
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

func (h *RosterHandler) Health(w http.ResponseWriter, r *http.Request) {
	ds := h.store.Dataset()
	var loadedAt *time.Time
	if !ds.LoadedAt.IsZero() {
		loadedAt = &ds.LoadedAt
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"rows":      ds.Len(),
		"loaded_at": loadedAt,
	})
}

func (h *RosterHandler) resolve(w http.ResponseWriter, r *http.Request) (*models.RosterResponse, bool) {
	team := r.URL.Query().Get("team")
	week := r.URL.Query().Get("week")
	logger := hlog.FromRequest(r)

	resp, err := h.store.Dataset().Resolve(team, week)
	if err != nil {
		metrics.RosterLookupsTotal.WithLabelValues(roster.KindOf(err).String()).Inc()
		logger.Info().Str("team", team).Str("week", week).Err(err).Msg("Roster lookup failed")
		writeError(w, r, err)
		return nil, false
	}

	outcome := "exact"
	if !resp.WeekAvailable {
		outcome = "fallback"
		metrics.FallbackWeeksTotal.Inc()
	}
	metrics.RosterLookupsTotal.WithLabelValues(outcome).Inc()

	players := 0
	for _, g := range resp.Roster {
		players += len(g.Players)
	}
	logger.Info().
		Str("team", team).
		Int("requested_week", resp.RequestedWeek).
		Int("week", resp.Week).
		Int("players", players).
		Msg("Roster lookup")
	return resp, true
}

func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			return r
		}
		return '_'
	}, s)
}
