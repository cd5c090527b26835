package mux

import (
	"errors"
	"net/http"
	"regexp"
	"sort"

	"holdemtable-server/pkg/holdem"
	"holdemtable-server/pkg/room"
)

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tables := m.pitBoss.Tables()
		sort.Slice(tables, func(i, j int) bool {
			if tables[i].CreatedAt.Equal(tables[j].CreatedAt) {
				return tables[i].UUID < tables[j].UUID
			}

			return tables[i].CreatedAt.Before(tables[j].CreatedAt)
		})

		writeJSON(w, http.StatusOK, tables)
	}
}

type postTablePayload struct {
	Name    string         `json:"name"`
	Options holdem.Options `json:"options"`
}

func (m *Mux) postTable() http.HandlerFunc {
	var wordChar = regexp.MustCompile(`\w`)
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTablePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if !wordChar.MatchString(pp.Name) || len(pp.Name) < 3 || len(pp.Name) > 40 {
			writeJSONError(w, http.StatusBadRequest, errors.New("name must be 3-40 characters"))
			return
		}

		opts := pp.Options
		defaults := holdem.DefaultOptions()
		if opts.PlayersLimit <= 0 {
			opts.PlayersLimit = defaults.PlayersLimit
		}

		if opts.Stakes.BigBlind <= 0 {
			opts.Stakes = defaults.Stakes
		}

		if opts.Stakes.SmallBlind <= 0 || opts.Stakes.SmallBlind > opts.Stakes.BigBlind || opts.Stakes.Ante < 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("invalid stakes"))
			return
		}

		table := m.pitBoss.CreateTable(pp.Name, opts)
		writeJSON(w, http.StatusCreated, table)
	}
}

func (m *Mux) getTableUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		table := r.Context().Value(ctxTableKey).(*room.Table)
		writeJSON(w, http.StatusOK, table)
	})
}
