// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"github.com/appetrosyan/partial-config/internal/config"
)

// variable is the JSON form of one row of `partialconfig vars`.
type variable struct {
	Field     string   `json:"field"`
	Variables []string `json:"variables"`
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.configs.Current()
	if cfg == nil {
		http.Error(w, "configuration is not loaded", http.StatusServiceUnavailable)
		return
	}

	h.writeJSON(w, r, cfg.Shareable())
}

func (h *Handler) getVariables(w http.ResponseWriter, r *http.Request) {
	vars, err := config.Variables()
	if err != nil {
		zerolog.Ctx(r.Context()).Err(err).Msg("error listing environment variables")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	out := make([]variable, 0, len(vars))
	for _, v := range vars {
		out = append(out, variable{Field: v.Field, Variables: v.Names})
	}

	h.writeJSON(w, r, out)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	body, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		zerolog.Ctx(r.Context()).Err(err).Msg("error encoding response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
