package server

import (
	"net/http"

	"github.com/matzehuels/figwind/pkg/buildinfo"
	"github.com/matzehuels/figwind/pkg/errors"
	"github.com/matzehuels/figwind/pkg/httputil"
	"github.com/matzehuels/figwind/pkg/translate"
)

// TranslateRequest is the body of POST /v1/translate.
type TranslateRequest struct {
	Declarations string `json:"declarations"`
	// Options default to the server's configured options.
	Options *translate.Options `json:"options,omitempty"`
}

// TranslateResponse is the result of POST /v1/translate.
type TranslateResponse struct {
	Classes string `json:"classes"`
	Matched bool   `json:"matched"`
}

// SortRequest is the body of POST /v1/sort.
type SortRequest struct {
	Classes string `json:"classes"`
}

// ResponsiveRequest is the body of POST /v1/responsive.
type ResponsiveRequest struct {
	Inputs      []string `json:"inputs"`
	Breakpoints []string `json:"breakpoints"`
}

// ClassesResponse is the result of POST /v1/sort and POST /v1/responsive.
type ClassesResponse struct {
	Classes string `json:"classes"`
}

// PluginResponse is the result of GET /v1/classes.
type PluginResponse struct {
	Plugin  string   `json:"plugin"`
	Classes []string `json:"classes"`
}

// InfoResponse is the result of GET /v1/info.
type InfoResponse struct {
	Version     string   `json:"version"`
	ThemeHash   string   `json:"theme_hash"`
	Breakpoints []string `json:"breakpoints"`
	Plugins     []string `json:"plugins"`
	Classes     int      `json:"classes"`
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if httputil.StatusFor(err) >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "err", err)
	}
	httputil.WriteError(w, RequestID(r.Context()), err)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	opts := s.cfg.Options
	if req.Options != nil {
		opts = *req.Options
	}
	tr, err := s.runner.Translate(r.Context(), s.ix, req.Declarations, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, TranslateResponse{Classes: tr.Classes, Matched: tr.Matched})
}

func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	var req SortRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	sorted, err := s.runner.Sort(s.ix, req.Classes)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ClassesResponse{Classes: sorted})
}

func (s *Server) handleResponsive(w http.ResponseWriter, r *http.Request) {
	var req ResponsiveRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	diff, err := s.runner.Diff(s.ix, req.Inputs, req.Breakpoints)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ClassesResponse{Classes: diff})
}

func (s *Server) handleClasses(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("plugin")
	if name == "" {
		s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "missing plugin parameter"))
		return
	}
	if err := errors.ValidatePluginName(name); err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid plugin parameter"))
		return
	}
	classes, err := s.runner.Classes(s.ix, name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if classes == nil {
		classes = []string{}
	}
	httputil.WriteJSON(w, http.StatusOK, PluginResponse{Plugin: name, Classes: classes})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, InfoResponse{
		Version:     buildinfo.Get().Version,
		ThemeHash:   s.ix.ThemeHash,
		Breakpoints: s.ix.Breakpoints(),
		Plugins:     s.ix.Index.Order,
		Classes:     len(s.ix.Index.Forward),
	})
}
