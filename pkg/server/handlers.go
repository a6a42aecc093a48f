package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/plannerkit/pkg/canvas"
	perrors "github.com/matzehuels/plannerkit/pkg/errors"
	"github.com/matzehuels/plannerkit/pkg/pipeline"
	"github.com/matzehuels/plannerkit/pkg/sink"
	"github.com/matzehuels/plannerkit/pkg/style"
)

const maxBodyBytes = 1 << 20

type indexData struct {
	Title  string
	Prompt string
	Error  string
}

type fileLink struct {
	Size       string `json:"size"`
	Label      string `json:"-"`
	PDFURL     string `json:"pdf_url"`
	PreviewURL string `json:"preview_url"`
}

type resultData struct {
	Title     string
	Heading   string
	StyleName string
	Prompt    string
	Swatches  []string
	Files     []fileLink
}

func newResultData(result *pipeline.Result) resultData {
	text := func(key string) string {
		v, _ := result.Style[key].(string)
		return v
	}
	d := resultData{
		Title:     "Your planner",
		Heading:   text(style.KeyCollectionName),
		StyleName: text(style.KeyStyleName),
		Prompt:    result.Prompt,
		Files:     links(result.Artifacts),
	}
	if d.Heading == "" {
		d.Heading = text(style.KeyTitle)
	}
	for _, key := range []string{style.KeyBackgroundColor, style.KeyAccentColor, style.KeyAccentColor2, style.KeyTextColor} {
		if c := text(key); c != "" {
			d.Swatches = append(d.Swatches, c)
		}
	}
	return d
}

type generateResponse struct {
	*pipeline.Result
	Files []fileLink `json:"files"`
}

type errorResponse struct {
	Error string       `json:"error"`
	Code  perrors.Code `json:"code,omitempty"`
}

func artifactURL(name string) string { return "/generated/" + name }

func links(artifacts []*sink.Artifacts) []fileLink {
	out := make([]fileLink, 0, len(artifacts))
	for _, a := range artifacts {
		label := a.Size
		if size, err := canvas.ParsePageSize(a.Size); err == nil {
			label = size.Label()
		}
		out = append(out, fileLink{
			Size:       a.Size,
			Label:      label,
			PDFURL:     artifactURL(a.PDF),
			PreviewURL: artifactURL(a.Preview),
		})
	}
	return out
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, "index", indexData{Title: "New planner"})
}

func (s *Server) handleGenerateForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.renderPage(w, http.StatusBadRequest, "index", indexData{Title: "New planner", Error: "could not read the form"})
		return
	}
	prompt := strings.TrimSpace(r.PostFormValue("prompt"))

	result, err := s.runner.Execute(r.Context(), pipeline.Options{Prompt: prompt, Sizes: s.sizes, Logger: s.logger})
	if err != nil {
		s.logger.Warn("generation failed", "error", err, "request_id", requestID(r))
		s.renderPage(w, statusFor(err), "index", indexData{Title: "New planner", Prompt: prompt, Error: perrors.UserMessage(err)})
		return
	}
	s.renderPage(w, http.StatusOK, "result", newResultData(result))
}

func (s *Server) handleGenerateAPI(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&opts); err != nil {
		s.writeError(w, r, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if len(opts.Sizes) == 0 {
		opts.Sizes = s.sizes
	}
	opts.Logger = s.logger

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, generateResponse{Result: result, Files: links(result.Artifacts)})
}

func (s *Server) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, perrors.New(perrors.ErrCodeInvalidInput, "invalid limit %q", v))
			return
		}
		limit = n
	}
	records, err := s.runner.History.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleHistoryGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.runner.History.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	path, err := s.runner.Writer.Path(name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = perrors.New(perrors.ErrCodeNotFound, "artifact %s not found", name)
		}
		s.writeError(w, r, err)
		return
	}
	switch filepath.Ext(name) {
	case ".pdf":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	case ".png":
		w.Header().Set("Content-Type", "image/png")
	}
	http.ServeFile(w, r, path)
}

func (s *Server) renderPage(w http.ResponseWriter, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.pages.render(w, page, data); err != nil {
		s.logger.Error("render template", "page", page, "error", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err, "request_id", requestID(r))
	}
	s.writeJSON(w, status, errorResponse{Error: perrors.UserMessage(err), Code: perrors.GetCode(err)})
}
