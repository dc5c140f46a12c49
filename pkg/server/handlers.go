package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/matzehuels/qrsvg/pkg/buildinfo"
	"github.com/matzehuels/qrsvg/pkg/content"
	"github.com/matzehuels/qrsvg/pkg/errors"
	"github.com/matzehuels/qrsvg/pkg/pipeline"
	"github.com/matzehuels/qrsvg/pkg/qr"
	"github.com/matzehuels/qrsvg/pkg/render"
	"github.com/matzehuels/qrsvg/pkg/shape"
)

// Response headers set on SVG responses.
const (
	HeaderRenderID = "X-Render-ID"
	HeaderCache    = "X-Cache"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Resolve().Version,
	})
}

// StylesResponse is the body of GET /v1/styles.
type StylesResponse struct {
	Regions  map[string][]string `json:"regions"`
	Defaults render.Options      `json:"defaults"`
	Types    []content.Type      `json:"content_types"`
}

// Styles builds the capability table served by GET /v1/styles.
func Styles() StylesResponse {
	resp := StylesResponse{
		Regions:  make(map[string][]string, len(qr.Regions)),
		Defaults: render.DefaultConfig().Options(),
		Types:    content.Types,
	}
	for _, region := range qr.Regions {
		var names []string
		for _, st := range shape.StylesFor(region) {
			names = append(names, st.String())
		}
		resp.Regions[region.String()] = names
	}
	return resp
}

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Styles())
}

func (s *Server) handleRenderJSON(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body: %v", err))
		return
	}
	s.render(w, r, opts)
}

func (s *Server) handleRenderQuery(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, opts)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	cacheState := "miss"
	if res.CacheHit {
		cacheState = "hit"
	}
	h := w.Header()
	h.Set("Content-Type", "image/svg+xml")
	h.Set("Cache-Control", "public, max-age=86400")
	h.Set(HeaderRenderID, uuid.NewString())
	h.Set(HeaderCache, cacheState)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.SVG)
}

// optionsFromQuery maps query parameters onto pipeline options. Parameter
// names follow the JSON field names, with short aliases for the render
// fields (data, border, interior, fg, bg, ring).
func optionsFromQuery(q url.Values) (pipeline.Options, error) {
	opts := pipeline.Options{
		ContentType: q.Get("type"),
		ECC:         q.Get("ecc"),
		Content: content.Config{
			Text:       q.Get("text"),
			URL:        q.Get("url"),
			SSID:       q.Get("ssid"),
			Password:   q.Get("password"),
			Encryption: content.WiFiEncryption(q.Get("encryption")),
			Phone:      q.Get("phone"),
			Message:    q.Get("message"),
			Email:      q.Get("email"),
			Subject:    q.Get("subject"),
			Body:       q.Get("body"),
		},
		Render: render.Options{
			Foreground:     first(q, "fg", "foreground"),
			Background:     first(q, "bg", "background"),
			DataStyle:      first(q, "data", "data_style"),
			BorderStyle:    first(q, "border", "border_style"),
			InteriorStyle:  first(q, "interior", "interior_style"),
			ShapeRendering: q.Get("shape_rendering"),
		},
	}

	var err error
	if opts.Content.Hidden, err = boolParam(q, "hidden"); err != nil {
		return opts, err
	}
	if opts.Refresh, err = boolParam(q, "refresh"); err != nil {
		return opts, err
	}
	if v := q.Get("margin"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "margin must be an integer, got %q", v)
		}
		opts.Render.Margin = render.Margin(m)
	}
	if opts.Render.Scale, err = floatParam(q, "scale"); err != nil {
		return opts, err
	}
	if opts.Render.RingStrokeWidth, err = floatParam(q, "ring", "ring_stroke_width"); err != nil {
		return opts, err
	}
	return opts, nil
}

func first(q url.Values, names ...string) string {
	for _, n := range names {
		if v := q.Get(n); v != "" {
			return v
		}
	}
	return ""
}

func boolParam(q url.Values, name string) (bool, error) {
	v := q.Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean, got %q", name, v)
	}
	return b, nil
}

func floatParam(q url.Values, names ...string) (float64, error) {
	v := first(q, names...)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s must be a number, got %q", names[0], v)
	}
	return f, nil
}
