// ABOUTME: HTML page handler rendering the search state for browsers
// ABOUTME: Serves the page from a template and accepts keyword form submissions

package handlers

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"telescout-api/core/domain"
	"telescout-api/core/interfaces"
	"telescout-api/pkg/locale"
)

// cardTags is the number of tags shown on a result card
const cardTags = 3

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// PageHandler renders the HTML front end
type PageHandler struct {
	controller SearchController
	catalog    *locale.Catalog
	logger     interfaces.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(controller SearchController, catalog *locale.Catalog, logger interfaces.Logger) *PageHandler {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &PageHandler{
		controller: controller,
		catalog:    catalog,
		logger:     logger,
	}
}

// RegisterRoutes registers page routes on the router
func (h *PageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ServePage)
	r.Post("/", h.SubmitForm)
}

type groupCard struct {
	Name        string
	Initial     string
	Description string
	Category    string
	Members     string
	Tags        []string
	JoinURL     string
	Direct      bool
}

type sourceChip struct {
	URI   string
	Label string
}

type pageData struct {
	Lang           string
	Text           locale.PageText
	State          domain.SearchState
	View           domain.View
	Groups         []groupCard
	Sources        []sourceChip
	ResultsHeading string
	ResultsCount   string
	NoResults      string
}

func (h *PageHandler) buildPageData(s domain.SearchState) pageData {
	text := h.catalog.Page
	data := pageData{
		Lang:           h.catalog.Code,
		Text:           text,
		State:          s,
		View:           s.View(),
		Groups:         make([]groupCard, 0, len(s.Results)),
		Sources:        make([]sourceChip, 0, len(s.Sources)),
		ResultsHeading: text.ResultsHeadingFor(s.Query),
		ResultsCount:   text.ResultsCountFor(len(s.Results)),
		NoResults:      text.NoResultsFor(s.Query),
	}

	for _, g := range s.Results {
		data.Groups = append(data.Groups, groupCard{
			Name:        g.Name,
			Initial:     g.Initial(),
			Description: g.Description,
			Category:    g.Category,
			Members:     g.EstimatedMembers,
			Tags:        g.TopTags(cardTags),
			JoinURL:     g.JoinURL(text.JoinSearchSuffix),
			Direct:      g.IsDirectLink(),
		})
	}
	for _, src := range s.Sources {
		data.Sources = append(data.Sources, sourceChip{URI: src.URI, Label: src.Label()})
	}
	return data
}

// ServePage handles GET /
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, h.buildPageData(h.controller.Snapshot())); err != nil {
		h.logger.Error("Failed to render page", map[string]interface{}{
			"error": err.Error(),
		})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

// SubmitForm handles POST / and redirects back to the page, which shows
// the loading state until the search completes
func (h *PageHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	h.controller.SubmitAsync(context.WithoutCancel(r.Context()), r.PostFormValue("keyword"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
