package handler

import (
	"net/http"

	"northlinktelecom.com/cmd/server/database"
)

// SitemapHandler serves GET /api/sitemap, enumerating every public slug
// and id so static generation can build all parameterized routes ahead of
// time. Everything here goes through the no-auth read path; the result
// must never depend on per-request session state.
type SitemapHandler struct {
	divisions DivisionGateway
	services  ServiceGateway
	partners  PartnerGateway
	jobs      JobGateway
	media     MediaGateway
}

// NewSitemapHandler creates a new SitemapHandler
func NewSitemapHandler(divisions DivisionGateway, services ServiceGateway, partners PartnerGateway, jobs JobGateway, media MediaGateway) *SitemapHandler {
	return &SitemapHandler{
		divisions: divisions,
		services:  services,
		partners:  partners,
		jobs:      jobs,
		media:     media,
	}
}

// Sitemap is the enumeration of public route parameters
type Sitemap struct {
	Divisions []string `json:"divisions"`
	Services  []string `json:"services"`
	Partners  []string `json:"partners"`
	Jobs      []string `json:"jobs"`
	Media     []string `json:"media"`
}

// Get handles GET /api/sitemap
func (h *SitemapHandler) Get(w http.ResponseWriter, r *http.Request) {
	sitemap := Sitemap{
		Divisions: []string{},
		Services:  []string{},
		Partners:  []string{},
		Jobs:      []string{},
		Media:     []string{},
	}

	divisions, err := h.divisions.GetAll()
	if err != nil {
		respondRepoError(w, err, "Failed to build sitemap")
		return
	}
	for _, d := range divisions {
		sitemap.Divisions = append(sitemap.Divisions, d.Slug)
	}

	services, err := h.services.GetAll("")
	if err != nil {
		respondRepoError(w, err, "Failed to build sitemap")
		return
	}
	for _, s := range services {
		sitemap.Services = append(sitemap.Services, s.Slug)
	}

	partners, err := h.partners.GetAll()
	if err != nil {
		respondRepoError(w, err, "Failed to build sitemap")
		return
	}
	for _, p := range partners {
		sitemap.Partners = append(sitemap.Partners, p.Slug)
	}

	jobs, err := h.jobs.GetAll(database.JobFilter{})
	if err != nil {
		respondRepoError(w, err, "Failed to build sitemap")
		return
	}
	for _, j := range jobs {
		sitemap.Jobs = append(sitemap.Jobs, j.ID)
	}

	media, err := h.media.GetPublished()
	if err != nil {
		respondRepoError(w, err, "Failed to build sitemap")
		return
	}
	for _, m := range media {
		sitemap.Media = append(sitemap.Media, m.Slug)
	}

	respondJSON(w, http.StatusOK, sitemap)
}
