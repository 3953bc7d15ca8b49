package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/sharedesk/internal/apperr"
	"github.com/guttosm/sharedesk/internal/domain/dto"
	"github.com/guttosm/sharedesk/internal/middleware"
	"github.com/guttosm/sharedesk/internal/service"
)

// Handler provides HTTP handlers for the share pages and the contact form.
//
// Responsibilities:
//   - Bind path, query and body parameters
//   - Delegate to the aggregation and lead services
//   - Map apperr kinds onto HTTP status codes with the standard error body
type Handler struct {
	companies service.CompanyAggregator
	leads     service.LeadService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - companies (service.CompanyAggregator): read side for company data.
//   - leads (service.LeadService): write side for contact leads and visits.
func NewHandler(companies service.CompanyAggregator, leads service.LeadService) *Handler {
	return &Handler{companies: companies, leads: leads}
}

// GetCompanyDetail godoc
// @Summary      Get company detail
// @Description  Returns a company with its prices, shareholdings, board, subsidiaries and highlights, plus the latest price, latest shareholding and market cap
// @Tags         shares
// @Produce      json
// @Param        name  path      string  true  "Company name or numeric id"  example(Acme Ltd)
// @Success      200   {object}  models.CompanyDetail  "Success"
// @Failure      400   {object}  dto.ErrorResponse     "Bad Request"
// @Failure      404   {object}  dto.ErrorResponse     "Not Found"
// @Failure      500   {object}  dto.ErrorResponse     "Internal Error"
// @Router       /api/shares-detail/{name} [get]
func (h *Handler) GetCompanyDetail(c *gin.Context) {
	detail, err := h.companies.GetDetail(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListCompanies godoc
// @Summary      List companies with their latest price
// @Description  One summary per company that has at least one price snapshot
// @Tags         shares
// @Produce      json
// @Success      200  {array}   models.CompanySummary  "Success"
// @Failure      500  {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/shares-detail [get]
// @Router       /api/shares [get]
func (h *Handler) ListCompanies(c *gin.Context) {
	summaries, err := h.companies.ListLatest(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// SearchCompanies godoc
// @Summary      Search companies
// @Description  Case-insensitive substring match on name or symbol, ordered by name
// @Tags         shares
// @Produce      json
// @Param        q      query     string  true   "Search text"  example(acme)
// @Param        limit  query     int     false  "Maximum results (1-50)"  default(5)
// @Success      200    {object}  dto.SearchResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse   "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/companies/search [get]
func (h *Handler) SearchCompanies(c *gin.Context) {
	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, &apperr.Error{Kind: apperr.InvalidArgument, Message: "invalid search parameters", Err: err})
		return
	}
	// An empty limit counts as omitted.
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, &apperr.Error{Kind: apperr.InvalidArgument, Message: "limit must be an integer", Err: err})
			return
		}
		q.Limit = &n
	}

	results, err := h.companies.Search(c.Request.Context(), q.Q, q.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SearchResponse{Results: results})
}

// SubmitContact godoc
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ContactRequest   true  "Contact details"
// @Success      201   {object}  dto.ContactResponse  "Created"
// @Failure      400   {object}  dto.ErrorResponse    "Bad Request"
// @Failure      429   {object}  dto.ErrorResponse    "Too Many Requests"
// @Failure      500   {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/contact [post]
func (h *Handler) SubmitContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, &apperr.Error{Kind: apperr.InvalidArgument, Message: "a name and a valid email are required", Err: err})
		return
	}

	id, err := h.leads.SubmitLead(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ContactResponse{ID: id.String()})
}

// RecordVisit godoc
// @Summary      Record a page visit
// @Tags         analytics
// @Accept       json
// @Param        body  body  dto.VisitRequest  true  "Visited page"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/visits [post]
func (h *Handler) RecordVisit(c *gin.Context) {
	var req dto.VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, &apperr.Error{Kind: apperr.InvalidArgument, Message: "path is required", Err: err})
		return
	}

	if err := h.leads.RecordVisit(c.Request.Context(), req, c.Request.UserAgent(), c.ClientIP()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondError(c *gin.Context, err error) {
	middleware.AbortWithError(c, apperr.KindOf(err).HTTPStatus(), apperr.Message(err), err)
}
