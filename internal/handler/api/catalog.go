package api

import (
	"net/http"

	"gym-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List bookable sessions
// @Description Expand weekly session templates into dated sessions with booked flags
// @Tags catalog
// @Produce json
// @Param start_date query string false "First date (YYYY-MM-DD), defaults to today"
// @Param end_date query string false "Last date (YYYY-MM-DD), defaults to the booking window"
// @Success 200 {object} queries.SessionsView
// @Failure 400 {object} httperr.Response
// @Router /api/sessions [get]
func (h *CatalogHandler) Sessions(c *gin.Context) {
	view, err := h.q.Sessions(c.Request.Context(), queries.SessionFilter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List credit packages
// @Description Active credit packages with savings against the single-session price
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.CreditPackageView
// @Router /api/credit-packages [get]
func (h *CatalogHandler) CreditPackages(c *gin.Context) {
	packages, err := h.q.CreditPackages(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": packages})
}
