package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/country-list-service/internal/model"
	"github.com/maxviazov/country-list-service/internal/service"
	"github.com/maxviazov/country-list-service/pkg/response"
)

// pageKey is where validatePagination leaves the checked page for list.
const pageKey = "countries.page"

var errPageMissing = errors.New("validated page missing from context")

type CountryHandler struct {
	svc service.CountryService
}

func NewCountryHandler(svc service.CountryService) *CountryHandler { return &CountryHandler{svc: svc} }

func (h *CountryHandler) Register(r gin.IRouter) {
	readOnly(r, CountriesPath, h.validatePagination, h.list)
}

// validatePagination parses offset/limit leniently and rejects out-of-range
// values with a 400 before the list handler runs.
func (h *CountryHandler) validatePagination(c *gin.Context) {
	page := service.ParsePage(c.Query("offset"), c.Query("limit"))
	if err := h.svc.ValidatePage(page); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Set(pageKey, page)
	c.Next()
}

func (h *CountryHandler) list(c *gin.Context) {
	v, _ := c.Get(pageKey)
	page, ok := v.(model.Page)
	if !ok {
		response.WriteError(c, errPageMissing)
		return
	}
	res, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}
