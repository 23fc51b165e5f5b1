package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onurusluca/qrkosta-app/services"
	"github.com/onurusluca/qrkosta-app/utils"
)

type RateController struct {
	Rates *services.RateService
}

func NewRateController(rates *services.RateService) *RateController {
	return &RateController{Rates: rates}
}

// GetRates -> GET /api/rates
//
// Results are fresh on every uncached request; the hour of reuse lives in the
// Cache-Control header, not in this process.
func (rc *RateController) GetRates(c *gin.Context) {
	rateSet, err := rc.Rates.GetRates()
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, utils.ErrRatesUnavailable)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600, s-maxage=3600")
	c.JSON(http.StatusOK, rateSet)
}
