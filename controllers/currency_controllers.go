package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onurusluca/qrkosta-app/utils"
)

const (
	currencyCookieName   = "currency"
	currencyCookieMaxAge = 60 * 60 * 24 * 365
)

// CurrencyController persists the visitor's display currency in a cookie.
type CurrencyController struct{}

func NewCurrencyController() *CurrencyController {
	return &CurrencyController{}
}

// GetCurrency -> GET /api/currency
func (cc *CurrencyController) GetCurrency(c *gin.Context) {
	code, err := c.Cookie(currencyCookieName)
	if err != nil || !utils.IsSupportedCurrency(code) {
		code = "JPY"
	}
	c.JSON(http.StatusOK, gin.H{"currency": code})
}

// SetCurrency -> PUT /api/currency
func (cc *CurrencyController) SetCurrency(c *gin.Context) {
	var req struct {
		Currency string `json:"currency" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrInvalidRequest)
		return
	}
	if !utils.IsSupportedCurrency(req.Currency) {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrUnsupportedCurrency)
		return
	}

	c.SetCookie(currencyCookieName, req.Currency, currencyCookieMaxAge, "/", "", false, false)
	utils.RespondJSON(c, http.StatusOK, "Currency updated", gin.H{"currency": req.Currency})
}
