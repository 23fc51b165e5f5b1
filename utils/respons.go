package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Fixed client-facing messages. Driver errors are logged, never echoed.
var (
	ErrInvalidRequest      = errors.New("Invalid request")
	ErrShopNotFound        = errors.New("Shop not found")
	ErrTableNotFound       = errors.New("Table not found")
	ErrResolveShopFailed   = errors.New("Failed to resolve shop")
	ErrLoadShopFailed      = errors.New("Failed to load shop")
	ErrLoadMenusFailed     = errors.New("Failed to load menus")
	ErrSessionFailed       = errors.New("Failed to get session")
	ErrCreateOrderFailed   = errors.New("Failed to create order")
	ErrAddItemsFailed      = errors.New("Failed to add items")
	ErrFetchOrdersFailed   = errors.New("Failed to fetch orders")
	ErrRatesUnavailable    = errors.New("Rates unavailable")
	ErrUnsupportedCurrency = errors.New("Unsupported currency")
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}
