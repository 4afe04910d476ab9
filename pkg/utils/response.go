package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every JSON endpoint returns.
type Response struct {
	Code int         `json:"code"`
	Data interface{} `json:"data"`
	Msg  string      `json:"message"`
}

// Pagination carries page parameters for list endpoints.
type Pagination struct {
	Current int   `json:"current"`
	Size    int   `json:"size"`
	Total   int64 `json:"total"`
}

// PageResult wraps a page of records with its pagination metadata.
type PageResult struct {
	Records interface{} `json:"records"`
	Pagination
}

// Business status codes, independent of HTTP status.
const (
	SUCCESS          = 0
	ERROR            = -1
	UNAUTHORIZED     = 40100
	FORBIDDEN        = 40300
	NOT_FOUND        = 40400
	VALIDATION_ERROR = 40001
)

var codeMessages = map[int]string{
	SUCCESS:          "ok",
	ERROR:            "failed",
	UNAUTHORIZED:     "unauthorized",
	FORBIDDEN:        "forbidden",
	NOT_FOUND:        "not found",
	VALIDATION_ERROR: "validation failed",
}

// Success writes a 200 with SUCCESS and the default message.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: SUCCESS, Data: data, Msg: codeMessages[SUCCESS]})
}

// SuccessWithMessage writes a 200 with SUCCESS and a caller-supplied message.
func SuccessWithMessage(c *gin.Context, data interface{}, msg string) {
	c.JSON(http.StatusOK, Response{Code: SUCCESS, Data: data, Msg: msg})
}

// SuccessWithPage writes a 200 wrapping records in a PageResult.
func SuccessWithPage(c *gin.Context, records interface{}, current, size int, total int64) {
	c.JSON(http.StatusOK, Response{
		Code: SUCCESS,
		Data: PageResult{
			Records:    records,
			Pagination: Pagination{Current: current, Size: size, Total: total},
		},
		Msg: codeMessages[SUCCESS],
	})
}

// Error writes the HTTP status matching code, with no data payload.
func Error(c *gin.Context, code int, msg string) {
	c.JSON(getHTTPStatus(code), Response{Code: code, Data: nil, Msg: msg})
}

// ErrorWithData is Error but with a data payload attached (e.g. field errors).
func ErrorWithData(c *gin.Context, code int, msg string, data interface{}) {
	c.JSON(getHTTPStatus(code), Response{Code: code, Data: data, Msg: msg})
}

func getHTTPStatus(code int) int {
	switch code {
	case UNAUTHORIZED:
		return http.StatusUnauthorized
	case FORBIDDEN:
		return http.StatusForbidden
	case NOT_FOUND:
		return http.StatusNotFound
	case VALIDATION_ERROR:
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}
