// Package response provides standard API response helpers.
package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response is the standard API response format.
type Response struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Success sends a successful response with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// NoContent sends a 204 No Content response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Error:   message,
	})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 error response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 error response.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// UnprocessableEntity sends a 422 error response. fields maps input names to
// messages and may be nil.
func UnprocessableEntity(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, Response{
		Success: false,
		Error:   message,
		Fields:  fields,
	})
}

// TooManyRequests sends a 429 error response.
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, "too many requests")
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal server error")
}

// ValidationError reports a binding failure. Validator errors become a 422
// with one message per field; anything else (malformed body) is a 400.
func ValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		BadRequest(c, err.Error())
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldName(fe)] = fieldMessage(fe)
	}
	UnprocessableEntity(c, "the given data was invalid", fields)
}

func fieldName(fe validator.FieldError) string {
	return toSnake(fe.Field())
}

func fieldMessage(fe validator.FieldError) string {
	name := strings.ReplaceAll(fieldName(fe), "_", " ")
	switch fe.Tag() {
	case "required":
		return "The " + name + " field is required."
	case "email":
		return "The " + name + " must be a valid email address."
	case "min":
		return "The " + name + " must be at least " + fe.Param() + " characters."
	case "max":
		return "The " + name + " may not be greater than " + fe.Param() + " characters."
	case "eqfield":
		return "The " + name + " does not match."
	case "objectid":
		return "The " + name + " must be a valid id."
	case "rolename":
		return "Invalid role selected."
	default:
		return "The " + name + " is invalid."
	}
}

// toSnake converts a Go field name such as PasswordConfirmation or RoleID to
// password_confirmation or role_id.
func toSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
