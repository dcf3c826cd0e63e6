package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/regional-portal/geo-backend/internal/domain"
	"github.com/regional-portal/geo-backend/pkg/logger"
)

func errorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorStruct{Error: message})
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		errorResponse(c, http.StatusBadRequest, InvalidRequestMessage)
		return
	}

	out := make([]ValidationError, len(verr))
	for i, ferr := range verr {
		out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorStruct{
		Error:  ValidationErrorMessage,
		Errors: out,
	})
}

// lookupErrorResponse maps resolver errors: bad input is 400, anything else is a store failure.
func lookupErrorResponse(c *gin.Context, err error, failedMessage string) {
	switch {
	case errors.Is(err, domain.ErrMissingParams):
		errorResponse(c, http.StatusBadRequest, MissingParamsMessage)
	case errors.Is(err, domain.ErrMalformedLookup):
		errorResponse(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error("resolve failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, failedMessage)
	}
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "field is required"
	case "uuid":
		return "must be a uuid"
	case "min":
		return fmt.Sprintf("must be at least %v", value)
	case "max":
		return fmt.Sprintf("must be at most %v", value)
	case "cep":
		return "postal code must have 8 digits"
	}
	return tag
}
