package delivery

import (
	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string `json:"Status"`
	Message string `json:"Message"`
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrProductConflict):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrInvalidProduct), errors.Is(err, domain.ErrProductConstraint):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
