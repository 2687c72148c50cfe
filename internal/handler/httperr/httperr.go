package httperr

import (
	"errors"
	"net/http"

	"campus-parking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a use case error to its HTTP status.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrLotNotFound):
		return http.StatusNotFound, "Parking lot not found"
	case errs.Is(err, errs.ErrLotFull):
		return http.StatusConflict, "Lot full"
	case errs.Is(err, errs.ErrOccupancyOutOfRange):
		return http.StatusUnprocessableEntity, "Occupied count must be between 0 and capacity"
	case errs.Is(err, errs.ErrInvalidReservation):
		return http.StatusBadRequest, "Invalid reservation"
	case errs.Is(err, errs.ErrRejected):
		return http.StatusConflict, "Request rejected"
	case errs.Is(err, errs.ErrInvalidImage):
		return http.StatusUnprocessableEntity, "Image cannot be decoded"
	case errs.Is(err, errs.ErrModelUnavailable), errs.Is(err, errs.ErrClassification):
		return http.StatusServiceUnavailable, "Classification is unavailable"
	case errs.Is(err, errs.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid password"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
