package api

import (
	"errors"
	"net/http"
	"strconv"

	"campus-parking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

var errInvalidLotID = errors.New("lot id must be a positive integer")

// lotIDParam aborts with 400 when :id is not a positive integer.
func lotIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidLotID, "Invalid lot id", nil)
		return 0, false
	}
	return id, true
}
