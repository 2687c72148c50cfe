package api

import (
	"errors"
	"io"
	"net/http"

	resdto "campus-parking/internal/handler/dto/response"
	"campus-parking/internal/handler/httperr"
	"campus-parking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	imageFormField = "image"
	maxImageBytes  = 10 << 20
)

var errImageTooLarge = errors.New("image exceeds upload limit")

type DetectionHandler struct {
	cmds commands.DetectionCommands
}

func NewDetectionHandler(cmds commands.DetectionCommands) *DetectionHandler {
	return &DetectionHandler{cmds: cmds}
}

// @Summary Classify a parking spot image
// @Description Returns Occupied or Empty with the model confidence
// @Tags detections
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Spot image (PNG or JPEG)"
// @Success 200 {object} resdto.DetectionResponse
// @Failure 400 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/detections [post]
func (h *DetectionHandler) Detect(c *gin.Context) {
	fh, err := c.FormFile(imageFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Image is too large", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Image file is required", nil)
		return
	}
	if fh.Size > maxImageBytes {
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, errImageTooLarge, "Image is too large", nil)
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Image cannot be read", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Image cannot be read", nil)
		return
	}

	result, err := h.cmds.Detect(c.Request.Context(), data)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDetectionResult(result))
}
