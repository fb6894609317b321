package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boychukmk/library/internal/domains/book/model"
	"github.com/boychukmk/library/internal/domains/book/service"
	"github.com/boychukmk/library/internal/shared/response"
)

// ImportHandler accepts bulk book uploads.
type ImportHandler struct {
	service service.ImportService
}

func NewImportHandler(service service.ImportService) *ImportHandler {
	return &ImportHandler{service: service}
}

// Import - POST /api/v1/books/bulk-import
//
// Expects a multipart form with a "file" part holding a .json or .csv file.
// The response reports per-row outcomes; a partially failed import is still
// a 200 because the successful rows are already committed.
func (h *ImportHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, "failed to open uploaded file")
		return
	}
	defer file.Close()

	result, err := h.service.Import(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}
