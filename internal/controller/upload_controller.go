package controller

import (
	"fmt"
	"path/filepath"
	"time"

	"naac_backend/internal/service"
	"naac_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 20 << 20 // 20 MiB

// UploadController accepts supporting documents (MOUs, sanction letters,
// annual reports) and hands them to the configured storage provider.
type UploadController struct {
	StorageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{StorageService: storageService}
}

// Upload godoc
// @Summary Upload a supporting document
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "document to store"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/uploads [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file field")
		return
	}
	if header.Size > maxUploadSize {
		util.BadRequest(ctx, "file exceeds the 20MB limit")
		return
	}

	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, "failed to open uploaded file", err)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(header.Filename))
	contentType := header.Header.Get("Content-Type")

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, header.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, "failed to store uploaded file", err)
		return
	}

	util.Created(ctx, gin.H{"filename": filename, "url": url})
}
