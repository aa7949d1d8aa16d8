package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/BijinVijayan/food-store/services"
	"github.com/BijinVijayan/food-store/utils"
	"github.com/gin-gonic/gin"
)

// UploadController is the single blob-upload boundary: multipart file in,
// permanent public URL out.
type UploadController struct {
	Blobs services.BlobStore
}

func NewUploadController(blobs services.BlobStore) *UploadController {
	return &UploadController{Blobs: blobs}
}

func (uc *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no file provided"))
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("upload failed"))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("upload failed"))
		return
	}

	url, err := uc.Blobs.Save(file.Filename, data)
	if err != nil {
		utils.ErrorLogger.Printf("blob save failed for %s: %v", file.Filename, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("upload failed"))
		return
	}

	utils.InfoLogger.Printf("File uploaded: %s -> %s", file.Filename, url)
	c.JSON(http.StatusOK, gin.H{"url": url})
}
