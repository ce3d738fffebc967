package handler

import (
	"Chronicle/internal/pkg/consts"
	"Chronicle/internal/pkg/minio"
	"Chronicle/internal/pkg/response"
	"Chronicle/internal/pkg/util"
	"Chronicle/internal/service"
	log "log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// Upload receives a post image, downscales it when oversized and stores it.
// The returned key is what post create/edit submissions reference.
func (s *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		response.Fail(c, response.BadRequest, service.ErrFileNotSupported.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	buf, err := util.NormalizeImage(file, consts.MaxImageWidth)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrFileNotSupported.Error())
		return
	}

	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ".jpg"
	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, buf, int64(buf.Len()), "image/jpeg")
	if err != nil {
		log.ErrorContext(c.Request.Context(), "image upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	response.Success(c, map[string]string{
		"key": fileKey,
		"url": minio.GetPublicURL(fileKey),
	})
}
