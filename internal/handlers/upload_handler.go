package handlers

import (
	"errors"
	"strings"

	"film-backend/internal/services"
	"film-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PresignResponse struct {
	PresignedURL string `json:"presigned_url" example:"http://localhost:9000/posters/t2_1a2b3c4d.jpg?X-Amz-Signature=..."`
	PublicURL    string `json:"public_url" example:"http://localhost:9000/posters/t2_1a2b3c4d.jpg"`
}

type UploadHandler struct {
	posters services.PosterStorage
	logger  *logrus.Logger
}

func NewUploadHandler(posters services.PosterStorage, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		posters: posters,
		logger:  logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for a poster upload
// @Description Upload the image with PUT to presigned_url, then store public_url as the film poster_url
// @Tags uploads
// @Produce json
// @Param filename query string true "Image filename (jpg, jpeg, png, webp, gif)"
// @Success 200 {object} utils.ResultResponse{result=PresignResponse}
// @Failure 400 {object} utils.MessageResponse
// @Failure 401 {object} utils.MessageResponse
// @Failure 503 {object} utils.MessageResponse
// @Security BearerAuth
// @Router /uploads/posters/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	if h.posters == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Poster uploads are disabled.")
	}

	filename := strings.TrimSpace(c.Query("filename"))
	if filename == "" {
		return invalid("filename", reasonRequired)
	}

	presignedURL, publicURL, err := h.posters.GeneratePresignedURL(c.Context(), filename)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedPoster) {
			return invalid("filename", "Allowed extensions: jpg, jpeg, png, webp, gif.")
		}
		return err
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", PresignResponse{
		PresignedURL: presignedURL,
		PublicURL:    publicURL,
	})
}
