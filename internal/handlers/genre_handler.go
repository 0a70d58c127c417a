package handlers

import (
	"film-backend/internal/middleware"
	"film-backend/internal/models"
	"film-backend/internal/services"
	"film-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GenreRequest struct {
	Name models.Optional[string] `json:"name" swaggertype:"string" example:"Drama"`
}

type GenreHandler struct {
	service  services.GenreService
	pageSize int
	logger   *logrus.Logger
}

func NewGenreHandler(service services.GenreService, pageSize int, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		service:  service,
		pageSize: pageSize,
		logger:   logger,
	}
}

// GetAllGenres godoc
// @Summary List genres
// @Tags genres
// @Produce json
// @Param page query int false "Page number, all rows when omitted"
// @Param sort_order query int false "1 ascending, -1 descending" default(1)
// @Success 200 {object} utils.ListResponse{result=[]GenreResponse}
// @Failure 400 {object} utils.MessageResponse
// @Router /genres [get]
func (h *GenreHandler) GetAllGenres(c *fiber.Ctx) error {
	opts, err := parseListOptions(c, h.pageSize)
	if err != nil {
		return err
	}

	genres, total, err := h.service.List(c.Context(), opts)
	if err != nil {
		return err
	}

	result := make([]GenreResponse, 0, len(genres))
	for i := range genres {
		result = append(result, newGenreResponse(&genres[i]))
	}

	var meta *utils.PaginationMeta
	if opts.Page > 0 {
		m := utils.CreatePaginationMeta(opts.Page, h.pageSize, total)
		meta = &m
	}
	return utils.ListSuccessResponse(c, len(result), result, meta)
}

// GetGenreByID godoc
// @Summary Get genre by ID
// @Tags genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} GenreResponse
// @Failure 404 {object} utils.MessageResponse
// @Router /genres/{id} [get]
func (h *GenreHandler) GetGenreByID(c *fiber.Ctx) error {
	id, err := middleware.ParamID(c, "Genre")
	if err != nil {
		return err
	}

	genre, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(newGenreResponse(genre))
}

// CreateGenre godoc
// @Summary Create a genre
// @Description Admin only. Names are unique.
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body GenreRequest true "Genre"
// @Success 200 {object} utils.ResultResponse{result=GenreResponse}
// @Failure 400 {object} utils.MessageResponse
// @Failure 401 {object} utils.MessageResponse
// @Security BearerAuth
// @Router /genres [post]
func (h *GenreHandler) CreateGenre(c *fiber.Ctx) error {
	var req GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	name, err := nameField("name", req.Name, false)
	if err != nil {
		return err
	}

	genre, err := h.service.Create(c.Context(), *middleware.PrincipalFrom(c), models.GenreInput{Name: name.Value})
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genre has been created.", newGenreResponse(genre))
}

// UpdateGenre godoc
// @Summary Rename a genre
// @Description Admin only
// @Tags genres
// @Accept json
// @Produce json
// @Param id path int true "Genre ID"
// @Param genre body GenreRequest true "Genre"
// @Success 200 {object} utils.ResultResponse{result=GenreResponse}
// @Failure 400 {object} utils.MessageResponse
// @Failure 401 {object} utils.MessageResponse
// @Failure 404 {object} utils.MessageResponse
// @Security BearerAuth
// @Router /genres/{id} [put]
func (h *GenreHandler) UpdateGenre(c *fiber.Ctx) error {
	id, err := middleware.ParamID(c, "Genre")
	if err != nil {
		return err
	}

	var req GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	name, err := nameField("name", req.Name, true)
	if err != nil {
		return err
	}

	genre, err := h.service.Update(c.Context(), *middleware.PrincipalFrom(c), id, models.GenreUpdate{Name: name})
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genre has been updated.", newGenreResponse(genre))
}

// DeleteGenre godoc
// @Summary Delete a genre
// @Description Admin only. The genre is removed from every film.
// @Tags genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} utils.ResultResponse{result=GenreResponse}
// @Failure 401 {object} utils.MessageResponse
// @Failure 404 {object} utils.MessageResponse
// @Security BearerAuth
// @Router /genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *fiber.Ctx) error {
	id, err := middleware.ParamID(c, "Genre")
	if err != nil {
		return err
	}

	genre, err := h.service.Delete(c.Context(), *middleware.PrincipalFrom(c), id)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genre has been deleted.", newGenreResponse(genre))
}
