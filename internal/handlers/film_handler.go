package handlers

import (
	"film-backend/internal/middleware"
	"film-backend/internal/services"
	"film-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FilmHandler struct {
	service services.FilmService
	logger  *logrus.Logger
}

func NewFilmHandler(service services.FilmService, logger *logrus.Logger) *FilmHandler {
	return &FilmHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllFilms godoc
// @Summary List films
// @Description Search, filter, sort and paginate the film catalog
// @Tags films
// @Produce json
// @Param search query string false "Case-insensitive substring of the title"
// @Param director_id query int false "Exact director id"
// @Param rating query int false "Exact rating (0-10)"
// @Param start_premiere_date query string false "Inclusive lower bound (YYYY-m-d)"
// @Param end_premiere_date query string false "Inclusive upper bound (YYYY-m-d)"
// @Param genres_ids query string false "Comma-separated genre ids, any of"
// @Param sort_by query string false "id, rating or premiere_date" default(id)
// @Param sort_order query int false "1 ascending, -1 descending" default(1)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} utils.ListResponse{result=[]FilmResponse}
// @Failure 400 {object} utils.MessageResponse
// @Router /films [get]
func (h *FilmHandler) GetAllFilms(c *fiber.Ctx) error {
	q, err := parseFilmQuery(c)
	if err != nil {
		return err
	}

	films, total, err := h.service.List(c.Context(), q)
	if err != nil {
		return err
	}

	meta := utils.CreatePaginationMeta(q.Page, h.service.PerPage(), total)
	return utils.ListSuccessResponse(c, len(films), newFilmResponses(films), &meta)
}

// GetFilmByID godoc
// @Summary Get film by ID
// @Tags films
// @Produce json
// @Param id path int true "Film ID"
// @Success 200 {object} FilmResponse
// @Failure 404 {object} utils.MessageResponse
// @Router /films/{id} [get]
func (h *FilmHandler) GetFilmByID(c *fiber.Ctx) error {
	id, err := middleware.ParamID(c, "Film")
	if err != nil {
		return err
	}

	film, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(newFilmResponse(film))
}

// CreateFilm godoc
// @Summary Add a film
// @Description The caller becomes the owner of the film
// @Tags films
// @Accept json
// @Produce json
// @Param film body FilmRequest true "Film"
// @Success 200 {object} utils.ResultResponse{result=FilmResponse}
// @Failure 400 {object} utils.MessageResponse
// @Failure 401 {object} utils.MessageResponse
// @Security BearerAuth
// @Router /films [post]
func (h *FilmHandler) CreateFilm(c *fiber.Ctx) error {
	var req FilmRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	film, err := h.service.Create(c.Context(), *middleware.PrincipalFrom(c), in)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Film has been added.", newFilmResponse(film))
}

// UpdateFilm godoc
// @Summary Update a film
// @Description Only the owner or an admin may update. Omitted fields are kept.
// @Tags films
// @Accept json
// @Produce json
// @Param id path int true "Film ID"
// @Param film body FilmUpdateRequest true "Changed fields"
// @Success 200 {object} utils.ResultResponse{result=FilmResponse}
// @Failure 400 {object} utils.MessageResponse
// @Failure 401 {object} utils.MessageResponse
// @Failure 404 {object} utils.MessageResponse
// @Security BearerAuth
// @Router /films/{id} [put]
func (h *FilmHandler) UpdateFilm(c *fiber.Ctx) error {
	id, err := middleware.ParamID(c, "Film")
	if err != nil {
		return err
	}

	var req FilmUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	up, err := req.toUpdate()
	if err != nil {
		return err
	}

	film, err := h.service.Update(c.Context(), *middleware.PrincipalFrom(c), id, up)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Film has been updated.", newFilmResponse(film))
}

// DeleteFilm godoc
// @Summary Delete a film
// @Description Only the owner or an admin may delete
// @Tags films
// @Produce json
// @Param id path int true "Film ID"
// @Success 200 {object} utils.ResultResponse{result=FilmResponse}
// @Failure 401 {object} utils.MessageResponse
// @Failure 404 {object} utils.MessageResponse
// @Security BearerAuth
// @Router /films/{id} [delete]
func (h *FilmHandler) DeleteFilm(c *fiber.Ctx) error {
	id, err := middleware.ParamID(c, "Film")
	if err != nil {
		return err
	}

	film, err := h.service.Delete(c.Context(), *middleware.PrincipalFrom(c), id)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Film has been deleted.", newFilmResponse(film))
}
