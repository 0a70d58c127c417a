package handlers

import (
	"strings"

	"film-backend/internal/middleware"
	"film-backend/internal/models"
	"film-backend/internal/services"
	"film-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DirectorRequest struct {
	FirstName models.Optional[string] `json:"first_name" swaggertype:"string" example:"James"`
	LastName  models.Optional[string] `json:"last_name" swaggertype:"string" example:"Cameron"`
}

type DirectorHandler struct {
	service  services.DirectorService
	pageSize int
	logger   *logrus.Logger
}

func NewDirectorHandler(service services.DirectorService, pageSize int, logger *logrus.Logger) *DirectorHandler {
	return &DirectorHandler{
		service:  service,
		pageSize: pageSize,
		logger:   logger,
	}
}

// nameField validates a required name. When partial is set an omitted field is allowed.
func nameField(field string, v models.Optional[string], partial bool) (models.Optional[string], error) {
	if !v.Set {
		if partial {
			return v, nil
		}
		return v, invalid(field, reasonRequired)
	}
	if v.Null || strings.TrimSpace(v.Value) == "" {
		return v, invalid(field, reasonRequired)
	}
	return models.Some(strings.TrimSpace(v.Value)), nil
}

func (r *DirectorRequest) validate(partial bool) (models.DirectorUpdate, error) {
	first, err := nameField("first_name", r.FirstName, partial)
	if err != nil {
		return models.DirectorUpdate{}, err
	}
	last, err := nameField("last_name", r.LastName, partial)
	if err != nil {
		return models.DirectorUpdate{}, err
	}
	return models.DirectorUpdate{FirstName: first, LastName: last}, nil
}

// GetAllDirectors godoc
// @Summary List directors
// @Tags directors
// @Produce json
// @Param page query int false "Page number, all rows when omitted"
// @Param sort_order query int false "1 ascending, -1 descending" default(1)
// @Success 200 {object} utils.ListResponse{result=[]DirectorResponse}
// @Failure 400 {object} utils.MessageResponse
// @Router /directors [get]
func (h *DirectorHandler) GetAllDirectors(c *fiber.Ctx) error {
	opts, err := parseListOptions(c, h.pageSize)
	if err != nil {
		return err
	}

	directors, total, err := h.service.List(c.Context(), opts)
	if err != nil {
		return err
	}

	result := make([]DirectorResponse, 0, len(directors))
	for i := range directors {
		result = append(result, newDirectorResponse(&directors[i]))
	}

	var meta *utils.PaginationMeta
	if opts.Page > 0 {
		m := utils.CreatePaginationMeta(opts.Page, h.pageSize, total)
		meta = &m
	}
	return utils.ListSuccessResponse(c, len(result), result, meta)
}

// GetDirectorByID godoc
// @Summary Get director by ID
// @Tags directors
// @Produce json
// @Param id path int true "Director ID"
// @Success 200 {object} DirectorResponse
// @Failure 404 {object} utils.MessageResponse
// @Router /directors/{id} [get]
func (h *DirectorHandler) GetDirectorByID(c *fiber.Ctx) error {
	id, err := middleware.ParamID(c, "Director")
	if err != nil {
		return err
	}

	director, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(newDirectorResponse(director))
}

// CreateDirector godoc
// @Summary Create a director
// @Description Admin only
// @Tags directors
// @Accept json
// @Produce json
// @Param director body DirectorRequest true "Director"
// @Success 200 {object} utils.ResultResponse{result=DirectorResponse}
// @Failure 400 {object} utils.MessageResponse
// @Failure 401 {object} utils.MessageResponse
// @Security BearerAuth
// @Router /directors [post]
func (h *DirectorHandler) CreateDirector(c *fiber.Ctx) error {
	var req DirectorRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	fields, err := req.validate(false)
	if err != nil {
		return err
	}

	director, err := h.service.Create(c.Context(), *middleware.PrincipalFrom(c), models.DirectorInput{
		FirstName: fields.FirstName.Value,
		LastName:  fields.LastName.Value,
	})
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Director has been created.", newDirectorResponse(director))
}

// UpdateDirector godoc
// @Summary Update a director
// @Description Admin only. Omitted fields are kept.
// @Tags directors
// @Accept json
// @Produce json
// @Param id path int true "Director ID"
// @Param director body DirectorRequest true "Changed fields"
// @Success 200 {object} utils.ResultResponse{result=DirectorResponse}
// @Failure 400 {object} utils.MessageResponse
// @Failure 401 {object} utils.MessageResponse
// @Failure 404 {object} utils.MessageResponse
// @Security BearerAuth
// @Router /directors/{id} [put]
func (h *DirectorHandler) UpdateDirector(c *fiber.Ctx) error {
	id, err := middleware.ParamID(c, "Director")
	if err != nil {
		return err
	}

	var req DirectorRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	up, err := req.validate(true)
	if err != nil {
		return err
	}

	director, err := h.service.Update(c.Context(), *middleware.PrincipalFrom(c), id, up)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Director has been updated.", newDirectorResponse(director))
}

// DeleteDirector godoc
// @Summary Delete a director
// @Description Admin only. Films of the director keep existing with an unknown director.
// @Tags directors
// @Produce json
// @Param id path int true "Director ID"
// @Success 200 {object} utils.ResultResponse{result=DirectorResponse}
// @Failure 401 {object} utils.MessageResponse
// @Failure 404 {object} utils.MessageResponse
// @Security BearerAuth
// @Router /directors/{id} [delete]
func (h *DirectorHandler) DeleteDirector(c *fiber.Ctx) error {
	id, err := middleware.ParamID(c, "Director")
	if err != nil {
		return err
	}

	director, err := h.service.Delete(c.Context(), *middleware.PrincipalFrom(c), id)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Director has been deleted.", newDirectorResponse(director))
}
