package utils

import "github.com/gofiber/fiber/v2"

// MessageResponse is the body of every error and of mutations without a result.
type MessageResponse struct {
	Message string `json:"message" example:"Film has been deleted."`
}

// ResultResponse is returned by create, update and delete operations.
type ResultResponse struct {
	Message string      `json:"message" example:"Film has been added."`
	Result  interface{} `json:"result,omitempty"`
}

// ListResponse wraps collections. Count is the number of items in Result.
type ListResponse struct {
	Count  int             `json:"count" example:"10"`
	Result interface{}     `json:"result"`
	Meta   *PaginationMeta `json:"meta,omitempty"`
}

// PaginationMeta represents pagination metadata
type PaginationMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// SuccessResponse sends a message together with the affected entity
func SuccessResponse(c *fiber.Ctx, code int, message string, result interface{}) error {
	return c.Status(code).JSON(ResultResponse{
		Message: message,
		Result:  result,
	})
}

// ListSuccessResponse sends a collection with optional pagination meta
func ListSuccessResponse(c *fiber.Ctx, count int, result interface{}, meta *PaginationMeta) error {
	return c.Status(fiber.StatusOK).JSON(ListResponse{
		Count:  count,
		Result: result,
		Meta:   meta,
	})
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(MessageResponse{
		Message: message,
	})
}

// CreatePaginationMeta creates pagination metadata
func CreatePaginationMeta(page, limit int, total int64) PaginationMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return PaginationMeta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
