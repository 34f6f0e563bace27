// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/opencampus/college-cms/app/dto"
	businessflow "github.com/opencampus/college-cms/business_flow"
	"github.com/opencampus/college-cms/utils"
)

// baseHandler carries the plumbing every handler shares: request validation,
// the response envelope, and business-error mapping.
type baseHandler struct {
	validator *validator.Validate
}

func newBaseHandler() baseHandler {
	return baseHandler{validator: validator.New()}
}

// ErrorResponse standard JSON error
func (h *baseHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

// SuccessResponse standard JSON success
func (h *baseHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// validate runs struct validation and returns field-level errors, nil when
// the request is valid.
func (h *baseHandler) validate(req any) []dto.ValidationError {
	err := h.validator.Struct(req)
	if err == nil {
		return nil
	}
	var out []dto.ValidationError
	for _, fe := range err.(validator.ValidationErrors) {
		out = append(out, dto.ValidationError{
			Field:   fe.Field(),
			Message: getValidationErrorMessage(fe),
		})
	}
	return out
}

// BusinessErrorResponse maps a flow error onto the HTTP taxonomy. Unmapped
// errors become logged 500s so no internal detail reaches the client.
func (h *baseHandler) BusinessErrorResponse(c fiber.Ctx, err error) error {
	be, ok := err.(*businessflow.BusinessError)
	if !ok {
		log.Println("unhandled flow error:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", nil)
	}

	switch be.Code {
	case "NOT_FOUND":
		return h.ErrorResponse(c, fiber.StatusNotFound, be.Message, be.Code, nil)
	case "INVALID_CREDENTIALS", "UNAUTHENTICATED":
		return h.ErrorResponse(c, fiber.StatusUnauthorized, be.Message, be.Code, nil)
	case "FORBIDDEN":
		return h.ErrorResponse(c, fiber.StatusForbidden, be.Message, be.Code, nil)
	case "INVALID_REQUEST", "INVALID_STATUS", "INVALID_FILE", "INVALID_FILE_TYPE",
		"FILE_TOO_LARGE", "PASSWORD_TOO_SHORT", "CAPTCHA_INVALID", "CAPTCHA_NOT_AVAILABLE",
		"FEATURED_NOT_SUPPORTED", "SPREADSHEET_INVALID", "SPREADSHEET_EMPTY", "INVALID_ENUM_VALUE":
		return h.ErrorResponse(c, fiber.StatusBadRequest, be.Message, be.Code, nil)
	default:
		log.Printf("flow error %s: %v", be.Code, err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, be.Message, be.Code, nil)
	}
}

// parseIDParam reads the :id route parameter
func (h *baseHandler) parseIDParam(c fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

// adminID returns the authenticated admin's ID set by the auth middleware
func (h *baseHandler) adminID(c fiber.Ctx) uint {
	id, _ := c.Locals("admin_id").(uint)
	return id
}

// requestContext builds the request-scoped context passed to flows
func (h *baseHandler) requestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "url":
		return err.Field() + " must be a valid URL"
	case "min":
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	case "oneof":
		return err.Field() + " must be one of: " + err.Param()
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", err.Field(), err.Param())
	default:
		return err.Field() + " is invalid"
	}
}
