package utils

import "github.com/gofiber/fiber/v2"

// APIResponse is the common envelope returned by every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

// SendSuccess sends a successful JSON response with a message.
func SendSuccess(c *fiber.Ctx, message string, data interface{}) error {
	return sendSuccess(c, fiber.StatusOK, message, data)
}

// SendCreated sends a success payload with a 201 status for freshly created
// records.
func SendCreated(c *fiber.Ctx, message string, data interface{}) error {
	return sendSuccess(c, fiber.StatusCreated, message, data)
}

func sendSuccess(c *fiber.Ctx, status int, message string, data interface{}) error {
	if message == "" {
		message = "success"
	}

	return c.Status(status).JSON(APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// SendError sends an error JSON response with the given status code. The
// message is shown to the operator as-is.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(APIResponse{
		Success: false,
		Message: message,
	})
}
