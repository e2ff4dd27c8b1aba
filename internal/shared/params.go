package shared

import (
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ParseIDParam reads a positive integer path parameter. Returns
// validation.Errors suitable for a 422 response body on failure.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, validation.Errors{name: validation.NewError("validation_is_int", "must be an integer")}
	}
	if id <= 0 {
		return 0, validation.Errors{name: validation.NewError("validation_min", "must be greater than 0")}
	}

	return id, nil
}
