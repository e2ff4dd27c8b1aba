package shared

import (
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Pagination bounds. The route-level bounds are the authoritative contract.
const (
	DefaultSkip  = 0
	DefaultLimit = 10
	MaxSkip      = 1000
	MinLimit     = 1
	MaxLimit     = 100
)

// Pagination carries the skip/limit window of a listing request.
type Pagination struct {
	Skip  int
	Limit int
}

// ParsePagination reads and validates the skip/limit query parameters.
// Returns validation.Errors suitable for a 422 response body on failure.
func ParsePagination(c *gin.Context) (Pagination, error) {
	p := Pagination{Skip: DefaultSkip, Limit: DefaultLimit}
	errs := validation.Errors{}

	if raw := c.Query("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs["skip"] = validation.NewError("validation_is_int", "must be an integer")
		} else {
			p.Skip = v
		}
	}

	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs["limit"] = validation.NewError("validation_is_int", "must be an integer")
		} else {
			p.Limit = v
		}
	}

	if _, ok := errs["skip"]; !ok {
		if err := validation.Validate(p.Skip, validation.Min(0), validation.Max(MaxSkip)); err != nil {
			errs["skip"] = err
		}
	}
	if _, ok := errs["limit"]; !ok {
		if err := validation.Validate(p.Limit, validation.Min(MinLimit), validation.Max(MaxLimit)); err != nil {
			errs["limit"] = err
		}
	}

	if len(errs) > 0 {
		return p, errs
	}
	return p, nil
}
