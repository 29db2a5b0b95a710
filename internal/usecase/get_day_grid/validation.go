package get_day_grid

import (
	"fmt"

	"github.com/bandicon/jam-schedule-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.JamID <= 0 {
		return fmt.Errorf("%w: jamID must be positive", ErrInvalidInput)
	}

	if _, err := types.NewDateStringFromString(req.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for _, h := range req.EditingHours {
		if !h.Valid() {
			return fmt.Errorf("%w: hour %d is outside 0..23", ErrInvalidInput, h)
		}
	}

	return nil
}
