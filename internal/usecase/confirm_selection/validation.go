package confirm_selection

import (
	"fmt"

	"github.com/bandicon/jam-schedule-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Пустой выбор отклоняется до любых обращений к хранилищу
func validateRequest(req *Request) error {
	if req.JamID <= 0 {
		return fmt.Errorf("%w: jamID must be positive", ErrInvalidInput)
	}

	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if _, err := types.NewDateStringFromString(req.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(req.Hours) == 0 {
		return ErrEmptySelection
	}

	for _, h := range req.Hours {
		if !h.Valid() {
			return fmt.Errorf("%w: hour %d is outside 0..23", ErrInvalidInput, h)
		}
	}

	return nil
}
