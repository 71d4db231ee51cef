package get_price_quote

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Blocks < 0 {
		return fmt.Errorf("%w: blocks must not be negative", ErrInvalidInput)
	}

	if req.PointsToRedeem < 0 {
		return fmt.Errorf("%w: points must not be negative", ErrInvalidInput)
	}

	if req.UserID == nil && req.PointsToRedeem > 0 {
		return fmt.Errorf("%w: anonymous quote cannot redeem points", ErrInvalidInput)
	}

	return nil
}
