package dto

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

type CreateReservationRequest struct {
	BookID FlexibleID `json:"bookId"`
}

// FlexibleID accepts an id sent either as a JSON number or as a numeric string.
// Whole-valued floats such as 1.0 or "2e0" are accepted as integers.
type FlexibleID int64

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = s
		if raw == "" {
			*id = 0
			return nil
		}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*id = FlexibleID(n)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return fmt.Errorf("invalid id %q", raw)
	}
	*id = FlexibleID(f)
	return nil
}
