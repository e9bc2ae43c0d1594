package get_available_slots

import (
	"fmt"
	"net/url"
	"strconv"

	getAvailableSlots "github.com/m04kA/parlourease/internal/usecase/get_available_slots"
)

// ToUseCaseRequest собирает запрос use case из query параметров
func ToUseCaseRequest(query url.Values) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{Date: query.Get("date")}

	if raw := query.Get("festival"); raw != "" {
		festival, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid festival flag %q", raw)
		}
		req.Festival = &festival
	}

	if selected := query.Get("selected"); selected != "" {
		req.Selected = &selected
	}

	return req, nil
}
