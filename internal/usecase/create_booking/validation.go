package create_booking

import (
	"strings"
	"time"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/pkg/types"
)

const (
	msgName        = "Name must be at least 2 characters."
	msgContact     = "Please enter a valid contact number."
	msgServices    = "You have to select at least one service."
	msgService     = "Please select a service."
	msgDate        = "An appointment date is required."
	msgDatePast    = "Appointment date cannot be in the past."
	msgTime        = "An appointment time is required."
	msgTimeOffered = "Please choose one of the available time slots."
	msgNotes       = "Notes are too long."
)

// parsed проверенные поля запроса
type parsed struct {
	day        time.Time
	slot       types.TimeString
	serviceIDs []string
}

// validateRequest проверяет поля, не требующие обращения к хранилищу
func validateRequest(req *Request, loc *time.Location, now time.Time) (*parsed, *domain.ValidationError) {
	verr := domain.NewValidationError()
	p := &parsed{serviceIDs: cleanIDs(req.ServiceIDs)}

	if len([]rune(strings.TrimSpace(req.CustomerName))) < domain.MinCustomerNameLength {
		verr.Add("customerName", msgName)
	}
	if len([]rune(strings.TrimSpace(req.Contact))) < domain.MinContactLength {
		verr.Add("contact", msgContact)
	}
	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		verr.Add("notes", msgNotes)
	}

	switch req.Source {
	case SourceAdmin:
		if len(p.serviceIDs) != 1 {
			verr.Add("serviceId", msgService)
		}
	default:
		if len(p.serviceIDs) == 0 {
			verr.Add("serviceId", msgServices)
		}
	}

	day, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(req.Date), loc)
	if err != nil {
		verr.Add("appointmentDate", msgDate)
	} else {
		p.day = day
		if req.Source != SourceAdmin && domain.IsPastDay(day, now) {
			verr.Add("appointmentDate", msgDatePast)
		}
	}

	slot, err := types.NewTimeStringFromString(strings.TrimSpace(req.Time))
	if err != nil {
		verr.Add("appointmentTime", msgTime)
	} else {
		p.slot = slot
	}

	return p, verr
}

// validateSlot проверяет, что время входит в предлагаемые слоты дня
// Клиенту на сегодня прошедшие слоты не предлагаются
func validateSlot(req *Request, p *parsed, festivalMode bool, now time.Time, verr *domain.ValidationError) {
	if verr.Has("appointmentDate") || verr.Has("appointmentTime") {
		return
	}

	var offered []types.TimeString
	if req.Source == SourceAdmin {
		offered = domain.NewSlotSequence(festivalMode).All()
	} else {
		offered = domain.OfferedSlots(p.day, festivalMode, now)
	}

	for _, s := range offered {
		if s == p.slot {
			return
		}
	}
	verr.Add("appointmentTime", msgTimeOffered)
}

// cleanIDs убирает пустые и повторяющиеся идентификаторы, сохраняя порядок
func cleanIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
