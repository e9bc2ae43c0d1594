package live

import (
	"time"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/internal/realtime"
	bookingModels "github.com/m04kA/parlourease/internal/service/bookings/models"
	catalogModels "github.com/m04kA/parlourease/internal/service/catalog/models"
)

// SnapshotMessage полный снимок коллекции, отправляемый клиенту
type SnapshotMessage struct {
	Type       string      `json:"type"`
	Collection string      `json:"collection"`
	Version    uint64      `json:"version"`
	TakenAt    time.Time   `json:"takenAt"`
	Items      interface{} `json:"items"`
}

// FromSnapshot конвертирует снимок в сообщение; время визитов переводится в пояс салона
func FromSnapshot(snap *realtime.Snapshot, loc *time.Location) SnapshotMessage {
	msg := SnapshotMessage{
		Type:       "snapshot",
		Collection: snap.Collection,
		Version:    snap.Version,
		TakenAt:    snap.TakenAt,
	}

	switch snap.Collection {
	case domain.CollectionServices:
		items := make([]catalogModels.ServiceResponse, 0, len(snap.Services))
		for i := range snap.Services {
			items = append(items, catalogModels.FromDomainService(&snap.Services[i]))
		}
		msg.Items = items
	case domain.CollectionBookings:
		items := make([]bookingModels.BookingResponse, 0, len(snap.Bookings))
		for i := range snap.Bookings {
			// копия: снимок общий для всех подписчиков
			b := snap.Bookings[i]
			b.AppointmentAt = b.AppointmentAt.In(loc)
			items = append(items, *bookingModels.FromDomainBooking(&b))
		}
		msg.Items = items
	}

	return msg
}
