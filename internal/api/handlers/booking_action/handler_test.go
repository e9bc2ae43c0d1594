package booking_action

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/internal/service/bookings"
	"github.com/m04kA/parlourease/internal/service/bookings/models"
	"github.com/m04kA/parlourease/pkg/logger"
)

type stubService struct {
	gotID     string
	gotAction domain.BookingAction
	resp      *models.ActionResponse
	err       error
}

func (s *stubService) ApplyAction(ctx context.Context, id string, action domain.BookingAction) (*models.ActionResponse, error) {
	s.gotID, s.gotAction = id, action
	return s.resp, s.err
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}/"+path, h.Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings/b1/"+path, nil))
	return rec
}

func TestHandle_Start(t *testing.T) {
	svc := &stubService{resp: &models.ActionResponse{Booking: models.BookingResponse{ID: "b1", Status: "In Progress"}}}

	rec := serve(NewHandler(svc, domain.ActionStart, logger.Discard()), "start")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "b1", svc.gotID)
	assert.Equal(t, domain.ActionStart, svc.gotAction)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: complete from Pending", bookings.ErrInvalidTransition), http.StatusConflict},
		{bookings.ErrBookingNotFound, http.StatusNotFound},
		{bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := serve(NewHandler(&stubService{err: tc.err}, domain.ActionComplete, logger.Discard()), "complete")
		assert.Equal(t, tc.want, rec.Code, tc.err.Error())
	}
}
