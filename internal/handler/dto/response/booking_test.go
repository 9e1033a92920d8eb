//go:build unit

package response_test

import (
	"testing"
	"time"

	"rentdesk/internal/handler/dto/response"
	"rentdesk/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFromBookingView(t *testing.T) {
	email := "budi@example.com"
	pickup := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	view := &queries.BookingView{
		ID:            uuid.New(),
		VehicleID:     uuid.New(),
		VehicleCode:   "V001",
		VehicleName:   "Toyota Avanza",
		CustomerName:  "Budi Santoso",
		CustomerPhone: "+628123456789",
		CustomerEmail: &email,
		PickupAt:      pickup,
		ReturnAt:      pickup.Add(48 * time.Hour),
		PickupAddress: "Jl. Sudirman No. 10, Jakarta",
		ReturnAddress: "Jl. Sudirman No. 10, Jakarta",
		DailyRate:     350000,
		TotalAmount:   700000,
		Status:        "pending",
		CreatedAt:     pickup,
		UpdatedAt:     pickup,
	}

	got := response.FromBookingView(view)

	want := &response.BookingResponse{
		ID:            view.ID,
		VehicleID:     view.VehicleID,
		VehicleCode:   "V001",
		VehicleName:   "Toyota Avanza",
		CustomerName:  "Budi Santoso",
		CustomerPhone: "+628123456789",
		CustomerEmail: &email,
		PickupAt:      view.PickupAt,
		ReturnAt:      view.ReturnAt,
		PickupAddress: view.PickupAddress,
		ReturnAddress: view.ReturnAddress,
		DailyRate:     350000,
		TotalAmount:   700000,
		Status:        "pending",
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("booking response mismatch (-want +got):\n%s", diff)
	}
}

func TestFromBookingViews(t *testing.T) {
	got := response.FromBookingViews(nil)
	assert.NotNil(t, got.Bookings)
	assert.Empty(t, got.Bookings)
}

func TestFromQuoteView(t *testing.T) {
	vehicleID := uuid.New()
	got := response.FromQuoteView(&queries.QuoteView{
		VehicleID: &vehicleID,
		Days:      2,
		DailyRate: 350000,
		Total:     700000,
		Complete:  true,
	})

	want := &response.QuoteResponse{
		VehicleID: &vehicleID,
		Days:      2,
		DailyRate: 350000,
		Total:     700000,
		Complete:  true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("quote response mismatch (-want +got):\n%s", diff)
	}
}
