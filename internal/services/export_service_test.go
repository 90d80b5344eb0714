package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"agenda/internal/repositories"
	"agenda/pkg/utils"
)

func TestExportService_TripItineraryPDF(t *testing.T) {
	f := newActivityFixture(t)
	ctx := context.Background()
	svc := NewExportService(repositories.NewActivityRepository(f.db))

	created, err := f.service.Create(ctx, f.creator, f.tripRequest(futureDate(7), "08:00"))
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}

	doc, err := svc.TripItineraryPDF(ctx, uuid.MustParse(created.ID))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatalf("expected a pdf document, got %q...", doc[:min(len(doc), 8)])
	}
}

func TestExportService_TripItineraryPDF_NonTrip(t *testing.T) {
	f := newActivityFixture(t)
	ctx := context.Background()
	svc := NewExportService(repositories.NewActivityRepository(f.db))

	created, err := f.service.Create(ctx, f.creator, f.meetingRequest(futureDate(7), "08:00"))
	if err != nil {
		t.Fatalf("create meeting: %v", err)
	}

	if _, err := svc.TripItineraryPDF(ctx, uuid.MustParse(created.ID)); !errors.Is(err, utils.ErrNotBusinessTrip) {
		t.Fatalf("expected non-trip rejection, got %v", err)
	}
	if _, err := svc.TripItineraryPDF(ctx, uuid.New()); !errors.Is(err, utils.ErrNotBusinessTrip) {
		t.Fatalf("expected rejection for unknown id, got %v", err)
	}
}
