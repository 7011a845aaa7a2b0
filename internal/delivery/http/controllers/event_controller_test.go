package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventregistry/internal/delivery/http/helpers"
	"eventregistry/internal/domain"
)

type mockEventService struct {
	event     *domain.Event
	createErr error
	getErr    error
	updateErr error
	deleteErr error
	deleted   int64
}

func (m *mockEventService) CreateEvent(ctx context.Context, e *domain.Event) error {
	if m.createErr != nil {
		return m.createErr
	}
	e.ID = 1
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	}
	return nil
}

func (m *mockEventService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.event, nil
}

func (m *mockEventService) UpdateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return e, nil
}

func (m *mockEventService) DeleteEvent(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = id
	return nil
}

func TestEventController_CreateEvent_Success(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockEventService{})

	body := strings.NewReader(`{"event_title": "GopherCon", "event_description": "Go conference", "event_location": "Berlin"}`)
	req := httptest.NewRequest(http.MethodPost, "/events", body)
	w := httptest.NewRecorder()

	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	var resp EventSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data == nil || resp.Data.ID != 1 {
		t.Fatalf("expected created event with id 1, got %+v", resp.Data)
	}
	if resp.Data.Date.IsZero() {
		t.Fatal("expected a defaulted event date")
	}
}

func TestEventController_CreateEvent_MissingTitle(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockEventService{})

	body := strings.NewReader(`{"event_description": "Go conference", "event_location": "Berlin"}`)
	req := httptest.NewRequest(http.MethodPost, "/events", body)
	w := httptest.NewRecorder()

	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestEventController_CreateEvent_UnknownField(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockEventService{})

	body := strings.NewReader(`{"event_title": "GopherCon", "event_description": "d", "event_location": "l", "bogus": true}`)
	req := httptest.NewRequest(http.MethodPost, "/events", body)
	w := httptest.NewRecorder()

	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestEventController_GetEvent(t *testing.T) {
	svc := &mockEventService{
		event: &domain.Event{ID: 5, Title: "GopherCon", Description: "Go conference", Location: "Berlin"},
	}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/events/5", nil)
	req.SetPathValue("eventID", "5")
	w := httptest.NewRecorder()

	ctrl.GetEvent(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp EventSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Title != "GopherCon" {
		t.Fatalf("unexpected event: %+v", resp.Data)
	}
}

func TestEventController_GetEvent_NotFound(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockEventService{getErr: domain.ErrEventNotFound})

	req := httptest.NewRequest(http.MethodGet, "/events/99", nil)
	req.SetPathValue("eventID", "99")
	w := httptest.NewRecorder()

	ctrl.GetEvent(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeNotFound {
		t.Fatalf("expected not_found error, got %v", resp.Error)
	}
}

func TestEventController_UpdateEvent_RequiresDate(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockEventService{})

	body := strings.NewReader(`{"event_title": "GopherCon", "event_description": "d", "event_location": "l"}`)
	req := httptest.NewRequest(http.MethodPut, "/events/5", body)
	req.SetPathValue("eventID", "5")
	w := httptest.NewRecorder()

	ctrl.UpdateEvent(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestEventController_UpdateEvent_Success(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockEventService{})

	body := strings.NewReader(`{"event_title": "GopherCon EU", "event_description": "d", "event_location": "l", "event_date": "2026-10-01T09:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPut, "/events/5", body)
	req.SetPathValue("eventID", "5")
	w := httptest.NewRecorder()

	ctrl.UpdateEvent(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	var resp EventSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.ID != 5 || resp.Data.Title != "GopherCon EU" {
		t.Fatalf("unexpected event: %+v", resp.Data)
	}
}

func TestEventController_DeleteEvent(t *testing.T) {
	svc := &mockEventService{}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodDelete, "/events/5", nil)
	req.SetPathValue("eventID", "5")
	w := httptest.NewRecorder()

	ctrl.DeleteEvent(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if svc.deleted != 5 {
		t.Fatalf("expected delete of id 5, got %d", svc.deleted)
	}
}

func TestEventController_DeleteEvent_NotFound(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockEventService{deleteErr: domain.ErrEventNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/events/99", nil)
	req.SetPathValue("eventID", "99")
	w := httptest.NewRecorder()

	ctrl.DeleteEvent(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}
