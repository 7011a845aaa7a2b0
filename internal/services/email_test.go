package services

import (
	"context"
	"errors"
	"testing"

	"eventregistry/internal/domain"
)

type fakeMailer struct {
	failFor map[string]error
	sent    []string
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, to)
	return nil
}

type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	if f.err != nil {
		return "", "", "", f.err
	}
	d := data.(*domain.InvitationEmailData)
	return "Invitation to Event", "<p>" + d.EventName + "</p>", "You are invited to the event: " + d.EventName, nil
}

type fakeInvitationRepo struct {
	created   []*domain.EventInvitation
	createErr error
}

func (f *fakeInvitationRepo) Create(ctx context.Context, inv *domain.EventInvitation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, inv)
	return nil
}

func (f *fakeInvitationRepo) ListByEventName(ctx context.Context, eventName string) ([]*domain.EventInvitation, error) {
	return f.created, nil
}

func TestSendInvitations_AllDelivered(t *testing.T) {
	mailer := &fakeMailer{}
	repo := &fakeInvitationRepo{}
	svc := NewEmailService(mailer, &fakeRenderer{}, repo)

	results, err := svc.SendInvitations(context.Background(), "Launch", []string{"a@b.com", "c@d.com"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, res := range results {
		if !res.Sent || res.Error != "" {
			t.Fatalf("expected sent result, got %+v", res)
		}
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("expected 2 sends, got %d", len(mailer.sent))
	}
	if len(repo.created) != 2 {
		t.Fatalf("expected 2 audit rows, got %d", len(repo.created))
	}
	if repo.created[0].EventName != "Launch" || repo.created[0].Email != "a@b.com" {
		t.Fatalf("unexpected audit row: %+v", repo.created[0])
	}
}

func TestSendInvitations_OneFailureDoesNotAbortBatch(t *testing.T) {
	mailer := &fakeMailer{failFor: map[string]error{"bad@b.com": errors.New("mailbox unavailable")}}
	repo := &fakeInvitationRepo{}
	svc := NewEmailService(mailer, &fakeRenderer{}, repo)

	results, err := svc.SendInvitations(context.Background(), "Launch", []string{"a@b.com", "bad@b.com", "c@d.com"})
	if err != nil {
		t.Fatalf("expected success despite one failure, got %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Sent || results[1].Sent || !results[2].Sent {
		t.Fatalf("unexpected outcomes: %+v %+v %+v", results[0], results[1], results[2])
	}
	if results[1].Error == "" {
		t.Fatal("expected failure message on the bad address")
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("expected the remaining sends to run, got %d", len(mailer.sent))
	}
	if len(repo.created) != 2 {
		t.Fatalf("expected audit rows only for delivered addresses, got %d", len(repo.created))
	}
}

func TestSendInvitations_AllFailedReportsRelayUnavailable(t *testing.T) {
	mailer := &fakeMailer{failFor: map[string]error{
		"a@b.com": errors.New("connection refused"),
		"c@d.com": errors.New("connection refused"),
	}}
	svc := NewEmailService(mailer, &fakeRenderer{}, &fakeInvitationRepo{})

	results, err := svc.SendInvitations(context.Background(), "Launch", []string{"a@b.com", "c@d.com"})
	if !errors.Is(err, domain.ErrRelayUnavailable) {
		t.Fatalf("expected ErrRelayUnavailable, got %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected per-address results even on total failure, got %d", len(results))
	}
}

func TestSendInvitations_RendererFailure(t *testing.T) {
	svc := NewEmailService(&fakeMailer{}, &fakeRenderer{err: errors.New("missing template")}, &fakeInvitationRepo{})

	_, err := svc.SendInvitations(context.Background(), "Launch", []string{"a@b.com"})
	if err == nil {
		t.Fatal("expected error from broken template")
	}
}

func TestSendInvitations_AuditFailureIsNotFatal(t *testing.T) {
	mailer := &fakeMailer{}
	repo := &fakeInvitationRepo{createErr: errors.New("insert failed")}
	svc := NewEmailService(mailer, &fakeRenderer{}, repo)

	results, err := svc.SendInvitations(context.Background(), "Launch", []string{"a@b.com"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(results) != 1 || !results[0].Sent {
		t.Fatalf("expected delivered result, got %+v", results)
	}
}
