package email

import (
	"strings"
	"testing"

	"eventregistry/internal/domain"
)

func TestTemplateRenderer_Invitation(t *testing.T) {
	r := NewTemplateRenderer()

	data := domain.InvitationEmailData{Email: "ada@example.com", EventName: "GopherCon"}
	subject, htmlBody, textBody, err := r.Render("invitation", data)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if subject == "" {
		t.Fatal("expected a non-empty subject")
	}
	if !strings.Contains(htmlBody, "GopherCon") {
		t.Fatalf("html body missing event name: %q", htmlBody)
	}
	if !strings.Contains(textBody, "GopherCon") {
		t.Fatalf("text body missing event name: %q", textBody)
	}
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()

	_, _, _, err := r.Render("missing", nil)
	if err == nil {
		t.Fatal("expected an error for an unknown template")
	}
}
