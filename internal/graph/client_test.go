package graph

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

func TestStripBearer(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "bearer prefix stripped",
			header: "Bearer abc123",
			want:   "abc123",
		},
		{
			name:   "raw token unchanged",
			header: "abc123",
			want:   "abc123",
		},
		{
			name:   "surrounding whitespace trimmed",
			header: "  Bearer abc123  ",
			want:   "abc123",
		},
		{
			name:   "empty header",
			header: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripBearer(tt.header); got != tt.want {
				t.Errorf("StripBearer(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestStaticTokenCredentialReturnsTokenVerbatim(t *testing.T) {
	cred := staticTokenCredential{token: "the-token"}

	got, err := cred.GetToken(context.Background(), policy.TokenRequestOptions{})
	if err != nil {
		t.Fatalf("GetToken() error = %v", err)
	}
	if got.Token != "the-token" {
		t.Errorf("GetToken() token = %q, want %q", got.Token, "the-token")
	}
	if !got.ExpiresOn.After(time.Now()) {
		t.Error("GetToken() expiry should be in the future")
	}
}

func TestNewClientStripsBearer(t *testing.T) {
	client, err := NewClient("Bearer sometoken", nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client == nil || client.sdk == nil {
		t.Fatal("NewClient() returned nil client")
	}
}

func TestParseGraphTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "fractional seconds form",
			value: "2026-08-29T10:30:00.0000000",
			want:  time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			value: "2026-08-29T10:30:00Z",
			want:  time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "bare sortable form",
			value: "2026-08-29T10:30:00",
			want:  time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			value: "2018-01-01",
			want:  time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			value:   "not-a-time",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGraphTime(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGraphTime(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseGraphTime(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestWrapGraphError(t *testing.T) {
	if got := wrapGraphError("op", nil); got != nil {
		t.Errorf("wrapGraphError(nil) = %v, want nil", got)
	}

	base := errors.New("connection refused")
	err := wrapGraphError("message_mention", base)

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("wrapGraphError() = %T, want *UpstreamError", err)
	}
	if upstream.Operation != "message_mention" {
		t.Errorf("Operation = %q", upstream.Operation)
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should unwrap to the original")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, should embed upstream detail", err.Error())
	}
}

func TestPageHTML(t *testing.T) {
	html := PageHTML("My Title", "Hello world")
	if !strings.Contains(html, "<title>My Title</title>") {
		t.Error("PageHTML() missing title element")
	}
	if !strings.Contains(html, ">Hello world</p>") {
		t.Error("PageHTML() missing content paragraph")
	}
}

func TestEscapeODataLiteral(t *testing.T) {
	if got := escapeODataLiteral("O'Brien"); got != "O''Brien" {
		t.Errorf("escapeODataLiteral() = %q", got)
	}
}
