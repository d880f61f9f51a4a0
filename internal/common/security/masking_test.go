package security

import "testing"

func TestMaskAccessToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{
			name:  "empty token",
			token: "",
			want:  "",
		},
		{
			name:  "short token split in half",
			token: "abcdefgh",
			want:  "abcd...efgh",
		},
		{
			name:  "long token shows first 8 and last 4",
			token: "eyJ0eXAiOiJKV1QiLCJhbGciOiJSUzI1NiJ9",
			want:  "eyJ0eXAi...NiJ9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskAccessToken(tt.token); got != tt.want {
				t.Errorf("MaskAccessToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{name: "empty", secret: "", want: ""},
		{name: "short", secret: "abc", want: "****"},
		{name: "long", secret: "supersecretvalue", want: "supe****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskSecret(tt.secret); got != tt.want {
				t.Errorf("MaskSecret() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMaskGUID(t *testing.T) {
	tests := []struct {
		name string
		guid string
		want string
	}{
		{name: "short value fully masked", guid: "12345678", want: "****"},
		{name: "full guid keeps prefix", guid: "4e336cbe-360b-4feb-9011-6c7bf25a3d70", want: "4e336cbe-****-****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskGUID(tt.guid); got != tt.want {
				t.Errorf("MaskGUID() = %q, want %q", got, tt.want)
			}
		})
	}
}
