// Package graph wraps the Microsoft Graph SDK behind a small client built
// per request from the caller-supplied bearer token. The token's lifetime is
// the caller's responsibility; no refresh or expiry handling happens here.
package graph

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
)

// DefaultScope is the delegated scope requested for every Graph call.
const DefaultScope = "https://graph.microsoft.com/.default"

// staticTokenCredential satisfies azcore.TokenCredential by returning the
// caller's token verbatim. The expiry is nominal; the SDK only checks it to
// decide when to call GetToken again within a single request.
type staticTokenCredential struct {
	token string
}

func (c staticTokenCredential) GetToken(_ context.Context, _ policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{
		Token:     c.token,
		ExpiresOn: time.Now().Add(time.Hour),
	}, nil
}

// Client issues typed Graph calls on behalf of one caller.
type Client struct {
	sdk    *msgraphsdk.GraphServiceClient
	logger *slog.Logger
}

// NewClient builds a Graph client from an Authorization header value.
// A leading "Bearer " prefix is stripped if present. Construction never
// calls upstream; failures surface when the client is used.
func NewClient(bearerToken string, logger *slog.Logger) (*Client, error) {
	cred := staticTokenCredential{token: StripBearer(bearerToken)}

	sdk, err := msgraphsdk.NewGraphServiceClientWithCredentials(cred, []string{DefaultScope})
	if err != nil {
		return nil, fmt.Errorf("graph client initialization failed: %w", err)
	}

	return &Client{sdk: sdk, logger: logger}, nil
}

// StripBearer removes a leading "Bearer " scheme from an Authorization
// header value, returning the raw token.
func StripBearer(header string) string {
	header = strings.TrimSpace(header)
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
