package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/angelmondragon/shopassist-backend/pkg/config"
)

const (
	ProviderFirebase = "firebase"

	defaultFirebaseTimeout = 10 * time.Second
)

// idTokenVerifier is the slice of the Firebase auth client the API uses.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseVerifier validates Firebase ID tokens with the Firebase Admin SDK,
// which owns certificate fetching and caching.
type FirebaseVerifier struct {
	client  idTokenVerifier
	timeout time.Duration
	now     func() time.Time
}

// NewFirebaseVerifier builds the Admin SDK auth client for cfg.ProjectID. Extra
// client options are appended after the ones derived from cfg.
func NewFirebaseVerifier(ctx context.Context, cfg config.FirebaseConfig, opts ...option.ClientOption) (*FirebaseVerifier, error) {
	projectID := strings.TrimSpace(cfg.ProjectID)
	if projectID == "" {
		return nil, fmt.Errorf("firebase project id is required")
	}

	clientOpts := []option.ClientOption{option.WithoutAuthentication()}
	if path := strings.TrimSpace(cfg.CredentialsFile); path != "" {
		clientOpts = []option.ClientOption{option.WithCredentialsFile(path)}
	}
	clientOpts = append(clientOpts, opts...)

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return newFirebaseVerifier(client, cfg.VerifyTimeout), nil
}

func newFirebaseVerifier(client idTokenVerifier, timeout time.Duration) *FirebaseVerifier {
	if timeout <= 0 {
		timeout = defaultFirebaseTimeout
	}
	return &FirebaseVerifier{client: client, timeout: timeout, now: time.Now}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	// a certificate refresh is shared by concurrent callers, so it must not die with one request
	verifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), v.timeout)
	defer cancel()

	decoded, err := v.client.VerifyIDToken(verifyCtx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if decoded.AuthTime > v.now().Unix() {
		return nil, fmt.Errorf("%w: auth_time is in the future", ErrInvalidToken)
	}
	email, _ := decoded.Claims["email"].(string)
	return &Identity{UserID: decoded.UID, Email: email, Provider: ProviderFirebase}, nil
}
