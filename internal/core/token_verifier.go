package core

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// firebaseTokenVerifier adapts the Firebase Auth client to the
// TokenVerifier interface, classifying SDK failures into this package's
// sentinel errors so that handlers never see raw provider errors.
type firebaseTokenVerifier struct {
	client *auth.Client
}

// NewFirebaseTokenVerifier creates a TokenVerifier backed by the
// Firebase Auth client. It panics on a nil client: a missing auth
// client is a setup error the process cannot recover from.
func NewFirebaseTokenVerifier(client *auth.Client) TokenVerifier {
	if client == nil {
		panic("Firebase Auth client is not initialized for TokenVerifier")
	}
	return &firebaseTokenVerifier{client: client}
}

// Verify checks the ID token against Firebase and extracts the standard
// identity claims.
func (v *firebaseTokenVerifier) Verify(ctx context.Context, idToken string) (*VerifiedToken, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		switch {
		case auth.IsIDTokenExpired(err):
			return nil, fmt.Errorf("%w: %s", ErrExpiredToken, err)
		case auth.IsIDTokenInvalid(err):
			return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
		default:
			return nil, fmt.Errorf("%w: %s", ErrAuthBackend, err)
		}
	}

	email, _ := token.Claims["email"].(string)
	emailVerified, _ := token.Claims["email_verified"].(bool)

	return &VerifiedToken{
		UID:           token.UID,
		Email:         email,
		EmailVerified: emailVerified,
	}, nil
}
