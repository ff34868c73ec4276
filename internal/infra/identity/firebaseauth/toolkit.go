package firebaseauth

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// passwordAuthenticator is the password flow of the Identity Toolkit API.
type passwordAuthenticator interface {
	// VerifyPassword signs the user in and returns the account's local ID.
	VerifyPassword(ctx context.Context, email, password string) (string, error)

	// SignUp creates a password account and returns its local ID.
	SignUp(ctx context.Context, email, password string) (string, error)
}

type toolkitClient struct {
	relyingParty *identitytoolkit.RelyingpartyService
}

func newToolkitClient(ctx context.Context, apiKey string) (*toolkitClient, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit service")
	}

	return &toolkitClient{relyingParty: svc.Relyingparty}, nil
}

func (c *toolkitClient) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	resp, err := c.relyingParty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return "", err
	}

	return resp.LocalId, nil
}

func (c *toolkitClient) SignUp(ctx context.Context, email, password string) (string, error) {
	resp, err := c.relyingParty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return "", err
	}

	return resp.LocalId, nil
}
