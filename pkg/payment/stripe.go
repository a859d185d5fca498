package payment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

// ErrRejected is returned when the provider refuses to hand off a session.
var ErrRejected = errors.New("payment provider rejected the session")

// Handoff tells the browser how to reach the provider's hosted page: either
// a URL to redirect to, or a page that performs the redirect client side.
type Handoff struct {
	URL  string
	Page template.HTML
}

// Provider turns a checkout session id into a browser handoff.
type Provider interface {
	Handoff(ctx context.Context, sessionID string) (*Handoff, error)
}

type sessionGetter interface {
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeHosted resolves the hosted checkout URL with the secret key.
type StripeHosted struct {
	sessions sessionGetter
}

func NewStripeHosted(secretKey string) *StripeHosted {
	sc := client.New(secretKey, nil)
	return &StripeHosted{
		sessions: sc.CheckoutSessions,
	}
}

func (s *StripeHosted) Handoff(ctx context.Context, sessionID string) (*Handoff, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := s.sessions.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return nil, fmt.Errorf("%w: %s", ErrRejected, stripeErr.Msg)
		}
		return nil, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}

	if session.Status != "" && session.Status != stripe.CheckoutSessionStatusOpen {
		return nil, fmt.Errorf("%w: session is %s", ErrRejected, session.Status)
	}
	if session.URL == "" {
		return nil, fmt.Errorf("%w: session has no hosted url", ErrRejected)
	}

	return &Handoff{URL: session.URL}, nil
}

var stripeJSPage = template.Must(template.New("stripe-js").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Redirecting to checkout</title>
<script src="https://js.stripe.com/v3/"></script>
</head>
<body>
<p id="checkout-status">Redirecting to checkout&hellip;</p>
<script>
(function () {
  var stripe = Stripe({{.Key}});
  stripe.redirectToCheckout({ sessionId: {{.SessionID}} }).then(function (result) {
    if (result.error) {
      console.error(result.error.message);
      document.getElementById("checkout-status").textContent = result.error.message;
    }
  });
})();
</script>
</body>
</html>
`))

// StripeJS hands off with the publishable key by letting Stripe.js perform
// the redirect in the browser.
type StripeJS struct {
	publishableKey string
}

func NewStripeJS(publishableKey string) *StripeJS {
	return &StripeJS{publishableKey: publishableKey}
}

func (s *StripeJS) Handoff(_ context.Context, sessionID string) (*Handoff, error) {
	var buf bytes.Buffer
	err := stripeJSPage.Execute(&buf, struct {
		Key       string
		SessionID string
	}{
		Key:       s.publishableKey,
		SessionID: sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render checkout handoff: %w", err)
	}
	return &Handoff{Page: template.HTML(buf.String())}, nil
}

// NewProvider prefers the server-side lookup when a secret key is present.
func NewProvider(secretKey, publishableKey string) (Provider, error) {
	switch {
	case secretKey != "":
		return NewStripeHosted(secretKey), nil
	case publishableKey != "":
		return NewStripeJS(publishableKey), nil
	default:
		return nil, errors.New("no stripe key configured")
	}
}
