package payment

import (
	"context"

	"salon-booking/internal/pkg/errs"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

// RefundProvider issues a refund against a stored charge reference. A failure
// here must block cancellation: an appointment is never released while the
// customer's money is still captured.
type RefundProvider interface {
	Refund(ctx context.Context, chargeRef string) error
}

type OmiseRefunds struct {
	client *omise.Client
}

func NewOmiseClient(publicKey, secretKey string) (*omise.Client, error) {
	client, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create omise client")
	}
	client.SetDebug(false)
	return client, nil
}

func NewOmiseRefunds(client *omise.Client) *OmiseRefunds {
	return &OmiseRefunds{client: client}
}

func (p *OmiseRefunds) Refund(_ context.Context, chargeRef string) error {
	refund := &omise.Refund{}
	err := p.client.Do(refund, &operations.CreateRefund{
		ChargeID: chargeRef,
	})
	if err != nil {
		return errs.Wrap(err, "omise refund failed")
	}
	return nil
}

// NoopRefunds is used when no payment keys are configured; bookings without a
// charge reference never reach the provider anyway.
type NoopRefunds struct{}

func (NoopRefunds) Refund(context.Context, string) error { return nil }
