package service

import (
	"context"
	"errors"
	"fmt"

	"localxp-api/core/utils"
	"localxp-api/modules/booking/entity"
)

// DeclinedPaymentToken is the token the stub gateway always declines.
const DeclinedPaymentToken = "tok_chargeDeclined"

var ErrPaymentDeclined = errors.New("payment declined")

// PaymentGateway charges a booking total and returns a payment reference.
type PaymentGateway interface {
	Charge(ctx context.Context, method entity.PaymentMethod, token string, amount float64) (string, error)
}

// StubGateway approves every charge except DeclinedPaymentToken. It never
// contacts a processor.
type StubGateway struct{}

func NewStubGateway() *StubGateway {
	return &StubGateway{}
}

func (StubGateway) Charge(ctx context.Context, method entity.PaymentMethod, token string, amount float64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if token == DeclinedPaymentToken {
		return "", fmt.Errorf("%w: %s", ErrPaymentDeclined, method)
	}
	return "pay_" + utils.GenerateID(), nil
}
