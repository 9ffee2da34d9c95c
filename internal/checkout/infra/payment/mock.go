package payment

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/TheSamadAzeez/nexus-backend/internal/checkout/app"
	"github.com/shopspring/decimal"
)

const txnAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Mock simulates a payment gateway. It declines a configurable fraction of
// charges; the randomness source is injectable so tests stay deterministic.
type Mock struct {
	declineRate float64
	randFloat   func() float64
	now         func() time.Time
}

func NewMock(declineRate float64) *Mock {
	return &Mock{
		declineRate: declineRate,
		randFloat:   rand.Float64,
		now:         time.Now,
	}
}

// NewMockWithRand fixes the randomness source, for tests.
func NewMockWithRand(declineRate float64, randFloat func() float64) *Mock {
	m := NewMock(declineRate)
	m.randFloat = randFloat
	return m
}

func (m *Mock) Process(_ context.Context, _ decimal.Decimal, _ string) (app.PaymentResult, error) {
	if m.randFloat() < m.declineRate {
		return app.PaymentResult{
			Success: false,
			Reason:  "Payment declined. Please try again.",
		}, nil
	}

	return app.PaymentResult{
		Success:       true,
		TransactionID: m.transactionID(),
	}, nil
}

func (m *Mock) transactionID() string {
	var sb strings.Builder
	for i := 0; i < 9; i++ {
		sb.WriteByte(txnAlphabet[rand.Intn(len(txnAlphabet))])
	}
	return fmt.Sprintf("TXN_%d_%s", m.now().UnixMilli(), sb.String())
}
