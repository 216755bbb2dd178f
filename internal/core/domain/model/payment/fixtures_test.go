package payment_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"

	"github.com/stretchr/testify/require"
)

var (
	testNow   = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	testAdmin = kernel.AdminActor(kernel.MustUUIDFromString("0b5d3a7e-3f0c-4bb8-9d8e-2a1f1f4f6f10"))
)

func int64Ptr(v int64) *int64 { return &v }

func newTestPayment(t *testing.T, total int64) *payment.Payment {
	t.Helper()
	amount, err := payment.NewAmount(payment.AmountParams{Subtotal: total, Currency: "usd"})
	require.NoError(t, err)
	p, err := payment.NewPayment(payment.CreateParams{
		ShipmentID: kernel.NewUUID(),
		ClientID:   kernel.NewUUID(),
		Amount:     amount,
		CreatedBy:  testAdmin,
	}, testNow)
	require.NoError(t, err)
	return p
}

func completedTestPayment(t *testing.T, total int64) *payment.Payment {
	t.Helper()
	p := newTestPayment(t, total)
	require.NoError(t, p.UpdateStatus(payment.Completed, "paid", testAdmin, testNow))
	return p
}
