package commands_test

import (
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentLedgerHandlersSuite struct {
	suite.Suite

	repo    *MockPaymentRepository
	uow     *MockUoW
	factory *MockPaymentUoWFactory
	gateway *MockPaymentGateway
}

func TestPaymentLedgerHandlers(t *testing.T) {
	suite.Run(t, new(PaymentLedgerHandlersSuite))
}

func (s *PaymentLedgerHandlersSuite) SetupTest() {
	s.repo = &MockPaymentRepository{}
	s.uow = &MockUoW{}
	s.factory = &MockPaymentUoWFactory{}
	s.gateway = &MockPaymentGateway{}
	s.factory.On("Create").Return(s.uow).Once()
}

func (s *PaymentLedgerHandlersSuite) TearDownTest() {
	s.factory.AssertExpectations(s.T())
	s.gateway.AssertExpectations(s.T())
}

func (s *PaymentLedgerHandlersSuite) expectLoad(p *payment.Payment) {
	ctx := s.T().Context()
	s.uow.On("Begin", ctx).Return(nil).Once()
	s.uow.On("PaymentRepository").Return(s.repo).Once()
	s.repo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	s.uow.On("Rollback", ctx).Return(nil).Once()
}

func (s *PaymentLedgerHandlersSuite) expectSave(p *payment.Payment) {
	ctx := s.T().Context()
	s.repo.On("Update", ctx, p).Return(nil).Once()
	s.uow.On("Commit", ctx).Return(nil).Once()
}

func (s *PaymentLedgerHandlersSuite) TestRecordPartialPayment_ChargesGateway() {
	ctx := s.T().Context()
	p := newPayment(s.T(), 10000)
	s.expectLoad(p)
	s.expectSave(p)
	s.gateway.On("Charge", ctx, mock.MatchedBy(func(req ports.ChargeRequest) bool {
		return req.Amount == 4000 &&
			req.Currency == "usd" &&
			req.IdempotencyKey == "partial-"+p.ID().String()+"-req-1" &&
			req.Metadata["payment_id"] == p.ID().String()
	})).Return("ch_1", nil).Once()

	cmd, err := commands.NewRecordPartialPaymentCommand(superAdmin(), p.ID(), 4000, payment.MethodCard, "", "req-1")
	s.Require().NoError(err)

	updated, err := commands.NewRecordPartialPaymentCommandHandler(s.factory, s.gateway).Handle(ctx, cmd)
	s.Require().NoError(err)

	s.Equal(payment.Processing, updated.Status())
	s.Equal(int64(6000), updated.RemainingBalance().Amount())
	s.Require().Len(updated.PartialPayments(), 1)
	s.Equal("ch_1", updated.PartialPayments()[0].TransactionID)
	s.uow.AssertExpectations(s.T())
}

func (s *PaymentLedgerHandlersSuite) TestRecordPartialPayment_OverBalanceNeverCharges() {
	ctx := s.T().Context()
	p := newPayment(s.T(), 1000)
	s.expectLoad(p)

	cmd, err := commands.NewRecordPartialPaymentCommand(superAdmin(), p.ID(), 1500, payment.MethodCard, "", "req-1")
	s.Require().NoError(err)

	_, err = commands.NewRecordPartialPaymentCommandHandler(s.factory, s.gateway).Handle(ctx, cmd)

	s.Require().ErrorIs(err, errs.ErrInsufficientBalance)
	s.gateway.AssertNotCalled(s.T(), "Charge", mock.Anything, mock.Anything)
	s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *PaymentLedgerHandlersSuite) TestRecordPartialPayment_GatewayFailure() {
	ctx := s.T().Context()
	p := newPayment(s.T(), 1000)
	s.expectLoad(p)
	s.gateway.On("Charge", ctx, mock.Anything).Return("", errors.New("card declined")).Once()

	cmd, err := commands.NewRecordPartialPaymentCommand(superAdmin(), p.ID(), 500, payment.MethodCard, "", "req-1")
	s.Require().NoError(err)

	_, err = commands.NewRecordPartialPaymentCommandHandler(s.factory, s.gateway).Handle(ctx, cmd)

	s.Require().ErrorIs(err, commands.ErrPaymentGatewayFailed)
	s.Empty(p.PartialPayments())
	s.uow.AssertNotCalled(s.T(), "Commit", ctx)
}

func (s *PaymentLedgerHandlersSuite) TestRecordPartialPayment_ManualSettlement() {
	ctx := s.T().Context()
	p := newPayment(s.T(), 1000)
	s.expectLoad(p)
	s.expectSave(p)

	cmd, err := commands.NewRecordPartialPaymentCommand(superAdmin(), p.ID(), 1000, payment.MethodCash, "", "")
	s.Require().NoError(err)

	updated, err := commands.NewRecordPartialPaymentCommandHandler(s.factory, nil).Handle(ctx, cmd)
	s.Require().NoError(err)

	s.Equal(payment.Completed, updated.Status())
	s.True(updated.RemainingBalance().IsZero())
}

func (s *PaymentLedgerHandlersSuite) TestRecordPartialPayment_GatewayChargeNeedsIdempotencyKey() {
	ctx := s.T().Context()
	p := newPayment(s.T(), 1000)
	s.expectLoad(p)

	cmd, err := commands.NewRecordPartialPaymentCommand(superAdmin(), p.ID(), 500, payment.MethodCard, "", "")
	s.Require().NoError(err)

	_, err = commands.NewRecordPartialPaymentCommandHandler(s.factory, s.gateway).Handle(ctx, cmd)

	s.Require().ErrorIs(err, errs.ErrValueIsRequired)
	s.gateway.AssertNotCalled(s.T(), "Charge", mock.Anything, mock.Anything)
}

func (s *PaymentLedgerHandlersSuite) TestRecordPartialPayment_RetryAfterLostRaceReusesChargeKey() {
	ctx := s.T().Context()
	stale := newPayment(s.T(), 10000)
	fresh := reloadPayment(s.T(), stale)
	_, err := fresh.RecordPartialPayment(payment.PartialParams{
		Amount: 1000, Method: payment.MethodCash,
	}, kernel.SystemActor(), time.Now())
	s.Require().NoError(err)
	fresh.ClearDomainEvents()

	wantKey := "partial-" + stale.ID().String() + "-order-77"
	s.gateway.On("Charge", ctx, mock.MatchedBy(func(req ports.ChargeRequest) bool {
		return req.IdempotencyKey == wantKey && req.Amount == 4000
	})).Return("pi_same", nil).Twice()

	// First attempt loses the version race after charging.
	s.expectLoad(stale)
	s.repo.On("Update", ctx, stale).
		Return(errs.NewTransientError("update payment", errs.NewVersionIsInvalidError("payment"))).Once()

	cmd, err := commands.NewRecordPartialPaymentCommand(superAdmin(), stale.ID(), 4000, payment.MethodCard, "", "order-77")
	s.Require().NoError(err)
	handler := commands.NewRecordPartialPaymentCommandHandler(s.factory, s.gateway)

	_, err = handler.Handle(ctx, cmd)
	s.Require().ErrorIs(err, errs.ErrTransient)

	// The retry reloads the winner's state and charges with the same key.
	s.factory.On("Create").Return(s.uow).Once()
	s.expectLoad(fresh)
	s.expectSave(fresh)

	updated, err := handler.Handle(ctx, cmd)
	s.Require().NoError(err)

	partials := updated.PartialPayments()
	s.Require().Len(partials, 2)
	s.Equal("pi_same", partials[1].TransactionID)
	s.Equal(int64(5000), updated.RemainingBalance().Amount())
	s.gateway.AssertNumberOfCalls(s.T(), "Charge", 2)
	s.uow.AssertExpectations(s.T())
}

func (s *PaymentLedgerHandlersSuite) TestRecordPartialPayment_RecordedTransactionIsNotAddedTwice() {
	ctx := s.T().Context()
	p := newPayment(s.T(), 10000)
	_, err := p.RecordPartialPayment(payment.PartialParams{
		Amount: 4000, Method: payment.MethodCard, TransactionID: "pi_same",
	}, kernel.SystemActor(), time.Now())
	s.Require().NoError(err)
	p.ClearDomainEvents()

	s.expectLoad(p)
	s.gateway.On("Charge", ctx, mock.Anything).Return("pi_same", nil).Once()

	cmd, err := commands.NewRecordPartialPaymentCommand(superAdmin(), p.ID(), 4000, payment.MethodCard, "", "order-77")
	s.Require().NoError(err)

	updated, err := commands.NewRecordPartialPaymentCommandHandler(s.factory, s.gateway).Handle(ctx, cmd)
	s.Require().NoError(err)

	s.Len(updated.PartialPayments(), 1)
	s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
}

func (s *PaymentLedgerHandlersSuite) TestAddRefund() {
	ctx := s.T().Context()
	p := completedPayment(s.T(), 5000)
	s.expectLoad(p)
	s.expectSave(p)

	cmd, err := commands.NewAddRefundCommand(superAdmin(), p.ID(), 2000, payment.RefundLateDelivery, "", "late")
	s.Require().NoError(err)

	refund, err := commands.NewAddRefundCommandHandler(s.factory).Handle(ctx, cmd)
	s.Require().NoError(err)

	s.Equal(payment.EntryPending, refund.Status)
	s.Equal(int64(2000), refund.Amount.Amount())
	s.Equal(payment.Completed, p.Status())
}

func (s *PaymentLedgerHandlersSuite) TestCompleteRefund_GatewayFailureMarksRefundFailed() {
	ctx := s.T().Context()
	p := newPayment(s.T(), 5000)
	_, err := p.RecordPartialPayment(payment.PartialParams{
		Amount: 5000, Method: payment.MethodCard, TransactionID: "ch_paid",
	}, kernel.SystemActor(), p.CreatedAt())
	s.Require().NoError(err)
	refund, err := p.AddRefund(payment.RefundParams{Amount: 1000, Reason: payment.RefundOvercharge}, kernel.SystemActor(), p.CreatedAt())
	s.Require().NoError(err)
	p.ClearDomainEvents()

	s.expectLoad(p)
	s.expectSave(p)
	s.gateway.On("Refund", ctx, ports.GatewayRefundRequest{
		TransactionID:  "ch_paid",
		Amount:         1000,
		IdempotencyKey: refund.ID,
	}).Return("", errors.New("gateway unavailable")).Once()

	cmd, err := commands.NewCompleteRefundCommand(superAdmin(), p.ID(), refund.ID, "")
	s.Require().NoError(err)

	updated, err := commands.NewCompleteRefundCommandHandler(s.factory, s.gateway).Handle(ctx, cmd)

	s.Require().ErrorIs(err, commands.ErrPaymentGatewayFailed)
	s.Require().NotNil(updated)
	s.Equal(payment.EntryFailed, updated.Refunds()[0].Status)
	s.Equal(payment.Completed, updated.Status())
	s.uow.AssertExpectations(s.T())
}

func (s *PaymentLedgerHandlersSuite) TestCompleteRefund_ExplicitTransactionSkipsGateway() {
	ctx := s.T().Context()
	p := completedPayment(s.T(), 5000)
	refund, err := p.AddRefund(payment.RefundParams{Amount: 5000, Reason: payment.RefundOther}, kernel.SystemActor(), p.CreatedAt())
	s.Require().NoError(err)

	s.expectLoad(p)
	s.expectSave(p)

	cmd, err := commands.NewCompleteRefundCommand(superAdmin(), p.ID(), refund.ID, "re_manual")
	s.Require().NoError(err)

	updated, err := commands.NewCompleteRefundCommandHandler(s.factory, s.gateway).Handle(ctx, cmd)
	s.Require().NoError(err)

	s.Equal(payment.Refunded, updated.Status())
	s.Equal("re_manual", updated.Refunds()[0].GatewayTransactionID)
}

func (s *PaymentLedgerHandlersSuite) TestCompleteRefund_OverCeilingNeverReachesGateway() {
	ctx := s.T().Context()
	p := newPayment(s.T(), 100)
	_, err := p.RecordPartialPayment(payment.PartialParams{
		Amount: 100, Method: payment.MethodCard, TransactionID: "ch_1",
	}, kernel.SystemActor(), p.CreatedAt())
	s.Require().NoError(err)
	first, err := p.AddRefund(payment.RefundParams{Amount: 100, Reason: payment.RefundOvercharge}, kernel.SystemActor(), p.CreatedAt())
	s.Require().NoError(err)
	second, err := p.AddRefund(payment.RefundParams{Amount: 100, Reason: payment.RefundOvercharge}, kernel.SystemActor(), p.CreatedAt())
	s.Require().NoError(err)
	s.Require().NoError(p.CompleteRefund(first.ID, "re_1", kernel.SystemActor(), p.CreatedAt()))
	p.ClearDomainEvents()

	s.expectLoad(p)

	cmd, err := commands.NewCompleteRefundCommand(superAdmin(), p.ID(), second.ID, "")
	s.Require().NoError(err)

	_, err = commands.NewCompleteRefundCommandHandler(s.factory, s.gateway).Handle(ctx, cmd)

	s.Require().ErrorIs(err, errs.ErrInsufficientBalance)
	s.gateway.AssertNumberOfCalls(s.T(), "Refund", 0)
	s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
	s.Equal(payment.EntryPending, p.Refunds()[1].Status)
}

func (s *PaymentLedgerHandlersSuite) TestCompleteRefund_UnknownRefund() {
	ctx := s.T().Context()
	p := completedPayment(s.T(), 5000)
	s.expectLoad(p)

	cmd, err := commands.NewCompleteRefundCommand(superAdmin(), p.ID(), "ref_missing", "")
	s.Require().NoError(err)

	_, err = commands.NewCompleteRefundCommandHandler(s.factory, s.gateway).Handle(ctx, cmd)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestNewRecordPartialPaymentCommand_Validation(t *testing.T) {
	_, err := commands.NewRecordPartialPaymentCommand(superAdmin(), kernel.NewUUID(), 0, payment.MethodCard, "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
