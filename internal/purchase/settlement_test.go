package purchase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"lineblocs.com/ledger/internal/ledger"
	"lineblocs.com/ledger/internal/queue"
	"lineblocs.com/ledger/mocks"
	"lineblocs.com/ledger/models"
)

func TestSettleNumberPurchase(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Should pass the caller's free decision straight to the ledger", func(t *testing.T) {
		t.Parallel()

		mockLedger := mocks.NewNumberCharger(t)
		expected := &ledger.NumberSettlement{Subscription: models.NumberSubscription{Id: 7, IsFree: true}}
		mockLedger.EXPECT().ChargeForNumberPurchase(mock.Anything, 1, 7, true).Return(expected, nil)

		s := NewSettlement(mockLedger, nil)
		result, err := s.SettleNumberPurchase(ctx, models.PurchaseTask{AccountID: 1, SubscriptionID: 7, RequestedAsFree: true})
		require.NoError(t, err)
		assert.Equal(t, expected, result)
	})

	t.Run("Should let the ledger decide when the token was already claimed", func(t *testing.T) {
		t.Parallel()

		mockLedger := mocks.NewNumberCharger(t)
		mockGuard := mocks.NewTokenGuard(t)
		mockGuard.EXPECT().Acquire(mock.Anything, "tok-1").Return(false, nil)
		mockLedger.EXPECT().ChargeForNumberPurchase(mock.Anything, 1, 7, false).
			Return(&ledger.NumberSettlement{AlreadySettled: true}, nil)

		s := NewSettlement(mockLedger, mockGuard)
		result, err := s.SettleNumberPurchase(ctx, models.PurchaseTask{AccountID: 1, SubscriptionID: 7, SettlementToken: "tok-1"})
		require.NoError(t, err)
		assert.True(t, result.AlreadySettled)
	})

	t.Run("Should settle even when the token store is unavailable", func(t *testing.T) {
		t.Parallel()

		mockLedger := mocks.NewNumberCharger(t)
		mockGuard := mocks.NewTokenGuard(t)
		mockGuard.EXPECT().Acquire(mock.Anything, "tok-3").Return(false, errors.New("dial tcp: connection refused"))
		mockLedger.EXPECT().ChargeForNumberPurchase(mock.Anything, 1, 9, true).Return(&ledger.NumberSettlement{}, nil)

		s := NewSettlement(mockLedger, mockGuard)
		_, err := s.SettleNumberPurchase(ctx, models.PurchaseTask{AccountID: 1, SubscriptionID: 9, RequestedAsFree: true, SettlementToken: "tok-3"})
		assert.NoError(t, err)
	})

	t.Run("Should release the token when the ledger fails", func(t *testing.T) {
		t.Parallel()

		mockLedger := mocks.NewNumberCharger(t)
		mockGuard := mocks.NewTokenGuard(t)
		failure := errors.New("lock wait timeout exceeded")
		mockGuard.EXPECT().Acquire(mock.Anything, "tok-2").Return(true, nil)
		mockLedger.EXPECT().ChargeForNumberPurchase(mock.Anything, 1, 8, false).Return(nil, failure)
		mockGuard.EXPECT().Release(mock.Anything, "tok-2").Return(nil)

		s := NewSettlement(mockLedger, mockGuard)
		_, err := s.SettleNumberPurchase(ctx, models.PurchaseTask{AccountID: 1, SubscriptionID: 8, SettlementToken: "tok-2"})
		assert.Equal(t, failure, err)
	})

	t.Run("Should not consult the guard without a token", func(t *testing.T) {
		t.Parallel()

		mockLedger := mocks.NewNumberCharger(t)
		mockGuard := mocks.NewTokenGuard(t)
		mockLedger.EXPECT().ChargeForNumberPurchase(mock.Anything, 1, 8, false).Return(&ledger.NumberSettlement{}, nil)

		s := NewSettlement(mockLedger, mockGuard)
		_, err := s.SettleNumberPurchase(ctx, models.PurchaseTask{AccountID: 1, SubscriptionID: 8})
		assert.NoError(t, err)
	})
}

func TestSettleNumberPurchaseAfterCancelledAttempt(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	guard := NewRedisTokenGuard(rdb, time.Hour)
	mockLedger := mocks.NewNumberCharger(t)
	task := models.PurchaseTask{AccountID: 1, SubscriptionID: 7, SettlementToken: "tok-shutdown"}

	ctx, cancel := context.WithCancel(context.Background())
	mockLedger.EXPECT().ChargeForNumberPurchase(mock.Anything, 1, 7, false).
		RunAndReturn(func(context.Context, int, int, bool) (*ledger.NumberSettlement, error) {
			cancel()
			return nil, context.Canceled
		}).Once()

	s := NewSettlement(mockLedger, guard)
	_, err := s.SettleNumberPurchase(ctx, task)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, mr.Exists("purchase_settlement:tok-shutdown"))

	settled := &ledger.NumberSettlement{Subscription: models.NumberSubscription{Id: 7}}
	mockLedger.EXPECT().ChargeForNumberPurchase(mock.Anything, 1, 7, false).Return(settled, nil).Once()

	result, err := s.SettleNumberPurchase(context.Background(), task)
	require.NoError(t, err)
	assert.False(t, result.AlreadySettled)
	assert.Equal(t, settled, result)
}

func TestSettleNumberPurchaseWithStaleToken(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	// claimed by a worker that died before committing
	require.NoError(t, mr.Set("purchase_settlement:tok-crash", "settled"))

	mockLedger := mocks.NewNumberCharger(t)
	settled := &ledger.NumberSettlement{Subscription: models.NumberSubscription{Id: 8, IsFree: true}}
	mockLedger.EXPECT().ChargeForNumberPurchase(mock.Anything, 2, 8, true).Return(settled, nil)

	s := NewSettlement(mockLedger, NewRedisTokenGuard(rdb, time.Hour))
	result, err := s.SettleNumberPurchase(context.Background(), models.PurchaseTask{AccountID: 2, SubscriptionID: 8, RequestedAsFree: true, SettlementToken: "tok-crash"})
	require.NoError(t, err)
	assert.Equal(t, settled, result)
}

func TestRedisTokenGuard(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	ctx := context.Background()
	guard := NewRedisTokenGuard(rdb, time.Hour)

	acquired, err := guard.Acquire(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = guard.Acquire(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, acquired)

	assert.Equal(t, time.Hour, mr.TTL("purchase_settlement:tok-1"))

	require.NoError(t, guard.Release(ctx, "tok-1"))
	acquired, err = guard.Acquire(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestSettlementHandleMessage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Should decode and settle the purchase", func(t *testing.T) {
		t.Parallel()

		mockLedger := mocks.NewNumberCharger(t)
		mockLedger.EXPECT().ChargeForNumberPurchase(mock.Anything, 4, 12, false).Return(&ledger.NumberSettlement{}, nil)

		err := NewSettlement(mockLedger, nil).HandleMessage(ctx,
			[]byte(`{"account_id":4,"subscription_id":12,"requested_as_free":false}`))
		assert.NoError(t, err)
	})

	t.Run("Should flag undecodable bodies", func(t *testing.T) {
		t.Parallel()

		err := NewSettlement(mocks.NewNumberCharger(t), nil).HandleMessage(ctx, []byte(`[]`))
		assert.ErrorIs(t, err, queue.ErrMalformedMessage)
	})

	t.Run("Should flag purchases for an unknown subscription", func(t *testing.T) {
		t.Parallel()

		mockLedger := mocks.NewNumberCharger(t)
		mockLedger.EXPECT().ChargeForNumberPurchase(mock.Anything, 4, 99, false).Return(nil, ledger.ErrSubscriptionNotFound)

		err := NewSettlement(mockLedger, nil).HandleMessage(ctx, []byte(`{"account_id":4,"subscription_id":99}`))
		assert.ErrorIs(t, err, queue.ErrMalformedMessage)
	})
}
