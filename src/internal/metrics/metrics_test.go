package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/api-sage/retail-ledger/src/internal/domain"
)

func TestObserveTransaction(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveTransaction(domain.EntryDeposit, nil)
	m.ObserveTransaction(domain.EntryDeposit, nil)
	m.ObserveTransaction(domain.EntryWithdrawal, domain.ErrWithdrawalCountExceeded)
	m.ObserveTransaction(domain.EntryWithdrawal, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transactions.WithLabelValues("Deposit", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transactions.WithLabelValues("Withdrawal", OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transactions.WithLabelValues("Withdrawal", OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("Withdrawal", "withdrawal_count_exceeded")))
}

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.AccountOpened()
	m.ClientRegistered()
	m.ClientRegistered()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.accountsOpened))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.clients))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveTransaction(domain.EntryDeposit, nil)
		m.AccountOpened()
		m.ClientRegistered()
	})
}

func TestReason(t *testing.T) {
	assert.Equal(t, "invalid_amount", Reason(domain.ErrInvalidAmount))
	assert.Equal(t, "insufficient_funds", Reason(domain.ErrInsufficientFunds))
	assert.Equal(t, "overdraft_limit_exceeded", Reason(domain.ErrOverdraftLimitExceeded))
	assert.Equal(t, "other", Reason(errors.New("x")))
}
