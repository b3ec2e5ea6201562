package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/api-sage/retail-ledger/src/internal/domain"
)

const namespace = "ledger"

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

type Metrics struct {
	transactions   *prometheus.CounterVec
	rejections     *prometheus.CounterVec
	accountsOpened prometheus.Counter
	clients        prometheus.Counter
}

// New registers the ledger collectors on reg. A nil reg yields collectors
// that are never exported.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_total",
			Help:      "Deposit and withdrawal attempts by outcome.",
		}, []string{"kind", "outcome"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transaction_rejections_total",
			Help:      "Rejected movements by reason.",
		}, []string{"kind", "reason"}),
		accountsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accounts_opened_total",
			Help:      "Accounts opened since start.",
		}),
		clients: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clients_registered_total",
			Help:      "Clients registered since start.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.transactions, m.rejections, m.accountsOpened, m.clients)
	}

	return m
}

func (m *Metrics) ObserveTransaction(kind domain.EntryKind, err error) {
	if m == nil {
		return
	}

	switch {
	case err == nil:
		m.transactions.WithLabelValues(string(kind), OutcomeSuccess).Inc()
	case domain.IsRejection(err):
		m.transactions.WithLabelValues(string(kind), OutcomeRejected).Inc()
		m.rejections.WithLabelValues(string(kind), Reason(err)).Inc()
	default:
		m.transactions.WithLabelValues(string(kind), OutcomeError).Inc()
	}
}

func (m *Metrics) AccountOpened() {
	if m == nil {
		return
	}
	m.accountsOpened.Inc()
}

func (m *Metrics) ClientRegistered() {
	if m == nil {
		return
	}
	m.clients.Inc()
}

// Reason maps a domain rejection to a stable label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrOverdraftLimitExceeded):
		return "overdraft_limit_exceeded"
	case errors.Is(err, domain.ErrWithdrawalCountExceeded):
		return "withdrawal_count_exceeded"
	default:
		return "other"
	}
}
