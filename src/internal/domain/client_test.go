package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/retail-ledger/src/internal/domain"
)

func TestClientLinksAccountsInOrder(t *testing.T) {
	client := newOwner()
	first := domain.OpenCheckingAccount(&client.Client, 1)
	second := domain.OpenCheckingAccount(&client.Client, 2)

	client.LinkAccount(first)
	client.LinkAccount(second)

	accounts := client.Accounts()
	require.Len(t, accounts, 2)
	assert.Equal(t, int64(1), accounts[0].Number())
	assert.Equal(t, int64(2), accounts[1].Number())
}

func TestClientExecuteTransactionDelegates(t *testing.T) {
	client := newOwner()
	account := domain.OpenCheckingAccount(&client.Client, 1)
	client.LinkAccount(account)

	_, err := client.ExecuteTransaction(account, domain.NewDeposit(dec(200)))
	require.NoError(t, err)
	_, err = client.ExecuteTransaction(account, domain.NewWithdrawal(dec(50)))
	require.NoError(t, err)

	assert.True(t, account.Balance().Equal(dec(150)))
	assert.Equal(t, 2, account.History().Len())
}

func TestIndividualClientsGetDistinctIDs(t *testing.T) {
	a := newOwner()
	b := newOwner()

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "12345678900", a.NationalID)
}
