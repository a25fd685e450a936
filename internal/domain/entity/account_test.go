package entity

import (
	"strings"
	"testing"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("Valid account creation", func(t *testing.T) {
		account, err := NewAccount("memberA", 10000)

		require.NoError(t, err)
		assert.Equal(t, "memberA", account.ID)
		assert.Equal(t, int64(10000), account.Balance)
	})

	t.Run("Zero balance is allowed", func(t *testing.T) {
		account, err := NewAccount("memberB", 0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), account.Balance)
	})

	t.Run("Invalid IDs", func(t *testing.T) {
		testCases := map[string]string{
			"empty":    "",
			"too long": strings.Repeat("a", MaxAccountIDLength+1),
		}

		for name, id := range testCases {
			t.Run(name, func(t *testing.T) {
				account, err := NewAccount(id, 100)
				assert.ErrorIs(t, err, errs.ErrInvalidAccountID)
				assert.Nil(t, account)
			})
		}
	})

	t.Run("Negative balance", func(t *testing.T) {
		account, err := NewAccount("memberA", -1)

		assert.ErrorIs(t, err, errs.ErrNegativeBalance)
		assert.Nil(t, account)
	})
}

func TestAccountDebitCredit(t *testing.T) {
	source := &Account{ID: "memberA", Balance: 10000}

	t.Run("Debit leaves receiver untouched", func(t *testing.T) {
		debited, err := source.Debited(3000)

		require.NoError(t, err)
		assert.Equal(t, int64(7000), debited.Balance)
		assert.Equal(t, int64(10000), source.Balance)
	})

	t.Run("Debit more than balance", func(t *testing.T) {
		_, err := source.Debited(10001)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	})

	t.Run("Debit exact balance", func(t *testing.T) {
		debited, err := source.Debited(10000)

		require.NoError(t, err)
		assert.Equal(t, int64(0), debited.Balance)
	})

	t.Run("Non-positive amounts", func(t *testing.T) {
		for _, amount := range []int64{0, -5} {
			_, err := source.Debited(amount)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)

			_, err = source.Credited(amount)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		}
	})

	t.Run("Credit", func(t *testing.T) {
		credited, err := (&Account{ID: "memberB"}).Credited(3000)

		require.NoError(t, err)
		assert.Equal(t, int64(3000), credited.Balance)
	})

	t.Run("Credit overflow", func(t *testing.T) {
		_, err := (&Account{ID: "memberB", Balance: maxBalance - 1}).Credited(2)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}
