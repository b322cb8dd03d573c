package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solindexer/sonar/internal/core"
)

func window(signatures ...string) []*core.TransactionRef {
	ret := make([]*core.TransactionRef, 0, len(signatures))
	for _, s := range signatures {
		ret = append(ret, &core.TransactionRef{Signature: s})
	}
	return ret
}

func signatures(refs []*core.TransactionRef) []string {
	ret := make([]string, 0, len(refs))
	for _, r := range refs {
		ret = append(ret, r.Signature)
	}
	return ret
}

func TestFilterNovel(t *testing.T) {
	w := window("s5", "s4", "s3", "s2", "s1")

	t.Run("checkpoint inside window", func(t *testing.T) {
		got := core.FilterNovel(w, "s3")
		assert.Equal(t, []string{"s5", "s4"}, signatures(got))
	})

	t.Run("checkpoint is newest", func(t *testing.T) {
		got := core.FilterNovel(w, "s5")
		assert.Empty(t, got)
	})

	t.Run("checkpoint absent", func(t *testing.T) {
		got := core.FilterNovel(w, "")
		assert.Equal(t, signatures(w), signatures(got))
	})

	t.Run("checkpoint aged out of window", func(t *testing.T) {
		got := core.FilterNovel(w, "s0")
		assert.Equal(t, signatures(w), signatures(got))
	})

	t.Run("empty window", func(t *testing.T) {
		got := core.FilterNovel(nil, "s3")
		assert.Empty(t, got)
	})
}

func TestTransactionBody_Qualifies(t *testing.T) {
	base := core.TransactionBody{Signature: "s1", InvokedProgram: true, Wallet: "walletA"}

	ok := base
	assert.True(t, ok.Qualifies())

	failed := base
	failed.Failed = true
	assert.False(t, failed.Qualifies())

	missing := base
	missing.Missing = true
	assert.False(t, missing.Qualifies())

	noWallet := base
	noWallet.Wallet = ""
	assert.False(t, noWallet.Qualifies())

	noInvoke := base
	noInvoke.InvokedProgram = false
	assert.False(t, noInvoke.Qualifies())
}
