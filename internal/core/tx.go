package core

// TransactionRef is one entry of a signature window returned by the ledger,
// newest-first. It lives only within a single scan cycle.
type TransactionRef struct {
	Signature string
	Slot      uint64
	BlockTime int64
}

// TransactionBody is the parsed view of a fetched transaction. Missing bodies
// are represented with Missing set; they contribute nothing to counters.
type TransactionBody struct {
	Signature      string
	Missing        bool
	Failed         bool
	InvokedProgram bool
	Wallet         string // first signer account, empty when none
}

// Qualifies reports whether the transaction counts toward its wallet.
func (b *TransactionBody) Qualifies() bool {
	return b != nil && !b.Missing && !b.Failed && b.InvokedProgram && b.Wallet != ""
}

// FilterNovel returns the prefix of a newest-first signature window that is
// strictly newer than the checkpoint. When the checkpoint is empty or has aged
// out of the window, the whole window is novel.
func FilterNovel(window []*TransactionRef, checkpoint string) []*TransactionRef {
	if checkpoint == "" {
		return window
	}
	for i, ref := range window {
		if ref.Signature == checkpoint {
			return window[:i]
		}
	}
	return window
}
