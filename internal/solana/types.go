package solana

import "fmt"

// SignatureInfo is one entry of a getSignaturesForAddress response,
// newest-first.
type SignatureInfo struct {
	Signature string `json:"signature"`
	Slot      uint64 `json:"slot"`
	BlockTime *int64 `json:"blockTime"`
	Memo      string `json:"memo,omitempty"`
}

// Transaction is a getTransaction result with jsonParsed encoding, reduced to
// the fields the indexer inspects.
type Transaction struct {
	Slot        uint64          `json:"slot"`
	BlockTime   *int64          `json:"blockTime"`
	Meta        *Meta           `json:"meta"`
	Transaction TransactionData `json:"transaction"`
}

// Meta holds transaction execution metadata. Err is null for successful
// transactions and an arbitrary error object otherwise.
type Meta struct {
	Err any      `json:"err"`
	Fee uint64   `json:"fee"`
	Log []string `json:"logMessages,omitempty"`
}

type TransactionData struct {
	Signatures []string `json:"signatures"`
	Message    Message  `json:"message"`
}

type Message struct {
	AccountKeys  []AccountKey  `json:"accountKeys"`
	Instructions []Instruction `json:"instructions"`
}

// AccountKey is a jsonParsed account entry. Signer accounts are ordered
// first, so the first one with Signer set is the fee payer.
type AccountKey struct {
	Pubkey   string `json:"pubkey"`
	Signer   bool   `json:"signer"`
	Writable bool   `json:"writable"`
}

type Instruction struct {
	ProgramID string `json:"programId"`
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
