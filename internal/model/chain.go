package model

// ChainSale mirrors the on-chain sale record. It is read-only from the
// engine's perspective and authoritative for verification/payment state.
type ChainSale struct {
	AgentAddress string
	Payload      SalePayload
	StoredHash   string
	IsVerified   bool
	IsPaid       bool
}

// Exists reports whether the contract storage holds a record for the queried
// id. The contract returns an empty struct for unknown ids; a zero payload
// timestamp is the sentinel for "not found".
func (s ChainSale) Exists() bool {
	return s.Payload.Timestamp != 0
}

// SaleEvent is one SaleRecorded contract event.
type SaleEvent struct {
	TransactionID string
	AgentAddress  string
	Hash          string
	BlockNumber   uint64
}
