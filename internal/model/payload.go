package model

// SalePayload is the canonical fact set committed on-chain. The JSON field
// names are part of the hash contract shared with the front end and the
// contract oracle; changing them changes every digest.
type SalePayload struct {
	TransactionID string `json:"transaction_Id"`
	TotalAmt      int64  `json:"total_Amt"`
	TotalQty      int64  `json:"total_Qty"`
	// Timestamp is Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// SaleResult is returned to the submitting agent; the front end relays
// payload and hash to the ledger contract.
type SaleResult struct {
	Payload SalePayload `json:"payload"`
	Hash    string      `json:"hash"`
}

// SaleItemInput is one (item, quantity) pair of a sale submission.
type SaleItemInput struct {
	ItemID string `json:"item_Id"`
	Qty    int64  `json:"qty"`
}
