package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/equipledger/salesledger-backend/internal/errs"
	"github.com/equipledger/salesledger-backend/internal/model"
	"github.com/equipledger/salesledger-backend/pkg/safe"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// salesManagerABI is the subset of the SalesManager contract the engine uses.
const salesManagerABI = `[
	{"type":"function","name":"sales","stateMutability":"view",
	 "inputs":[{"name":"","type":"string"}],
	 "outputs":[
		{"name":"agent","type":"address"},
		{"name":"payload","type":"tuple","components":[
			{"name":"transactionId","type":"string"},
			{"name":"totalAmt","type":"uint256"},
			{"name":"totalQty","type":"uint256"},
			{"name":"timestamp","type":"uint256"}]},
		{"name":"txHash","type":"string"},
		{"name":"isVerified","type":"bool"},
		{"name":"isPaid","type":"bool"}]},
	{"type":"function","name":"verifySale","stateMutability":"nonpayable",
	 "inputs":[
		{"name":"transactionId","type":"string"},
		{"name":"offchainHash","type":"string"},
		{"name":"agentWallet","type":"address"}],
	 "outputs":[]},
	{"type":"function","name":"updatePaymentStatus","stateMutability":"nonpayable",
	 "inputs":[{"name":"transactionId","type":"string"}],
	 "outputs":[]},
	{"type":"event","name":"SaleRecorded","anonymous":false,
	 "inputs":[
		{"name":"transactionId","type":"string","indexed":false},
		{"name":"agent","type":"address","indexed":true},
		{"name":"hash","type":"string","indexed":false}]}
]`

const saleRecordedEvent = "SaleRecorded"

type salePayloadTuple struct {
	TransactionId string
	TotalAmt      *big.Int
	TotalQty      *big.Int
	Timestamp     *big.Int
}

type saleRecordedLog struct {
	TransactionId string
	Agent         common.Address
	Hash          string
}

// EVMClient talks to the SalesManager contract over an Ethereum JSON-RPC
// endpoint. Writes are signed with the oracle key and wait for mining before
// returning, so a nil error means the call settled.
type EVMClient struct {
	eth         *ethclient.Client
	contract    *bind.BoundContract
	abi         abi.ABI
	address     common.Address
	opts        *bind.TransactOpts
	callTimeout time.Duration
	logger      *zap.Logger

	// writeMu serializes transactions so pending-nonce resolution stays
	// correct when the reconciler and the payment service write concurrently.
	writeMu sync.Mutex
}

// NewEVMClient dials the RPC endpoint and prepares a keyed transactor for the
// oracle wallet.
func NewEVMClient(rpcURL, contractAddress, oracleKeyHex string, chainID int64, callTimeout time.Duration, logger *zap.Logger) (*EVMClient, error) {
	if rpcURL == "" {
		return nil, errors.New("ledger rpc url is required")
	}
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", contractAddress)
	}

	parsed, err := abi.JSON(strings.NewReader(salesManagerABI))
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(oracleKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse oracle key: %w", err)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(chainID))
	if err != nil {
		return nil, fmt.Errorf("init transactor: %w", err)
	}

	eth, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial ledger rpc: %w", err)
	}

	address := common.HexToAddress(contractAddress)
	return &EVMClient{
		eth:         eth,
		contract:    bind.NewBoundContract(address, parsed, eth, eth, eth),
		abi:         parsed,
		address:     address,
		opts:        opts,
		callTimeout: callTimeout,
		logger:      logger.Named("evmClient"),
	}, nil
}

// Close releases the underlying RPC connection.
func (c *EVMClient) Close() {
	c.eth.Close()
}

// GetSale reads the public sales mapping for a transaction id.
func (c *EVMClient) GetSale(ctx context.Context, transactionID string) (*model.ChainSale, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "sales", transactionID); err != nil {
		return nil, &errs.TransientError{Op: "get_sale", Err: err}
	}
	if len(out) != 5 {
		return nil, &errs.TransientError{Op: "get_sale", Err: fmt.Errorf("unexpected output arity %d", len(out))}
	}

	agent := *abi.ConvertType(out[0], new(common.Address)).(*common.Address)
	payload := *abi.ConvertType(out[1], new(salePayloadTuple)).(*salePayloadTuple)
	storedHash := *abi.ConvertType(out[2], new(string)).(*string)
	isVerified := *abi.ConvertType(out[3], new(bool)).(*bool)
	isPaid := *abi.ConvertType(out[4], new(bool)).(*bool)

	totalAmt, err := safe.Int64FromBig(payload.TotalAmt)
	if err != nil {
		return nil, fmt.Errorf("sale %s total amount: %w", transactionID, err)
	}
	totalQty, err := safe.Int64FromBig(payload.TotalQty)
	if err != nil {
		return nil, fmt.Errorf("sale %s total quantity: %w", transactionID, err)
	}
	timestamp, err := safe.Int64FromBig(payload.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("sale %s timestamp: %w", transactionID, err)
	}

	return &model.ChainSale{
		AgentAddress: agent.Hex(),
		Payload: model.SalePayload{
			TransactionID: payload.TransactionId,
			TotalAmt:      totalAmt,
			TotalQty:      totalQty,
			Timestamp:     timestamp,
		},
		StoredHash: storedHash,
		IsVerified: isVerified,
		IsPaid:     isPaid,
	}, nil
}

// SubmitVerification calls verifySale and waits for the receipt.
func (c *EVMClient) SubmitVerification(ctx context.Context, transactionID, hash, agentWallet string) error {
	if !common.IsHexAddress(agentWallet) {
		return fmt.Errorf("%w: invalid agent wallet %q", errs.ErrValidation, agentWallet)
	}
	return c.transact(ctx, "verify_sale", "verifySale", transactionID, hash, common.HexToAddress(agentWallet))
}

// SubmitPaymentUpdate calls updatePaymentStatus and waits for the receipt.
func (c *EVMClient) SubmitPaymentUpdate(ctx context.Context, transactionID string) error {
	return c.transact(ctx, "update_payment_status", "updatePaymentStatus", transactionID)
}

// PollSaleEvents returns SaleRecorded events for the inclusive block range in
// emission order.
func (c *EVMClient) PollSaleEvents(ctx context.Context, fromBlock, toBlock uint64) ([]model.SaleEvent, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{c.address},
		Topics:    [][]common.Hash{{c.abi.Events[saleRecordedEvent].ID}},
	}

	logs, err := c.eth.FilterLogs(ctx, query)
	if err != nil {
		return nil, &errs.TransientError{Op: "poll_events", Err: err}
	}

	events := make([]model.SaleEvent, 0, len(logs))
	for _, lg := range logs {
		var decoded saleRecordedLog
		if err := c.contract.UnpackLog(&decoded, saleRecordedEvent, lg); err != nil {
			c.logger.Warn("skipping undecodable SaleRecorded log",
				zap.Uint64("block", lg.BlockNumber),
				zap.String("tx", lg.TxHash.Hex()),
				zap.Error(err))
			continue
		}
		events = append(events, model.SaleEvent{
			TransactionID: decoded.TransactionId,
			AgentAddress:  decoded.Agent.Hex(),
			Hash:          decoded.Hash,
			BlockNumber:   lg.BlockNumber,
		})
	}
	return events, nil
}

// CurrentBlockHeight returns the chain head.
func (c *EVMClient) CurrentBlockHeight(ctx context.Context) (uint64, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	height, err := c.eth.BlockNumber(ctx)
	if err != nil {
		return 0, &errs.TransientError{Op: "current_block_height", Err: err}
	}
	return height, nil
}

func (c *EVMClient) transact(ctx context.Context, op, method string, args ...interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	// WaitMined polls until a receipt arrives or ctx ends, so an unbounded
	// context on a stalled node would hang the caller's whole loop.
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	opts := *c.opts
	opts.Context = ctx

	tx, err := c.contract.Transact(&opts, method, args...)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return &errs.TransientError{Op: op, Err: err}
		}
		// The node judged the call before it was sent (typically a gas
		// estimation revert); resubmitting the same inputs cannot succeed.
		return &errs.RejectionError{Op: op, Err: err}
	}

	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		return &errs.TransientError{Op: op, Err: err}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return &errs.RejectionError{Op: op, TxHash: tx.Hash().Hex(), Err: errors.New("transaction reverted")}
	}

	c.logger.Debug("ledger write mined",
		zap.String("operation", op),
		zap.String("tx", tx.Hash().Hex()),
		zap.Uint64("block", receipt.BlockNumber.Uint64()))
	return nil
}

func (c *EVMClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.callTimeout)
}
