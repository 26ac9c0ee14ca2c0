//go:build !wasm

package sdk

import (
	"fmt"
	"math"
	"strconv"
)

// In-memory stand-in for the chain host so plain `go test` can drive
// contracts without a wasm runtime. It mirrors the wasm import surface
// exactly: namespaced kv state, an asset ledger, env frames and synchronous
// nested contract calls with intent allowances.

type abortPanic struct {
	msg string
}

type frame struct {
	env       Env
	payer     Address
	allowance map[Asset]int64
}

type mockHost struct {
	state     map[string]map[string]string
	balances  map[Address]map[Asset]int64
	contracts map[string]map[string]ContractMethod
	frames    []*frame
	logs      []string
}

var host = newMockHost()

func newMockHost() *mockHost {
	return &mockHost{
		state:     map[string]map[string]string{},
		balances:  map[Address]map[Asset]int64{},
		contracts: map[string]map[string]ContractMethod{},
	}
}

func (h *mockHost) current() *frame {
	if len(h.frames) == 0 {
		panic("sdk: host call outside of a contract invocation")
	}
	return h.frames[len(h.frames)-1]
}

func (h *mockHost) contractState() map[string]string {
	id := h.current().env.ContractId
	kv, ok := h.state[id]
	if !ok {
		kv = map[string]string{}
		h.state[id] = kv
	}
	return kv
}

func (h *mockHost) balance(addr Address, asset Asset) int64 {
	return h.balances[addr][asset]
}

func (h *mockHost) credit(addr Address, asset Asset, amount int64) {
	if h.balances[addr] == nil {
		h.balances[addr] = map[Asset]int64{}
	}
	h.balances[addr][asset] += amount
}

// allowanceFromIntents sums transfer.allow limits per asset, scaled to base units.
func allowanceFromIntents(intents []Intent) map[Asset]int64 {
	allow := map[Asset]int64{}
	for _, intent := range intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		limit, err := strconv.ParseFloat(intent.Args["limit"], 64)
		if err != nil {
			continue
		}
		allow[Asset(intent.Args["token"])] += int64(math.Round(limit * AssetScale))
	}
	return allow
}

// Log records the line so tests can assert on emitted events.
func Log(s string) {
	host.logs = append(host.logs, s)
}

// Abort mirrors the wasm abort: unwind the whole transaction.
func Abort(msg string) {
	panic(&abortPanic{msg: msg})
}

// StateSetObject stores a key/value string pair into the calling contract's kv namespace.
func StateSetObject(key string, value string) {
	host.contractState()[key] = value
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	if v, ok := host.contractState()[key]; ok {
		out := v
		return &out
	}
	return nil
}

// StateDeleteObject removes the key entirely.
func StateDeleteObject(key string) {
	delete(host.contractState(), key)
}

// GetEnv returns the env snapshot of the innermost call frame.
func GetEnv() Env {
	return host.current().env
}

// GetEnvKey resolves single env keys the way the host api does.
func GetEnvKey(key string) *string {
	env := host.current().env
	var val string
	switch key {
	case "contract.id":
		val = env.ContractId
	case "tx.id":
		val = env.TxId
	case "block.id":
		val = env.BlockId
	case "block.timestamp":
		val = env.Timestamp
	case "msg.sender":
		val = env.Sender.Address.String()
	case "msg.caller":
		val = env.Caller.String()
	default:
		return nil
	}
	return &val
}

// GetBalance queries the ledger balance for the given account+asset combo.
func GetBalance(address Address, asset Asset) int64 {
	return host.balance(address, asset)
}

// HiveDraw pulls tokens from the frame payer to the contract within the transfer.allow limit.
func HiveDraw(amount int64, asset Asset) {
	f := host.current()
	if amount <= 0 {
		Abort("draw amount must be positive")
	}
	if f.allowance[asset] < amount {
		Abort("draw exceeds intent limit")
	}
	if host.balance(f.payer, asset) < amount {
		Abort("insufficient balance for draw")
	}
	f.allowance[asset] -= amount
	host.credit(f.payer, asset, -amount)
	host.credit(Address(f.env.ContractId), asset, amount)
}

// HiveTransfer sends tokens from the contract towards a user address.
func HiveTransfer(to Address, amount int64, asset Asset) {
	f := host.current()
	self := Address(f.env.ContractId)
	if amount <= 0 {
		Abort("transfer amount must be positive")
	}
	if host.balance(self, asset) < amount {
		Abort("insufficient contract balance")
	}
	host.credit(self, asset, -amount)
	host.credit(to, asset, amount)
}

// ContractStateGet reads another contract's state key (view-only).
func ContractStateGet(contractId string, key string) *string {
	if v, ok := host.state[contractId][key]; ok {
		out := v
		return &out
	}
	return nil
}

// ContractCall dispatches into another registered contract. The callee sees
// the calling contract as msg.caller while the original sender is preserved.
// Aborts propagate to the top-level call.
func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	methods, ok := host.contracts[contractId]
	if !ok {
		Abort(fmt.Sprintf("contract not found: %s", contractId))
	}
	fn, ok := methods[method]
	if !ok {
		Abort(fmt.Sprintf("unknown method %s on %s", method, contractId))
	}
	caller := host.current()
	var intents []Intent
	if options != nil {
		intents = options.Intents
	}
	host.frames = append(host.frames, &frame{
		env: Env{
			ContractId:  contractId,
			TxId:        caller.env.TxId,
			BlockId:     caller.env.BlockId,
			BlockHeight: caller.env.BlockHeight,
			Timestamp:   caller.env.Timestamp,
			Caller:      Address(caller.env.ContractId),
			Sender:      caller.env.Sender,
			Intents:     intents,
		},
		payer:     Address(caller.env.ContractId),
		allowance: allowanceFromIntents(intents),
	})
	defer func() {
		host.frames = host.frames[:len(host.frames)-1]
	}()
	return fn(&payload)
}

// -----------------------------------------------------------------------------
// Test Harness
// -----------------------------------------------------------------------------

// Tx describes a single top-level contract invocation for tests.
type Tx struct {
	Caller     Address
	ContractId string
	Action     string
	Payload    string
	Intents    []Intent
	Timestamp  string
	TxId       string
}

// TxResult reports the outcome of a harness call, mirroring the chain's
// success flag plus whatever the entry point returned or aborted with.
type TxResult struct {
	Success bool
	Ret     string
	Err     string
	Logs    []string
}

// ContractTest wires contracts, balances and calls against a fresh host.
type ContractTest struct{}

// NewContractTest resets the shared host so tests never leak state.
func NewContractTest() *ContractTest {
	host = newMockHost()
	return &ContractTest{}
}

// RegisterContract makes a contract's action table callable under the given id.
func (ct *ContractTest) RegisterContract(id string, methods map[string]ContractMethod) {
	host.contracts[id] = methods
	if host.state[id] == nil {
		host.state[id] = map[string]string{}
	}
}

// Deposit credits an account on the mock ledger.
func (ct *ContractTest) Deposit(addr Address, amount int64, asset Asset) {
	host.credit(addr, asset, amount)
}

// Balance reads the mock ledger, handy for payout assertions.
func (ct *ContractTest) Balance(addr Address, asset Asset) int64 {
	return host.balance(addr, asset)
}

// StateGet peeks into raw contract storage.
func (ct *ContractTest) StateGet(contractId string, key string) *string {
	if v, ok := host.state[contractId][key]; ok {
		out := v
		return &out
	}
	return nil
}

// Call executes one transaction. Any abort (also from nested calls) rolls
// back every state and ledger effect, like the real chain does.
func (ct *ContractTest) Call(tx Tx) (result TxResult) {
	methods, ok := host.contracts[tx.ContractId]
	if !ok {
		return TxResult{Success: false, Err: "contract not registered"}
	}
	fn, ok := methods[tx.Action]
	if !ok {
		return TxResult{Success: false, Err: fmt.Sprintf("unknown action %s", tx.Action)}
	}
	if tx.TxId == "" {
		tx.TxId = tx.Action + "-tx"
	}

	stateSnap := snapshotState(host.state)
	balanceSnap := snapshotBalances(host.balances)
	logStart := len(host.logs)

	host.frames = append(host.frames, &frame{
		env: Env{
			ContractId: tx.ContractId,
			TxId:       tx.TxId,
			BlockId:    "block1",
			Timestamp:  tx.Timestamp,
			Caller:     tx.Caller,
			Sender:     Sender{Address: tx.Caller, RequiredAuths: []Address{tx.Caller}},
			Intents:    tx.Intents,
		},
		payer:     tx.Caller,
		allowance: allowanceFromIntents(tx.Intents),
	})

	defer func() {
		host.frames = nil
		result.Logs = append([]string{}, host.logs[logStart:]...)
		if r := recover(); r != nil {
			host.state = stateSnap
			host.balances = balanceSnap
			result.Success = false
			if ap, ok := r.(*abortPanic); ok {
				result.Err = ap.msg
			} else {
				result.Err = fmt.Sprint(r)
			}
		}
	}()

	ret := fn(&tx.Payload)
	result.Success = true
	if ret != nil {
		result.Ret = *ret
	}
	return result
}

func snapshotState(src map[string]map[string]string) map[string]map[string]string {
	snap := make(map[string]map[string]string, len(src))
	for id, kv := range src {
		inner := make(map[string]string, len(kv))
		for k, v := range kv {
			inner[k] = v
		}
		snap[id] = inner
	}
	return snap
}

func snapshotBalances(src map[Address]map[Asset]int64) map[Address]map[Asset]int64 {
	snap := make(map[Address]map[Asset]int64, len(src))
	for addr, assets := range src {
		inner := make(map[Asset]int64, len(assets))
		for a, v := range assets {
			inner[a] = v
		}
		snap[addr] = inner
	}
	return snap
}
