//go:build wasm

package sdk

import (
	"encoding/json"
	"strconv"
)

//go:wasmimport sdk console.log
func log(s *string) *string

// Log writes a message to the wasm console so we can trace contract steps.
func Log(s string) {
	log(&s)
}

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk hive.get_balance
func getBalance(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.draw
func hiveDraw(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.transfer
func hiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string

//go:wasmimport sdk contracts.read
func contractRead(contractId *string, key *string) *string

//go:wasmimport sdk contracts.call
func contractCall(contractId *string, method *string, payload *string, options *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

// Abort stops execution immediately and surfaces the message to the chain.
// The whole transaction rolls back, including any nested contract calls.
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// StateSetObject stores a key/value string pair into contract kv storage.
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely.
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
func GetEnv() Env {
	envStr := *getEnv(nil)
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	requiredAuths := make([]Address, 0)
	if raw, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range raw {
			if addr, ok := auth.(string); ok {
				requiredAuths = append(requiredAuths, Address(addr))
			}
		}
	}
	sender, _ := envMap["msg.sender"].(string)
	env.Sender = Sender{
		Address:       Address(sender),
		RequiredAuths: requiredAuths,
	}
	if env.Caller == "" {
		env.Caller = env.Sender.Address
	}
	return env
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// GetBalance queries the ledger balance for the given account+asset combo.
func GetBalance(address Address, asset Asset) int64 {
	addr := address.String()
	as := asset.String()
	balStr := *getBalance(&addr, &as)
	bal, err := strconv.ParseInt(balStr, 10, 64)
	if err != nil {
		panic(err)
	}
	return bal
}

// HiveDraw pulls tokens from the caller to the contract within the transfer.allow limit.
func HiveDraw(amount int64, asset Asset) {
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveDraw(&amt, &as)
}

// HiveTransfer sends tokens from the contract towards a user address.
func HiveTransfer(to Address, amount int64, asset Asset) {
	toaddr := to.String()
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveTransfer(&toaddr, &amt, &as)
}

// ContractStateGet reads another contract's state key (view-only).
func ContractStateGet(contractId string, key string) *string {
	return contractRead(&contractId, &key)
}

// ContractCall performs a synchronous call into another contract with optional intents.
func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	optStr := ""
	if options != nil {
		optByte, err := json.Marshal(&options)
		if err != nil {
			Abort("could not serialize call options")
		}
		optStr = string(optByte)
	}
	return contractCall(&contractId, &method, &payload, &optStr)
}
