package sdk

import "strings"

// AssetDecimals is the precision of chain asset balances; every amount the
// host functions accept or return is an integer scaled by AssetScale.
const (
	AssetDecimals = 7
	AssetScale    = 10_000_000
)

type Asset string

const (
	AssetHive Asset = "hive"
	AssetHbd  Asset = "hbd"
)

// String returns the raw ticker string for logging or host calls.
func (a Asset) String() string {
	return string(a)
}

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type AddressType string

const (
	AddressTypeEVM      AddressType = "evm"
	AddressTypeKey      AddressType = "key"
	AddressTypeHive     AddressType = "hive"
	AddressTypeSystem   AddressType = "system"
	AddressTypeContract AddressType = "contract"
	AddressTypeUnknown  AddressType = "unknown"
)

type Address string

// String returns the literal representation (like hive:alice) of the address.
func (a Address) String() string {
	return string(a)
}

// Domain checks the prefix to decide if we deal with user/contract/system domain.
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// Type inspects the prefix to categorize the address (evm, key, hive,...).
func (a Address) Type() AddressType {
	if strings.HasPrefix(a.String(), "did:pkh:eip155") {
		return AddressTypeEVM
	} else if strings.HasPrefix(a.String(), "did:key:") {
		return AddressTypeKey
	} else if strings.HasPrefix(a.String(), "hive:") {
		return AddressTypeHive
	} else if strings.HasPrefix(a.String(), "contract:") {
		return AddressTypeContract
	} else if strings.HasPrefix(a.String(), "system:") {
		return AddressTypeSystem
	} else {
		return AddressTypeUnknown
	}
}

// IsValid returns false if the address type detection failed, used as a light sanity check.
func (a Address) IsValid() bool {
	return a.Type() != AddressTypeUnknown
}

// ContractMethod is the signature every contract entry point shares.
type ContractMethod func(payload *string) *string

type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}

// Env is the per-call execution environment handed out by the host.
// Caller differs from Sender.Address only inside nested contract calls,
// where it carries the address of the invoking contract.
type Env struct {
	ContractId  string  `json:"contract.id"`
	TxId        string  `json:"tx.id"`
	BlockId     string  `json:"block.id"`
	BlockHeight uint64  `json:"block.height"`
	Index       int64   `json:"tx.index"`
	OpIndex     int64   `json:"tx.op_index"`
	Timestamp   string  `json:"block.timestamp"`
	Caller      Address `json:"msg.caller"`
	Sender      Sender   `json:"-"`
	Intents     []Intent `json:"intents"`
}
