package token

import (
	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

func encodeConfig(cfg *TokenConfig) string {
	w := rwa.NewWriter()
	w.WriteString(cfg.Name)
	w.WriteString(cfg.Symbol)
	w.WriteUint64(cfg.Decimals)
	w.WriteAmount(cfg.TotalSupply)
	w.WriteAddress(cfg.Issuer)
	w.WriteAmount(cfg.UsdcPrice)
	w.WriteAsset(cfg.Stablecoin)
	w.WriteBool(cfg.AuthorizationRequired)
	w.WriteBool(cfg.AuthorizationRevocable)
	w.WriteBool(cfg.ClawbackEnabled)
	w.WriteBool(cfg.TransferRestricted)
	w.WriteAmount(cfg.UsdcBalance)
	return w.String()
}

func decodeConfig(data string) (*TokenConfig, error) {
	r := rwa.NewReader(data)
	cfg := &TokenConfig{}
	var err error
	if cfg.Name, err = r.ReadString(); err != nil {
		return nil, err
	}
	if cfg.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if cfg.Decimals, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if cfg.TotalSupply, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if cfg.Issuer, err = r.ReadAddress(); err != nil {
		return nil, err
	}
	if cfg.UsdcPrice, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if cfg.Stablecoin, err = r.ReadAsset(); err != nil {
		return nil, err
	}
	if cfg.AuthorizationRequired, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if cfg.AuthorizationRevocable, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if cfg.ClawbackEnabled, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if cfg.TransferRestricted, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if cfg.UsdcBalance, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func encodeAddressList(addrs []sdk.Address) string {
	w := rwa.NewWriter()
	w.WriteVarUint(uint64(len(addrs)))
	for _, a := range addrs {
		w.WriteAddress(a)
	}
	return w.String()
}

func decodeAddressList(data string) ([]sdk.Address, error) {
	r := rwa.NewReader(data)
	n, err := r.ReadVarUint()
	if err != nil {
		return nil, err
	}
	addrs := make([]sdk.Address, 0, n)
	for i := uint64(0); i < n; i++ {
		a, err := r.ReadAddress()
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, a)
	}
	return addrs, nil
}
