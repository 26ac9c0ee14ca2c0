package vault

import (
	"verse_contracts/rwa"
	"verse_contracts/sdk"
)

// encodeConfig squeezes the config into the binary blob stored under ConfigKey.
func encodeConfig(cfg *VaultConfig) string {
	w := rwa.NewWriter()
	w.WriteAddress(cfg.Admin)
	w.WriteAsset(cfg.Stablecoin)
	w.WriteAmount(cfg.TotalCapacity)
	w.WriteAmount(cfg.Available)
	w.WriteUint64(cfg.BufferPercentage)
	w.WriteBool(cfg.ControlledMode)
	w.WriteBool(cfg.EmergencyPause)
	return w.String()
}

func decodeConfig(data string) (*VaultConfig, error) {
	r := rwa.NewReader(data)
	cfg := &VaultConfig{}
	var err error
	if cfg.Admin, err = r.ReadAddress(); err != nil {
		return nil, err
	}
	if cfg.Stablecoin, err = r.ReadAsset(); err != nil {
		return nil, err
	}
	if cfg.TotalCapacity, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if cfg.Available, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if cfg.BufferPercentage, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if cfg.ControlledMode, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if cfg.EmergencyPause, err = r.ReadBool(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func encodeRequest(req *LiquidationRequest) string {
	w := rwa.NewWriter()
	w.WriteUint64(req.RequestId)
	w.WriteAddress(req.Property)
	w.WriteAddress(req.User)
	w.WriteAmount(req.Amount)
	w.WriteInt64(req.Timestamp)
	w.WriteInt64(req.EstimatedFulfill)
	return w.String()
}

func decodeRequest(data string) (*LiquidationRequest, error) {
	r := rwa.NewReader(data)
	req := &LiquidationRequest{}
	var err error
	if req.RequestId, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if req.Property, err = r.ReadAddress(); err != nil {
		return nil, err
	}
	if req.User, err = r.ReadAddress(); err != nil {
		return nil, err
	}
	if req.Amount, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if req.Timestamp, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	if req.EstimatedFulfill, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	return req, nil
}

func encodeStats(stats *PropertyVaultStats) string {
	w := rwa.NewWriter()
	w.WriteAddress(stats.Property)
	w.WriteAmount(stats.TotalLiquidated)
	w.WriteInt64(stats.LastLiquidation)
	w.WriteUint64(stats.ActiveUsers)
	w.WriteAmount(stats.CashFlowMonthly)
	return w.String()
}

func decodeStats(data string) (*PropertyVaultStats, error) {
	r := rwa.NewReader(data)
	stats := &PropertyVaultStats{}
	var err error
	if stats.Property, err = r.ReadAddress(); err != nil {
		return nil, err
	}
	if stats.TotalLiquidated, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if stats.LastLiquidation, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	if stats.ActiveUsers, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if stats.CashFlowMonthly, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return stats, nil
}

// encodeAddressList keeps the authorized property list as one compact blob;
// the list stays small (a handful of properties per vault).
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
