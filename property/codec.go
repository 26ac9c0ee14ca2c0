package property

import (
	"verse_contracts/rwa"
)

func encodeConfig(cfg *PropertyConfig) string {
	w := rwa.NewWriter()
	w.WriteAddress(cfg.Admin)
	w.WriteAddress(cfg.Vault)
	w.WriteAddress(cfg.Kyc)
	w.WriteAsset(cfg.Stablecoin)
	w.WriteString(cfg.Meta.Name)
	w.WriteString(cfg.Meta.Symbol)
	w.WriteUint64(cfg.Meta.Decimals)
	w.WriteUint64(cfg.Meta.TotalSupply)
	w.WriteAmount(cfg.Meta.TokenPrice)
	return w.String()
}

func decodeConfig(data string) (*PropertyConfig, error) {
	r := rwa.NewReader(data)
	cfg := &PropertyConfig{}
	var err error
	if cfg.Admin, err = r.ReadAddress(); err != nil {
		return nil, err
	}
	if cfg.Vault, err = r.ReadAddress(); err != nil {
		return nil, err
	}
	if cfg.Kyc, err = r.ReadAddress(); err != nil {
		return nil, err
	}
	if cfg.Stablecoin, err = r.ReadAsset(); err != nil {
		return nil, err
	}
	if cfg.Meta.Name, err = r.ReadString(); err != nil {
		return nil, err
	}
	if cfg.Meta.Symbol, err = r.ReadString(); err != nil {
		return nil, err
	}
	if cfg.Meta.Decimals, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if cfg.Meta.TotalSupply, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if cfg.Meta.TokenPrice, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func encodeRoi(roi *RoiConfig) string {
	w := rwa.NewWriter()
	w.WriteUint64(roi.AnnualRateBps)
	w.WriteUint64(roi.CompoundingBonusBps)
	w.WriteUint64(roi.LoyaltyBonusBps)
	w.WriteAmount(roi.CashFlowMonthly)
	return w.String()
}

func decodeRoi(data string) (*RoiConfig, error) {
	r := rwa.NewReader(data)
	roi := &RoiConfig{}
	var err error
	if roi.AnnualRateBps, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if roi.CompoundingBonusBps, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if roi.LoyaltyBonusBps, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if roi.CashFlowMonthly, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return roi, nil
}

func encodePosition(pos *UserPosition) string {
	w := rwa.NewWriter()
	w.WriteAddress(pos.User)
	w.WriteUint64(pos.Tokens)
	w.WriteAmount(pos.InitialInvestment)
	w.WriteAmount(pos.Principal)
	w.WriteInt64(pos.EpochStart)
	w.WriteBool(pos.Compounding)
	w.WriteUint64(pos.ConsecutiveRollovers)
	w.WriteUint64(pos.LoyaltyTier)
	w.WriteAmount(pos.TotalYieldEarned)
	return w.String()
}

func decodePosition(data string) (*UserPosition, error) {
	r := rwa.NewReader(data)
	pos := &UserPosition{}
	var err error
	if pos.User, err = r.ReadAddress(); err != nil {
		return nil, err
	}
	if pos.Tokens, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if pos.InitialInvestment, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if pos.Principal, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	if pos.EpochStart, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	if pos.Compounding, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if pos.ConsecutiveRollovers, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if pos.LoyaltyTier, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if pos.TotalYieldEarned, err = r.ReadAmount(); err != nil {
		return nil, err
	}
	return pos, nil
}
