package config

import (
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/tidwall/gjson"

	"github.com/taliaesther/sunrise-app/gsol"
)

/*
	{
		"pool": "stk9ApL5HeVAwPLr3TLhDXdZS8ptVu7zp6ov8HFDuMi",
		"withdrawAuthority": "...",
		"depositAuthority": "...",
		"reserveAccount": "...",
		"feesDepot": "...",
		"validatorList": "...",
		"bsolMint": "bSo13r4TkiE4KumL71LsHTPpL2euBYLFx6h9HP3piy1"
	}
*/

// ParseBlazeSnapshot reads a SolBlaze pool snapshot from JSON.
func ParseBlazeSnapshot(data []byte) (gsol.BlazeState, error) {
	if !gjson.ValidBytes(data) {
		return gsol.BlazeState{}, fmt.Errorf("blaze snapshot: invalid json")
	}
	var (
		out gsol.BlazeState
		err error
	)
	fields := []struct {
		path string
		dst  *solana.PublicKey
	}{
		{"pool", &out.Pool},
		{"withdrawAuthority", &out.WithdrawAuthority},
		{"depositAuthority", &out.DepositAuthority},
		{"reserveAccount", &out.ReserveAccount},
		{"feesDepot", &out.FeesDepot},
		{"validatorList", &out.ValidatorList},
		{"bsolMint", &out.BSolMint},
	}
	for _, f := range fields {
		if *f.dst, err = ParseKey("blaze snapshot "+f.path, gjson.GetBytes(data, f.path).String()); err != nil {
			return gsol.BlazeState{}, err
		}
	}
	return out, nil
}

/*
	{
		"state": "8szGkuLTAux9XMgZ2vtY39jVSowEcpBfFfD8hXSEqdGC",
		"msolMint": "mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So",
		"liqPool": {
			"lpMint": "...",
			"solLegPda": "...",
			"msolLeg": "..."
		},
		"treasuryMsolAccount": "..."
	}
*/

// ParseMarinadeSnapshot reads the Marinade addresses from JSON.
func ParseMarinadeSnapshot(data []byte) (gsol.MarinadeState, error) {
	if !gjson.ValidBytes(data) {
		return gsol.MarinadeState{}, fmt.Errorf("marinade snapshot: invalid json")
	}
	var (
		out gsol.MarinadeState
		err error
	)
	fields := []struct {
		path string
		dst  *solana.PublicKey
	}{
		{"state", &out.StateAddress},
		{"msolMint", &out.MSolMint},
		{"liqPool.lpMint", &out.LiqPoolMint},
		{"liqPool.solLegPda", &out.LiqPoolSolLegPda},
		{"liqPool.msolLeg", &out.LiqPoolMSolLeg},
		{"treasuryMsolAccount", &out.TreasuryMSolAccount},
	}
	for _, f := range fields {
		if *f.dst, err = ParseKey("marinade snapshot "+f.path, gjson.GetBytes(data, f.path).String()); err != nil {
			return gsol.MarinadeState{}, err
		}
	}
	return out, nil
}

func LoadBlazeSnapshot(path string) (gsol.BlazeState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gsol.BlazeState{}, fmt.Errorf("read blaze snapshot: %w", err)
	}
	return ParseBlazeSnapshot(data)
}

func LoadMarinadeSnapshot(path string) (gsol.MarinadeState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gsol.MarinadeState{}, fmt.Errorf("read marinade snapshot: %w", err)
	}
	return ParseMarinadeSnapshot(data)
}
