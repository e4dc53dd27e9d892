package solana

import (
	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

type StakePoolAccountType uint8

const (
	StakePoolAccountTypeUninitialized StakePoolAccountType = 0
	StakePoolAccountTypeStakePool     StakePoolAccountType = 1
	StakePoolAccountTypeValidatorList StakePoolAccountType = 2
)

type StakePool struct {
	// Manager authority, allowed to change fees and the manager fee account
	Manager solana.PublicKey

	// Staker authority, allowed to add and remove validators
	Staker solana.PublicKey

	// Authority that must sign stake deposits
	StakeDepositAuthority solana.PublicKey

	// Bump seed of the withdraw authority PDA
	StakeWithdrawBumpSeed uint8

	// Account holding the validator stake list
	ValidatorList solana.PublicKey

	// Reserve stake account, holds undelegated SOL
	ReserveStake solana.PublicKey

	// Pool token mint
	PoolMint solana.PublicKey

	// Token account receiving manager fees
	ManagerFeeAccount solana.PublicKey

	// Token program used by the pool mint
	TokenProgramID solana.PublicKey
}

// stakePoolLayout is the leading part of the SPL stake pool account, https://github.com/solana-labs/solana-program-library/blob/master/stake-pool/program/src/state.rs
type stakePoolLayout struct {
	AccountType           uint8
	Manager               solana.PublicKey
	Staker                solana.PublicKey
	StakeDepositAuthority solana.PublicKey
	StakeWithdrawBumpSeed uint8
	ValidatorList         solana.PublicKey
	ReserveStake          solana.PublicKey
	PoolMint              solana.PublicKey
	ManagerFeeAccount     solana.PublicKey
	TokenProgramID        solana.PublicKey
}

type StakePoolLayout struct {
}

func (l *StakePoolLayout) Decode(data []byte) (*StakePool, error) {
	rawPool := &stakePoolLayout{}
	if err := binary.NewBorshDecoder(data).Decode(rawPool); err != nil {
		return nil, err
	}
	if StakePoolAccountType(rawPool.AccountType) != StakePoolAccountTypeStakePool {
		return nil, ErrNotStakePool
	}
	return &StakePool{
		Manager:               rawPool.Manager,
		Staker:                rawPool.Staker,
		StakeDepositAuthority: rawPool.StakeDepositAuthority,
		StakeWithdrawBumpSeed: rawPool.StakeWithdrawBumpSeed,
		ValidatorList:         rawPool.ValidatorList,
		ReserveStake:          rawPool.ReserveStake,
		PoolMint:              rawPool.PoolMint,
		ManagerFeeAccount:     rawPool.ManagerFeeAccount,
		TokenProgramID:        rawPool.TokenProgramID,
	}, nil
}

// Encode writes the leading pool fields in account order.
func (l *StakePoolLayout) Encode(pool *StakePool) ([]byte, error) {
	rawPool := stakePoolLayout{
		AccountType:           uint8(StakePoolAccountTypeStakePool),
		Manager:               pool.Manager,
		Staker:                pool.Staker,
		StakeDepositAuthority: pool.StakeDepositAuthority,
		StakeWithdrawBumpSeed: pool.StakeWithdrawBumpSeed,
		ValidatorList:         pool.ValidatorList,
		ReserveStake:          pool.ReserveStake,
		PoolMint:              pool.PoolMint,
		ManagerFeeAccount:     pool.ManagerFeeAccount,
		TokenProgramID:        pool.TokenProgramID,
	}
	return binary.MarshalBorsh(&rawPool)
}
