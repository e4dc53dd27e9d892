package gsol

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	sunrisestake "github.com/taliaesther/sunrise-app/gen/sunrise_stake"
)

// Config holds the protocol-wide Sunrise addresses. It is built once per
// session and read-only afterwards.
type Config struct {
	// ProgramID defaults to the mainnet Sunrise Stake program when zero.
	ProgramID    solana.PublicKey
	StateAddress solana.PublicKey
	GSolMint     solana.PublicKey
	// Treasury is only needed to extract yield.
	Treasury solana.PublicKey
}

func (c Config) Program() solana.PublicKey {
	if c.ProgramID.IsZero() {
		return sunrisestake.ProgramID
	}
	return c.ProgramID
}

func (c Config) Validate() error {
	if c.StateAddress.IsZero() {
		return fmt.Errorf("%w: state address is required", ErrInvalidConfig)
	}
	if c.GSolMint.IsZero() {
		return fmt.Errorf("%w: gsol mint is required", ErrInvalidConfig)
	}
	return nil
}

// BlazeState is a snapshot of the SolBlaze SPL stake pool addresses.
type BlazeState struct {
	Pool              solana.PublicKey
	WithdrawAuthority solana.PublicKey
	DepositAuthority  solana.PublicKey
	ReserveAccount    solana.PublicKey
	FeesDepot         solana.PublicKey
	ValidatorList     solana.PublicKey
	BSolMint          solana.PublicKey
}

// MarinadeState is a snapshot of the Marinade addresses used to unstake mSOL.
type MarinadeState struct {
	StateAddress        solana.PublicKey
	MSolMint            solana.PublicKey
	LiqPoolMint         solana.PublicKey
	LiqPoolSolLegPda    solana.PublicKey
	LiqPoolMSolLeg      solana.PublicKey
	TreasuryMSolAccount solana.PublicKey
}
