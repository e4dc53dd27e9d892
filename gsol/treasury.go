package gsol

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/taliaesther/sunrise-app/gen/marinade"
	sunrisestake "github.com/taliaesther/sunrise-app/gen/sunrise_stake"
)

// ExtractToTreasury builds an unsigned transaction that unstakes the
// extractable mSOL yield into the Sunrise treasury. The instruction takes no
// signer, so payer is set as the fee payer explicitly.
func ExtractToTreasury(
	config Config,
	marinadeState MarinadeState,
	blaze BlazeState,
	payer solana.PublicKey,
) (*solana.Transaction, error) {
	if payer.IsZero() {
		return nil, fmt.Errorf("%w: fee payer", ErrMissingSigner)
	}

	msolAuthority, _, err := FindMSolTokenAccountAuthority(config)
	if err != nil {
		return nil, err
	}
	msolTokenAccount, err := AssociatedTokenAddress(msolAuthority, marinadeState.MSolMint)
	if err != nil {
		return nil, err
	}
	// the liquidity pool tokens share the mSOL authority
	liqPoolTokenAccount, err := AssociatedTokenAddress(msolAuthority, marinadeState.LiqPoolMint)
	if err != nil {
		return nil, err
	}
	bsolAuthority, bsolTokenAccount, err := bsolCustody(config, blaze)
	if err != nil {
		return nil, err
	}

	ix, err := sunrisestake.NewExtractToTreasuryInstruction(sunrisestake.ExtractToTreasuryAccounts{
		State:                config.StateAddress,
		MarinadeState:        marinadeState.StateAddress,
		BlazeState:           blaze.Pool,
		MSolMint:             marinadeState.MSolMint,
		GSolMint:             config.GSolMint,
		BSolMint:             blaze.BSolMint,
		LiqPoolMint:          marinadeState.LiqPoolMint,
		LiqPoolSolLegPda:     marinadeState.LiqPoolSolLegPda,
		LiqPoolMSolLeg:       marinadeState.LiqPoolMSolLeg,
		LiqPoolTokenAccount:  liqPoolTokenAccount,
		TreasuryMSolAccount:  marinadeState.TreasuryMSolAccount,
		GetMSolFrom:          msolTokenAccount,
		GetMSolFromAuthority: msolAuthority,
		GetBSolFrom:          bsolTokenAccount,
		GetBSolFromAuthority: bsolAuthority,
		Treasury:             config.Treasury,
		SystemProgram:        solana.SystemProgramID,
		TokenProgram:         solana.TokenProgramID,
		MarinadeProgram:      marinade.ProgramID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return newTransaction(config, ix, solana.TransactionPayer(payer))
}
