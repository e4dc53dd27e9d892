package gsol

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	stakepool "github.com/taliaesther/sunrise-app/gen/stake_pool"
)

// Seed strings are fixed by the on-chain programs.
var (
	GSolMintAuthoritySeed = []byte("gsol_mint_authority")
	MSolAccountSeed       = []byte("msol_account")
	BSolAccountSeed       = []byte("bsol_account")

	StakePoolWithdrawSeed = []byte("withdraw")
	StakePoolDepositSeed  = []byte("deposit")
)

func findProgramAddress(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	pub, bump, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("%w: %w", ErrDerivationExhausted, err)
	}
	return pub, bump, nil
}

// FindGSolMintAuthority derives the PDA allowed to mint gSOL.
func FindGSolMintAuthority(config Config) (solana.PublicKey, uint8, error) {
	return findProgramAddress([][]byte{config.StateAddress.Bytes(), GSolMintAuthoritySeed}, config.Program())
}

// FindBSolTokenAccountAuthority derives the PDA owning Sunrise's bSOL token account.
func FindBSolTokenAccountAuthority(config Config) (solana.PublicKey, uint8, error) {
	return findProgramAddress([][]byte{config.StateAddress.Bytes(), BSolAccountSeed}, config.Program())
}

// FindMSolTokenAccountAuthority derives the PDA owning Sunrise's mSOL and
// liquidity pool token accounts.
func FindMSolTokenAccountAuthority(config Config) (solana.PublicKey, uint8, error) {
	return findProgramAddress([][]byte{config.StateAddress.Bytes(), MSolAccountSeed}, config.Program())
}

func FindStakePoolWithdrawAuthority(pool solana.PublicKey) (solana.PublicKey, uint8, error) {
	return findProgramAddress([][]byte{pool.Bytes(), StakePoolWithdrawSeed}, stakepool.ProgramID)
}

func FindStakePoolDepositAuthority(pool solana.PublicKey) (solana.PublicKey, uint8, error) {
	return findProgramAddress([][]byte{pool.Bytes(), StakePoolDepositSeed}, stakepool.ProgramID)
}

// AssociatedTokenAddress returns the canonical token account of owner for mint.
func AssociatedTokenAddress(owner, mint solana.PublicKey) (solana.PublicKey, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: associated token account: %w", ErrDerivationExhausted, err)
	}
	return ata, nil
}

// bsolCustody resolves the bSOL authority PDA and the token account it owns.
func bsolCustody(config Config, blaze BlazeState) (authority, tokenAccount solana.PublicKey, err error) {
	authority, _, err = FindBSolTokenAccountAuthority(config)
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, err
	}
	tokenAccount, err = AssociatedTokenAddress(authority, blaze.BSolMint)
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, err
	}
	return authority, tokenAccount, nil
}
