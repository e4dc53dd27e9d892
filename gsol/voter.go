package gsol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	solanago "github.com/taliaesther/sunrise-app/solana"
)

// GetVoterAddress returns the vote account stakeAccount is delegated to.
func GetVoterAddress(ctx context.Context, conn solanago.AccountInfoGetter, stakeAccount solana.PublicKey) (solana.PublicKey, error) {
	account, err := solanago.GetAccountInfo(ctx, conn, stakeAccount)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: stake account %s: %w", ErrLookupFailed, stakeAccount, err)
	}
	if !account.Owner.Equals(solana.StakeProgramID) {
		return solana.PublicKey{}, fmt.Errorf("%w: %s is owned by %s, not the stake program", ErrLookupFailed, stakeAccount, account.Owner)
	}

	state, err := solanago.DecodeStakeState(account.Data.GetBinary())
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: decode stake account %s: %w", ErrLookupFailed, stakeAccount, err)
	}

	voter, ok := state.Voter()
	if !ok {
		return solana.PublicKey{}, fmt.Errorf("%w: %s", ErrNotDelegated, stakeAccount)
	}
	return voter, nil
}
