package gsol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	stakepool "github.com/taliaesther/sunrise-app/gen/stake_pool"
	solanago "github.com/taliaesther/sunrise-app/solana"
)

// FetchBlazeState reads the SolBlaze stake pool account and returns the
// addresses the deposit instructions need.
func FetchBlazeState(ctx context.Context, conn solanago.AccountInfoGetter, pool solana.PublicKey) (BlazeState, error) {
	account, err := solanago.GetAccountInfo(ctx, conn, pool)
	if err != nil {
		return BlazeState{}, fmt.Errorf("%w: stake pool %s: %w", ErrLookupFailed, pool, err)
	}
	if !account.Owner.Equals(stakepool.ProgramID) {
		return BlazeState{}, fmt.Errorf("%w: %s is owned by %s, not the stake pool program", ErrLookupFailed, pool, account.Owner)
	}

	layout, err := new(solanago.StakePoolLayout).Decode(account.Data.GetBinary())
	if err != nil {
		return BlazeState{}, fmt.Errorf("%w: decode stake pool %s: %w", ErrLookupFailed, pool, err)
	}

	withdrawAuthority, _, err := FindStakePoolWithdrawAuthority(pool)
	if err != nil {
		return BlazeState{}, err
	}

	return BlazeState{
		Pool:              pool,
		WithdrawAuthority: withdrawAuthority,
		DepositAuthority:  layout.StakeDepositAuthority,
		ReserveAccount:    layout.ReserveStake,
		FeesDepot:         layout.ManagerFeeAccount,
		ValidatorList:     layout.ValidatorList,
		BSolMint:          layout.PoolMint,
	}, nil
}
