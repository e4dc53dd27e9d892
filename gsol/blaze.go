package gsol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	stakepool "github.com/taliaesther/sunrise-app/gen/stake_pool"
	sunrisestake "github.com/taliaesther/sunrise-app/gen/sunrise_stake"
	solanago "github.com/taliaesther/sunrise-app/solana"
)

// BlazeDeposit builds an unsigned transaction depositing lamports from
// depositor into the SolBlaze pool through Sunrise, which mints gSOL into
// depositorGSolTokenAccount.
func BlazeDeposit(
	config Config,
	blaze BlazeState,
	depositor solana.PublicKey,
	depositorGSolTokenAccount solana.PublicKey,
	lamports uint64,
) (*solana.Transaction, error) {
	gsolMintAuthority, _, err := FindGSolMintAuthority(config)
	if err != nil {
		return nil, err
	}
	bsolAccountAuthority, bsolTokenAccount, err := bsolCustody(config, blaze)
	if err != nil {
		return nil, err
	}

	ix, err := sunrisestake.NewSplDepositSolInstruction(lamports, sunrisestake.SplDepositSolAccounts{
		State:                      config.StateAddress,
		GSolMint:                   config.GSolMint,
		GSolMintAuthority:          gsolMintAuthority,
		Depositor:                  depositor,
		DepositorGSolTokenAccount:  depositorGSolTokenAccount,
		BSolTokenAccount:           bsolTokenAccount,
		BSolAccountAuthority:       bsolAccountAuthority,
		StakePool:                  blaze.Pool,
		StakePoolWithdrawAuthority: blaze.WithdrawAuthority,
		ReserveStakeAccount:        blaze.ReserveAccount,
		ManagerFeeAccount:          blaze.FeesDepot,
		StakePoolTokenMint:         blaze.BSolMint,
		StakePoolProgram:           stakepool.ProgramID,
		SystemProgram:              solana.SystemProgramID,
		TokenProgram:               solana.TokenProgramID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return newTransaction(config, ix)
}

// BlazeDepositStake builds an unsigned transaction moving stakeAccount into
// the SolBlaze pool. The stake account must be delegated; its vote account
// is looked up through conn. signer is the stake account's authority and
// pays the fee.
func BlazeDepositStake(
	ctx context.Context,
	config Config,
	conn solanago.AccountInfoGetter,
	blaze BlazeState,
	stakeAccount solana.PublicKey,
	depositorGSolTokenAccount solana.PublicKey,
	signer solana.PublicKey,
) (*solana.Transaction, error) {
	if signer.IsZero() {
		return nil, fmt.Errorf("%w: stake account depositor", ErrMissingSigner)
	}

	gsolMintAuthority, _, err := FindGSolMintAuthority(config)
	if err != nil {
		return nil, err
	}
	bsolAccountAuthority, bsolTokenAccount, err := bsolCustody(config, blaze)
	if err != nil {
		return nil, err
	}

	validatorAccount, err := GetVoterAddress(ctx, conn, stakeAccount)
	if err != nil {
		return nil, err
	}

	ix, err := sunrisestake.NewSplDepositStakeInstruction(sunrisestake.SplDepositStakeAccounts{
		State:                      config.StateAddress,
		GSolMint:                   config.GSolMint,
		GSolMintAuthority:          gsolMintAuthority,
		StakeAccountDepositor:      signer,
		StakeAccount:               stakeAccount,
		DepositorGSolTokenAccount:  depositorGSolTokenAccount,
		BSolTokenAccount:           bsolTokenAccount,
		BSolAccountAuthority:       bsolAccountAuthority,
		StakePool:                  blaze.Pool,
		ValidatorList:              blaze.ValidatorList,
		StakePoolDepositAuthority:  blaze.DepositAuthority,
		StakePoolWithdrawAuthority: blaze.WithdrawAuthority,
		ValidatorStakeAccount:      validatorAccount,
		ReserveStakeAccount:        blaze.ReserveAccount,
		ManagerFeeAccount:          blaze.FeesDepot,
		StakePoolTokenMint:         blaze.BSolMint,
		SysvarStakeHistory:         solana.SysVarStakeHistoryPubkey,
		SysvarClock:                solana.SysVarClockPubkey,
		NativeStakeProgram:         solana.StakeProgramID,
		StakePoolProgram:           stakepool.ProgramID,
		TokenProgram:               solana.TokenProgramID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return newTransaction(config, ix)
}

// newTransaction wraps ix in an unsigned transaction. The recent blockhash is
// left zero for the caller to set before signing.
func newTransaction(config Config, ix solana.Instruction, opts ...solana.TransactionOption) (*solana.Transaction, error) {
	if !ix.ProgramID().Equals(config.Program()) {
		ix = programOverride{Instruction: ix, programID: config.Program()}
	}
	tx, err := solana.NewTransaction([]solana.Instruction{ix}, solana.Hash{}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return tx, nil
}

// programOverride routes an instruction to a non-default deployment of the program.
type programOverride struct {
	solana.Instruction
	programID solana.PublicKey
}

func (p programOverride) ProgramID() solana.PublicKey {
	return p.programID
}
