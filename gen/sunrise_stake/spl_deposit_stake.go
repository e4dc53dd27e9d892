package sunrisestake

import (
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
)

// SplDepositStakeAccounts lists the accounts of the spl_deposit_stake instruction.
type SplDepositStakeAccounts struct {
	State                      solanago.PublicKey
	GSolMint                   solanago.PublicKey
	GSolMintAuthority          solanago.PublicKey
	StakeAccountDepositor      solanago.PublicKey
	StakeAccount               solanago.PublicKey
	DepositorGSolTokenAccount  solanago.PublicKey
	BSolTokenAccount           solanago.PublicKey
	BSolAccountAuthority       solanago.PublicKey
	StakePool                  solanago.PublicKey
	ValidatorList              solanago.PublicKey
	StakePoolDepositAuthority  solanago.PublicKey
	StakePoolWithdrawAuthority solanago.PublicKey
	ValidatorStakeAccount      solanago.PublicKey
	ReserveStakeAccount        solanago.PublicKey
	ManagerFeeAccount          solanago.PublicKey
	StakePoolTokenMint         solanago.PublicKey
	SysvarStakeHistory         solanago.PublicKey
	SysvarClock                solanago.PublicKey
	NativeStakeProgram         solanago.PublicKey
	StakePoolProgram           solanago.PublicKey
	TokenProgram               solanago.PublicKey
}

func (a *SplDepositStakeAccounts) roles() []accountRole {
	return []accountRole{
		role("state", a.State, false, false),
		role("gsolMint", a.GSolMint, true, false),
		role("gsolMintAuthority", a.GSolMintAuthority, false, false),
		role("stakeAccountDepositor", a.StakeAccountDepositor, true, true),
		role("stakeAccount", a.StakeAccount, true, false),
		role("depositorGsolTokenAccount", a.DepositorGSolTokenAccount, true, false),
		role("bsolTokenAccount", a.BSolTokenAccount, true, false),
		role("bsolAccountAuthority", a.BSolAccountAuthority, false, false),
		role("stakePool", a.StakePool, true, false),
		role("validatorList", a.ValidatorList, true, false),
		role("stakePoolDepositAuthority", a.StakePoolDepositAuthority, false, false),
		role("stakePoolWithdrawAuthority", a.StakePoolWithdrawAuthority, false, false),
		role("validatorStakeAccount", a.ValidatorStakeAccount, true, false),
		role("reserveStakeAccount", a.ReserveStakeAccount, true, false),
		role("managerFeeAccount", a.ManagerFeeAccount, true, false),
		role("stakePoolTokenMint", a.StakePoolTokenMint, true, false),
		role("sysvarStakeHistory", a.SysvarStakeHistory, false, false),
		role("sysvarClock", a.SysvarClock, false, false),
		programRole("nativeStakeProgram", a.NativeStakeProgram),
		programRole("stakePoolProgram", a.StakePoolProgram),
		programRole("tokenProgram", a.TokenProgram),
	}
}

// Validate reports the first role left unset.
func (a *SplDepositStakeAccounts) Validate() error {
	return validateRoles(a.roles())
}

// RoleNames returns the account names in instruction order.
func (a *SplDepositStakeAccounts) RoleNames() []string {
	return roleNames(a.roles())
}

// SplDepositStake moves a delegated stake account into the SolBlaze pool.
// The stake account carries the amount, so the instruction has no arguments.
type SplDepositStake struct {
	Roles SplDepositStakeAccounts
}

func NewSplDepositStakeInstruction(accounts SplDepositStakeAccounts) (*SplDepositStake, error) {
	if err := accounts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", InstructionSplDepositStake, err)
	}
	return &SplDepositStake{Roles: accounts}, nil
}

func (inst *SplDepositStake) ProgramID() solanago.PublicKey {
	return ProgramID
}

func (inst *SplDepositStake) Accounts() []*solanago.AccountMeta {
	return roleMetas(inst.Roles.roles())
}

func (inst *SplDepositStake) Data() ([]byte, error) {
	return encodeData(SplDepositStakeDiscriminator, nil)
}

// DecodeSplDepositStakeData checks that data is a bare spl_deposit_stake call.
func DecodeSplDepositStakeData(data []byte) error {
	if err := checkDiscriminator(data, SplDepositStakeDiscriminator); err != nil {
		return err
	}
	if len(data) != len(SplDepositStakeDiscriminator) {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidInstructionData, len(data)-len(SplDepositStakeDiscriminator))
	}
	return nil
}
