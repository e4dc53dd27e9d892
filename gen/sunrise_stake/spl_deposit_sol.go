package sunrisestake

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
)

// SplDepositSolAccounts lists the accounts of the spl_deposit_sol instruction.
type SplDepositSolAccounts struct {
	State                      solanago.PublicKey
	GSolMint                   solanago.PublicKey
	GSolMintAuthority          solanago.PublicKey
	Depositor                  solanago.PublicKey
	DepositorGSolTokenAccount  solanago.PublicKey
	BSolTokenAccount           solanago.PublicKey
	BSolAccountAuthority       solanago.PublicKey
	StakePool                  solanago.PublicKey
	StakePoolWithdrawAuthority solanago.PublicKey
	ReserveStakeAccount        solanago.PublicKey
	ManagerFeeAccount          solanago.PublicKey
	StakePoolTokenMint         solanago.PublicKey
	StakePoolProgram           solanago.PublicKey
	SystemProgram              solanago.PublicKey
	TokenProgram               solanago.PublicKey
}

func (a *SplDepositSolAccounts) roles() []accountRole {
	return []accountRole{
		role("state", a.State, false, false),
		role("gsolMint", a.GSolMint, true, false),
		role("gsolMintAuthority", a.GSolMintAuthority, false, false),
		role("depositor", a.Depositor, true, true),
		role("depositorGsolTokenAccount", a.DepositorGSolTokenAccount, true, false),
		role("bsolTokenAccount", a.BSolTokenAccount, true, false),
		role("bsolAccountAuthority", a.BSolAccountAuthority, false, false),
		role("stakePool", a.StakePool, true, false),
		role("stakePoolWithdrawAuthority", a.StakePoolWithdrawAuthority, false, false),
		role("reserveStakeAccount", a.ReserveStakeAccount, true, false),
		role("managerFeeAccount", a.ManagerFeeAccount, true, false),
		role("stakePoolTokenMint", a.StakePoolTokenMint, true, false),
		programRole("stakePoolProgram", a.StakePoolProgram),
		systemProgramRole("systemProgram", a.SystemProgram),
		programRole("tokenProgram", a.TokenProgram),
	}
}

// Validate reports the first role left unset.
func (a *SplDepositSolAccounts) Validate() error {
	return validateRoles(a.roles())
}

// RoleNames returns the account names in instruction order.
func (a *SplDepositSolAccounts) RoleNames() []string {
	return roleNames(a.roles())
}

// SplDepositSol deposits lamports into the SolBlaze pool and mints gSOL to the depositor.
type SplDepositSol struct {
	Lamports uint64
	Roles    SplDepositSolAccounts
}

func NewSplDepositSolInstruction(lamports uint64, accounts SplDepositSolAccounts) (*SplDepositSol, error) {
	if err := accounts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", InstructionSplDepositSol, err)
	}
	return &SplDepositSol{
		Lamports: lamports,
		Roles:    accounts,
	}, nil
}

func (inst *SplDepositSol) ProgramID() solanago.PublicKey {
	return ProgramID
}

func (inst *SplDepositSol) Accounts() []*solanago.AccountMeta {
	return roleMetas(inst.Roles.roles())
}

func (inst *SplDepositSol) Data() ([]byte, error) {
	return encodeData(SplDepositSolDiscriminator, func(enc *bin.Encoder) error {
		return enc.WriteUint64(inst.Lamports, bin.LE)
	})
}

// DecodeSplDepositSolData returns the lamports argument carried by data.
func DecodeSplDepositSolData(data []byte) (uint64, error) {
	if err := checkDiscriminator(data, SplDepositSolDiscriminator); err != nil {
		return 0, err
	}
	lamports, err := bin.NewBorshDecoder(data[len(SplDepositSolDiscriminator):]).ReadUint64(bin.LE)
	if err != nil {
		return 0, fmt.Errorf("%w: lamports: %w", ErrInvalidInstructionData, err)
	}
	return lamports, nil
}
