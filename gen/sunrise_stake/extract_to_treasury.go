package sunrisestake

import (
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
)

// ExtractToTreasuryAccounts lists the accounts of the extract_to_treasury instruction.
type ExtractToTreasuryAccounts struct {
	State                solanago.PublicKey
	MarinadeState        solanago.PublicKey
	BlazeState           solanago.PublicKey
	MSolMint             solanago.PublicKey
	GSolMint             solanago.PublicKey
	BSolMint             solanago.PublicKey
	LiqPoolMint          solanago.PublicKey
	LiqPoolSolLegPda     solanago.PublicKey
	LiqPoolMSolLeg       solanago.PublicKey
	LiqPoolTokenAccount  solanago.PublicKey
	TreasuryMSolAccount  solanago.PublicKey
	GetMSolFrom          solanago.PublicKey
	GetMSolFromAuthority solanago.PublicKey
	GetBSolFrom          solanago.PublicKey
	GetBSolFromAuthority solanago.PublicKey
	Treasury             solanago.PublicKey
	SystemProgram        solanago.PublicKey
	TokenProgram         solanago.PublicKey
	MarinadeProgram      solanago.PublicKey
}

func (a *ExtractToTreasuryAccounts) roles() []accountRole {
	return []accountRole{
		role("state", a.State, false, false),
		role("marinadeState", a.MarinadeState, true, false),
		role("blazeState", a.BlazeState, false, false),
		role("msolMint", a.MSolMint, true, false),
		role("gsolMint", a.GSolMint, false, false),
		role("bsolMint", a.BSolMint, false, false),
		role("liqPoolMint", a.LiqPoolMint, false, false),
		role("liqPoolSolLegPda", a.LiqPoolSolLegPda, true, false),
		role("liqPoolMsolLeg", a.LiqPoolMSolLeg, true, false),
		role("liqPoolTokenAccount", a.LiqPoolTokenAccount, true, false),
		role("treasuryMsolAccount", a.TreasuryMSolAccount, true, false),
		role("getMsolFrom", a.GetMSolFrom, true, false),
		role("getMsolFromAuthority", a.GetMSolFromAuthority, false, false),
		role("getBsolFrom", a.GetBSolFrom, true, false),
		role("getBsolFromAuthority", a.GetBSolFromAuthority, false, false),
		role("treasury", a.Treasury, true, false),
		systemProgramRole("systemProgram", a.SystemProgram),
		programRole("tokenProgram", a.TokenProgram),
		programRole("marinadeProgram", a.MarinadeProgram),
	}
}

// Validate reports the first role left unset.
func (a *ExtractToTreasuryAccounts) Validate() error {
	return validateRoles(a.roles())
}

// RoleNames returns the account names in instruction order.
func (a *ExtractToTreasuryAccounts) RoleNames() []string {
	return roleNames(a.roles())
}

// ExtractToTreasury unstakes the accrued mSOL yield into the treasury.
type ExtractToTreasury struct {
	Roles ExtractToTreasuryAccounts
}

func NewExtractToTreasuryInstruction(accounts ExtractToTreasuryAccounts) (*ExtractToTreasury, error) {
	if err := accounts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", InstructionExtractToTreasury, err)
	}
	return &ExtractToTreasury{Roles: accounts}, nil
}

func (inst *ExtractToTreasury) ProgramID() solanago.PublicKey {
	return ProgramID
}

func (inst *ExtractToTreasury) Accounts() []*solanago.AccountMeta {
	return roleMetas(inst.Roles.roles())
}

func (inst *ExtractToTreasury) Data() ([]byte, error) {
	return encodeData(ExtractToTreasuryDiscriminator, nil)
}
