package sunrisestake

import (
	"bytes"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"

	"github.com/taliaesther/sunrise-app/solana"
)

const (
	InstructionSplDepositSol     = "spl_deposit_sol"
	InstructionSplDepositStake   = "spl_deposit_stake"
	InstructionExtractToTreasury = "extract_to_treasury"
)

var (
	ErrMissingAccount         = errors.New("missing account")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
)

var (
	SplDepositSolDiscriminator     = solana.Discriminator("global", InstructionSplDepositSol)
	SplDepositStakeDiscriminator   = solana.Discriminator("global", InstructionSplDepositStake)
	ExtractToTreasuryDiscriminator = solana.Discriminator("global", InstructionExtractToTreasury)
)

// accountRole binds an IDL account name to the meta handed to the runtime.
type accountRole struct {
	name        string
	meta        *solanago.AccountMeta
	zeroAllowed bool // the system program id is the all-zero key
}

func role(name string, key solanago.PublicKey, writable, signer bool) accountRole {
	return accountRole{
		name: name,
		meta: solanago.NewAccountMeta(key, writable, signer),
	}
}

func programRole(name string, key solanago.PublicKey) accountRole {
	return role(name, key, false, false)
}

// systemProgramRole is the only role where the zero key is a real address.
func systemProgramRole(name string, key solanago.PublicKey) accountRole {
	r := role(name, key, false, false)
	r.zeroAllowed = true
	return r
}

func validateRoles(roles []accountRole) error {
	for _, r := range roles {
		if r.zeroAllowed {
			continue
		}
		if r.meta.PublicKey.IsZero() {
			return fmt.Errorf("%w: %s", ErrMissingAccount, r.name)
		}
	}
	return nil
}

func roleMetas(roles []accountRole) solanago.AccountMetaSlice {
	out := make(solanago.AccountMetaSlice, 0, len(roles))
	for _, r := range roles {
		out = append(out, r.meta)
	}
	return out
}

func roleNames(roles []accountRole) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, r.name)
	}
	return out
}

func encodeData(discriminator [8]byte, args func(*bin.Encoder) error) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(discriminator[:])
	if args != nil {
		if err := args(bin.NewBorshEncoder(buf)); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func checkDiscriminator(data []byte, discriminator [8]byte) error {
	if len(data) < len(discriminator) {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidInstructionData, len(data))
	}
	if !bytes.Equal(data[:len(discriminator)], discriminator[:]) {
		return fmt.Errorf("%w: discriminator mismatch", ErrInvalidInstructionData)
	}
	return nil
}
