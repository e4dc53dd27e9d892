package solana

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
)

// FindTokenATA resolves the associated token account of owner for tokenMint
// and reports whether it exists on chain.
func FindTokenATA(
	ctx context.Context,
	conn AccountInfoGetter,
	owner solana.PublicKey,
	tokenMint solana.PublicKey,
) (solana.PublicKey, bool, error) {
	tokenATA, _, err := solana.FindAssociatedTokenAddress(
		owner,
		tokenMint,
	)
	if err != nil {
		return solana.PublicKey{}, false, err
	}

	_, err = GetAccountInfo(ctx, conn, tokenATA)
	if errors.Is(err, ErrAccountNotFound) {
		return tokenATA, false, nil
	}
	if err != nil {
		return solana.PublicKey{}, false, err
	}
	return tokenATA, true, nil
}

// InstructionSummary flattens an instruction for display.
type InstructionSummary struct {
	ProgramID solana.PublicKey
	Accounts  []*solana.AccountMeta
	Data      string
}

func SummarizeInstruction(ix solana.Instruction) (InstructionSummary, error) {
	data, err := ix.Data()
	if err != nil {
		return InstructionSummary{}, err
	}
	return InstructionSummary{
		ProgramID: ix.ProgramID(),
		Accounts:  ix.Accounts(),
		Data:      EncodeBase58(data),
	}, nil
}
