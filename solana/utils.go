package solana

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/minio/sha256-simd"
	"github.com/mr-tron/base58"
	"github.com/shopspring/decimal"
)

const LamportsPerSOL = 1_000_000_000

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrAmountOverflow  = errors.New("amount overflows u64 lamports")
)

var lamportsPerSOL = decimal.NewFromInt(LamportsPerSOL)

func GetLatestBlockhash(ctx context.Context, rpcClient *rpc.Client) (solana.Hash, error) {

	recent, err := rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, err
	}
	return recent.Value.Blockhash, nil
}

// Discriminator returns the 8-byte Anchor prefix for namespace:name,
// e.g. ("global", "spl_deposit_sol") for instructions or ("account", "State").
func Discriminator(namespace, name string) [8]byte {
	hash := sha256.Sum256([]byte(namespace + ":" + name))
	var out [8]byte
	copy(out[:], hash[:8])
	return out
}

// GetAccountInfo reads account at finalized commitment. A missing account is
// reported as ErrAccountNotFound wrapping rpc.ErrNotFound.
func GetAccountInfo(ctx context.Context, conn AccountInfoGetter, account solana.PublicKey) (*rpc.Account, error) {
	out, err := conn.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{
		Commitment: rpc.CommitmentFinalized,
		Encoding:   solana.EncodingBase64,
	})
	if errors.Is(err, rpc.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s: %w", ErrAccountNotFound, account, err)
	}
	if err != nil {
		return nil, err
	}
	if out == nil || out.Value == nil || out.Value.Data == nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAccountNotFound, account, rpc.ErrNotFound)
	}
	return out.Value, nil
}

// LamportsToSOL renders a lamport amount in SOL.
func LamportsToSOL(lamports uint64) decimal.Decimal {
	return decimal.NewFromUint64(lamports).Div(lamportsPerSOL)
}

// SOLToLamports converts a SOL amount to lamports, truncating below one lamport.
func SOLToLamports(sol decimal.Decimal) (uint64, error) {
	if sol.IsNegative() {
		return 0, ErrNegativeAmount
	}
	lamports := sol.Mul(lamportsPerSOL).Truncate(0)
	if !lamports.BigInt().IsUint64() {
		return 0, ErrAmountOverflow
	}
	return lamports.BigInt().Uint64(), nil
}

// EncodeBase58 renders raw bytes (instruction data, signatures) as explorers do.
func EncodeBase58(data []byte) string {
	return base58.Encode(data)
}
