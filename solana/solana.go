package solana

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// AccountInfoGetter is the read side of an RPC connection. *rpc.Client satisfies it.
type AccountInfoGetter interface {
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
}

var _ AccountInfoGetter = (*rpc.Client)(nil)
