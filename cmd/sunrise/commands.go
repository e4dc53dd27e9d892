package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taliaesther/sunrise-app/config"
	"github.com/taliaesther/sunrise-app/gsol"
	solanago "github.com/taliaesther/sunrise-app/solana"
)

type app struct {
	cfg       config.Config
	logger    *zap.Logger
	rpcClient *rpc.Client
	client    *gsol.Client
}

// newApp loads configuration and opens the RPC client. The gsol client is only
// built when withClient is set, since it requires the Sunrise addresses.
func newApp(cmd *cobra.Command, withClient bool) (*app, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	a := &app{
		cfg:       cfg,
		logger:    logger,
		rpcClient: rpc.New(cfg.RPCURL),
	}
	if !withClient {
		return a, nil
	}
	gsolConfig, err := cfg.GSolConfig()
	if err != nil {
		return nil, err
	}
	if a.client, err = gsol.NewClient(a.rpcClient, gsolConfig, logger); err != nil {
		return nil, err
	}
	return a, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = lvl
	zc.Encoding = "console"
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

// blazeState prefers the snapshot file and falls back to reading the pool.
func (a *app) blazeState(ctx context.Context) (gsol.BlazeState, error) {
	if a.cfg.BlazeSnapshot != "" {
		return config.LoadBlazeSnapshot(a.cfg.BlazeSnapshot)
	}
	pool, err := config.ParseKey("blaze-pool", a.cfg.BlazePool)
	if err != nil {
		return gsol.BlazeState{}, err
	}
	return a.client.FetchBlazeState(ctx, pool)
}

// gsolAccount returns the explicit account or the owner's associated account.
func (a *app) gsolAccount(ctx context.Context, flag string, owner solana.PublicKey) (solana.PublicKey, error) {
	if flag != "" {
		return config.ParseKey("gsol-account", flag)
	}
	ata, exists, err := solanago.FindTokenATA(ctx, a.rpcClient, owner, a.client.Config().GSolMint)
	if err != nil {
		return solana.PublicKey{}, err
	}
	if !exists {
		a.logger.Warn("gSOL associated token account does not exist yet",
			zap.Stringer("owner", owner),
			zap.Stringer("account", ata),
		)
	}
	return ata, nil
}

// emit stamps a recent blockhash and prints the transaction with empty
// signature slots. Nothing is signed or sent.
func (a *app) emit(ctx context.Context, cmd *cobra.Command, tx *solana.Transaction) error {
	blockhash, err := solanago.GetLatestBlockhash(ctx, a.rpcClient)
	if err != nil {
		return fmt.Errorf("get latest blockhash: %w", err)
	}
	tx.Message.RecentBlockhash = blockhash

	for _, compiled := range tx.Message.Instructions {
		programID, err := tx.Message.ResolveProgramIDIndex(compiled.ProgramIDIndex)
		if err != nil {
			return err
		}
		accounts, err := compiled.ResolveInstructionAccounts(&tx.Message)
		if err != nil {
			return err
		}
		summary, err := solanago.SummarizeInstruction(solana.NewInstruction(programID, accounts, compiled.Data))
		if err != nil {
			return err
		}
		a.logger.Info("instruction",
			zap.Stringer("program", summary.ProgramID),
			zap.Int("accounts", len(summary.Accounts)),
			zap.String("data", summary.Data),
		)
	}

	tx.Signatures = make([]solana.Signature, tx.Message.Header.NumRequiredSignatures)
	out, err := tx.ToBase64()
	if err != nil {
		return fmt.Errorf("encode transaction: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func depositLamports(cmd *cobra.Command) (uint64, error) {
	amount, _ := cmd.Flags().GetString("amount")
	if amount == "" {
		lamports, _ := cmd.Flags().GetUint64("lamports")
		return lamports, nil
	}
	sol, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("parse amount: %w", err)
	}
	return solanago.SOLToLamports(sol)
}

func runDeposit(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(cmd, true)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	depositorFlag, _ := cmd.Flags().GetString("depositor")
	depositor, err := config.ParseKey("depositor", depositorFlag)
	if err != nil {
		return err
	}
	lamports, err := depositLamports(cmd)
	if err != nil {
		return err
	}
	gsolFlag, _ := cmd.Flags().GetString("gsol-account")
	gsolAccount, err := a.gsolAccount(ctx, gsolFlag, depositor)
	if err != nil {
		return err
	}
	blaze, err := a.blazeState(ctx)
	if err != nil {
		return err
	}

	tx, err := a.client.BlazeDeposit(blaze, depositor, gsolAccount, lamports)
	if err != nil {
		return err
	}
	a.logger.Info("deposit",
		zap.Stringer("depositor", depositor),
		zap.String("sol", solanago.LamportsToSOL(lamports).String()),
	)
	return a.emit(ctx, cmd, tx)
}

func runDepositStake(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(cmd, true)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	signerFlag, _ := cmd.Flags().GetString("signer")
	signer, err := config.ParseKey("signer", signerFlag)
	if err != nil {
		return err
	}
	stakeFlag, _ := cmd.Flags().GetString("stake-account")
	stakeAccount, err := config.ParseKey("stake-account", stakeFlag)
	if err != nil {
		return err
	}
	gsolFlag, _ := cmd.Flags().GetString("gsol-account")
	gsolAccount, err := a.gsolAccount(ctx, gsolFlag, signer)
	if err != nil {
		return err
	}
	blaze, err := a.blazeState(ctx)
	if err != nil {
		return err
	}

	tx, err := a.client.BlazeDepositStake(ctx, blaze, stakeAccount, gsolAccount, signer)
	if err != nil {
		return err
	}
	return a.emit(ctx, cmd, tx)
}

func runExtractToTreasury(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(cmd, true)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	payerFlag, _ := cmd.Flags().GetString("payer")
	payer, err := config.ParseKey("payer", payerFlag)
	if err != nil {
		return err
	}
	if a.cfg.MarinadeSnapshot == "" {
		return fmt.Errorf("%w: marinade-snapshot", config.ErrMissingKey)
	}
	marinadeState, err := config.LoadMarinadeSnapshot(a.cfg.MarinadeSnapshot)
	if err != nil {
		return err
	}
	blaze, err := a.blazeState(ctx)
	if err != nil {
		return err
	}

	tx, err := a.client.ExtractToTreasury(marinadeState, blaze, payer)
	if err != nil {
		return err
	}
	return a.emit(ctx, cmd, tx)
}

func runVoter(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	stakeFlag, _ := cmd.Flags().GetString("stake-account")
	stakeAccount, err := config.ParseKey("stake-account", stakeFlag)
	if err != nil {
		return err
	}
	voter, err := gsol.GetVoterAddress(ctx, a.rpcClient, stakeAccount)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), voter)
	return err
}
