package gsol

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	solanago "github.com/taliaesther/sunrise-app/solana"
)

// Client binds a Config and a read connection for callers that build many
// transactions in one session.
type Client struct {
	conn   solanago.AccountInfoGetter
	config Config
	logger *zap.Logger
}

func NewClient(conn solanago.AccountInfoGetter, config Config, logger *zap.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		conn:   conn,
		config: config,
		logger: logger,
	}, nil
}

func (c *Client) Config() Config {
	return c.config
}

func (c *Client) FetchBlazeState(ctx context.Context, pool solana.PublicKey) (BlazeState, error) {
	blaze, err := FetchBlazeState(ctx, c.conn, pool)
	if err != nil {
		return BlazeState{}, err
	}
	c.logger.Debug("blaze state",
		zap.Stringer("pool", pool),
		zap.Stringer("bsol_mint", blaze.BSolMint),
		zap.Stringer("validator_list", blaze.ValidatorList),
	)
	return blaze, nil
}

func (c *Client) GetVoterAddress(ctx context.Context, stakeAccount solana.PublicKey) (solana.PublicKey, error) {
	return GetVoterAddress(ctx, c.conn, stakeAccount)
}

func (c *Client) BlazeDeposit(blaze BlazeState, depositor, depositorGSolTokenAccount solana.PublicKey, lamports uint64) (*solana.Transaction, error) {
	tx, err := BlazeDeposit(c.config, blaze, depositor, depositorGSolTokenAccount, lamports)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("built blaze deposit",
		zap.Stringer("depositor", depositor),
		zap.Stringer("gsol_account", depositorGSolTokenAccount),
		zap.Uint64("lamports", lamports),
		zap.String("sol", solanago.LamportsToSOL(lamports).String()),
	)
	return tx, nil
}

func (c *Client) BlazeDepositStake(ctx context.Context, blaze BlazeState, stakeAccount, depositorGSolTokenAccount, signer solana.PublicKey) (*solana.Transaction, error) {
	tx, err := BlazeDepositStake(ctx, c.config, c.conn, blaze, stakeAccount, depositorGSolTokenAccount, signer)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("built blaze stake deposit",
		zap.Stringer("signer", signer),
		zap.Stringer("stake_account", stakeAccount),
		zap.Stringer("gsol_account", depositorGSolTokenAccount),
	)
	return tx, nil
}

func (c *Client) ExtractToTreasury(marinadeState MarinadeState, blaze BlazeState, payer solana.PublicKey) (*solana.Transaction, error) {
	tx, err := ExtractToTreasury(c.config, marinadeState, blaze, payer)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("built extract to treasury",
		zap.Stringer("payer", payer),
		zap.Stringer("treasury", c.config.Treasury),
	)
	return tx, nil
}
