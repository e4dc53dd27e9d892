package sunrise

import (
	"github.com/taliaesther/sunrise-app/gsol"
)

// NewClient creates a gsol client bound to a read connection.
//
// Example:
//
// client, _ := NewClient(rpcClient, gsol.Config{StateAddress: state, GSolMint: gsolMint}, logger)
//
// blaze, _ := client.FetchBlazeState(ctx, blazePool)
//
// tx, _ := client.BlazeDeposit(blaze, depositor, depositorGSolAccount, 1_000_000_000)
var NewClient = gsol.NewClient

// BlazeDeposit builds an unsigned SOL deposit into SolBlaze through Sunrise.
var BlazeDeposit = gsol.BlazeDeposit

// BlazeDepositStake builds an unsigned stake account deposit into SolBlaze.
var BlazeDepositStake = gsol.BlazeDepositStake

// ExtractToTreasury builds an unsigned yield extraction to the treasury.
var ExtractToTreasury = gsol.ExtractToTreasury

// GetVoterAddress returns the vote account a stake account is delegated to.
var GetVoterAddress = gsol.GetVoterAddress

var FetchBlazeState = gsol.FetchBlazeState
