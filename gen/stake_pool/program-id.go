package stakepool

import solanago "github.com/gagliardetto/solana-go"

// ProgramID is the SPL stake pool program address.
var ProgramID = solanago.MustPublicKeyFromBase58("SPoo1Ku8WFXoNDMHPsrGSTSG1Y47rzgn41SLUNakuHy")
