package sunrisestake

import solanago "github.com/gagliardetto/solana-go"

// ProgramID is the Sunrise Stake program address.
var ProgramID = solanago.MustPublicKeyFromBase58("sunzv8N3A8dRHwUBvxgRDEbWKk8t7yiHR4FLRgFsTX6")
