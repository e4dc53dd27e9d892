package marinade

import solanago "github.com/gagliardetto/solana-go"

// ProgramID is the Marinade Finance liquid staking program address.
var ProgramID = solanago.MustPublicKeyFromBase58("MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD")
