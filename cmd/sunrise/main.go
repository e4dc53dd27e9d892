package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "sunrise",
		Short:        "Build unsigned Sunrise Stake transactions",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")
	root.PersistentFlags().String("rpc", "https://api.mainnet-beta.solana.com", "Solana RPC URL")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("program-id", "", "Sunrise Stake program id, defaults to mainnet")
	root.PersistentFlags().String("state", "", "Sunrise state account")
	root.PersistentFlags().String("gsol-mint", "", "gSOL mint")
	root.PersistentFlags().String("treasury", "", "Sunrise treasury")
	root.PersistentFlags().String("blaze-pool", "stk9ApL5HeVAwPLr3TLhDXdZS8ptVu7zp6ov8HFDuMi", "SolBlaze stake pool, read from chain")
	root.PersistentFlags().String("blaze-snapshot", "", "SolBlaze pool snapshot JSON, used instead of reading the pool")
	root.PersistentFlags().String("marinade-snapshot", "", "Marinade addresses JSON")

	depositCmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit SOL into SolBlaze for gSOL",
		RunE:  runDeposit,
	}
	depositCmd.Flags().String("depositor", "", "depositor wallet (signer, fee payer)")
	depositCmd.Flags().String("amount", "", "amount in SOL, e.g. 1.5")
	depositCmd.Flags().Uint64("lamports", 0, "amount in lamports, used when --amount is empty")
	depositCmd.Flags().String("gsol-account", "", "gSOL token account, defaults to the depositor's associated account")
	root.AddCommand(depositCmd)

	depositStakeCmd := &cobra.Command{
		Use:   "deposit-stake",
		Short: "Deposit a delegated stake account into SolBlaze for gSOL",
		RunE:  runDepositStake,
	}
	depositStakeCmd.Flags().String("signer", "", "stake account authority (signer, fee payer)")
	depositStakeCmd.Flags().String("stake-account", "", "stake account to deposit")
	depositStakeCmd.Flags().String("gsol-account", "", "gSOL token account, defaults to the signer's associated account")
	root.AddCommand(depositStakeCmd)

	extractCmd := &cobra.Command{
		Use:   "extract-to-treasury",
		Short: "Move the extractable mSOL yield to the treasury",
		RunE:  runExtractToTreasury,
	}
	extractCmd.Flags().String("payer", "", "fee payer")
	root.AddCommand(extractCmd)

	voterCmd := &cobra.Command{
		Use:   "voter",
		Short: "Print the vote account a stake account is delegated to",
		RunE:  runVoter,
	}
	voterCmd.Flags().String("stake-account", "", "stake account")
	root.AddCommand(voterCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
