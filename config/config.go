package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/taliaesther/sunrise-app/gsol"
)

var ErrMissingKey = errors.New("missing config key")

// Config holds configuration for the sunrise command.
type Config struct {
	RPCURL           string
	LogLevel         string
	ProgramID        string
	State            string
	GSolMint         string
	Treasury         string
	BlazePool        string
	BlazeSnapshot    string
	MarinadeSnapshot string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SUNRISE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("rpc", "https://api.mainnet-beta.solana.com")
	v.SetDefault("log-level", "info")
	v.SetDefault("blaze-pool", "stk9ApL5HeVAwPLr3TLhDXdZS8ptVu7zp6ov8HFDuMi")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("sunrise")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		RPCURL:           v.GetString("rpc"),
		LogLevel:         v.GetString("log-level"),
		ProgramID:        v.GetString("program-id"),
		State:            v.GetString("state"),
		GSolMint:         v.GetString("gsol-mint"),
		Treasury:         v.GetString("treasury"),
		BlazePool:        v.GetString("blaze-pool"),
		BlazeSnapshot:    v.GetString("blaze-snapshot"),
		MarinadeSnapshot: v.GetString("marinade-snapshot"),
	}

	return cfg, nil
}

// GSolConfig parses the address keys into a gsol.Config.
func (c Config) GSolConfig() (gsol.Config, error) {
	var (
		out gsol.Config
		err error
	)
	if out.ProgramID, err = parseOptionalKey("program-id", c.ProgramID); err != nil {
		return gsol.Config{}, err
	}
	if out.StateAddress, err = ParseKey("state", c.State); err != nil {
		return gsol.Config{}, err
	}
	if out.GSolMint, err = ParseKey("gsol-mint", c.GSolMint); err != nil {
		return gsol.Config{}, err
	}
	if out.Treasury, err = parseOptionalKey("treasury", c.Treasury); err != nil {
		return gsol.Config{}, err
	}
	return out, nil
}

// ParseKey parses a required base58 address.
func ParseKey(name, value string) (solana.PublicKey, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return solana.PublicKey{}, fmt.Errorf("%w: %s", ErrMissingKey, name)
	}
	key, err := solana.PublicKeyFromBase58(value)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("parse %s: %w", name, err)
	}
	return key, nil
}

func parseOptionalKey(name, value string) (solana.PublicKey, error) {
	if strings.TrimSpace(value) == "" {
		return solana.PublicKey{}, nil
	}
	return ParseKey(name, value)
}
