package main

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/baron-chain/coinnet-bc/crypto/keyring"
	"github.com/baron-chain/coinnet-bc/types"
)

const flagScheme = "scheme"

type keyInfo struct {
	SecretURI  string `json:"secretUri" yaml:"secret_uri"`
	Scheme     string `json:"scheme" yaml:"scheme"`
	SecretSeed string `json:"secretSeed,omitempty" yaml:"secret_seed,omitempty"`
	PublicKey  string `json:"publicKey" yaml:"public_key"`
	AccountID  string `json:"accountId" yaml:"account_id"`
	SS58       string `json:"ss58Address" yaml:"ss58_address"`
}

func keyCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Key utilities",
	}
	cmd.AddCommand(keyInspectCommand(v))
	return cmd
}

func keyInspectCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <secret-uri>",
		Short: "Derive and print the keys of a secret URI",
		Long: `Derive and print the keys of a secret URI such as "//Alice",
"//Alice//stash" or "<mnemonic>//hard/soft///password".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := keyring.ParseScheme(v.GetString(flagScheme))
			if err != nil {
				return err
			}

			kp, err := keyring.Derive(args[0], scheme)
			if err != nil {
				return err
			}

			account := kp.AccountID()
			info := keyInfo{
				SecretURI: args[0],
				Scheme:    scheme.String(),
				PublicKey: kp.Public.Hex(),
				AccountID: account.Hex(),
				SS58:      types.SS58Encode(account.Bytes(), types.GetConfig().GetSS58Prefix()),
			}
			if kp.Seed != nil {
				info.SecretSeed = hexutil.Encode(kp.Seed)
			}
			return printKeyInfo(cmd, info, v.GetString(flagFormat))
		},
	}

	cmd.Flags().String(flagScheme, keyring.Sr25519.String(), "signature scheme (sr25519|ed25519)")
	cmd.Flags().String(flagFormat, "text", "output format (text|json|yaml)")
	return cmd
}

func printKeyInfo(cmd *cobra.Command, info keyInfo, format string) error {
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		bz, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(bz))
		return err
	case "yaml":
		bz, err := yaml.Marshal(info)
		if err != nil {
			return err
		}
		_, err = out.Write(bz)
		return err
	case "text":
		seed := info.SecretSeed
		if seed == "" {
			seed = "n/a (soft derivation)"
		}
		_, err := fmt.Fprintf(out,
			"Secret URI:   %s\nScheme:       %s\nSecret seed:  %s\nPublic key:   %s\nAccount ID:   %s\nSS58 address: %s\n",
			info.SecretURI, info.Scheme, seed, info.PublicKey, info.AccountID, info.SS58)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
