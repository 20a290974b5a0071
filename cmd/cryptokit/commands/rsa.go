package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cryptokit/internal/crypto"
	"cryptokit/internal/der"
	"cryptokit/internal/store"
)

func rsaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rsa",
		Short: "RSA key tooling",
	}
	cmd.AddCommand(rsaKeygenCmd(), rsaInspectCmd())
	return cmd
}

func rsaKeygenCmd() *cobra.Command {
	var (
		bits    int
		out     string
		pubPath string
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA key and write it as PKCS#1 PEM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("bits") {
				bits = appCtx.Config.RSA.Bits
			}
			if out == "" {
				return errors.New("output file required (--out)")
			}

			appCtx.Log.Debug("generating RSA key", zap.Int("bits", bits))
			key, err := crypto.GenerateRSA(bits)
			if err != nil {
				return err
			}

			raw, err := der.MarshalRSAPrivateKey(key)
			if err != nil {
				return err
			}
			if err := store.WriteFile(out, crypto.EncodePEM(crypto.PEMPrivateKey, raw), store.ModePrivate); err != nil {
				return err
			}
			appCtx.Log.Info("wrote private key", zap.String("path", out))

			if pubPath != "" {
				pubRaw, err := der.MarshalRSAPublicKey(key.Public())
				if err != nil {
					return err
				}
				if err := store.WriteFile(pubPath, crypto.EncodePEM(crypto.PEMPublicKey, pubRaw), store.ModePublic); err != nil {
					return err
				}
				appCtx.Log.Info("wrote public key", zap.String("path", pubPath))
			}

			fp, err := crypto.Fingerprint(key.Public())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Key created.\nFingerprint: %s\n", fp)
			return err
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 2048, "modulus size in bits")
	cmd.Flags().StringVarP(&out, "out", "o", "", "private key output file")
	cmd.Flags().StringVar(&pubPath, "pub", "", "optional public key output file")
	return cmd
}

func rsaInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the parameters and fingerprint of a PKCS#1 PEM key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := store.ReadFile(args[0])
			if err != nil {
				return err
			}
			if data == nil {
				return errors.Errorf("%s: no such file", args[0])
			}
			typ, raw, err := crypto.DecodePEM(data)
			if err != nil {
				return errors.WithMessage(err, args[0])
			}

			var pub *der.RSAPublicKey
			switch typ {
			case crypto.PEMPrivateKey:
				priv, err := der.ParseRSAPrivateKey(raw)
				if err != nil {
					return err
				}
				if _, err := crypto.PrivateKeyToRSA(priv); err != nil {
					return err
				}
				pub = priv.Public()
			default:
				if pub, err = der.ParseRSAPublicKey(raw); err != nil {
					return err
				}
				if _, err := crypto.PublicKeyToRSA(pub); err != nil {
					return err
				}
			}
			appCtx.Log.Debug("parsed key", zap.String("type", typ), zap.String("path", args[0]))

			fp, err := crypto.Fingerprint(pub)
			if err != nil {
				return err
			}
			var sb strings.Builder
			fmt.Fprintf(&sb, "Type:        %s\n", typ)
			fmt.Fprintf(&sb, "Size:        %d bits\n", pub.Modulus.BitLen())
			fmt.Fprintf(&sb, "Modulus:     %s\n", pub.Modulus)
			fmt.Fprintf(&sb, "Exponent:    %s\n", pub.PublicExponent)
			fmt.Fprintf(&sb, "Fingerprint: %s\n", fp)
			_, err = io.WriteString(cmd.OutOrStdout(), sb.String())
			return err
		},
	}
}
