package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cryptokit/internal/store"
)

func convertCmd() *cobra.Command {
	var from, to, out string
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert an integer between representations",
		Long: "Convert an integer between representations.\n\n" +
			"Formats: dec (decimal), hex (two's-complement bytes), mag (magnitude bytes, output only),\n" +
			"b64 (base64 two's-complement bytes), der (DER INTEGER hex), msgpack (msgpack bin hex).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("from") {
				from = appCtx.Config.Convert.From
			}
			if !cmd.Flags().Changed("to") {
				to = appCtx.Config.Convert.To
			}

			x, err := decodeValue(from, args[0])
			if err != nil {
				return err
			}
			s, err := encodeValue(to, x)
			if err != nil {
				return err
			}
			appCtx.Log.Debug("converted value",
				zap.String("from", from),
				zap.String("to", to),
				zap.Int("bits", x.BitLen()),
				zap.Int("sign", x.Sign()),
			)

			if out != "" {
				return store.WriteFile(out, []byte(s+"\n"), store.ModePublic)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", formatDec, "input format")
	cmd.Flags().StringVar(&to, "to", formatHex, "output format")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the result to a file instead of stdout")
	return cmd
}
