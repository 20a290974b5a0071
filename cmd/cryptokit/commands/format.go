package commands

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"cryptokit/internal/bigint"
	"cryptokit/internal/crypto"
	"cryptokit/internal/der"
)

// Value formats accepted by convert.
const (
	formatDec     = "dec"     // decimal text
	formatHex     = "hex"     // two's-complement content bytes
	formatMag     = "mag"     // unsigned magnitude bytes, output only
	formatB64     = "b64"     // base64 of the two's-complement bytes
	formatDER     = "der"     // full DER INTEGER, hex
	formatMsgpack = "msgpack" // msgpack bin, hex
)

var formats = []string{formatDec, formatHex, formatMag, formatB64, formatDER, formatMsgpack}

func decodeValue(format, s string) (*bigint.Int, error) {
	s = strings.TrimSpace(s)
	switch format {
	case formatDec:
		return bigint.Parse(s)
	case formatB64:
		b, err := crypto.UnB64(s)
		if err != nil {
			return nil, errors.Wrap(err, "decoding base64")
		}
		return bigint.Decode(b)
	case formatHex, formatDER, formatMsgpack:
		b, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(s), "0x"))
		if err != nil {
			return nil, errors.Wrap(err, "decoding hex")
		}
		switch format {
		case formatDER:
			return der.ParseInteger(b)
		case formatMsgpack:
			var x bigint.Int
			if err := msgpack.Unmarshal(b, &x); err != nil {
				return nil, err
			}
			return &x, nil
		}
		return bigint.Decode(b)
	case formatMag:
		return nil, errors.Errorf("format %q is output only", format)
	}
	return nil, errors.Errorf("unknown format %q (want one of %s)", format, strings.Join(formats, ", "))
}

func encodeValue(format string, x *bigint.Int) (string, error) {
	switch format {
	case formatDec:
		return x.String(), nil
	case formatHex:
		return hex.EncodeToString(x.Encode()), nil
	case formatMag:
		return hex.EncodeToString(x.MagnitudeBytes()), nil
	case formatB64:
		return crypto.B64(x.Encode()), nil
	case formatDER:
		b, err := der.MarshalInteger(x)
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(b), nil
	case formatMsgpack:
		b, err := msgpack.Marshal(x)
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(b), nil
	}
	return "", errors.Errorf("unknown format %q (want one of %s)", format, strings.Join(formats, ", "))
}
