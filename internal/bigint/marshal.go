package bigint

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = (*Int)(nil)
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// ErrDecodeIntoZero is returned when a decoder targets the shared Zero value.
var ErrDecodeIntoZero = errors.New("bigint: cannot decode into the shared Zero value")

// MarshalText implements encoding.TextMarshaler using the decimal form.
func (x *Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It is meant for
// decoding into a fresh value; decoding into Zero fails with
// ErrDecodeIntoZero.
func (x *Int) UnmarshalText(text []byte) error {
	if x == Zero {
		return errors.WithStack(ErrDecodeIntoZero)
	}
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = *v
	return nil
}

// EncodeMsgpack writes x as a msgpack bin holding its two's-complement
// encoding.
func (x *Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(x.Encode())
}

// DecodeMsgpack reads a value written by EncodeMsgpack. Like UnmarshalText
// it refuses to overwrite Zero.
func (x *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	if x == Zero {
		return errors.WithStack(ErrDecodeIntoZero)
	}
	b, err := dec.DecodeBytes()
	if err != nil {
		return errors.Wrap(err, "bigint: decoding msgpack bin")
	}
	v, err := Decode(b)
	if err != nil {
		return err
	}
	*x = *v
	return nil
}
