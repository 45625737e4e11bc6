package vectors

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// NewDeterministicEncOpts returns the core deterministic encoding options, so
// that a given File always encodes to the same bytes.
func NewDeterministicEncOpts() cbor.EncOptions {
	return cbor.CoreDetEncOptions()
}

// NewStrictDecOpts rejects duplicate map keys, indefinite lengths and fields
// this package does not know about.
func NewStrictDecOpts() cbor.DecOptions {
	return cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		IndefLength:       cbor.IndefLengthForbidden,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}
}

// Codec reads and writes vector files.
type Codec struct {
	encMode cbor.EncMode
	decMode cbor.DecMode
}

func NewCodec() (Codec, error) {
	return NewCodecWithOptions(NewDeterministicEncOpts(), NewStrictDecOpts())
}

func NewCodecWithOptions(encOpts cbor.EncOptions, decOpts cbor.DecOptions) (Codec, error) {
	var err error
	c := Codec{}
	if c.encMode, err = encOpts.EncMode(); err != nil {
		return Codec{}, err
	}
	if c.decMode, err = decOpts.DecMode(); err != nil {
		return Codec{}, err
	}
	return c, nil
}

func (c Codec) Encode(f File) ([]byte, error) {
	if f.Version != FileVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}
	return c.encMode.Marshal(f)
}

func (c Codec) Decode(data []byte) (File, error) {
	var f File
	if err := c.decMode.Unmarshal(data, &f); err != nil {
		return File{}, err
	}
	if f.Version != FileVersion {
		return File{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}
	if len(f.Vectors) == 0 {
		return File{}, ErrNoVectors
	}
	return f, nil
}
