package equihash

import "encoding/hex"

// KnownSolution is a reference (header, solution) pair with its expected
// verification outcome.
type KnownSolution struct {
	Name            string
	Params          Params
	Personalization string
	Header          []byte
	Solution        []byte
	Valid           bool
}

// KnownSolutions returns the reference solutions used by the self test. The
// valid entries were produced by an independent solver and the 96_5 encoding
// was cross checked against the published zcash test vector for the input
// "block header" with a zero nonce.
func KnownSolutions() []KnownSolution {
	zeroHeader := make([]byte, HeaderBytes)
	nonce1Header := make([]byte, HeaderBytes)
	nonce1Header[108] = 1

	return []KnownSolution{
		{
			Name:            "96_5 zero header",
			Params:          Params{N: 96, K: 5},
			Personalization: "ZcashPoW",
			Header:          zeroHeader,
			Solution: mustDecodeHex(
				"00e00e6cd38d5bcc139bba0b352de2b77b16f9930c14105cb901a39556dde1a9b0e803ef" +
					"eb45157befc89c534f4637270b976f0f23beb204903278745fd61089e7b5a6e1"),
			Valid: true,
		},
		{
			Name:            "96_5 zero header wrong personalization",
			Params:          Params{N: 96, K: 5},
			Personalization: "BgoldPoW",
			Header:          zeroHeader,
			Solution: mustDecodeHex(
				"00e00e6cd38d5bcc139bba0b352de2b77b16f9930c14105cb901a39556dde1a9b0e803ef" +
					"eb45157befc89c534f4637270b976f0f23beb204903278745fd61089e7b5a6e1"),
			Valid: false,
		},
		{
			Name:            "48_5 nonce 1 first",
			Params:          Params{N: 48, K: 5},
			Personalization: "ZcashPoW",
			Header:          nonce1Header,
			Solution:        mustDecodeHex("012186c6135fb59d911db321d852b162b5bd052e9b1d720ecfe1f809ad66f691825a1367"),
			Valid:           true,
		},
		{
			Name:            "48_5 nonce 1 second",
			Params:          Params{N: 48, K: 5},
			Personalization: "ZcashPoW",
			Header:          nonce1Header,
			Solution:        mustDecodeHex("038c87a5d0a6acd88e35ffdcaf1576e1cde8162dcfe8d52561c3b616d1a3fbc73c1eabec"),
			Valid:           true,
		},
		{
			Name:            "48_5 zero header",
			Params:          Params{N: 48, K: 5},
			Personalization: "ZcashPoW",
			Header:          zeroHeader,
			Solution:        mustDecodeHex("012186c6135fb59d911db321d852b162b5bd052e9b1d720ecfe1f809ad66f691825a1367"),
			Valid:           false,
		},
		{
			Name:            "8_0 zero leaf 8",
			Params:          Params{N: 8, K: 0},
			Personalization: "ZcashPoW",
			Header:          zeroHeader,
			Solution:        mustDecodeHex("0400"),
			Valid:           true,
		},
		{
			Name:            "8_0 zero leaf 109",
			Params:          Params{N: 8, K: 0},
			Personalization: "ZcashPoW",
			Header:          zeroHeader,
			Solution:        mustDecodeHex("3680"),
			Valid:           true,
		},
		{
			Name:            "8_0 non zero leaf 1",
			Params:          Params{N: 8, K: 0},
			Personalization: "ZcashPoW",
			Header:          zeroHeader,
			Solution:        mustDecodeHex("0080"),
			Valid:           false,
		},
	}
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
