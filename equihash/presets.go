package equihash

import "strings"

// Preset names a deployed parameter set together with the personalization
// prefix its network hashes with.
type Preset struct {
	Name            string
	Params          Params
	Personalization string
}

// Presets lists the well known parameter sets. The test sets are small enough
// to solve on a laptop.
var Presets = []Preset{
	{Name: "zcash", Params: Params{N: 200, K: 9}, Personalization: "ZcashPoW"},
	{Name: "btg", Params: Params{N: 144, K: 5}, Personalization: "BgoldPoW"},
	{Name: "bitcoinz", Params: Params{N: 144, K: 5}, Personalization: "BitcoinZ"},
	{Name: "zero", Params: Params{N: 192, K: 7}, Personalization: "ZERO_PoW"},
	{Name: "test96", Params: Params{N: 96, K: 5}, Personalization: "ZcashPoW"},
	{Name: "test48", Params: Params{N: 48, K: 5}, Personalization: "ZcashPoW"},
}

// LookupPreset finds a preset by name, ignoring case.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}
