package equihash

// Indices of the valid 96_5 solution for the all zero header.
var zeroHeader96x5Indices = []uint32{
	448, 14771, 40042, 113857, 29559, 33485, 38641, 46971,
	11763, 19504, 41090, 117648, 13426, 87479, 61652, 110824,
	2015, 109844, 43999, 64649, 100969, 119181, 103301, 104303,
	7751, 64200, 9345, 75655, 35834, 99362, 62426, 108257,
}

// The zcash 96_5 test vector for the input "block header" followed by a 32
// byte zero nonce.
var zcashBlockHeader96x5Indices = []uint32{
	976, 126621, 100174, 123328, 38477, 105390, 38834, 90500,
	6411, 116489, 51107, 129167, 25557, 92292, 38525, 56514,
	1110, 98024, 15426, 74455, 3185, 84007, 24328, 36473,
	17427, 129451, 27556, 119967, 31704, 62448, 110460, 117894,
}

var zcashBlockHeader96x5Hex = "01e87ba770e9de1c04b26e6eb92f6561840c85f1c258f47f88f31eada2112cfa" +
	"dcc2022b5fba0788522d70638d209cbe108e792209fe6acd749d49f3dec3cfc35ef9cc86"

func zcashBlockHeaderInput() []byte {
	return append([]byte("block header"), make([]byte, 32)...)
}

// knownSolution returns the named entry of KnownSolutions
func knownSolution(name string) KnownSolution {
	for _, s := range KnownSolutions() {
		if s.Name == name {
			return s
		}
	}
	panic("no known solution named " + name)
}
