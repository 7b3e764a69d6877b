package assets

import "embed"

//go:embed logo.txt words.txt
var f embed.FS

var (
	// Logo contains the ascii input-gen logo
	Logo string

	// Words contains the embedded English word list used as the default corpus
	Words string
)

func init() {
	// Logo
	rawLogo, _ := f.ReadFile("logo.txt")
	Logo = string(rawLogo)

	// Default corpus
	rawWords, _ := f.ReadFile("words.txt")
	Words = string(rawWords)
}
