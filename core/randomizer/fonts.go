package randomizer

// Font stacks limited to families with broad mail client support, each with
// a generic CSS fallback.
var fontStacks = []string{
	"Arial, sans-serif",
	"Georgia, serif",
	"'Comic Sans MS', cursive",
	"'Courier New', monospace",
	"'Trebuchet MS', sans-serif",
	"Verdana, sans-serif",
	"'Times New Roman', serif",
	"Impact, sans-serif",
}

func (rz *Randomizer) randomFont() string {
	return fontStacks[rz.rand.IntN(len(fontStacks))]
}

func wrapFont(markup, font string) string {
	return `<span style="font-family: ` + font + `">` + markup + `</span>`
}
