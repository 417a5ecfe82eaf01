package style

// Font is one entry of the font picker. Href is empty for fonts that ship with the OS.
type Font struct {
	Name  string
	Stack string
	Href  string
}

const googleFonts = "https://fonts.googleapis.com/css2?family="

var fonts = []Font{
	{"Inter", "'Inter', 'Segoe UI', system-ui, sans-serif", googleFonts + "Inter:wght@300;400;500;600;700&display=swap"},
	{"Space Grotesk", "'Space Grotesk', 'Segoe UI', system-ui, sans-serif", googleFonts + "Space+Grotesk:wght@400;500;600;700&display=swap"},
	{"DM Sans", "'DM Sans', 'Segoe UI', system-ui, sans-serif", googleFonts + "DM+Sans:wght@400;500;600;700&display=swap"},
	{"Roboto Mono", "'Roboto Mono', 'SFMono-Regular', monospace", googleFonts + "Roboto+Mono:wght@400;500;600;700&display=swap"},
	{"Manrope", "'Manrope', 'Segoe UI', system-ui, sans-serif", googleFonts + "Manrope:wght@400;500;600;700&display=swap"},
	{"Sora", "'Sora', 'Segoe UI', system-ui, sans-serif", googleFonts + "Sora:wght@400;500;600;700&display=swap"},
	{"Plus Jakarta Sans", "'Plus Jakarta Sans', 'Segoe UI', system-ui, sans-serif", googleFonts + "Plus+Jakarta+Sans:wght@400;500;600;700&display=swap"},
	{"Poppins", "'Poppins', 'Segoe UI', system-ui, sans-serif", googleFonts + "Poppins:wght@300;400;500;600;700&display=swap"},
	{"Outfit", "'Outfit', 'Segoe UI', system-ui, sans-serif", googleFonts + "Outfit:wght@300;400;500;600;700&display=swap"},
	{"Urbanist", "'Urbanist', 'Segoe UI', system-ui, sans-serif", googleFonts + "Urbanist:wght@300;400;500;600;700&display=swap"},
	{"Orbitron", "'Orbitron', 'Segoe UI', system-ui, sans-serif", googleFonts + "Orbitron:wght@400;500;600;700&display=swap"},
	{"Raleway", "'Raleway', 'Segoe UI', system-ui, sans-serif", googleFonts + "Raleway:wght@300;400;500;600;700&display=swap"},
	{"JetBrains Mono", "'JetBrains Mono', 'Consolas', monospace", googleFonts + "JetBrains+Mono:wght@400;500;600;700&display=swap"},
	{"Fira Code", "'Fira Code', 'Consolas', monospace", googleFonts + "Fira+Code:wght@400;500;600;700&display=swap"},
	{"Lexend", "'Lexend', 'Segoe UI', system-ui, sans-serif", googleFonts + "Lexend:wght@300;400;500;600;700&display=swap"},
	{"Arial", "Arial, Helvetica, sans-serif", ""},
	{"Verdana", "Verdana, Geneva, sans-serif", ""},
	{"Tahoma", "Tahoma, Geneva, sans-serif", ""},
	{"Trebuchet MS", "'Trebuchet MS', Helvetica, sans-serif", ""},
	{"Georgia", "Georgia, 'Times New Roman', serif", ""},
	{"Times New Roman", "'Times New Roman', Times, serif", ""},
	{"Courier New", "'Courier New', Courier, monospace", ""},
	{"Impact", "Impact, Charcoal, sans-serif", ""},
	{"Comic Sans MS", "'Comic Sans MS', cursive, sans-serif", ""},
	{"Segoe UI", "'Segoe UI', system-ui, sans-serif", ""},
}

// Fonts returns a copy of the font catalog
func Fonts() []Font {
	out := make([]Font, len(fonts))
	copy(out, fonts)
	return out
}

// FontAt returns the font at index, falling back to the first font
func FontAt(index int) Font {
	if index < 0 || index >= len(fonts) {
		return fonts[0]
	}
	return fonts[index]
}

func FontStack(index int) string { return FontAt(index).Stack }

func FontName(index int) string { return FontAt(index).Name }

func FontHref(index int) string { return FontAt(index).Href }
