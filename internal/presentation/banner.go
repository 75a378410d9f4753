package presentation

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Datashield.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient, teal to blue
	s1 := termenv.String("      _       _            _     _      _     _ ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("   __| | __ _| |_ __ _ ___| |__ (_) ___| | __| |").Foreground(p.Color("#22d3ee"))
	s3 := termenv.String("  / _` |/ _` | __/ _` / __| '_ \\| |/ _ \\ |/ _` |").Foreground(p.Color("#38bdf8"))
	s4 := termenv.String(" | (_| | (_| | || (_| \\__ \\ | | | |  __/ | (_| |").Foreground(p.Color("#60a5fa"))
	s5 := termenv.String("  \\__,_|\\__,_|\\__\\__,_|___/_| |_|_|\\___|_|\\__,_|").Foreground(p.Color("#818cf8"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
