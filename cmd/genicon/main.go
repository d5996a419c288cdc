package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/colony/internal/icon"
)

func main() {
	out := flag.String("out", "assets/textures/icon.png", "output path")
	size := flag.Int("size", 32, "icon size in pixels")
	flag.Parse()

	if err := icon.SavePNG(icon.Generate(*size), *out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %dx%d icon to %s\n", *size, *size, *out)
}
