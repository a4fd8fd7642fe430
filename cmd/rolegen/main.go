// Rolegen - a colour gradient generator
//
// Rolegen fills in the colours between two endpoint colours, for example to
// build a rainbow of Discord role colours, and can write them out as CSS,
// a Discord role manifest or a PNG swatch.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/rolegen/internal/cli"

func main() {
	cli.Execute()
}
