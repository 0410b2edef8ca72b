// mapcheck validates TMX map files against the same rules the game applies
// at load time, so broken maps are caught before they ship.
//
// Usage:
//
//	mapcheck -dir assets/maps [map.tmx ...]
//
// With no file arguments every .tmx under the directory is checked.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/wildmere/emberhollow/shared/tilemap"
)

func main() {
	dir := flag.String("dir", "assets/maps", "Directory containing .tmx maps")
	verbose := flag.Bool("v", false, "Print grid details for valid maps")
	flag.Parse()

	fsys := os.DirFS(*dir)

	paths := flag.Args()
	if len(paths) == 0 {
		var err error
		paths, err = fs.Glob(fsys, "*.tmx")
		if err != nil {
			log.Fatalf("listing %s: %v", *dir, err)
		}
		if len(paths) == 0 {
			log.Fatalf("no .tmx files found in %s", *dir)
		}
	}

	failed := 0
	for _, p := range paths {
		grid, err := tilemap.Load(fsys, p)
		if err != nil {
			failed++
			var mfe *tilemap.MapFormatError
			if errors.As(err, &mfe) {
				fmt.Printf("FAIL %s: %v\n", p, mfe)
			} else {
				fmt.Printf("FAIL %s: %v\n", p, err)
			}
			continue
		}

		fmt.Printf("ok   %s\n", p)
		if *verbose {
			fmt.Printf("     %dx%d cells, %dpx tiles, %d layers, %d blocked\n",
				grid.Width(), grid.Height(), grid.TileSize(), len(grid.Layers()), countBlocked(grid))
		}
	}

	if failed > 0 {
		fmt.Printf("%d of %d maps failed\n", failed, len(paths))
		os.Exit(1)
	}
}

func countBlocked(g *tilemap.Grid) int {
	n := 0
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.Blocked(col, row) {
				n++
			}
		}
	}
	return n
}
