package main

import (
	"fmt"
	"log"
	"os"

	"git.lost.host/meutraa/beatgrid/internal/cache"
	"git.lost.host/meutraa/beatgrid/internal/config"
	"git.lost.host/meutraa/beatgrid/internal/game"
	"git.lost.host/meutraa/beatgrid/internal/parser"
	"git.lost.host/meutraa/beatgrid/internal/preview"
	"git.lost.host/meutraa/beatgrid/internal/theme"
	"git.lost.host/meutraa/beatgrid/internal/timing"
	"golang.org/x/term"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	// Ensure our Default implementations are used as interfaces
	var psr parser.Parser = &parser.DefaultParser{}
	var c cache.Cache = &cache.DefaultCache{}
	var th theme.Theme = &theme.DefaultTheme{}

	segments, flags, err := psr.Parse(*config.File)
	if nil != err {
		return err
	}

	store, err := timing.NewStore(segments, flags)
	if nil != err {
		return err
	}

	var markers []game.Marker
	key := cache.Key(segments, flags, *config.End)
	if !*config.NoCache {
		if err := c.Init(*config.DB); nil != err {
			return err
		}
		defer c.Deinit()
		if cached, ok := c.Load(key); ok {
			markers = cached
		}
	}
	if nil == markers {
		markers = timing.GenerateBarLines(store, *config.End)
		if !*config.NoCache {
			c.Save(key, markers)
		}
	}

	printGrid(markers)

	if *config.Preview {
		var pv preview.Previewer = &preview.DefaultPreviewer{Theme: th, Rate: *config.Rate}
		return pv.Play(markers)
	}
	return nil
}

func printGrid(markers []game.Marker) {
	majors := 0
	for _, m := range markers {
		if m.Major {
			majors++
		}
	}

	limit := int(*config.Limit)
	if limit == 0 || limit > len(markers) {
		limit = len(markers)
	}

	color := term.IsTerminal(int(os.Stdout.Fd()))
	for _, m := range markers[:limit] {
		switch {
		case m.Major && color:
			fmt.Printf("\033[1;33m%12.3f  major\033[0m\n", m.Time)
		case m.Major:
			fmt.Printf("%12.3f  major\n", m.Time)
		default:
			fmt.Printf("%12.3f\n", m.Time)
		}
	}
	fmt.Printf("%v lines, %v major\n", len(markers), majors)
}
