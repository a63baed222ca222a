package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/tjamescouch/agentchat-chess/internal/engine"
	"github.com/tjamescouch/agentchat-chess/internal/storage"
	"github.com/tjamescouch/agentchat-chess/internal/uci"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	depth      = flag.Int("depth", 0, "override the default search depth")
	nostorage  = flag.Bool("nostorage", false, "run without the persistent store")
)

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	var store *storage.Storage
	prefs := storage.DefaultPreferences()

	if !*nostorage {
		var err error
		store, err = storage.OpenDefault()
		if err != nil {
			log.Printf("storage unavailable: %v (continuing without persistence)", err)
		} else {
			defer store.Close()
			if p, err := store.LoadPreferences(); err == nil {
				prefs = p
			} else {
				log.Printf("could not load preferences: %v", err)
			}
		}
	}

	if *depth > 0 {
		prefs.DefaultDepth = *depth
	}

	eng := engine.NewEngine()

	uci.New(eng, prefs).Run()

	if store != nil {
		if err := store.RecordSession(eng.Searches(), eng.NodesSearched(), eng.PerftRuns(), eng.PerftNodes()); err != nil {
			log.Printf("could not record session stats: %v", err)
		}
		if err := store.SavePreferences(prefs); err != nil {
			log.Printf("could not save preferences: %v", err)
		}
	}
}
