package main

import (
	"log/slog"
	"os"

	"golang.org/x/exp/rand"

	"github.com/theflywheel/ptable"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tbl, err := ptable.New[int32, int32](ptable.WithCapacity(20003), ptable.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to create table", "err", err)
		os.Exit(1)
	}

	const n = 10_000
	r := rand.New(rand.NewSource(0))
	keys := make([]int32, n)
	vals := make([]int32, n)
	for i := range keys {
		keys[i] = int32(r.Intn(n))
		vals[i] = int32(r.Intn(n))
	}

	// Replay the same sequence into the table and a Go map, deleting every
	// key divisible by 3 right after it is written.
	ref := make(map[int32]int32)
	for i, k := range keys {
		if err := tbl.Put(k, vals[i]); err != nil {
			logger.Error("Failed to insert key", "key", k, "err", err)
			os.Exit(1)
		}
		ref[k] = vals[i]
		if k%3 == 0 {
			tbl.Delete(k)
			delete(ref, k)
		}
	}
	logger.Info("Replayed workload", "ops", n, "stats", tbl.Stats())

	mismatches := 0
	for i, k := range keys {
		got, ok := tbl.Lookup(k)
		want, wantOK := ref[k]
		if got != want || ok != wantOK {
			mismatches++
			logger.Warn("Mismatch", "key", k, "val", vals[i], "table", got, "present", ok, "map", want)
		}
	}
	if mismatches > 0 {
		logger.Error("Differential check failed", "mismatches", mismatches)
		os.Exit(1)
	}

	logger.Info("Differential check passed", "keys", n, "size", tbl.Size(), "map_size", len(ref))
}
