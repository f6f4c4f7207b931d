// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"

	"github.com/cybrota/avlkit/avl"
)

// FillStats reports how a fill went.
type FillStats struct {
	Requested  int
	Inserted   int
	Duplicates int // candidates already in the tree
	TreeProbes int // Contains calls made after a bloom filter hit
	Duration   time.Duration
}

// Fill inserts cfg.Count distinct pseudo-random keys from
// [cfg.MinKey, cfg.MaxKey] into tree. The draw is deterministic for a
// given seed. A bloom filter of the keys added so far lets most fresh
// candidates skip the tree lookup; only filter hits are confirmed with
// Contains. Progress is drawn on progress when cfg.ShowProgress is set.
func Fill(tree *avl.Tree[int], cfg FillConfig, progress io.Writer) (FillStats, error) {
	stats := FillStats{Requested: cfg.Count}
	if cfg.Count <= 0 {
		return stats, nil
	}

	// width is MaxKey-MinKey, exact in uint64 even when the int difference
	// overflows. The range holds width+1 keys.
	width := uint64(cfg.MaxKey) - uint64(cfg.MinKey)
	if cfg.MaxKey < cfg.MinKey || width < uint64(cfg.Count)+uint64(tree.Len())-1 {
		return stats, fmt.Errorf("%w: [%d, %d] cannot take %d more keys", ErrFillRange, cfg.MinKey, cfg.MaxKey, cfg.Count)
	}

	log.Printf("Filling tree with %d keys from [%d, %d], seed %d", cfg.Count, cfg.MinKey, cfg.MaxKey, cfg.Seed)

	var bar *progressbar.ProgressBar
	if cfg.ShowProgress && progress != nil {
		bar = progressbar.NewOptions(cfg.Count,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Inserting keys..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(progress, "\nFill completed!\n")
			}),
		)
	}

	filter := bloom.New(max(cfg.BloomSize, 64), max(cfg.BloomHashes, 1))
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	start := time.Now()

	for stats.Inserted < cfg.Count {
		k := drawKey(rng, cfg.MinKey, width)
		id := []byte(strconv.Itoa(k))

		if filter.Test(id) {
			stats.TreeProbes++
			if tree.Contains(k) {
				stats.Duplicates++
				continue
			}
		}

		if !tree.Insert(k) {
			// Present before the fill started.
			stats.Duplicates++
			filter.Add(id)
			continue
		}
		filter.Add(id)
		stats.Inserted++

		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	stats.Duration = time.Since(start)
	log.Printf("Fill completed. Inserted %d keys in %s", stats.Inserted, stats.Duration)
	return stats, nil
}

// drawKey returns a uniform key in [minKey, minKey+width]. The offset is
// added with wrapping int arithmetic, so ranges wider than MaxInt work.
func drawKey(rng *rand.Rand, minKey int, width uint64) int {
	if width == math.MaxUint64 {
		return int(rng.Uint64())
	}
	return minKey + int(rng.Uint64N(width+1))
}
