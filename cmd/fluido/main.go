// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"fluido"
	"fluido/internal/config"
	"fluido/internal/ferrors"
	"fluido/internal/numeric"
)

type stockFlag []numeric.Q

func (s *stockFlag) String() string {
	parts := make([]string, len(*s))
	for i, q := range *s {
		parts[i] = q.String()
	}
	return strings.Join(parts, ",")
}

func (s *stockFlag) Set(value string) error {
	q, err := numeric.ParseQ(value)
	if err != nil {
		return fmt.Errorf("invalid --input-space value %q: %w", value, err)
	}
	*s = append(*s, q)
	return nil
}

func main() {
	verbose := os.Getenv("FLUIDO_TEST_VERBOSE") != ""
	verbosity := 1
	if verbose {
		verbosity = 2 // debug level
	}
	commonlog.Configure(verbosity, nil)

	var (
		targetFlag     = flag.String("target-concentration", "", "target concentration to synthesize")
		timeLimit      = flag.Uint64("time-limit", 30, "saturation wall-clock budget in seconds")
		showDot        = flag.Bool("show-dot", false, "dump a DOT graph of the extracted mixer tree")
		showIR         = flag.Bool("show-ir", false, "dump the linearized IR")
		showLiveness   = flag.Bool("show-liveness", false, "dump the ix | ir | live set table")
		showInterfere  = flag.Bool("show-interference", false, "dump the interference graph as DOT")
	)
	var stock stockFlag
	flag.Var(&stock, "input-space", "a stock concentration available as input (repeatable)")
	flag.Parse()

	if verbose {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}

	if *targetFlag == "" || len(stock) == 0 {
		color.Red("usage: fluido --target-concentration NUM --input-space NUM [--input-space NUM ...]")
		os.Exit(1)
	}

	target, err := numeric.ParseQ(*targetFlag)
	if err != nil {
		color.Red("invalid --target-concentration: %s", err)
		os.Exit(1)
	}

	cfg := config.Config{
		TimeLimitSeconds: *timeLimit,
		Generator:        config.GeneratorEqualitySaturation,
		Log: config.LogConfig{
			ShowMixerGraph:        *showDot,
			ShowIR:                *showIR,
			ShowLiveness:          *showLiveness,
			ShowInterferenceGraph: *showInterfere,
		},
	}

	runCLI(cfg, target, []numeric.Q(stock))
}

// runCLI is split out from main so the search_mixer_design call and its
// diagnostic dumps can be exercised without going through flag parsing.
func runCLI(cfg config.Config, target numeric.Q, stock []numeric.Q) {
	start := time.Now()
	design, err := fluido.SearchMixerDesign(cfg, target, stock)
	if err != nil {
		msg := err.Error()
		if fe, ok := err.(*ferrors.FluidoError); ok {
			msg = fe.Chain()
		}
		color.Red("error: %s", msg)
		os.Exit(1)
	}

	color.Green("✅ synthesized %s in %s", design.Expr, time.Since(start))
	fmt.Printf("cost: %.4f  storage_units: %d\n", design.Cost, design.StorageUnits)

	if cfg.Log.ShowMixerGraph {
		fmt.Println("--- mixer tree ---")
		fmt.Print(design.Tree.DOT())
	}
	if cfg.Log.ShowIR {
		fmt.Println("--- IR ---")
		fmt.Print(design.Program)
	}
	if cfg.Log.ShowLiveness {
		fmt.Println("--- liveness ---")
		for i, inst := range design.Program.Insts {
			live := make([]string, 0, len(design.Liveness.LiveOut[i]))
			for r := range design.Liveness.LiveOut[i] {
				live = append(live, fmt.Sprintf("%%%d", r))
			}
			sort.Strings(live)
			fmt.Printf("%d | %s | {%s}\n", i, inst, strings.Join(live, ", "))
		}
	}
	if cfg.Log.ShowInterferenceGraph {
		fmt.Println("--- interference graph ---")
		fmt.Print(design.Interference.DOT())
	}
}
