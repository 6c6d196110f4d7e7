package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/term"

	"github.com/docopt/docopt-go"

	"github.com/bringyour/shared"
)

const SharedCtlVersion = "0.0.1"

var Out *log.Logger
var Err *log.Logger

func init() {
	Out = log.New(os.Stdout, "", 0)
	Err = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
}

func main() {
	usage := `Shared list control.

Usage:
    sharedctl bench [--n=<n>] [--copies=<copies>] [--rounds=<rounds>] [--json]
    sharedctl demo [--verbose=<verbose>]

Options:
    -h --help            Show this screen.
    --version            Show version.
    --n=<n>              Elements per list [default: 65536].
    --copies=<copies>    Handles sharing each store [default: 64].
    --rounds=<rounds>    Measurement rounds [default: 8].
    --json               Emit the report as json.
    --verbose=<verbose>  Sharing trace verbosity, 0 to 2 [default: 2].`

	opts, err := docopt.ParseArgs(usage, os.Args[1:], SharedCtlVersion)
	if err != nil {
		panic(err)
	}

	if bench_, _ := opts.Bool("bench"); bench_ {
		bench(opts)
	} else if demo_, _ := opts.Bool("demo"); demo_ {
		demo(opts)
	}
}

// initGlog routes the package traces to stderr at the given verbosity.
func initGlog(v int) {
	flag.Set("logtostderr", "true")
	flag.Set("v", fmt.Sprintf("%d", v))
	flag.CommandLine.Parse([]string{})
}

type benchSettings struct {
	n      int
	copies int
	rounds int
}

func defaultBenchSettings() *benchSettings {
	return &benchSettings{
		n:      65536,
		copies: 64,
		rounds: 8,
	}
}

type benchReport struct {
	N          int                `json:"n"`
	Copies     int                `json:"copies"`
	Rounds     int                `json:"rounds"`
	MeanMillis map[string]float64 `json:"mean_millis"`
	StoreIds   map[string]string  `json:"store_ids"`
}

func bench(opts docopt.Opts) {
	initGlog(0)

	settings := defaultBenchSettings()
	if n, err := opts.Int("--n"); err == nil {
		settings.n = n
	}
	if copies, err := opts.Int("--copies"); err == nil {
		settings.copies = copies
	}
	if rounds, err := opts.Int("--rounds"); err == nil {
		settings.rounds = rounds
	}

	jsonOut, _ := opts.Bool("--json")
	interactive := !jsonOut && term.IsTerminal(int(os.Stdout.Fd()))

	durations := map[string][]time.Duration{}
	storeIds := map[string]string{}

	for round := 0; round < settings.rounds; round += 1 {
		base := shared.NewList[int]()

		fillElapsed := shared.Trace("fill", func() {
			for i := 0; i < settings.n; i += 1 {
				base.Append(i)
			}
		})
		durations["fill"] = append(durations["fill"], fillElapsed)

		copies := []*shared.List[int]{}
		copyElapsed := shared.Trace("copy", func() {
			for i := 0; i < settings.copies; i += 1 {
				copies = append(copies, base.Copy())
			}
		})
		durations["copy"] = append(durations["copy"], copyElapsed)

		// the first write on one handle pays the deep copy
		detachElapsed := shared.Trace("detach", func() {
			copies[0].Append(-1)
		})
		durations["detach"] = append(durations["detach"], detachElapsed)

		sortElapsed := shared.Trace("sort", func() {
			shared.Sort(copies[0])
		})
		durations["sort"] = append(durations["sort"], sortElapsed)

		storeIds["base"] = base.StoreId().String()
		storeIds["detached"] = copies[0].StoreId().String()

		for _, c := range copies {
			c.Close()
		}
		base.Close()

		if interactive {
			Out.Printf("round %d/%d\n", round+1, settings.rounds)
		}
	}

	report := &benchReport{
		N:          settings.n,
		Copies:     settings.copies,
		Rounds:     settings.rounds,
		MeanMillis: map[string]float64{},
		StoreIds:   storeIds,
	}
	for tag, values := range durations {
		total := time.Duration(0)
		for _, value := range values {
			total += value
		}
		report.MeanMillis[tag] = float64(total) / float64(len(values)) / float64(time.Millisecond)
	}

	if jsonOut {
		reportJson, err := json.Marshal(report)
		if err != nil {
			panic(err)
		}
		Out.Printf("%s\n", reportJson)
	} else {
		tags := maps.Keys(report.MeanMillis)
		slices.Sort(tags)
		for _, tag := range tags {
			Out.Printf("%-8s %.3fms\n", tag, report.MeanMillis[tag])
		}
	}
}

// demo walks through the sharing protocol. run with --verbose=2 to see the
// store lifecycle interleaved on stderr.
func demo(opts docopt.Opts) {
	verbose, _ := opts.Int("--verbose")
	initGlog(verbose)

	a := shared.NewList("osaka", "tokyo", "kyoto")
	Out.Printf("a       %s %v\n", a.StoreId(), a.Values())

	b := a.Copy()
	Out.Printf("copy    %s %v shares=%t\n", b.StoreId(), b.Values(), b.SharesStoreWith(a))

	// the first mutation detaches b onto a private store
	b.Append("nara")
	Out.Printf("append  %s %v shares=%t\n", b.StoreId(), b.Values(), b.SharesStoreWith(a))

	shared.Sort(b)
	Out.Printf("sort    %s %v\n", b.StoreId(), b.Values())

	shared.SortedInsert(b, "himeji", true)
	shared.SortedInsert(b, "nara", true)
	Out.Printf("sorted  %s %v\n", b.StoreId(), b.Values())

	if it := b.Find("osaka"); !it.AtEnd() {
		b.Erase(it)
	}
	Out.Printf("erase   %s %v\n", b.StoreId(), b.Values())

	Out.Printf("a       %s %v\n", a.StoreId(), a.Values())

	a.Close()
	b.Close()
}
