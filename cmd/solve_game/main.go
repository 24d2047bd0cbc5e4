// Solve a two-player zero-sum game with the simplex method, printing every
// intermediate tableau.
//
// Usage:
//
//	solve_game [flags] m n      read an m x n payoff matrix from stdin
//	solve_game -matrix_file game.yaml
package main

import (
	"bufio"
	_ "expvar"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/timpalpant/zerosum"
	"github.com/timpalpant/zerosum/matrixgame"
	"github.com/timpalpant/zerosum/rational"
	"github.com/timpalpant/zerosum/simplex"
)

var stdin = bufio.NewReader(os.Stdin)

type RunParams struct {
	MatrixFile  string
	Step        bool
	TraceOut    string
	DebugAddr   string
	MaxPivots   int
	CheckFPIter int
	PlayParams  PlayParams
}

type PlayParams struct {
	Rounds int
	Seed   int64
}

func main() {
	var params RunParams
	flag.StringVar(&params.MatrixFile, "matrix_file", "",
		"YAML file with the payoff matrix (instead of reading m x n rows from stdin)")
	flag.BoolVar(&params.Step, "step", false, "Wait for Enter before each pivot")
	flag.StringVar(&params.TraceOut, "trace_out", "", "File to save the gzipped pivot trace to")
	flag.StringVar(&params.DebugAddr, "debug_addr", "",
		"Address to serve expvar and pprof on, e.g. localhost:4123")
	flag.IntVar(&params.MaxPivots, "solver.max_pivots", zerosum.DefaultMaxPivots,
		"Maximum number of pivots before giving up")
	flag.IntVar(&params.CheckFPIter, "check_fp", 0,
		"If > 0, compare against this many iterations of fictitious play")
	flag.IntVar(&params.PlayParams.Rounds, "play.rounds", 0,
		"Number of rounds to simulate with the optimal strategies")
	flag.Int64Var(&params.PlayParams.Seed, "play.seed", 1234, "Random seed for simulated play")
	flag.Usage = usage
	flag.Parse()

	if params.DebugAddr != "" {
		go http.ListenAndServe(params.DebugAddr, nil)
	}

	name, payoff, err := loadPayoff(params)
	if err != nil {
		glog.Errorf("Invalid payoff matrix: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if name != "" {
		fmt.Printf("Game: %s\n", name)
	}

	if row, col, ok := payoff.SaddlePoint(); ok {
		glog.Infof("Saddle point at (%d, %d) with value %v", row, col, payoff.At(row, col))
	}

	result, session, err := solve(payoff, params)
	if params.TraceOut != "" && session != nil {
		if err := saveTrace(params.TraceOut, session.Trace()); err != nil {
			glog.Errorf("Unable to save trace: %v", err)
		}
	}
	if err != nil {
		glog.Errorf("Solve failed: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(result)

	if params.CheckFPIter > 0 {
		rng := rand.New(rand.NewSource(params.PlayParams.Seed))
		p0, p1 := matrixgame.FictitiousPlay(payoff, params.CheckFPIter, 0, rng)
		fmt.Printf("Fictitious play after %d iterations: player 1 %.3f, player 2 %.3f\n",
			params.CheckFPIter, p0, p1)
	}

	if params.PlayParams.Rounds > 0 {
		rng := rand.New(rand.NewSource(params.PlayParams.Seed))
		stats := zerosum.Simulate(result, payoff, params.PlayParams.Rounds, rng)
		fmt.Printf("Simulated %d rounds: mean payoff %.4f (value %v)\n",
			stats.Rounds, stats.Mean().Float64(), result.Value)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] m n\n\n", os.Args[0])
	fmt.Fprintln(flag.CommandLine.Output(), "\tm: number of rows, integer greater than 0")
	fmt.Fprintln(flag.CommandLine.Output(), "\tn: number of columns, integer greater than 0")
	fmt.Fprintln(flag.CommandLine.Output())
	flag.PrintDefaults()
}

func loadPayoff(params RunParams) (string, *matrixgame.PayoffMatrix, error) {
	if params.MatrixFile != "" {
		f, err := os.Open(params.MatrixFile)
		if err != nil {
			return "", nil, err
		}
		defer f.Close()
		return matrixgame.LoadYAML(f)
	}

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	m, err := parseDimension(flag.Arg(0))
	if err != nil {
		return "", nil, err
	}
	n, err := parseDimension(flag.Arg(1))
	if err != nil {
		return "", nil, err
	}

	fmt.Printf("Please enter the %d by %d payoff matrix below.\n", m, n)
	fmt.Println("Separate rows by new lines and columns by spaces:")
	payoff, err := readPayoff(m, n)
	return "", payoff, err
}

// readPayoff reads m rows from stdin one line at a time, so that stdin
// can still be used for -step prompts afterwards.
func readPayoff(m, n int) (*matrixgame.PayoffMatrix, error) {
	rows := make([][]rational.Rat, 0, m)
	for len(rows) < m {
		line, err := stdin.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			row, parseErr := matrixgame.ParseRow(line, len(rows), n)
			if parseErr != nil {
				return nil, parseErr
			}
			rows = append(rows, row)
		}

		if err != nil {
			if err == io.EOF && len(rows) == m {
				break
			}
			return nil, fmt.Errorf("reading row %d: %v", len(rows), err)
		}
	}

	return matrixgame.NewPayoffMatrix(rows)
}

func parseDimension(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid dimension %q: must be an integer greater than 0", s)
	}

	return v, nil
}

func solve(payoff *matrixgame.PayoffMatrix, params RunParams) (*zerosum.Result, *zerosum.Session, error) {
	session, err := zerosum.NewSession(payoff,
		zerosum.WithMaxPivots(params.MaxPivots),
		zerosum.WithTrace(params.TraceOut != ""))
	if err != nil {
		return nil, nil, err
	}

	fmt.Println("Initial Tableau:")
	fmt.Println(session.Tableau())
	for !session.Done() {
		if params.Step {
			waitForEnter()
		}

		p, outcome, err := session.Step()
		if err != nil {
			return nil, session, err
		}

		if outcome == simplex.Unbounded {
			fmt.Printf("Column %d has no positive entry: the game is unbounded.\n", p.Col)
			break
		}
		if p.Row < 0 {
			continue
		}

		fmt.Printf("Pivot: ( %d, %d )\n\n", p.Row, p.Col)
		if outcome == simplex.Optimal {
			fmt.Println("Final Tableau:")
		} else {
			fmt.Printf("Tableau %d:\n", len(session.Pivots()))
		}
		fmt.Println(session.Tableau())
	}

	result, err := session.Result()
	return result, session, err
}

func waitForEnter() {
	fmt.Print("Press Enter for the next pivot...")
	if _, err := stdin.ReadString('\n'); err != nil {
		glog.Warningf("Unable to read from stdin, continuing: %v", err)
	}
}

func saveTrace(filename string, tr *zerosum.Trace) error {
	glog.Infof("Saving trace to: %v", filename)
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return zerosum.SaveTrace(f, tr)
}
