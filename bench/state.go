package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/ahmetalpbalkan/go-cursor"
	"github.com/but80/gcd825/gcd/enums"
	"github.com/but80/gcd825/gcd/util"
)

type Row struct {
	Algorithm  enums.Algorithm `json:"algorithm"`
	GCD        int32           `json:"gcd"`
	Runs       int             `json:"runs"`
	TotalMs    int64           `json:"total_ms"`
	WallTime   time.Duration   `json:"wall_time_ns"`
	LastMs     int64           `json:"last_ms"`
	Mismatched bool            `json:"mismatched"`
}

func (r *Row) add(gcd int32, ms int64, wall time.Duration) {
	if 0 < r.Runs && r.GCD != gcd {
		r.Mismatched = true
	}
	r.GCD = gcd
	r.Runs++
	r.TotalMs += ms
	r.LastMs = ms
	r.WallTime += wall
}

// Average は、1 回あたりの平均所要時間を返します。
func (r *Row) Average() time.Duration {
	if r.Runs == 0 {
		return 0
	}
	return r.WallTime / time.Duration(r.Runs)
}

func (r *Row) Print(w io.Writer) {
	fmt.Fprintf(w, "%-16s %10d %10d %10d %12s\n", r.Algorithm, r.Runs, r.GCD, r.TotalMs, r.Average())
}

type State struct {
	Operands []int32 `json:"operands"`
	Rows     []*Row  `json:"rows"`
}

// Agree は、すべてのアルゴリズムの結果が一致しているかを判定します。
func (s *State) Agree() bool {
	var gcd int32
	first := true
	for _, r := range s.Rows {
		if r.Runs == 0 {
			continue
		}
		if r.Mismatched || (!first && r.GCD != gcd) {
			return false
		}
		gcd = r.GCD
		first = false
	}
	return true
}

func (s *State) Print(w io.Writer) {
	fmt.Fprintf(w, "Operands: %s\n", util.JoinInts(s.Operands, ", "))
	fmt.Fprintf(w, "%-16s %10s %10s %10s %12s\n", "Algorithm", "Runs", "GCD", "Total(ms)", "Avg")
	for _, r := range s.Rows {
		r.Print(w)
	}
}

func (s *State) Redraw(w io.Writer) {
	fmt.Fprint(w, cursor.ClearEntireScreen())
	fmt.Fprint(w, cursor.MoveTo(0, 0))
	s.Print(w)
}
