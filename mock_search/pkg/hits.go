package mocksearch

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/lscan/pkg"
)

var b6Split = lscan.ByByte('\t')

// A blast6 line is a hit when it has all 12 fields and a real subject.
func IsHit(fields []string) bool {
	return len(fields) == 12 && fields[1] != "*"
}

func CountHits(r io.Reader) (int, error) {
	s := bufio.NewScanner(r)
	s.Buffer([]byte{}, 1e12)
	count := 0
	var line []string
	for s.Scan() {
		line = lscan.SplitByFunc(line, s.Text(), b6Split)
		if IsHit(line) {
			count++
		}
	}
	return count, s.Err()
}

func CountHitsPath(path string) (int, error) {
	r, e := csvh.OpenMaybeGz(path)
	if e != nil {
		return 0, e
	}
	defer r.Close()
	return CountHits(r)
}

// PrintPathHits summarizes how many of each subset's sequences aligned to
// the mock reference.
func PrintPathHits(w io.Writer, paths []string, counts []int) {
	for i, path := range paths {
		fmt.Fprintf(w, "%v\t%v\n", path, counts[i])
	}
}

func CountHitsPaths(paths ...string) ([]int, error) {
	var out []int
	for _, path := range paths {
		c, e := CountHitsPath(path)
		if e != nil {
			return nil, e
		}
		out = append(out, c)
	}
	return out, nil
}
