package otucomp

// TaxMeanMin is the overall mean relative abundance below which a
// combination key is discarded.
const TaxMeanMin = 1e-5

// SampleCounts counts distinct sample labels per method. The abundance
// filter's denominator comes from the singleton-filtered summary, so a sample
// whose only features were singletons drops out of the mean.
func SampleCounts(recs []Record) map[Method]int {
	seen := map[Method]map[string]bool{}
	for _, r := range recs {
		if seen[r.Method] == nil {
			seen[r.Method] = map[string]bool{}
		}
		seen[r.Method][r.Sample] = true
	}

	out := map[Method]int{}
	for m, s := range seen {
		out[m] = len(s)
	}
	return out
}

// BetaKeys computes, per combination key, the mean relative abundance over
// all of the method's samples (samples without a row contribute zero) and
// retains keys whose mean is at or above TaxMeanMin. The sum is a plain
// commutative reduction, so input order never changes the result. A method
// with a zero denominator is a DivisionError, never a silent NaN.
func BetaKeys(recs []Record, nsamples map[Method]int) (map[Key]bool, error) {
	sums := map[Key]float64{}
	for _, r := range recs {
		sums[Key{r.Method, r.Feature}] += r.RelAbun
	}

	out := map[Key]bool{}
	for k, sum := range sums {
		n := nsamples[k.Method]
		if n == 0 {
			return nil, DivisionError{Method: k.Method}
		}
		if sum/float64(n) >= TaxMeanMin {
			out[k] = true
		}
	}
	return out, nil
}
