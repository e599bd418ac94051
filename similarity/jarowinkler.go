package similarity

// winklerPrefixCap bounds the common-prefix length rewarded by the Winkler
// boost, per the standard formulation.
const winklerPrefixCap = 4

// winklerScale is the standard Winkler prefix scaling factor.
const winklerScale = 0.1

// JaroWinkler returns the Jaro-Winkler similarity of a and b in [0,1].
// The matching window is floor(max(len)/2)-1 and the Winkler boost is
// winklerScale * commonPrefix(capped) * (1 - jaro).
func JaroWinkler(a, b string) float64 {
	jaro := jaroSimilarity(a, b)
	if jaro == 0 {
		return 0
	}
	prefix := 0
	ra := []rune(a)
	rb := []rune(b)
	for prefix < len(ra) && prefix < len(rb) && prefix < winklerPrefixCap && ra[prefix] == rb[prefix] {
		prefix++
	}
	return jaro + winklerScale*float64(prefix)*(1-jaro)
}

func jaroSimilarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	window := max2(len(ra), len(rb))/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, len(ra))
	matchedB := make([]bool, len(rb))
	matches := 0
	for i := range ra {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window
		if hi >= len(rb) {
			hi = len(rb) - 1
		}
		for j := lo; j <= hi; j++ {
			if matchedB[j] || ra[i] != rb[j] {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	// Count transpositions over the matched subsequences.
	transpositions := 0
	j := 0
	for i := range ra {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if ra[i] != rb[j] {
			transpositions++
		}
		j++
	}
	transpositions /= 2

	m := float64(matches)
	return (m/float64(len(ra)) + m/float64(len(rb)) + (m-float64(transpositions))/m) / 3
}

func max2(a, b int) int {
	if b > a {
		return b
	}
	return a
}
