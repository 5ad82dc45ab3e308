package lz77

// rkPrime is the multiplier of the Rabin-Karp hash; a random prime.
const rkPrime = 252097800623

// rabinKarp computes a rolling hash over byte sequences of fixed length.
// AddYoung shifts the hash and adds a new byte; removeOldest removes the
// byte that entered the hash n bytes earlier.
type rabinKarp struct {
	n int
	// a^{n-1}
	aOldest uint64
}

func newRabinKarp(n int) rabinKarp {
	if n <= 0 {
		panic("lz77: rolling hash length must be positive")
	}
	aOldest := uint64(1)
	for i := 0; i < n-1; i++ {
		aOldest *= rkPrime
	}
	return rabinKarp{n: n, aOldest: aOldest}
}

func (r rabinKarp) addYoung(h uint64, c byte) uint64 {
	return h*rkPrime + uint64(c)
}

func (r rabinKarp) removeOldest(h uint64, c byte) uint64 {
	return h - uint64(c)*r.aOldest
}

// hash computes the hash of the first n bytes of p.
func (r rabinKarp) hash(p []byte) uint64 {
	var h uint64
	for _, c := range p[:r.n] {
		h = r.addYoung(h, c)
	}
	return h
}

// HashSearcher is a Searcher that rolls a Rabin-Karp hash over all
// two-byte sequences of the haystack and compares the key only at
// positions where the hash equals the hash of the first two key bytes.
//
// Every match the Writer can use starts with those two bytes, so the
// matches found are exactly the matches of LinearSearcher and the
// compressed streams are identical.
type HashSearcher struct{}

// FindLongestMatch implements the Searcher interface.
func (HashSearcher) FindLongestMatch(haystack Buffer, key []byte) (m Match, ok bool) {
	if len(key) < minMatchLen {
		return Match{}, false
	}
	end := searchEnd(haystack, key)
	if end == 0 {
		return Match{}, false
	}
	r := newRabinKarp(minMatchLen)
	want := r.hash(key)
	var h uint64
	for i := 0; i < minMatchLen-1; i++ {
		h = r.addYoung(h, haystack.ByteAt(i))
	}
	for i := 0; i < end; i++ {
		h = r.addYoung(h, haystack.ByteAt(i+minMatchLen-1))
		if h == want {
			k := matchLen(haystack, i, key)
			if k >= minMatchLen && k > m.Len {
				m = Match{Pos: i, Len: k}
				ok = true
				if k == len(key) {
					break
				}
			}
		}
		h = r.removeOldest(h, haystack.ByteAt(i))
	}
	return m, ok
}
