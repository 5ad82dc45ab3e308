package lz77

// Match describes an occurrence of a key prefix in a searched buffer.
type Match struct {
	// Pos is the index of the first matching byte in the buffer.
	Pos int
	// Len is the number of matching bytes.
	Len int
}

// minMatchLen is the shortest match a Searcher reports. Shorter matches cost
// more than a literal.
const minMatchLen = 2

// Searcher finds matches for the Writer. FindLongestMatch returns the
// longest prefix of key found in haystack. If several positions give the
// same length the lowest position wins. ok is false if no match of at least
// two bytes exists.
//
// The Writer passes the window followed by the lookahead as haystack and the
// lookahead without its last byte as key. Implementations must not report
// positions at or beyond haystack.Len()-len(key)-2; the Writer relies on it
// for the match to start inside the window.
type Searcher interface {
	FindLongestMatch(haystack Buffer, key []byte) (m Match, ok bool)
}

// searchEnd returns the exclusive upper bound of start positions that a
// Searcher may report. Positions closer to the end of the haystack would
// start inside the key itself.
func searchEnd(haystack Buffer, key []byte) int {
	n := haystack.Len() - len(key) - 2
	if n < 0 {
		return 0
	}
	return n
}

// matchLen returns the number of bytes of key matching haystack at position
// i.
func matchLen(haystack Buffer, i int, key []byte) int {
	n := haystack.Len() - i
	if n > len(key) {
		n = len(key)
	}
	k := 0
	for k < n && key[k] == haystack.ByteAt(i+k) {
		k++
	}
	return k
}

// LinearSearcher compares the key with every candidate position. It is the
// reference strategy; other Searchers should produce the same matches.
type LinearSearcher struct{}

// FindLongestMatch implements the Searcher interface.
func (LinearSearcher) FindLongestMatch(haystack Buffer, key []byte) (m Match, ok bool) {
	if len(key) < minMatchLen {
		return Match{}, false
	}
	end := searchEnd(haystack, key)
	for i := 0; i < end; i++ {
		k := matchLen(haystack, i, key)
		if k >= minMatchLen && k > m.Len {
			m = Match{Pos: i, Len: k}
			ok = true
			if k == len(key) {
				break
			}
		}
	}
	return m, ok
}
