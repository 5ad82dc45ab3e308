// Package lz77 implements a simple LZ77 stream compressor.
//
// The compressed stream is a sequence of records. Each record starts with a
// 16-bit big-endian token. The high WindowBits bits of the token hold a
// distance, the remaining bits a length. A distance of zero introduces a
// literal run of length+1 bytes. A non-zero distance describes a copy of
// length bytes starting distance bytes before the end of the decoded data,
// followed by one literal byte. The copy may overlap the bytes it produces.
//
// The stream has no header and no end marker. Writer and Reader must be
// configured with the same WindowBits value; the stream ends at the end of
// the underlying reader.
//
// The Writer finds matches using a Searcher. LinearSearcher compares every
// position of the window; HashSearcher checks only positions whose two-byte
// hash matches and produces the same stream faster.
package lz77
