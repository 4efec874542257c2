// Package hashing computes Zobrist keys for positions and detects repeated
// positions in a batch.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Key tables, filled once from a fixed seed so keys are stable across runs.
var (
	pieceKeys   [2][chess.NumKinds][chess.NumSquares]uint64
	movedKeys   [2][chess.NumKinds][chess.NumSquares]uint64
	blackToMove uint64
)

func init() {
	state := uint64(0x9e3779b97f4a7c15)
	next := func() uint64 {
		// splitmix64
		state += 0x9e3779b97f4a7c15
		z := state
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		return z ^ (z >> 31)
	}
	for c := 0; c < 2; c++ {
		for k := 0; k < int(chess.NumKinds); k++ {
			for sq := 0; sq < chess.NumSquares; sq++ {
				pieceKeys[c][k][sq] = next()
				movedKeys[c][k][sq] = next()
			}
		}
	}
	blackToMove = next()
}

// GenerateZobristHash returns the Zobrist key of board with toMove to play.
// The moved flag is part of the key, so positions that differ only in
// castling rights hash differently.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece, ok := board.Get(sq)
		if !ok || piece.Colour > chess.White {
			continue
		}
		if piece.Moved {
			hash ^= movedKeys[piece.Colour][piece.Kind][sq]
		} else {
			hash ^= pieceKeys[piece.Colour][piece.Kind][sq]
		}
	}
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// WeakHash is a cheap additive checksum of the placement, used to confirm a
// Zobrist match.
func WeakHash(board *chess.Board) uint64 {
	var hash uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if piece, ok := board.Get(sq); ok {
			hash += uint64(sq+1) * uint64(int(piece.Kind)+8*int(piece.Colour))
		}
	}
	return hash
}

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable maps a Zobrist key to the weak hashes seen under it
	hashTable      map[uint64][]uint64
	duplicateCount int
	// maxCapacity limits stored positions; 0 means unlimited
	maxCapacity int
	size        int
}

// NewDuplicateDetector creates a detector holding at most maxCapacity
// positions. A maxCapacity of 0 means unlimited.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]uint64),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether the position was seen before, and records it
// if not. Once the detector is full new positions are no longer recorded,
// but lookups still work.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, toMove chess.Colour) bool {
	if board == nil {
		return false
	}

	hash := GenerateZobristHash(board, toMove)
	weak := WeakHash(board)

	for _, seen := range d.hashTable[hash] {
		if seen == weak {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[hash] = append(d.hashTable[hash], weak)
	d.size++
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the detector.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]uint64)
	d.duplicateCount = 0
	d.size = 0
}
