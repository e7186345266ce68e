package board

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fen is a position in Forsyth-Edwards notation.
type Fen string

// StartingFen is the standard initial position.
const StartingFen Fen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FenPlusMoves is a replay unit: a base position and the moves to apply on
// top of it.
type FenPlusMoves struct {
	OriginalFen     Fen       `yaml:"original_fen"`
	SubsequentMoves []MoveUCI `yaml:"subsequent_moves"`
}

// FenPlusMoveHistory is the minimal dump of a game in progress: the current
// position and the record of the moves that led to it. It is what Dump
// writes and what Resume restores from.
type FenPlusMoveHistory struct {
	CurrentFen      Fen       `yaml:"current_fen"`
	HistoricalMoves []MoveUCI `yaml:"historical_moves"`
}

// CurrentTurn parses only the turn field of the stored position. A FEN with
// the turn field missing defaults to White.
func (fh FenPlusMoveHistory) CurrentTurn() (Color, error) {
	parts := strings.Fields(string(fh.CurrentFen))
	if len(parts) == 0 {
		return White, ErrEmptyFen
	}
	if len(parts) == 1 {
		return White, nil
	}
	switch parts[1] {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return White, fmt.Errorf("%w: %q", ErrInvalidFenTurn, parts[1])
	}
}

// WriteSnapshot encodes a snapshot as YAML.
func WriteSnapshot(w io.Writer, snap FenPlusMoveHistory) error {
	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("board: encode snapshot: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// LoadSnapshot decodes a YAML snapshot previously written by Dump.
func LoadSnapshot(r io.Reader) (FenPlusMoveHistory, error) {
	var snap FenPlusMoveHistory
	data, err := io.ReadAll(r)
	if err != nil {
		return snap, fmt.Errorf("board: read snapshot: %w", err)
	}
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("board: decode snapshot: %w", err)
	}
	if snap.CurrentFen == "" {
		return snap, ErrEmptyFen
	}
	return snap, nil
}

// fenFields carries the non-placement fields of a parsed FEN.
type fenFields struct {
	turn     Color
	rights   CastlingRights
	ep       Square
	halfmove int
	fullmove int
}

// parseFenFields validates a FEN string and extracts its metadata fields.
// The placement field is checked structurally; the engines stay
// authoritative for the actual piece layout.
func parseFenFields(f Fen) (fenFields, error) {
	var out fenFields
	if strings.TrimSpace(string(f)) == "" {
		return out, ErrEmptyFen
	}
	parts := strings.Fields(string(f))
	if len(parts) != 6 {
		return out, fmt.Errorf("%w: want 6 fields, got %d in %q", ErrInvalidFen, len(parts), f)
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return out, fmt.Errorf("%w: want 8 ranks, got %d in %q", ErrInvalidFen, len(ranks), f)
	}
	for _, rank := range ranks {
		width := 0
		for _, r := range rank {
			switch {
			case r >= '1' && r <= '8':
				width += int(r - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", r):
				width++
			default:
				return out, fmt.Errorf("%w: bad placement char %q in %q", ErrInvalidFen, r, f)
			}
		}
		if width != 8 {
			return out, fmt.Errorf("%w: rank %q does not span 8 files", ErrInvalidFen, rank)
		}
	}

	switch parts[1] {
	case "w":
		out.turn = White
	case "b":
		out.turn = Black
	default:
		return out, fmt.Errorf("%w: %q", ErrInvalidFenTurn, parts[1])
	}

	if parts[2] != "-" {
		for _, r := range parts[2] {
			switch r {
			case 'K':
				out.rights |= CastlingWhiteK
			case 'Q':
				out.rights |= CastlingWhiteQ
			case 'k':
				out.rights |= CastlingBlackK
			case 'q':
				out.rights |= CastlingBlackQ
			default:
				return out, fmt.Errorf("%w: bad castling char %q", ErrInvalidFen, r)
			}
		}
	}

	out.ep = NoSquare
	if parts[3] != "-" {
		sq, err := SquareFromAlgebraic(parts[3])
		if err != nil {
			return out, fmt.Errorf("%w: bad en passant field %q", ErrInvalidFen, parts[3])
		}
		out.ep = sq
	}

	half, err := strconv.Atoi(parts[4])
	if err != nil || half < 0 {
		return out, fmt.Errorf("%w: bad halfmove clock %q", ErrInvalidFen, parts[4])
	}
	out.halfmove = half

	full, err := strconv.Atoi(parts[5])
	if err != nil || full < 1 {
		return out, fmt.Errorf("%w: bad fullmove number %q", ErrInvalidFen, parts[5])
	}
	out.fullmove = full

	return out, nil
}
