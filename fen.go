package chessmg

import (
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

func charFromPiece(p Piece) byte {
	const white = "?PNBRQK"
	c := white[p.Type()]
	if p.Color() == Black {
		c |= 0x20 // lowercase
	}
	return c
}

// ParseFEN parses a FEN string into a new Board. On any malformed input it
// returns a ParseError and no board.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, &ParseError{Reason: "expected 4 to 6 fields, got " + strconv.Itoa(len(fields))}
	}

	board := &Board{enPassantSquare: NoSquare, fullmoveNumber: 1}

	// Piece placement, rank 8 first.
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, &ParseError{Reason: "piece placement must have 8 ranks"}
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p := pieceFromChar(ch)
			if p == NoPiece {
				return nil, &ParseError{Reason: "unrecognized piece character " + string(ch)}
			}
			if file >= 8 {
				return nil, &ParseError{Reason: "too many squares in rank"}
			}
			sq := Square(rank*8 + file)
			ci := int(p.Color())
			board.pieces[int(sq)] = p
			board.occupancy[ci] |= bb(sq)
			board.pieceSet(p)[ci] |= bb(sq)
			file++
		}
		if file != 8 {
			return nil, &ParseError{Reason: "rank does not describe 8 squares"}
		}
	}
	if PopCount(board.kings[White]) != 1 || PopCount(board.kings[Black]) != 1 {
		return nil, &ParseError{Reason: "each side must have exactly one king"}
	}

	// Side to move.
	switch fields[1] {
	case "w":
		board.sideToMove = White
	case "b":
		board.sideToMove = Black
	default:
		return nil, &ParseError{Reason: "side to move must be 'w' or 'b'"}
	}

	// Castling rights.
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				board.castlingRights |= CastlingWhiteK
			case 'Q':
				board.castlingRights |= CastlingWhiteQ
			case 'k':
				board.castlingRights |= CastlingBlackK
			case 'q':
				board.castlingRights |= CastlingBlackQ
			default:
				return nil, &ParseError{Reason: "invalid castling rights character " + string(ch)}
			}
		}
	}

	// En-passant target square.
	if fields[3] != "-" {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return nil, &ParseError{Reason: "invalid en passant square " + fields[3]}
		}
		board.enPassantSquare = sq
	}

	// Halfmove clock and fullmove number.
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil || halfmove < 0 {
			return nil, &ParseError{Reason: "halfmove clock is not a non-negative number"}
		}
		board.halfmoveClock = halfmove
	}
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil || fullmove < 1 {
			return nil, &ParseError{Reason: "fullmove number is not a positive number"}
		}
		board.fullmoveNumber = fullmove
	}

	board.zobristKey = board.ComputeZobrist()
	return board, nil
}

// FEN serializes the board back to FEN. parse(serialize(b)) reproduces b
// bit for bit.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.pieces[rank*8+file]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castlingRights&CastlingWhiteK != 0 {
			sb.WriteByte('K')
		}
		if b.castlingRights&CastlingWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if b.castlingRights&CastlingBlackK != 0 {
			sb.WriteByte('k')
		}
		if b.castlingRights&CastlingBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	sb.WriteString(b.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}
