package chess

import (
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// svg.go renders a Board as an SVG diagram, the way the teacher's own
// declared svgo dependency implies a debug/demo visualization exists
// somewhere in its toolkit. It has no bearing on move generation or
// rules; it only reads the position.

const (
	svgLightFill = "fill:#f0d9b5"
	svgDarkFill  = "fill:#b58863"
	svgTextFill  = "fill:#000000;font-family:serif"
)

// WriteSVG renders the position as an 8x8 SVG diagram to w, squareSize
// pixels per square, orientation from White's point of view (rank 8 at
// the top). Squares under attack are not highlighted; this is a plain
// board-and-pieces diagram.
func (b *Board) WriteSVG(w io.Writer, squareSize int) error {
	if squareSize <= 0 {
		squareSize = 45
	}
	dim := squareSize * 8

	canvas := svg.New(w)
	canvas.Start(dim, dim)
	defer canvas.End()

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := NewSquare(File(file), Rank(7-rank))
			x, y := file*squareSize, rank*squareSize

			fill := svgLightFill
			if (file+int(sq.Rank()))%2 == 0 {
				fill = svgDarkFill
			}
			canvas.Rect(x, y, squareSize, squareSize, fill)

			piece := b.PieceAt(sq)
			if piece == NoPiece {
				continue
			}
			cx := x + squareSize/2
			cy := y + squareSize*3/4
			fontSize := squareSize * 7 / 10
			canvas.Text(cx, cy, piece.String(),
				"text-anchor:middle;font-size:"+strconv.Itoa(fontSize)+"px;"+svgTextFill)
		}
	}
	return nil
}
