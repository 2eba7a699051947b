// Package image parses program images: comma separated signed decimal
// integers, with any surrounding whitespace, and an optional trailing comma.
package image

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Image is the parsed form of a program image.
type Image struct {
	Cells []*Cell `parser:"( @@ ( ',' @@ )* ','? )?"`
}

// Cell is a single literal, retaining its position for error reporting.
type Cell struct {
	Pos   lexer.Position
	Value string `parser:"@Int"`
}

var imageLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Int", Pattern: `[-+]?[0-9]+`},
	{Name: "Punct", Pattern: `,`},
})

var imageParser = participle.MustBuild[Image](
	participle.Lexer(imageLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse reads a program image from r; name is used in error messages.
func Parse(name string, r io.Reader) ([]int64, error) {
	img, err := imageParser.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return img.Values()
}

// ParseString parses a program image from a string.
func ParseString(s string) ([]int64, error) {
	img, err := imageParser.ParseString("", s)
	if err != nil {
		return nil, err
	}
	return img.Values()
}

// ReadFile parses the named file, or standard input when name is "-" or empty.
func ReadFile(name string) ([]int64, error) {
	if name == "" || name == "-" {
		return Parse("<stdin>", os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(name, f)
}

// Values converts every cell literal into an integer.
func (img *Image) Values() ([]int64, error) {
	values := make([]int64, len(img.Cells))
	for i, cell := range img.Cells {
		val, err := strconv.ParseInt(cell.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%v: cell %v: %w", cell.Pos, i, err)
		}
		values[i] = val
	}
	return values, nil
}
