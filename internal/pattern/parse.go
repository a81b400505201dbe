package pattern

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a pattern in the plaintext ".cells" format: lines starting with
// '!' are comments, 'O' or '*' mark live cells and '.' marks dead ones.
func Parse(r io.Reader) (Pattern, error) {
	var (
		out Pattern
		row int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for col, ch := range line {
			switch ch {
			case 'O', '*':
				out = append(out, Point{DX: col, DY: row})
			case '.':
			default:
				return nil, errors.Errorf("[Parse] unexpected %q at row %d col %d", ch, row, col)
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "[Parse] failed to read pattern")
	}
	return out, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Pattern {
	p, err := Parse(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return p
}
