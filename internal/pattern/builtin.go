package pattern

// ID identifies a pattern in a Library.
type ID string

// Built-in pattern identifiers.
const (
	Glider     ID = "glider"
	Blinker    ID = "blinker"
	Block      ID = "block"
	LWSS       ID = "lwss"
	RPentomino ID = "r-pentomino"
	Acorn      ID = "acorn"
	GosperGun  ID = "gosper-gun"
	Single     ID = "dot"
)

var builtins = []struct {
	id    ID
	cells string
}{
	{Single, "O"},
	{Glider, `
.O.
..O
OOO`},
	{Blinker, "OOO"},
	{Block, `
OO
OO`},
	{LWSS, `
.O..O
O....
O...O
OOOO.`},
	{RPentomino, `
.OO
OO.
.O.`},
	{Acorn, `
.O.....
...O...
OO..OOO`},
	{GosperGun, `
........................O...........
......................O.O...........
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO..............
OO........O...O.OO....O.O...........
..........O.....O.......O...........
...........O...O....................
............OO......................`},
}

// Builtins returns a library holding the built-in patterns.
func Builtins() *Library {
	lib := NewLibrary()
	for _, b := range builtins {
		lib.Register(b.id, MustParse(trimLeadingNewline(b.cells)))
	}
	return lib
}

func trimLeadingNewline(s string) string {
	if len(s) > 0 && s[0] == '\n' {
		return s[1:]
	}
	return s
}
