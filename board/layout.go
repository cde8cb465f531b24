package board

// A Layout describes the premium squares of a board, one string per
// row. Rows need not equal columns; the classic game happens to be
// square.
type Layout struct {
	Name string
	Rows []string
}

// CrosswordGameLayout is the standard 15x15 layout, featuring lots of
// wingos and blonks.
var CrosswordGameLayout = Layout{
	Name: "CrosswordGame",
	Rows: []string{
		`=  '   =   '  =`,
		` -   "   "   - `,
		`  -   ' '   -  `,
		`'  -   '   -  '`,
		`    -     -    `,
		` "   "   "   " `,
		`  '   ' '   '  `,
		`=  '   -   '  =`,
		`  '   ' '   '  `,
		` "   "   "   " `,
		`    -     -    `,
		`'  -   '   -  '`,
		`  -   ' '   -  `,
		` -   "   "   - `,
		`=  '   =   '  =`,
	},
}

// LayoutByName resolves a named layout.
func LayoutByName(name string) (Layout, error) {
	switch name {
	case "", CrosswordGameLayout.Name:
		return CrosswordGameLayout, nil
	}
	return Layout{}, &ValidationError{Row: -1, Reason: "unknown layout " + name}
}
