package gridworld

// MinLayoutSize is the smallest width and height CreateMap will build
const MinLayoutSize int = 2

// CreateMap builds a playable random layout. Width and height are
// raised to at least MinLayoutSize, walls and mines are generated, the
// top-right cell becomes the Finish and the start cell (0, 0) is
// always Free.
func CreateMap(width, height, walls, mines int, seed uint64) (*Grid, error) {
	if width < MinLayoutSize {
		width = MinLayoutSize
	}
	if height < MinLayoutSize {
		height = MinLayoutSize
	}

	g, err := New(width, height, seed)
	if err != nil {
		return nil, err
	}
	g.Layout(walls, mines)
	return g, nil
}

// Layout regenerates the grid in place with a Finish in the top-right
// corner and a Free start cell
func (g *Grid) Layout(walls, mines int) {
	g.Generate(walls, mines)
	g.cells[g.index(g.width-1, g.height-1)] = Finish
	g.cells[g.index(0, 0)] = Free
}
