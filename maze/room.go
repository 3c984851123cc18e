package maze

// CenterRoomCells returns the 2x2 block at the middle of the grid in the
// order top-left, top-right, bottom-left, bottom-right.
func CenterRoomCells(g *Grid) [4]*Cell {
	row, col := g.height/2-1, g.width/2-1
	return [4]*Cell{
		g.CellAt(row, col),
		g.CellAt(row, col+1),
		g.CellAt(row+1, col),
		g.CellAt(row+1, col+1),
	}
}

// CarveCenterRoom opens the four internal walls of the center block and
// leaves one randomly chosen block cell unvisited. The other three are marked
// visited so the carving algorithm can only reach the room through the chosen
// cell, which is returned as the start cell.
func CarveCenterRoom(g *Grid, rng Rand) (*Cell, [4]*Cell, error) {
	room := CenterRoomCells(g)
	topLeft, topRight, bottomLeft, bottomRight := room[0], room[1], room[2], room[3]

	pairs := [][2]*Cell{
		{topLeft, topRight},
		{bottomLeft, bottomRight},
		{topLeft, bottomLeft},
		{topRight, bottomRight},
	}
	for _, p := range pairs {
		if err := RemoveWall(p[0], p[1]); err != nil {
			return nil, room, err
		}
	}

	start := rng.Intn(len(room))
	for i, c := range room {
		if i != start {
			c.Visited = true
		}
	}
	return room[start], room, nil
}
