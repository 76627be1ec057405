// Package dungeon generates grid floors for the maze below town. A
// floor is fully determined by the dungeon's name and the level: the
// same pair always yields the same layout, so naming a dungeon is
// naming a world.
package dungeon

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strconv"
)

// Floor dimension limits.
const (
	MinSize = 8
	MaxSize = 128
)

const (
	minRooms         = 4
	maxRooms         = 7
	maxPlaceAttempts = 60
)

// Tile is one cell of a floor grid.
type Tile int

const (
	TileWall Tile = iota
	TileFloor
	TileStairsUp
	TileStairsDown
)

// Rune returns the map glyph for the tile.
func (t Tile) Rune() rune {
	switch t {
	case TileFloor:
		return '.'
	case TileStairsUp:
		return '<'
	case TileStairsDown:
		return '>'
	default:
		return '#'
	}
}

// Point is a grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Floor is one generated dungeon level. Tiles is indexed [y][x].
type Floor struct {
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Seed   uint64 `json:"seed"`
	Rooms  int    `json:"rooms"`
	Entry  Point  `json:"entry"`
	Exit   Point  `json:"exit"`

	Tiles [][]Tile `json:"-"`
}

// Seed derives the layout seed from the dungeon name and level.
func Seed(name string, level int) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(level)))
	return h.Sum64()
}

// Generate builds the floor for name and level. Rooms are placed
// first, then chained with corridors in placement order, so every
// room is reachable from the entry stairs.
func Generate(name string, level, width, height int) (*Floor, error) {
	if name == "" {
		return nil, fmt.Errorf("dungeon: name must not be empty")
	}
	if level < 1 {
		return nil, fmt.Errorf("dungeon: level %d out of range", level)
	}
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("dungeon: floor %dx%d below minimum %dx%d", width, height, MinSize, MinSize)
	}
	if width > MaxSize || height > MaxSize {
		return nil, fmt.Errorf("dungeon: floor %dx%d above maximum %dx%d", width, height, MaxSize, MaxSize)
	}

	seed := Seed(name, level)
	rng := rand.New(rand.NewSource(int64(seed)))

	f := &Floor{Name: name, Level: level, Width: width, Height: height, Seed: seed}
	f.Tiles = make([][]Tile, height)
	for y := range f.Tiles {
		f.Tiles[y] = make([]Tile, width)
	}

	rooms := f.placeRooms(rng)
	for i := 1; i < len(rooms); i++ {
		f.carveCorridor(rng, rooms[i-1].center(), rooms[i].center())
	}
	f.Rooms = len(rooms)

	f.Entry = rooms[0].center()
	f.Exit = rooms[len(rooms)-1].center()
	if f.Exit == f.Entry {
		// Single room: keep the stairs apart inside it.
		f.Exit.X++
	}
	f.Tiles[f.Entry.Y][f.Entry.X] = TileStairsUp
	f.Tiles[f.Exit.Y][f.Exit.X] = TileStairsDown
	return f, nil
}

// At returns the tile at x,y. Everything outside the grid is wall.
func (f *Floor) At(x, y int) Tile {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return TileWall
	}
	return f.Tiles[y][x]
}

// Render returns the floor as rows of map glyphs, top to bottom.
func (f *Floor) Render() []string {
	rows := make([]string, f.Height)
	for y, row := range f.Tiles {
		runes := make([]rune, f.Width)
		for x, t := range row {
			runes[x] = t.Rune()
		}
		rows[y] = string(runes)
	}
	return rows
}

type rect struct {
	x, y, w, h int
}

func (r rect) center() Point {
	return Point{X: r.x + r.w/2, Y: r.y + r.h/2}
}

// overlaps reports whether the rooms touch when grown by gap, which
// keeps a wall between neighbors.
func (r rect) overlaps(o rect, gap int) bool {
	return r.x-gap < o.x+o.w && o.x-gap < r.x+r.w &&
		r.y-gap < o.y+o.h && o.y-gap < r.y+r.h
}

// placeRooms carves a random number of non-touching rooms, keeping the
// outer border wall intact. A floor too crowded to fit anything gets
// one central room so generation never fails.
func (f *Floor) placeRooms(rng *rand.Rand) []rect {
	want := minRooms + rng.Intn(maxRooms-minRooms+1)
	maxW := min(9, f.Width-4)
	maxH := min(7, f.Height-4)

	var rooms []rect
	for attempt := 0; attempt < maxPlaceAttempts && len(rooms) < want; attempt++ {
		w := 3 + rng.Intn(maxW-2)
		h := 3 + rng.Intn(maxH-2)
		r := rect{
			x: 1 + rng.Intn(f.Width-w-2),
			y: 1 + rng.Intn(f.Height-h-2),
			w: w,
			h: h,
		}
		if f.collides(r, rooms) {
			continue
		}
		f.carveRoom(r)
		rooms = append(rooms, r)
	}
	if len(rooms) == 0 {
		r := rect{x: f.Width/2 - 2, y: f.Height/2 - 2, w: 5, h: 5}
		f.carveRoom(r)
		rooms = append(rooms, r)
	}
	return rooms
}

func (f *Floor) collides(r rect, rooms []rect) bool {
	for _, o := range rooms {
		if r.overlaps(o, 1) {
			return true
		}
	}
	return false
}

func (f *Floor) carveRoom(r rect) {
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			f.Tiles[y][x] = TileFloor
		}
	}
}

// carveCorridor joins two points with an L-shaped passage, bending
// horizontally or vertically first at random.
func (f *Floor) carveCorridor(rng *rand.Rand, a, b Point) {
	if rng.Intn(2) == 0 {
		f.carveH(a.X, b.X, a.Y)
		f.carveV(a.Y, b.Y, b.X)
	} else {
		f.carveV(a.Y, b.Y, a.X)
		f.carveH(a.X, b.X, b.Y)
	}
}

func (f *Floor) carveH(x1, x2, y int) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		f.Tiles[y][x] = TileFloor
	}
}

func (f *Floor) carveV(y1, y2, x int) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		f.Tiles[y][x] = TileFloor
	}
}
