package mdp

import "github.com/hupe1980/algokit/memo"

// Compile time check to ensure Grid satisfies the MDP interface.
var _ MDP[Pos, Action] = (*Grid)(nil)

// Pos addresses a grid cell; row 0 is the top row.
type Pos struct {
	Row int
	Col int
}

// Action is a compass move in the grid world.
type Action int

const (
	North Action = iota
	East
	South
	West
)

func (a Action) String() string {
	switch a {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// left and right are the perpendicular actions of a.
func (a Action) left() Action  { return (a + 3) % 4 }
func (a Action) right() Action { return (a + 1) % 4 }

func (a Action) delta() (dr, dc int) {
	switch a {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, -1
	}
}

// Cell configures one grid position.
type Cell struct {
	Reward   float64
	Wall     bool
	Terminal bool
}

// Grid is a stochastic grid-world MDP: each move reaches the intended
// neighbor with probability 0.8 and slips to either perpendicular neighbor
// with probability 0.1; moves into walls or off the grid stay in place.
//
// Transition distributions are memoized per (state, action) pair, so
// repeated Bellman sweeps never rebuild them.
type Grid struct {
	cells    [][]Cell
	states   []Pos
	discount float64
	trans    *memo.Cache[memo.Key2[Pos, Action], []Outcome[Pos]]
}

// NewGrid creates a Grid from cells indexed as cells[row][col]. All rows
// must have equal length. discount must be in (0, 1].
func NewGrid(cells [][]Cell, discount float64) *Grid {
	g := &Grid{
		cells:    cells,
		discount: discount,
	}

	for r, row := range cells {
		for c, cell := range row {
			if !cell.Wall {
				g.states = append(g.states, Pos{Row: r, Col: c})
			}
		}
	}

	g.trans = memo.New(g.computeTransition)

	return g
}

// States returns every non-wall position.
func (g *Grid) States() []Pos { return g.states }

// Actions returns the four compass moves, or nothing for terminal cells.
func (g *Grid) Actions(p Pos) []Action {
	if g.cells[p.Row][p.Col].Terminal {
		return nil
	}
	return []Action{North, East, South, West}
}

// Reward returns the reward collected on entering p.
func (g *Grid) Reward(p Pos) float64 {
	return g.cells[p.Row][p.Col].Reward
}

// Discount returns the discount factor.
func (g *Grid) Discount() float64 { return g.discount }

// Transition returns the memoized successor distribution of taking a in p.
func (g *Grid) Transition(p Pos, a Action) []Outcome[Pos] {
	return g.trans.Evaluate(memo.Key2[Pos, Action]{A: p, B: a})
}

func (g *Grid) computeTransition(k memo.Key2[Pos, Action]) []Outcome[Pos] {
	p, a := k.A, k.B

	var outcomes []Outcome[Pos]
	add := func(prob float64, dest Pos) {
		for i := range outcomes {
			if outcomes[i].State == dest {
				outcomes[i].Prob += prob
				return
			}
		}
		outcomes = append(outcomes, Outcome[Pos]{Prob: prob, State: dest})
	}

	add(0.8, g.move(p, a))
	add(0.1, g.move(p, a.left()))
	add(0.1, g.move(p, a.right()))

	return outcomes
}

// move returns the cell reached by taking a from p, staying in place when
// the target is off the grid or a wall.
func (g *Grid) move(p Pos, a Action) Pos {
	dr, dc := a.delta()
	q := Pos{Row: p.Row + dr, Col: p.Col + dc}

	if q.Row < 0 || q.Row >= len(g.cells) || q.Col < 0 || q.Col >= len(g.cells[q.Row]) {
		return p
	}
	if g.cells[q.Row][q.Col].Wall {
		return p
	}

	return q
}
