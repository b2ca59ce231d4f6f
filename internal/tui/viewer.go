// Package tui is the interactive terminal viewer: a spinning
// perspective rendering of the cube with keyboard-driven layer turns.
// All mutable state (cube, orientation, RNG, selection) lives in the
// bubbletea model; the core packages stay pure.
package tui

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seamusw/cubeviz"
	"github.com/seamusw/cubeviz/geom"
	"github.com/seamusw/cubeviz/render"
)

const (
	viewDistance   = 14.0
	screenDistance = 24.0
	spinStep       = 0.035
	arrowStep      = 0.12
	tickInterval   = 50 * time.Millisecond
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	colorStyles = map[cubeviz.Color]lipgloss.Style{
		cubeviz.White:  lipgloss.NewStyle().Background(lipgloss.Color("15")),
		cubeviz.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("11")),
		cubeviz.Green:  lipgloss.NewStyle().Background(lipgloss.Color("10")),
		cubeviz.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("12")),
		cubeviz.Red:    lipgloss.NewStyle().Background(lipgloss.Color("9")),
		cubeviz.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")),
		cubeviz.Hidden: lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
)

type tickMsg time.Time

// Model is the viewer's per-tick state bundle.
type Model struct {
	cube        *cubeviz.Cube
	orientation geom.Matrix
	rng         *rand.Rand
	moveCount   int
	lastMove    string
	spinning    bool
	width       int
	height      int
	err         error
	quitting    bool
}

// NewModel builds a viewer for a cube of the given side, pre-applying
// the supplied moves (a stored session replay or a fresh scramble).
func NewModel(side int, seed int64, moves []cubeviz.Move) (*Model, error) {
	c, err := cubeviz.New(side)
	if err != nil {
		return nil, err
	}
	if len(moves) > 0 {
		c, err = c.Apply(moves...)
		if err != nil {
			return nil, fmt.Errorf("applying initial moves: %w", err)
		}
	}
	return &Model{
		cube:        c,
		orientation: geom.RotationY(0.5).Compose(geom.RotationX(0.35)),
		rng:         rand.New(rand.NewSource(seed)),
		moveCount:   len(moves),
		spinning:    true,
		width:       72,
		height:      34,
	}, nil
}

// Run starts the viewer in the alternate screen.
func Run(side int, seed int64, moves []cubeviz.Move) error {
	m, err := NewModel(side, seed, moves)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer error: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - 6 // leave room for title/status/help
		return m, nil

	case tickMsg:
		if m.spinning {
			m.orientation = geom.RotationY(spinStep).
				Compose(geom.RotationX(spinStep / 2)).
				Compose(m.orientation)
		}
		return m, m.tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case " ":
		m.spinning = !m.spinning

	case "up":
		m.orientation = geom.RotationX(-arrowStep).Compose(m.orientation)
	case "down":
		m.orientation = geom.RotationX(arrowStep).Compose(m.orientation)
	case "left":
		m.orientation = geom.RotationY(-arrowStep).Compose(m.orientation)
	case "right":
		m.orientation = geom.RotationY(arrowStep).Compose(m.orientation)

	case "s":
		m.applyMove(cubeviz.RandomMove(m.rng, m.cube.Side()))
	case "S":
		for _, mv := range cubeviz.Scramble(m.rng, m.cube.Side(), 10) {
			m.applyMove(mv)
		}

	case "r":
		fresh, err := cubeviz.New(m.cube.Side())
		if err != nil {
			m.err = err
			break
		}
		m.cube = fresh
		m.moveCount = 0
		m.lastMove = ""
		m.err = nil

	case "x", "y", "z", "X", "Y", "Z":
		m.applyMove(keyMove(msg.String()))
	}
	return m, nil
}

// keyMove maps the letter keys to a depth-0 turn; uppercase turns the
// other way.
func keyMove(key string) cubeviz.Move {
	rotation := cubeviz.Positive90
	switch key {
	case "X", "Y", "Z":
		rotation = cubeviz.Negative90
	}
	var axis cubeviz.Axis
	switch strings.ToLower(key) {
	case "x":
		axis = cubeviz.X
	case "y":
		axis = cubeviz.Y
	default:
		axis = cubeviz.Z
	}
	return cubeviz.Move{Axis: axis, Rotation: rotation, Depth: 0}
}

func (m *Model) applyMove(mv cubeviz.Move) {
	next, err := m.cube.Rotate(mv)
	if err != nil {
		m.err = err
		return
	}
	m.cube = next
	m.moveCount++
	m.lastMove = mv.Notation()
	m.err = nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("cubeviz"))
	b.WriteString("\n")

	status := fmt.Sprintf("side %d | moves %d", m.cube.Side(), m.moveCount)
	if m.cube.IsSolved() {
		status += " | solved"
	}
	b.WriteString(statusStyle.Render(status))
	if m.lastMove != "" {
		b.WriteString("  ")
		b.WriteString(moveStyle.Render(m.lastMove))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
	}
	b.WriteString("\n")

	b.WriteString(m.renderCube())

	b.WriteString(helpStyle.Render(
		"arrows rotate | space spin | s/S scramble | x/y/z turn (shift reverses) | r reset | q quit"))
	return b.String()
}

// renderCube paints the depth-sorted projected squares into a
// character grid, nearest squares last.
func (m *Model) renderCube() string {
	width, height := m.width, m.height
	if width < 10 || height < 6 {
		return statusStyle.Render("window too small") + "\n"
	}

	squares := render.CubeToSquares(render.ViewTransform(m.orientation, viewDistance), m.cube)
	render.SortBackToFront(squares)

	grid := make([][]cubeviz.Color, height)
	painted := make([][]bool, height)
	for r := range grid {
		grid[r] = make([]cubeviz.Color, width)
		painted[r] = make([]bool, width)
	}

	// Scale projected coordinates to the grid; terminal cells are
	// roughly twice as tall as wide, so columns get double the scale.
	// The worst-case projected half-extent is a cube corner at its
	// nearest approach to the viewer.
	half := float64(m.cube.Side()) / 2
	extent := half * screenDistance / (viewDistance - half)
	scale := (float64(height)/2 - 1) * 0.9 / extent
	cx := float64(width) / 2
	cy := float64(height) / 2

	for _, sq := range squares {
		facing := render.IsFacingViewer(screenDistance, sq)
		projected, err := render.Project(screenDistance, sq)
		if err != nil {
			m.err = err
			continue
		}

		color := projected.Front
		if !facing {
			color = projected.Back
		}

		poly := make([][2]float64, len(projected.Points))
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for i, p := range projected.Points {
			sx := cx + p.X*scale*2
			sy := cy - p.Y*scale
			poly[i] = [2]float64{sx, sy}
			minX, minY = math.Min(minX, sx), math.Min(minY, sy)
			maxX, maxY = math.Max(maxX, sx), math.Max(maxY, sy)
		}

		for row := int(minY); row <= int(maxY)+1; row++ {
			if row < 0 || row >= height {
				continue
			}
			for col := int(minX); col <= int(maxX)+1; col++ {
				if col < 0 || col >= width {
					continue
				}
				if pointInQuad(float64(col)+0.5, float64(row)+0.5, poly) {
					grid[row][col] = color
					painted[row][col] = true
				}
			}
		}
	}

	var b strings.Builder
	for r := range grid {
		for c := range grid[r] {
			if painted[r][c] {
				b.WriteString(colorStyles[grid[r][c]].Render(" "))
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// pointInQuad tests a point against a convex quad, tolerating either
// winding by requiring all edge cross products to share a sign.
func pointInQuad(x, y float64, quad [][2]float64) bool {
	sign := 0
	for i, a := range quad {
		b := quad[(i+1)%len(quad)]
		cross := (b[0]-a[0])*(y-a[1]) - (b[1]-a[1])*(x-a[0])
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}
