// Package view draws grids and search results for the terminal.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/talgya/hexnav/internal/search"
	"github.com/talgya/hexnav/internal/world"
)

// Glyphs used for cells.
const (
	GlyphOccupied = '@'
	GlyphPath     = 'o'
	GlyphWall     = '#'
	GlyphWater    = '~'
)

var terrainGlyphs = map[int]rune{
	world.TerrainSand:  '.',
	world.TerrainGrass: ',',
	world.TerrainMud:   '%',
	world.TerrainStone: '^',
	world.TerrainSnow:  '=',
}

var roleStyles = map[search.Role]lipgloss.Style{
	search.RoleFrontier:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	search.RoleSettled:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	search.RoleReachable: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	search.RolePath:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

var (
	plainStyle    = lipgloss.NewStyle()
	waterStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	wallStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	occupantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// rank orders roles when a cell is visited more than once; higher wins.
var rank = map[search.Role]int{
	search.RoleFrontier:  1,
	search.RoleSettled:   2,
	search.RoleReachable: 3,
	search.RolePath:      4,
}

// Overlay is a search.Sink that remembers the most significant role of
// every visited cell.
type Overlay struct {
	roles map[int]search.Role
}

// NewOverlay returns an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{roles: make(map[int]search.Role)}
}

func (o *Overlay) Visit(v search.Visit) {
	if old, ok := o.roles[v.Index]; ok && rank[old] >= rank[v.Role] {
		return
	}
	o.roles[v.Index] = v.Role
}

// Role returns the recorded role of a cell.
func (o *Overlay) Role(i int) (search.Role, bool) {
	if o == nil {
		return 0, false
	}
	r, ok := o.roles[i]
	return r, ok
}

// Count returns how many cells carry the given role.
func (o *Overlay) Count(role search.Role) int {
	n := 0
	for _, r := range o.roles {
		if r == role {
			n++
		}
	}
	return n
}

// Reset forgets all roles.
func (o *Overlay) Reset() {
	clear(o.roles)
}

// Render draws g with the highest row on top. Odd rows are indented by one
// column so neighbors line up as on the hex layout. The overlay may be nil.
func Render(g *world.Grid, o *Overlay) string {
	var sb strings.Builder
	sb.Grow(g.Len()*2 + g.CellCountZ*2)

	for row := g.CellCountZ - 1; row >= 0; row-- {
		if row&1 == 1 {
			sb.WriteByte(' ')
		}
		for col := 0; col < g.CellCountX; col++ {
			c, _ := g.CellAt(col, row)
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(renderCell(c, o))
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func renderCell(c *world.Cell, o *Overlay) string {
	role, hasRole := o.Role(c.Index)

	glyph, ok := terrainGlyphs[c.TerrainType()]
	if !ok {
		glyph = '?'
	}
	style := plainStyle
	switch {
	case c.IsOccupied():
		return occupantStyle.Render(string(GlyphOccupied))
	case hasRole && role == search.RolePath:
		glyph = GlyphPath
	case c.Walled():
		glyph, style = GlyphWall, wallStyle
	case c.IsUnderwater():
		glyph, style = GlyphWater, waterStyle
	}
	if hasRole {
		style = roleStyles[role]
	}
	return style.Render(string(glyph))
}

// Legend describes the glyphs used by Render.
func Legend() string {
	var parts []string
	for t := world.TerrainSand; t <= world.TerrainSnow; t++ {
		parts = append(parts, string(terrainGlyphs[t])+" "+strings.ToLower(world.TerrainName(t)))
	}
	parts = append(parts,
		string(GlyphWater)+" water",
		string(GlyphWall)+" wall",
		string(GlyphOccupied)+" unit",
		string(GlyphPath)+" path",
	)
	return strings.Join(parts, "  ")
}
