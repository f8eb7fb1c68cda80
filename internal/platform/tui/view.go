package tui

import (
	"fmt"

	"github.com/puffball-game/puffball/internal/config"
	"github.com/puffball-game/puffball/internal/core"
	"github.com/puffball-game/puffball/internal/game"
	"github.com/puffball-game/puffball/internal/level"
)

// Scene glyphs.
const (
	glyphBorder   = '▓'
	glyphGem      = '◆'
	glyphPump     = '⊕'
	glyphMine     = '✸'
	glyphDisarmed = '·'
	glyphFlag     = '⚑'
	glyphBall     = '●'
	glyphBallFill = 'o'
)

// wallRunes maps a wall's texture class to its fill rune.
var wallRunes = []rune{'█', '▓', '▒', '░'}

// hudRows is the number of screen rows reserved below the scene.
const hudRows = 2

// DrawScene renders the level and ball into the screen buffer through the
// camera. The bottom hudRows rows are left for DrawHUD.
func DrawScene(s *core.Screen, cam *Camera, lvl *level.Level, snap game.Snapshot) {
	s.Clear()

	rows := s.Height() - hudRows
	if rows < 1 {
		rows = s.Height()
	}

	// Background pass: sample the world at each cell center so walls and the
	// out-of-map border scale with the camera for free.
	for y := 0; y < rows; y++ {
		for x := 0; x < s.Width(); x++ {
			p := core.V(
				cam.pos.X+(float64(x)+0.5)*cellUnitsX,
				cam.pos.Y+(float64(y)+0.5)*cellUnitsY,
			)
			if !lvl.Bounds().Contains(p) {
				s.SetCell(x, y, glyphBorder, core.ColorGray)
				continue
			}
			for i := range lvl.Walls {
				if lvl.Walls[i].Box.Contains(p) {
					s.SetCell(x, y, wallRune(lvl.Walls[i].Texture), core.ColorWhite)
					break
				}
			}
		}
	}

	inScene := func(x, y int) bool {
		return x >= 0 && x < s.Width() && y >= 0 && y < rows
	}

	for i := range lvl.Gems {
		if i < len(snap.Collected) && snap.Collected[i] {
			continue
		}
		if x, y := cam.ToCell(lvl.Gems[i].Pos); inScene(x, y) {
			s.SetCell(x, y, glyphGem, core.ColorBrightCyan)
		}
	}

	for i := range lvl.Pumps {
		if x, y := cam.ToCell(lvl.Pumps[i].Pos); inScene(x, y) {
			color := core.ColorBrightGreen
			if snap.PumpHeld {
				color = core.ColorBrightYellow
			}
			s.SetCell(x, y, glyphPump, color)
		}
	}

	for i := range lvl.Mines {
		x, y := cam.ToCell(lvl.Mines[i].Pos)
		if !inScene(x, y) {
			continue
		}
		if i < len(snap.Disarmed) && snap.Disarmed[i] {
			s.SetCell(x, y, glyphDisarmed, core.ColorGray)
		} else {
			s.SetCell(x, y, glyphMine, core.ColorBrightRed)
		}
	}

	if lvl.Finish != nil {
		if x, y := cam.ToCell(lvl.Finish.Pos); inScene(x, y) {
			color := core.ColorYellow
			if snap.GemsCollected == snap.GemsTotal {
				color = core.ColorBrightYellow
			}
			s.SetCell(x, y, glyphFlag, color)
		}
	}

	drawBall(s, cam, snap, rows)
}

// drawBall fills the cells covered by the ball's circle so its size, and
// therefore its remaining mass, stays readable on screen.
func drawBall(s *core.Screen, cam *Camera, snap game.Snapshot, rows int) {
	radius := snap.BallMass / 2
	cx, cy := cam.ToCell(snap.BallPos)

	spanX := cam.CellRadius(radius)
	spanY := spanX / 2
	if spanY < 0 {
		spanY = 0
	}

	for dy := -spanY; dy <= spanY; dy++ {
		for dx := -spanX; dx <= spanX; dx++ {
			x, y := cx+dx, cy+dy
			if x < 0 || x >= s.Width() || y < 0 || y >= rows {
				continue
			}
			p := core.V(
				cam.pos.X+(float64(x)+0.5)*cellUnitsX,
				cam.pos.Y+(float64(y)+0.5)*cellUnitsY,
			)
			if p.Sub(snap.BallPos).LenSq() > radius*radius {
				continue
			}
			glyph := glyphBallFill
			if dx == 0 && dy == 0 {
				glyph = glyphBall
			}
			s.SetCell(x, y, glyph, core.ColorBrightMagenta)
		}
	}
}

// DrawHUD renders the status rows: mass gauge, gem progress and elapsed time,
// plus a state line when the attempt is over.
func DrawHUD(s *core.Screen, lvl *level.Level, snap game.Snapshot, phys config.PhysicsConfig, tickRate int) {
	y := s.Height() - hudRows
	if y < 0 {
		return
	}

	gauge := massGauge(snap.BallMass, phys, 12)
	seconds := 0.0
	if tickRate > 0 {
		seconds = float64(snap.Ticks) / float64(tickRate)
	}
	status := fmt.Sprintf(" %s  Mass %s %4.1f  Gems %d/%d  %6.1fs",
		lvl.Name, gauge, snap.BallMass, snap.GemsCollected, snap.GemsTotal, seconds)
	s.DrawTextColored(0, y, status, core.ColorWhite)

	line := " arrows/wasd thrust · esc abandon · q quit"
	color := core.ColorGray
	switch snap.State {
	case game.StateWon:
		line = fmt.Sprintf(" Level complete in %.1fs!  r retry · enter continue · q quit", seconds)
		color = core.ColorBrightGreen
	case game.StateLost:
		line = fmt.Sprintf(" You %s.  r retry · enter continue · q quit", snap.Reason)
		color = core.ColorBrightRed
	case game.StateAbandoned:
		line = " Attempt abandoned.  r retry · enter continue · q quit"
		color = core.ColorYellow
	}
	s.DrawTextColored(0, y+1, line, color)
}

// massGauge renders the mass as a fixed-width bar between the implosion and
// explosion bounds.
func massGauge(mass float64, phys config.PhysicsConfig, width int) string {
	span := phys.MassMax - phys.MassMin
	frac := 0.0
	if span > 0 {
		frac = core.ClampF((mass-phys.MassMin)/span, 0, 1)
	}
	filled := int(frac * float64(width))

	bar := make([]rune, 0, width+2)
	bar = append(bar, '[')
	for i := 0; i < width; i++ {
		if i < filled {
			bar = append(bar, '█')
		} else {
			bar = append(bar, '░')
		}
	}
	bar = append(bar, ']')
	return string(bar)
}

func wallRune(texture int) rune {
	if texture < 0 || texture >= len(wallRunes) {
		return wallRunes[0]
	}
	return wallRunes[texture]
}
