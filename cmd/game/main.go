// cmd/game/main.go
// Хост-оболочка ядра: цикл кадров ebiten, ввод, наивная широкая фаза
// коллизий и отрисовка. Обнаружение контактов здесь умышленно простое —
// ядро потребляет только события, а не геометрию.
package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-arena-survival/internal/app"
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/physics"
)

// obstacle — статичное круглое препятствие арены.
type obstacle struct {
	x, y, r float64
}

type AppGame struct {
	game           *app.Game
	obstacles      []obstacle
	lastUpdateTime time.Time
	waveDelay      float64
}

func NewAppGame() *AppGame {
	return &AppGame{
		game: app.NewGame(0),
		obstacles: []obstacle{
			{x: 300, y: 250, r: 40},
			{x: 900, y: 250, r: 40},
			{x: 300, y: 650, r: 40},
			{x: 900, y: 650, r: 40},
		},
		lastUpdateTime: time.Now(),
		waveDelay:      1.0,
	}
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	g := a.game
	a.handleInput(deltaTime)

	// Следующая волна стартует с небольшой паузой после зачистки.
	if g.IsWaveComplete() {
		a.waveDelay -= deltaTime
		if a.waveDelay <= 0 {
			g.StartWave()
			a.waveDelay = 1.0
		}
	}

	a.detectContacts()
	g.Update(deltaTime)

	if g.Player.IsDead() {
		g.Restart()
	}
	return nil
}

// handleInput — движение WASD и автострельба в курсор.
func (a *AppGame) handleInput(dt float64) {
	p := a.game.Player
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if dx != 0 || dy != 0 {
		length := math.Sqrt(dx*dx + dy*dy)
		p.X += dx / length * config.PlayerSpeed * dt
		p.Y += dy / length * config.PlayerSpeed * dt
	}
	if p.X < config.PlayerRadius {
		p.X = config.PlayerRadius
	}
	if p.X > config.ScreenWidth-config.PlayerRadius {
		p.X = config.ScreenWidth - config.PlayerRadius
	}
	if p.Y < config.PlayerRadius {
		p.Y = config.PlayerRadius
	}
	if p.Y > config.ScreenHeight-config.PlayerRadius {
		p.Y = config.ScreenHeight - config.PlayerRadius
	}

	mx, my := ebiten.CursorPosition()
	a.game.FireAt(float64(mx), float64(my))
}

func circlesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	rr := r1 + r2
	return dx*dx+dy*dy <= rr*rr
}

// detectContacts — наивная O(n^2) широкая фаза: пары пересечений уходят
// в очередь ядра, контакты снарядов с препятствиями проходят через
// двухфазный предикат/коммит.
func (a *AppGame) detectContacts() {
	g := a.game
	p := g.Player

	for _, e := range g.Registry.Enemies() {
		if circlesOverlap(p.X, p.Y, config.PlayerRadius, e.X, e.Y, e.Radius) {
			g.QueueOverlap(p.Body, e.Body)
		}
		for _, shot := range g.PlayerShots.Projectiles() {
			if circlesOverlap(shot.X, shot.Y, shot.Radius, e.X, e.Y, e.Radius) {
				g.QueueOverlap(shot.Body, e.Body)
			}
		}
	}
	for _, shot := range g.Registry.Projectiles() {
		if circlesOverlap(shot.X, shot.Y, shot.Radius, p.X, p.Y, config.PlayerRadius) {
			g.QueueOverlap(shot.Body, p.Body)
		}
	}

	for _, ob := range a.obstacles {
		for _, shot := range g.PlayerShots.Projectiles() {
			if !circlesOverlap(shot.X, shot.Y, shot.Radius, ob.x, ob.y, ob.r) {
				continue
			}
			res := g.CollisionSystem.ResolveObstacleHit(shot.Body)
			res.Commit()
			if res.Decision == physics.Pass && !shot.IsDestroyed && !shot.CanCutTiles {
				// Рикошет: ядро оставило снаряд жить, отскок — наша забота.
				bounce(shot, ob)
			}
		}
		for _, shot := range g.Registry.Projectiles() {
			if !circlesOverlap(shot.X, shot.Y, shot.Radius, ob.x, ob.y, ob.r) {
				continue
			}
			res := g.CollisionSystem.ResolveObstacleHit(shot.Body)
			res.Commit()
		}
	}
}

// bounce отражает скорость снаряда от поверхности круга.
func bounce(p *component.Projectile, ob obstacle) {
	nx := p.X - ob.x
	ny := p.Y - ob.y
	length := math.Sqrt(nx*nx + ny*ny)
	if length == 0 {
		return
	}
	nx /= length
	ny /= length
	dot := p.VX*nx + p.VY*ny
	p.VX -= 2 * dot * nx
	p.VY -= 2 * dot * ny
	p.X = ob.x + nx*(ob.r+p.Radius+1)
	p.Y = ob.y + ny*(ob.r+p.Radius+1)
}

var enemyColors = map[string]color.RGBA{
	"triangle": {R: 0xe5, G: 0x5b, B: 0x5b, A: 0xff},
	"shooter":  {R: 0xf2, G: 0xa6, B: 0x3c, A: 0xff},
	"square":   {R: 0x5b, G: 0x8c, B: 0xe5, A: 0xff},
	"pentagon": {R: 0x9b, G: 0x5b, B: 0xe5, A: 0xff},
	"hexagon":  {R: 0x3c, G: 0xc9, B: 0x8c, A: 0xff},
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	g := a.game

	for _, ob := range a.obstacles {
		vector.DrawFilledCircle(screen, float32(ob.x), float32(ob.y), float32(ob.r), color.RGBA{R: 0x44, G: 0x44, B: 0x4c, A: 0xff}, true)
	}

	for _, e := range g.Registry.Enemies() {
		c, ok := enemyColors[e.DefID]
		if !ok {
			c = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		}
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), c, true)
		if e.Shield > 0 {
			vector.StrokeCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius+3), 2, color.RGBA{R: 0x9c, G: 0xd8, B: 0xff, A: 0xff}, true)
		}
	}
	for _, shot := range g.PlayerShots.Projectiles() {
		vector.DrawFilledCircle(screen, float32(shot.X), float32(shot.Y), float32(shot.Radius), color.RGBA{R: 0xf5, G: 0xf5, B: 0x9c, A: 0xff}, true)
	}
	for _, shot := range g.Registry.Projectiles() {
		vector.DrawFilledCircle(screen, float32(shot.X), float32(shot.Y), float32(shot.Radius), color.RGBA{R: 0xff, G: 0x7a, B: 0x7a, A: 0xff}, true)
	}

	p := g.Player
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.PlayerRadius, color.RGBA{R: 0xdd, G: 0xdd, B: 0xee, A: 0xff}, true)

	hud := fmt.Sprintf("wave %d  score %d  kills %d  hp %d/%d",
		g.WaveState.Number, g.Score(), g.Kills(), p.Health, p.MaxHealth)
	text.Draw(screen, hud, basicfont.Face7x13, 12, 20, color.White)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	// Ассеты переопределяют встроенные библиотеки определений, если есть.
	if err := defs.LoadEnemyDefinitions("assets/enemies.json"); err != nil {
		log.Printf("using built-in enemy definitions: %v", err)
	}
	if err := defs.LoadUpgradeDefinitions("assets/upgrades.json"); err != nil {
		log.Printf("using built-in upgrade definitions: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("arena survival")
	if err := ebiten.RunGame(NewAppGame()); err != nil {
		log.Fatal(err)
	}
}
