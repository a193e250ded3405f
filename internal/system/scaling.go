// internal/system/scaling.go
package system

import (
	"math"

	"go-arena-survival/internal/config"
)

// NextWaveMultiplier — кусочная формула волнового множителя статов.
// Вызывается один раз на переходе волны с аргументом currentWave - 1,
// чтобы первая волна играла на базовом множителе.
//
// Воспроизведена дословно по живому балансу, включая смешение накопления
// (+=) и замены (=) в последней полосе. Не «чинить» без подтверждения
// геймдизайна: числа определяют баланс.
func NextWaveMultiplier(mult float64, wave int) float64 {
	switch {
	case wave == 2:
		mult += float64(wave) * 0.15
	case wave == 3 || wave == 4:
		mult += float64(wave) * 0.25
	case wave < 7:
		mult += float64(wave) * 0.45
	case wave < 9:
		mult += float64(wave) * 0.65
	case wave < 11:
		mult += float64(wave) * 1.15
	case wave < 14:
		mult += float64(wave) * 1.45
	case wave < 17:
		mult += float64(wave) * 1.85
	case wave < 21:
		mult += float64(wave) * 2.25
	default:
		mult = math.Exp(float64(wave-19) / 6.0)
	}
	return mult
}

// SpeedMultiplier — масштабирование скорости, независимое от формулы выше:
// min(speedCap, 1 + wave*0.1), кап задаётся типом врага.
func SpeedMultiplier(wave int, speedCap float64) float64 {
	return math.Min(speedCap, 1.0+float64(wave)*config.EnemySpeedPerWave)
}
