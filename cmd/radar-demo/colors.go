package main

import "image/color"

var (
	groundColor = color.RGBA{R: 28, G: 34, B: 26, A: 255}
	wallColor   = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	enemyColor  = color.RGBA{R: 235, G: 64, B: 52, A: 255}
	allyColor   = color.RGBA{R: 60, G: 170, B: 255, A: 255}
	poiColor    = color.RGBA{R: 240, G: 200, B: 40, A: 255}
	playerColor = color.RGBA{R: 235, G: 235, B: 245, A: 255}
)
