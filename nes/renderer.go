package nes

import (
	"image"
	"image/color"
)

// NES PPU generates 256x240 pixels.
const (
	frameWidth  = 256
	frameHeight = 240
)

// colors is the NES master palette. Borrowed from the teacher's render
// path, which borrowed it from "RGB".
// Reference: https://emulation.gametechwiki.com/index.php/Famicom_color_palette
var colors = [64]color.RGBA{
	{0x6D, 0x6D, 0x6D, 255}, {0x00, 0x24, 0x92, 255}, {0x00, 0x00, 0xDB, 255}, {0x6D, 0x49, 0xDB, 255},
	{0x92, 0x00, 0x6D, 255}, {0xB6, 0x00, 0x6D, 255}, {0xB6, 0x24, 0x00, 255}, {0x92, 0x49, 0x00, 255},
	{0x6D, 0x49, 0x00, 255}, {0x24, 0x49, 0x00, 255}, {0x00, 0x6D, 0x24, 255}, {0x00, 0x92, 0x00, 255},
	{0x00, 0x49, 0x49, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
	{0xB6, 0xB6, 0xB6, 255}, {0x00, 0x6D, 0xDB, 255}, {0x00, 0x49, 0xFF, 255}, {0x92, 0x00, 0xFF, 255},
	{0xB6, 0x00, 0xFF, 255}, {0xFF, 0x00, 0x92, 255}, {0xFF, 0x00, 0x00, 255}, {0xDB, 0x6D, 0x00, 255},
	{0x92, 0x6D, 0x00, 255}, {0x24, 0x92, 0x00, 255}, {0x00, 0x92, 0x00, 255}, {0x00, 0xB6, 0x6D, 255},
	{0x00, 0x92, 0x92, 255}, {0x24, 0x24, 0x24, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
	{0xFF, 0xFF, 0xFF, 255}, {0x6D, 0xB6, 0xFF, 255}, {0x92, 0x92, 0xFF, 255}, {0xDB, 0x6D, 0xFF, 255},
	{0xFF, 0x00, 0xFF, 255}, {0xFF, 0x6D, 0xFF, 255}, {0xFF, 0x92, 0x00, 255}, {0xFF, 0xB6, 0x00, 255},
	{0xDB, 0xDB, 0x00, 255}, {0x6D, 0xDB, 0x00, 255}, {0x00, 0xFF, 0x00, 255}, {0x49, 0xFF, 0xDB, 255},
	{0x00, 0xFF, 0xFF, 255}, {0x49, 0x49, 0x49, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
	{0xFF, 0xFF, 0xFF, 255}, {0xB6, 0xDB, 0xFF, 255}, {0xDB, 0xB6, 0xFF, 255}, {0xFF, 0xB6, 0xFF, 255},
	{0xFF, 0x92, 0xFF, 255}, {0xFF, 0xB6, 0xB6, 255}, {0xFF, 0xDB, 0x92, 255}, {0xFF, 0xFF, 0x49, 255},
	{0xFF, 0xFF, 0x6D, 255}, {0xB6, 0xFF, 0x49, 255}, {0x92, 0xFF, 0x6D, 255}, {0x49, 0xFF, 0xDB, 255},
	{0x92, 0xDB, 0xFF, 255}, {0x92, 0x92, 0x92, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
}

// RenderFrame draws the current background from PPU-visible state into a
// 256x240 RGBA image. It is a pure reader: palette bytes, CHR-ROM,
// nametables, scroll, and mirroring, exactly the accessor set spec'd for
// the renderer collaborator. Sprites are drawn on top, back to front so
// sprite 0 ends up topmost; the sprite priority bit (attribute bit 5) is
// not read, so every sprite is drawn in front of the background.
// https://www.nesdev.org/wiki/PPU_rendering
func RenderFrame(p *PPU) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frameWidth, frameHeight))
	palette := p.Palette()

	backgroundColor := func(paletteGroup, paletteValue byte) color.RGBA {
		if paletteValue == 0 {
			return colors[palette[0]&0x3F]
		}
		index := paletteIndex(0x3F00 + uint16(paletteGroup)*4 + uint16(paletteValue))
		return colors[palette[index]&0x3F]
	}

	nameTableBase := p.NameTableAddress()
	bgPatternTable := p.BackgroundPatternTable()
	scrollX, scrollY := p.Scroll()

	for y := 0; y < frameHeight; y++ {
		for x := 0; x < frameWidth; x++ {
			fineX := (x + int(scrollX)) % 256
			fineY := (y + int(scrollY)) % 240
			tileCol := fineX / 8
			tileRow := fineY / 8

			tileIndex := p.ReadNameTable(nameTableBase + uint16(tileRow)*32 + uint16(tileCol))

			attributeByteAddr := nameTableBase + 0x3C0 + uint16(tileRow/4)*8 + uint16(tileCol/4)
			attributeByte := p.ReadNameTable(attributeByteAddr)
			quadrant := (tileRow%4)/2*2 + (tileCol%4)/2
			paletteGroup := (attributeByte >> (uint(quadrant) * 2)) & 0x03

			patternAddr := bgPatternTable + uint16(tileIndex)*16
			fineRow := uint16(fineY % 8)
			lowByte := p.ReadCHR(patternAddr + fineRow)
			highByte := p.ReadCHR(patternAddr + fineRow + 8)
			bit := 7 - uint(fineX%8)
			value := (lowByte>>bit)&1 | ((highByte>>bit)&1)<<1

			img.SetRGBA(x, y, backgroundColor(paletteGroup, value))
		}
	}

	drawSprites(img, p, palette)
	return img
}

// drawSprites paints OAM sprites back to front so index 0 ends up on top,
// matching how real hardware prioritizes overlapping sprites.
func drawSprites(img *image.RGBA, p *PPU, palette [32]byte) {
	oam := p.OAM()
	spritePatternTable := p.SpritePatternTable()

	for i := 63; i >= 0; i-- {
		base := i * 4
		y := int(oam[base])
		tile := oam[base+1]
		attr := oam[base+2]
		x := int(oam[base+3])
		if y >= 0xEF {
			continue // y >= 0xEF is the documented "not displayed" sentinel
		}

		flipH := attr&0x40 != 0
		flipV := attr&0x80 != 0
		paletteGroup := (attr & 0x03) + 4

		patternAddr := spritePatternTable + uint16(tile)*16
		for row := 0; row < 8; row++ {
			srcRow := row
			if flipV {
				srcRow = 7 - row
			}
			lowByte := p.ReadCHR(patternAddr + uint16(srcRow))
			highByte := p.ReadCHR(patternAddr + uint16(srcRow) + 8)
			for col := 0; col < 8; col++ {
				srcCol := col
				if flipH {
					srcCol = 7 - col
				}
				bit := 7 - uint(srcCol)
				value := (lowByte>>bit)&1 | ((highByte>>bit)&1)<<1
				if value == 0 {
					continue // transparent
				}
				index := paletteIndex(0x3F00 + uint16(paletteGroup)*4 + uint16(value))
				px, py := x+col, y+1+row
				if px < 0 || px >= frameWidth || py < 0 || py >= frameHeight {
					continue
				}
				img.SetRGBA(px, py, colors[palette[index]&0x3F])
			}
		}
	}
}
