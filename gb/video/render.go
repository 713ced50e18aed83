package video

import (
	"github.com/mrsharp/gbcore/gb/addr"
	"github.com/mrsharp/gbcore/gb/bit"
)

const (
	lcdcBGWindowEnable = 0
	lcdcObjEnable      = 1
	lcdcObjSize        = 2
	lcdcBGTileMap      = 3
	lcdcTileData       = 4
	lcdcWindowEnable   = 5
	lcdcWindowTileMap  = 6
)

func (p *PPU) lcdc(bitIndex uint8) bool {
	return bit.IsSet(bitIndex, p.bus.Read(addr.LCDC))
}

func (p *PPU) renderScanline() {
	p.drawBackground()
	p.drawWindow()
	p.drawSprites()
}

func (p *PPU) tileAddress(tileIndex byte, signedAddressing bool) uint16 {
	if signedAddressing {
		return uint16(int(addr.TileData2) + int(int8(tileIndex))*16)
	}
	return addr.TileData0 + uint16(tileIndex)*16
}

func (p *PPU) colorIndex(low, high byte, bitFromLeft uint8) uint8 {
	var pixel uint8
	if bit.IsSet(bitFromLeft, low) {
		pixel |= 1
	}
	if bit.IsSet(bitFromLeft, high) {
		pixel |= 2
	}
	return pixel
}

func shadeFromPalette(palette byte, colorIndex uint8) Shade {
	return Shade((palette >> (colorIndex * 2)) & 0x03)
}

func (p *PPU) drawBackground() {
	rowBase := p.line * Width

	if !p.lcdc(lcdcBGWindowEnable) {
		palette := p.bus.Read(addr.BGP)
		shade := shadeFromPalette(palette, 0)
		for x := 0; x < Width; x++ {
			p.framebuffer.Set(x, p.line, shade)
			p.bgShade[rowBase+x] = 0
		}
		return
	}

	signedAddressing := !p.lcdc(lcdcTileData)
	tileMapAddr := addr.TileMap0
	if p.lcdc(lcdcBGTileMap) {
		tileMapAddr = addr.TileMap1
	}

	scx := p.bus.Read(addr.SCX)
	scy := p.bus.Read(addr.SCY)
	bgY := (p.line + int(scy)) & 0xFF
	tileRow := (bgY / 8) * 32
	pixelY2 := (bgY % 8) * 2
	palette := p.bus.Read(addr.BGP)

	for x := 0; x < Width; x++ {
		bgX := (x + int(scx)) & 0xFF
		tileCol := bgX / 8
		tileX := bgX % 8

		tileIndex := p.bus.Read(tileMapAddr + uint16(tileRow+tileCol))
		base := p.tileAddress(tileIndex, signedAddressing)
		low := p.bus.Read(base + uint16(pixelY2))
		high := p.bus.Read(base + uint16(pixelY2) + 1)

		colorIdx := p.colorIndex(low, high, uint8(7-tileX))
		p.framebuffer.Set(x, p.line, shadeFromPalette(palette, colorIdx))
		p.bgShade[rowBase+x] = colorIdx
	}
}

func (p *PPU) drawWindow() {
	if !p.lcdc(lcdcWindowEnable) {
		return
	}

	wy := p.bus.Read(addr.WY)
	wx := int(p.bus.Read(addr.WX)) - 7

	if int(wy) > p.line || wx >= Width {
		return
	}

	signedAddressing := !p.lcdc(lcdcTileData)
	tileMapAddr := addr.TileMap0
	if p.lcdc(lcdcWindowTileMap) {
		tileMapAddr = addr.TileMap1
	}

	tileRow := (p.windowLine / 8) * 32
	pixelY2 := (p.windowLine % 8) * 2
	rowBase := p.line * Width
	palette := p.bus.Read(addr.BGP)

	for x := 0; x < Width; x++ {
		bufferX := x
		winX := bufferX - wx
		if winX < 0 {
			continue
		}

		tileCol := winX / 8
		tileX := winX % 8

		tileIndex := p.bus.Read(tileMapAddr + uint16(tileRow+tileCol))
		base := p.tileAddress(tileIndex, signedAddressing)
		low := p.bus.Read(base + uint16(pixelY2))
		high := p.bus.Read(base + uint16(pixelY2) + 1)

		colorIdx := p.colorIndex(low, high, uint8(7-tileX))
		p.framebuffer.Set(bufferX, p.line, shadeFromPalette(palette, colorIdx))
		p.bgShade[rowBase+bufferX] = colorIdx
	}

	p.windowLine++
}

type visibleSprite struct {
	index int
	y, x  int
	tile  byte
	flags byte
}

func (p *PPU) scanSprites(height int) []visibleSprite {
	var visible []visibleSprite

	for i := 0; i < 40; i++ {
		base := addr.OAMStart + uint16(i*4)
		y := int(p.bus.Read(base)) - 16

		if p.line < y || p.line >= y+height {
			continue
		}

		visible = append(visible, visibleSprite{
			index: i,
			y:     y,
			x:     int(p.bus.Read(base+1)) - 8,
			tile:  p.bus.Read(base + 2),
			flags: p.bus.Read(base + 3),
		})

		if len(visible) == 10 {
			break
		}
	}

	return visible
}

func (p *PPU) drawSprites() {
	if !p.lcdc(lcdcObjEnable) {
		return
	}

	height := 8
	if p.lcdc(lcdcObjSize) {
		height = 16
	}

	sprites := p.scanSprites(height)

	p.priority.clear()
	for _, s := range sprites {
		for dx := 0; dx < 8; dx++ {
			p.priority.tryClaim(s.x+dx, s.index, s.x)
		}
	}

	rowBase := p.line * Width

	for _, s := range sprites {
		flipX := bit.IsSet(5, s.flags)
		flipY := bit.IsSet(6, s.flags)
		aboveBG := !bit.IsSet(7, s.flags)
		palette := addr.OBP0
		if bit.IsSet(4, s.flags) {
			palette = addr.OBP1
		}

		row := p.line - s.y
		if flipY {
			row = height - 1 - row
		}

		tileIndex := s.tile
		if height == 16 {
			tileIndex &= 0xFE
		}
		pixelY2 := (row % 8) * 2
		if height == 16 && row >= 8 {
			tileIndex++
		}

		base := addr.TileData0 + uint16(tileIndex)*16
		low := p.bus.Read(base + uint16(pixelY2))
		high := p.bus.Read(base + uint16(pixelY2) + 1)
		paletteValue := p.bus.Read(palette)

		for dx := 0; dx < 8; dx++ {
			bufferX := s.x + dx
			if p.priority.ownerOf(bufferX) != s.index {
				continue
			}

			bitFromLeft := uint8(7 - dx)
			if flipX {
				bitFromLeft = uint8(dx)
			}

			colorIdx := p.colorIndex(low, high, bitFromLeft)
			if colorIdx == 0 {
				continue
			}

			if !aboveBG && p.bgShade[rowBase+bufferX] != 0 {
				continue
			}

			if bufferX < 0 || bufferX >= Width {
				continue
			}

			p.framebuffer.Set(bufferX, p.line, shadeFromPalette(paletteValue, colorIdx))
		}
	}
}
