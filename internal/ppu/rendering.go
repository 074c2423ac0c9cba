package ppu

// renderPixel computes and stores the composited background+sprite pixel
// at (x, y) using the PPU's current v register and fine-X scroll.
func (p *PPU) renderPixel(x, y int) {
	bgColor, bgOpaque := p.backgroundPixel(x)
	sprColor, sprOpaque, sprBehindBG, isSprite0 := p.spritePixel(x)

	var colorIndex uint8
	switch {
	case !bgOpaque && !sprOpaque:
		colorIndex = p.mem.Read(0x3F00)
	case !bgOpaque && sprOpaque:
		colorIndex = sprColor
	case bgOpaque && !sprOpaque:
		colorIndex = bgColor
	default: // both opaque: priority decides, sprite-0-hit may fire
		if isSprite0 && x != 255 && p.backgroundEnabled() && p.spritesEnabled() {
			p.status |= 0x40
		}
		if sprBehindBG {
			colorIndex = bgColor
		} else {
			colorIndex = sprColor
		}
	}

	rgb := nesPalette[colorIndex&0x3F]
	offset := (y*256 + x) * 3
	p.frameBuffer[offset] = rgb.r
	p.frameBuffer[offset+1] = rgb.g
	p.frameBuffer[offset+2] = rgb.b
}

// backgroundPixel computes the background color index at screen column x
// directly from the current v register and fine-X (spec.md §4.4: no
// fetch-pipeline latency is modeled).
func (p *PPU) backgroundPixel(x int) (uint8, bool) {
	if !p.backgroundEnabled() {
		return 0, false
	}
	if x < 8 && p.mask&0x02 == 0 {
		return 0, false // left-edge background clipping
	}

	fineX := (uint16(x) + uint16(p.x)) & 0x07
	v := p.v

	ntAddr := 0x2000 | (v & 0x0FFF)
	tileIndex := p.mem.Read(ntAddr)

	attrAddr := 0x23C0 | (v & 0x0C00) | ((v >> 4) & 0x38) | ((v >> 2) & 0x07)
	attr := p.mem.Read(attrAddr)
	shift := ((v >> 4) & 0x04) | (v & 0x02)
	paletteBits := (attr >> shift) & 0x03

	fineY := (v >> 12) & 0x07
	patternBase := uint16(0)
	if p.ctrl&0x10 != 0 {
		patternBase = 0x1000
	}
	patternAddr := patternBase + uint16(tileIndex)*16 + fineY
	lowPlane := p.mem.Read(patternAddr)
	highPlane := p.mem.Read(patternAddr + 8)

	bit := 7 - uint8(fineX)
	lowBit := (lowPlane >> bit) & 1
	highBit := (highPlane >> bit) & 1
	pixel := (highBit << 1) | lowBit

	if pixel == 0 {
		return 0, false
	}
	colorIndex := p.mem.Read(0x3F00 | uint16(paletteBits)<<2 | uint16(pixel))
	return colorIndex, true
}

// evaluateSprites scans OAM for up to 8 sprites intersecting the next
// scanline, flagging overflow if more are found.
func (p *PPU) evaluateSprites() {
	p.spriteCount = 0
	p.sprite0OnLine = false
	height := 8
	if p.ctrl&0x20 != 0 {
		height = 16
	}

	for i := 0; i < 64; i++ {
		y := p.oam[i*4]
		// Sprites render delayed by one scanline: a sprite with Y=sY first
		// appears on scanline sY+1 (grounded on the teacher's evaluateSprites).
		row := p.scanline - int(y) - 1
		if row < 0 || row >= height {
			continue
		}
		if p.spriteCount < 8 {
			p.secondaryOAM[p.spriteCount] = spriteSlot{
				y:     y,
				tile:  p.oam[i*4+1],
				attr:  p.oam[i*4+2],
				x:     p.oam[i*4+3],
				index: i,
			}
			if i == 0 {
				p.sprite0OnLine = true
			}
			p.spriteCount++
		} else {
			p.status |= 0x20 // sprite overflow
			break
		}
	}
}

// spritePixel returns the highest-priority opaque sprite pixel at column x
// on the current scanline, if any.
func (p *PPU) spritePixel(x int) (color uint8, opaque bool, behindBG bool, isSprite0 bool) {
	if !p.spritesEnabled() {
		return 0, false, false, false
	}
	if x < 8 && p.mask&0x04 == 0 {
		return 0, false, false, false // left-edge sprite clipping
	}

	height := 8
	if p.ctrl&0x20 != 0 {
		height = 16
	}

	for i := 0; i < p.spriteCount; i++ {
		s := p.secondaryOAM[i]
		col := x - int(s.x)
		if col < 0 || col > 7 {
			continue
		}
		row := p.scanline - int(s.y) - 1 // one-scanline render delay
		if s.attr&0x80 != 0 {
			row = height - 1 - row
		}
		if s.attr&0x40 != 0 {
			col = 7 - col
		}

		tile := uint16(s.tile)
		patternBase := uint16(0)
		if height == 8 {
			if p.ctrl&0x08 != 0 {
				patternBase = 0x1000
			}
		} else {
			patternBase = uint16(s.tile&0x01) * 0x1000
			tile = uint16(s.tile &^ 0x01)
			if row >= 8 {
				tile++
				row -= 8
			}
		}

		patternAddr := patternBase + tile*16 + uint16(row)
		lowPlane := p.mem.Read(patternAddr)
		highPlane := p.mem.Read(patternAddr + 8)

		bit := 7 - uint8(col)
		lowBit := (lowPlane >> bit) & 1
		highBit := (highPlane >> bit) & 1
		pixel := (highBit << 1) | lowBit
		if pixel == 0 {
			continue // transparent, lower-priority sprites may still show
		}

		paletteBits := s.attr & 0x03
		colorIndex := p.mem.Read(0x3F10 | uint16(paletteBits)<<2 | uint16(pixel))
		return colorIndex, true, s.attr&0x20 != 0, i == 0 && p.sprite0OnLine
	}
	return 0, false, false, false
}
