package video

// spritePriority resolves per-pixel ownership among overlapping sprites
// on a scanline: lower X wins, ties broken by lower OAM index. Computing
// ownership up front avoids sorting the scanline's sprite list before
// drawing.
type spritePriority struct {
	owner  [Width]int
	ownerX [Width]int
}

func (s *spritePriority) clear() {
	for i := range s.owner {
		s.owner[i] = -1
		s.ownerX[i] = 0xFF
	}
}

func (s *spritePriority) tryClaim(pixelX, spriteIndex, spriteX int) {
	if pixelX < 0 || pixelX >= Width {
		return
	}

	current := s.owner[pixelX]
	currentX := s.ownerX[pixelX]

	wins := current == -1 || spriteX < currentX || (spriteX == currentX && spriteIndex < current)
	if !wins {
		return
	}

	s.owner[pixelX] = spriteIndex
	s.ownerX[pixelX] = spriteX
}

func (s *spritePriority) ownerOf(pixelX int) int {
	if pixelX < 0 || pixelX >= Width {
		return -1
	}
	return s.owner[pixelX]
}
