package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "■"
	emptyBlock  = "□"
)

// RenderSetProgress renders logged sets against the target, e.g. ■■□ 2/3.
// Extra sets beyond the target are shown in yellow.
func RenderSetProgress(done, target int) string {
	if done < 0 {
		done = 0
	}
	if target < 0 {
		target = 0
	}
	filled := min(done, target)
	bar := StyleGreen.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, target-filled))
	if extra := done - target; extra > 0 {
		bar += StyleYellow.Render(strings.Repeat(filledBlock, extra))
	}
	return fmt.Sprintf("%s %d/%d", bar, done, target)
}
