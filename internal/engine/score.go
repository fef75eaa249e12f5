package engine

import (
	"math"

	"github.com/piwi3910/atlaspack/internal/model"
)

// ScoreResult is a proposed placement and its score. Lower scores are better
// for every heuristic; Primary is compared first, Secondary breaks ties.
type ScoreResult struct {
	Candidate model.Rect
	Primary   int
	Secondary int
}

// noFit is the sentinel returned when no free rectangle can hold the request.
var noFit = ScoreResult{Primary: math.MaxInt, Secondary: math.MaxInt}

// Fits reports whether the result names a real placement.
func (s ScoreResult) Fits() bool {
	return s.Primary != math.MaxInt || s.Secondary != math.MaxInt
}

// better reports whether s beats other.
func (s ScoreResult) better(other ScoreResult) bool {
	return s.Primary < other.Primary || (s.Primary == other.Primary && s.Secondary < other.Secondary)
}

type scoreFunc func(c *Context, width, height int) ScoreResult

// scorers maps each heuristic to its scoring function.
var scorers = map[model.Heuristic]scoreFunc{
	model.BestAreaFit:      scoreBestAreaFit,
	model.BestShortSideFit: scoreBestShortSideFit,
	model.BottomLeft:       scoreBottomLeft,
	model.ContactPoint:     scoreContactPoint,
	model.BestLongSideFit:  scoreBestLongSideFit,
}

// candidateAt carves a width x height candidate from the origin of free.
func candidateAt(free model.Rect, width, height int) model.Rect {
	return model.Rect{Page: free.Page, X: free.X, Y: free.Y, Width: width, Height: height}
}

func fits(free model.Rect, width, height int) bool {
	return free.Width >= width && free.Height >= height
}

func scoreBestAreaFit(c *Context, width, height int) ScoreResult {
	best := noFit
	for _, free := range c.free.rects {
		if !fits(free, width, height) {
			continue
		}
		areaFit := free.Width*free.Height - width*height
		shortSideFit := min(abs(free.Width-width), abs(free.Height-height))

		if areaFit < best.Primary || (areaFit == best.Primary && shortSideFit < best.Secondary) {
			best = ScoreResult{Candidate: candidateAt(free, width, height), Primary: areaFit, Secondary: shortSideFit}
		}
	}
	return best
}

func scoreBestShortSideFit(c *Context, width, height int) ScoreResult {
	best := noFit
	for _, free := range c.free.rects {
		if !fits(free, width, height) {
			continue
		}
		leftoverHoriz := abs(free.Width - width)
		leftoverVert := abs(free.Height - height)
		shortSideFit := min(leftoverHoriz, leftoverVert)
		longSideFit := max(leftoverHoriz, leftoverVert)

		if shortSideFit < best.Primary || (shortSideFit == best.Primary && longSideFit < best.Secondary) {
			best = ScoreResult{Candidate: candidateAt(free, width, height), Primary: shortSideFit, Secondary: longSideFit}
		}
	}
	return best
}

func scoreBestLongSideFit(c *Context, width, height int) ScoreResult {
	best := noFit
	for _, free := range c.free.rects {
		if !fits(free, width, height) {
			continue
		}
		leftoverHoriz := abs(free.Width - width)
		leftoverVert := abs(free.Height - height)
		shortSideFit := min(leftoverHoriz, leftoverVert)
		longSideFit := max(leftoverHoriz, leftoverVert)

		if longSideFit < best.Primary || (longSideFit == best.Primary && shortSideFit < best.Secondary) {
			best = ScoreResult{Candidate: candidateAt(free, width, height), Primary: longSideFit, Secondary: shortSideFit}
		}
	}
	return best
}

func scoreBottomLeft(c *Context, width, height int) ScoreResult {
	best := noFit
	for _, free := range c.free.rects {
		if !fits(free, width, height) {
			continue
		}
		topSideY := free.Y + height
		if topSideY < best.Primary || (topSideY == best.Primary && free.X < best.Secondary) {
			best = ScoreResult{Candidate: candidateAt(free, width, height), Primary: topSideY, Secondary: free.X}
		}
	}
	return best
}

// contactScore is the length of the candidate's perimeter that touches the
// page border or a used rectangle on the same page.
func (c *Context) contactScore(cand model.Rect) int {
	score := 0
	if cand.X == 0 || cand.Right() == c.pageWidth {
		score += cand.Height
	}
	if cand.Y == 0 || cand.Bottom() == c.pageHeight {
		score += cand.Width
	}

	for _, used := range c.used.rects {
		if !Intersects(used, cand) {
			continue
		}
		if used.X == cand.Right() || used.Right() == cand.X {
			score += commonIntervalLength(used.Y, used.Bottom(), cand.Y, cand.Bottom())
		}
		if used.Y == cand.Bottom() || used.Bottom() == cand.Y {
			score += commonIntervalLength(used.X, used.Right(), cand.X, cand.Right())
		}
	}
	return score
}

// scoreContactPoint maximizes contact, so the score is negated to keep the
// lower-is-better contract of ScoreResult.
func scoreContactPoint(c *Context, width, height int) ScoreResult {
	best := noFit
	bestContact := -1
	for _, free := range c.free.rects {
		if !fits(free, width, height) {
			continue
		}
		cand := candidateAt(free, width, height)
		if contact := c.contactScore(cand); contact > bestContact {
			bestContact = contact
			best = ScoreResult{Candidate: cand, Primary: -contact, Secondary: 0}
		}
	}
	return best
}
