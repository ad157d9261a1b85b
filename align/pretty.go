package align

import "strings"

// clipAxis identifies which sequence a clip operation clips.
type clipAxis int

const (
	axisNone clipAxis = iota
	axisX
	axisY
)

// prettyItem is one column-run in the three-line diagram: either an
// n-column clip span on one axis, or a single-column consuming op.
type prettyItem struct {
	axis clipAxis // axisNone for a regular (non-clip) operation
	n    int      // clip run length; 1 for a regular operation
	op   Operation
}

// prettyItems expands a's Operations into the ordered sequence of
// columns Pretty renders, synthesizing implicit leading/trailing clip
// spans from XStart/XEnd/XLen/YStart/YEnd/YLen whenever Operations
// itself carries no explicit Xclip/Yclip there (global/semiglobal/local
// modes never emit clip operations, but their start/end bounds still
// need to be drawn).
func (a *Alignment) prettyItems() []prettyItem {
	ops := a.Operations
	var items []prettyItem

	leadAxis := axisNone
	body := ops
	if len(ops) > 0 && ops[0].IsClip() {
		leadAxis = axisFor(ops[0].Kind)
		items = append(items, prettyItem{axis: leadAxis, n: ops[0].N})
		body = ops[1:]
	}
	if leadAxis != axisY && a.YStart > 0 {
		items = append(items, prettyItem{axis: axisY, n: a.YStart})
	}
	if leadAxis != axisX && a.XStart > 0 {
		items = append(items, prettyItem{axis: axisX, n: a.XStart})
	}

	trailAxis := axisNone
	if len(body) > 0 && body[len(body)-1].IsClip() {
		trailAxis = axisFor(body[len(body)-1].Kind)
	}
	bodyEnd := len(body)
	if trailAxis != axisNone {
		bodyEnd--
	}
	for _, op := range body[:bodyEnd] {
		items = append(items, prettyItem{op: op, n: 1})
	}

	if trailAxis != axisY {
		if rem := a.YLen - a.YEnd; rem > 0 {
			items = append(items, prettyItem{axis: axisY, n: rem})
		}
	}
	if trailAxis != axisX {
		if rem := a.XLen - a.XEnd; rem > 0 {
			items = append(items, prettyItem{axis: axisX, n: rem})
		}
	}
	if trailAxis != axisNone {
		items = append(items, prettyItem{axis: trailAxis, n: body[len(body)-1].N})
	}

	return items
}

func axisFor(k OpKind) clipAxis {
	if k == KindXclip {
		return axisX
	}
	return axisY
}

// Pretty renders a three-line alignment diagram of x against y: the top
// line is x (with '-' marking a position where x contributes no symbol,
// i.e. a Del), the middle line is the match track ('|' match, '\' subst,
// '+' ins, 'x' del, ' ' for a clipped column), and the bottom line is y
// (with '-' marking an Ins). Leading/trailing portions of one sequence
// that the other sequence has nothing to show against are padded with
// spaces on the side with nothing to show.
//
// The diagram is wrapped into blocks of width columns (default 100 when
// omitted); output always ends with two trailing newlines.
func (a *Alignment) Pretty(x, y []byte, width ...int) string {
	w := 100
	if len(width) > 0 && width[0] > 0 {
		w = width[0]
	}

	items := a.prettyItems()

	var top, mid, bot strings.Builder
	xCur, yCur := 0, 0
	for _, it := range items {
		switch it.axis {
		case axisX:
			for k := 0; k < it.n; k++ {
				top.WriteByte(x[xCur])
				xCur++
				mid.WriteByte(' ')
				bot.WriteByte(' ')
			}
		case axisY:
			for k := 0; k < it.n; k++ {
				top.WriteByte(' ')
				mid.WriteByte(' ')
				bot.WriteByte(y[yCur])
				yCur++
			}
		default:
			switch it.op.Kind {
			case KindMatch:
				top.WriteByte(x[xCur])
				xCur++
				bot.WriteByte(y[yCur])
				yCur++
				mid.WriteByte('|')
			case KindSubst:
				top.WriteByte(x[xCur])
				xCur++
				bot.WriteByte(y[yCur])
				yCur++
				mid.WriteByte('\\')
			case KindIns:
				top.WriteByte(x[xCur])
				xCur++
				bot.WriteByte('-')
				mid.WriteByte('+')
			case KindDel:
				top.WriteByte('-')
				bot.WriteByte(y[yCur])
				yCur++
				mid.WriteByte('x')
			}
		}
	}

	topLine, midLine, botLine := top.String(), mid.String(), bot.String()

	var out strings.Builder
	for off := 0; off < len(topLine); off += w {
		end := off + w
		if end > len(topLine) {
			end = len(topLine)
		}
		out.WriteString(topLine[off:end])
		out.WriteByte('\n')
		out.WriteString(midLine[off:end])
		out.WriteByte('\n')
		out.WriteString(botLine[off:end])
		out.WriteByte('\n')
	}
	out.WriteString("\n\n")
	return out.String()
}
