package align

import (
	"strconv"
	"strings"
)

// cigarOpChar maps a consuming operation kind to its CIGAR operator.
func cigarOpChar(k OpKind) byte {
	switch k {
	case KindMatch:
		return '='
	case KindSubst:
		return 'X'
	case KindIns:
		return 'I'
	case KindDel:
		return 'D'
	default:
		return '?'
	}
}

func writeRun(sb *strings.Builder, n int, c byte) {
	if n <= 0 {
		return
	}
	sb.WriteString(strconv.Itoa(n))
	sb.WriteByte(c)
}

// CIGAR renders a as a Compact Idiosyncratic Gapped Alignment Report
// string. Consecutive operations of the same kind are run-length
// encoded. Yclip operations never appear in the output (CIGAR describes
// clipping of the query, x, only); Xclip operations embedded at the
// start or end of Operations render as a soft ('S') or hard ('H') clip
// run depending on hardClip. When Operations carries no leading/trailing
// Xclip but XStart > 0 or XLen-XEnd > 0, an implicit clip run of the
// corresponding length is emitted instead.
//
// Internal (mid-path) clip operations are not a supported input and are
// not specially handled.
func (a *Alignment) CIGAR(hardClip bool) string {
	clipChar := byte('S')
	if hardClip {
		clipChar = 'H'
	}

	filtered := make([]Operation, 0, len(a.Operations))
	for _, op := range a.Operations {
		if op.Kind == KindYclip {
			continue
		}
		filtered = append(filtered, op)
	}
	n := len(filtered)

	var sb strings.Builder

	// Leading clip: explicit Xclip, or implicit from XStart.
	i := 0
	if n > 0 && filtered[0].Kind == KindXclip {
		writeRun(&sb, filtered[0].N, clipChar)
		i = 1
	} else if a.XStart > 0 {
		writeRun(&sb, a.XStart, clipChar)
	}

	// Trailing clip: explicit Xclip, or implicit from XLen-XEnd.
	j := n
	trailingXclip := false
	trailingLen := 0
	if n > i && filtered[n-1].Kind == KindXclip {
		trailingXclip = true
		trailingLen = filtered[n-1].N
		j = n - 1
	}

	// Run-length encode the consuming operations in between.
	haveCur := false
	var curKind OpKind
	count := 0
	for k := i; k < j; k++ {
		kind := filtered[k].Kind
		if haveCur && kind == curKind {
			count++
			continue
		}
		if haveCur {
			writeRun(&sb, count, cigarOpChar(curKind))
		}
		curKind, count, haveCur = kind, 1, true
	}
	if haveCur {
		writeRun(&sb, count, cigarOpChar(curKind))
	}

	if trailingXclip {
		writeRun(&sb, trailingLen, clipChar)
	} else if rem := a.XLen - a.XEnd; rem > 0 {
		writeRun(&sb, rem, clipChar)
	}

	return sb.String()
}
