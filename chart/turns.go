package chart

import (
	"sort"

	"github.com/jsphweid/autochart/model"
	"github.com/jsphweid/autochart/turn"
)

type Turn struct {
	Side  turn.Side
	Start int
	End   int
	Count int
}

// Turns reads back the alternating blocks of a chart's two active lines.
func Turns(c model.Chart) []Turn {
	type owned struct {
		time int
		side turn.Side
	}

	var all []owned
	for i, line := range c.StrumLines {
		if i > 1 {
			break
		}
		for _, n := range line.Notes {
			all = append(all, owned{time: n.Time, side: turn.Side(line.Type)})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].time < all[j].time
	})

	var res []Turn
	for _, o := range all {
		if len(res) > 0 && res[len(res)-1].Side == o.side {
			last := &res[len(res)-1]
			last.End = o.time
			last.Count++
			continue
		}
		res = append(res, Turn{Side: o.side, Start: o.time, End: o.time, Count: 1})
	}
	return res
}
