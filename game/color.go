package game

import (
	"strconv"
	"strings"
)

type Color int

const (
	White Color = iota
	Blue
	Green
	Red
	Black
	Gold // Wildcard, substitutes for any real color when paying
)

const (
	NumRealColors = 5
	NumColors     = 6
)

var colorNames = [NumColors]string{"white", "blue", "green", "red", "black", "gold"}

func (c Color) String() string {
	if c < 0 || int(c) >= NumColors {
		return "unknown"
	}
	return colorNames[c]
}

// CoinSet counts coins (or card costs) per color. It is non-negative except
// when used as a signed delta.
type CoinSet [NumColors]int

func (cs CoinSet) Add(other CoinSet) CoinSet {
	for i := range cs {
		cs[i] += other[i]
	}
	return cs
}

func (cs CoinSet) Sub(other CoinSet) CoinSet {
	for i := range cs {
		cs[i] -= other[i]
	}
	return cs
}

func (cs CoinSet) Neg() CoinSet {
	for i := range cs {
		cs[i] = -cs[i]
	}
	return cs
}

func (cs CoinSet) Total() int {
	total := 0
	for _, n := range cs {
		total += n
	}
	return total
}

func (cs CoinSet) IsZero() bool {
	return cs == CoinSet{}
}

func (cs CoinSet) NonNegative() bool {
	for _, n := range cs {
		if n < 0 {
			return false
		}
	}
	return true
}

// String lists the nonzero colors, e.g. "white:1 gold:-2".
func (cs CoinSet) String() string {
	var b strings.Builder
	for c, n := range cs {
		if n == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Color(c).String())
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(n))
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}
