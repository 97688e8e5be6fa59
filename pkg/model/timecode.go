package model

import (
	"fmt"
	"math"
	"time"
)

// TimeCode représente un temps en millisecondes (peut être fractionnaire).
type TimeCode float64

// TimeCodeFromDuration convertit une time.Duration en TimeCode.
func TimeCodeFromDuration(d time.Duration) TimeCode {
	return TimeCode(float64(d) / float64(time.Millisecond))
}

// Seconds retourne la valeur en secondes.
func (t TimeCode) Seconds() float64 {
	return float64(t) / 1000
}

// DisplayString formate en "hh:mm:ss,zzz". Exemple : 3723004 -> "01:02:03,004".
// Les heures ne sont pas bornées à 24.
func (t TimeCode) DisplayString() string {
	ms := int64(math.Round(float64(t)))
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}
	h := ms / 3_600_000
	m := (ms % 3_600_000) / 60_000
	s := (ms % 60_000) / 1000
	z := ms % 1000
	return fmt.Sprintf("%s%02d:%02d:%02d,%03d", sign, h, m, s, z)
}

func (t TimeCode) String() string {
	return t.DisplayString()
}
