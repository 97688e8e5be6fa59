package subtitles

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ligne de timing SRT : "00:00:01,000 --> 00:00:02,500" (virgule ou point)
var reSRTTiming = regexp.MustCompile(`^\s*(\d+):(\d{1,2}):(\d{1,2})[,.](\d{1,3})\s*-->\s*(\d+):(\d{1,2}):(\d{1,2})[,.](\d{1,3})`)

// ParseSRT découpe un fichier SubRip en répliques.
// Le balisage (<i>, <font ...>, {\an8}) est conservé tel quel.
// Une réplique commence à chaque ligne de timing ; le numéro éventuel est la
// dernière ligne non vide qui la précède.
func ParseSRT(content string) []Entry {
	lines := SplitToLines(strings.TrimPrefix(content, "\ufeff"))

	var (
		out  []Entry
		cur  *Entry
		body []string
	)
	flush := func() {
		if cur == nil {
			return
		}
		cur.Text = strings.Join(trimBlankLines(body), "\n")
		out = append(out, *cur)
		cur, body = nil, nil
	}

	for _, l := range lines {
		m := reSRTTiming.FindStringSubmatch(l)
		if m == nil {
			if cur != nil {
				body = append(body, strings.TrimRight(l, " \t"))
			}
			continue
		}

		// le numéro appartient à la réplique suivante : on le retire du corps courant
		number := 0
		if cur != nil {
			body = trimBlankLines(body)
			if n := len(body); n > 0 {
				if v, err := strconv.Atoi(strings.TrimSpace(body[n-1])); err == nil {
					number = v
					body = body[:n-1]
				}
			}
		}
		flush()
		if number == 0 {
			number = len(out) + 1
		}
		cur = &Entry{
			Number: number,
			Start:  srtTime(m[1], m[2], m[3], m[4]),
			End:    srtTime(m[5], m[6], m[7], m[8]),
		}
	}
	flush()

	// premier numéro : ligne qui précède la première ligne de timing
	if len(out) > 0 {
		if n := firstNumber(lines); n > 0 {
			out[0].Number = n
		}
	}
	return out
}

func firstNumber(lines []string) int {
	prev := ""
	for _, l := range lines {
		if reSRTTiming.MatchString(l) {
			n, err := strconv.Atoi(strings.TrimSpace(prev))
			if err != nil {
				return 0
			}
			return n
		}
		if strings.TrimSpace(l) != "" {
			prev = l
		}
	}
	return 0
}

func srtTime(h, m, s, frac string) time.Duration {
	hh, _ := strconv.Atoi(h)
	mm, _ := strconv.Atoi(m)
	ss, _ := strconv.Atoi(s)
	// ",5" vaut 500 ms
	for len(frac) < 3 {
		frac += "0"
	}
	ms, _ := strconv.Atoi(frac)
	return time.Duration(hh)*time.Hour +
		time.Duration(mm)*time.Minute +
		time.Duration(ss)*time.Second +
		time.Duration(ms)*time.Millisecond
}

func trimBlankLines(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// writeSRT sérialise les répliques au format SubRip, numérotées à partir de 1.
func writeSRT(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString("\n")
		b.WriteString(srtStamp(e.Start))
		b.WriteString(" --> ")
		b.WriteString(srtStamp(e.End))
		b.WriteString("\n")
		b.WriteString(e.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}

func srtStamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	h := ms / 3_600_000
	ms -= h * 3_600_000
	m := ms / 60_000
	ms -= m * 60_000
	s := ms / 1000
	ms -= s * 1000
	return pad(h, 2) + ":" + pad(m, 2) + ":" + pad(s, 2) + "," + pad(ms, 3)
}

func pad(v int64, width int) string {
	s := strconv.FormatInt(v, 10)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
