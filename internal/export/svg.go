package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lfarias/cesim/internal/signal"
)

const (
	chartWidth  = 800.0
	chartHeight = 480.0
	marginLeft  = 50.0
	marginRight = 20.0
	marginTop   = 30.0
	marginBot   = 40.0
)

// ElectropherogramSVG renders the trace as a standalone SVG document:
// axis frame, intensity polyline, and a labeled marker per peak apex.
func ElectropherogramSVG(eg *signal.Electropherogram, title string) string {
	if eg == nil || len(eg.Times) == 0 {
		return ""
	}

	plotW := chartWidth - marginLeft - marginRight
	plotH := chartHeight - marginTop - marginBot

	tMax := eg.Times[len(eg.Times)-1]
	if tMax <= 0 {
		tMax = 1
	}
	iMax := 0.0
	for _, v := range eg.Intensity {
		if v > iMax {
			iMax = v
		}
	}
	if iMax <= 0 {
		iMax = 1
	}

	x := func(t float64) float64 { return marginLeft + t/tMax*plotW }
	y := func(v float64) float64 { return marginTop + (1-v/iMax)*plotH }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, chartWidth, chartHeight, chartWidth, chartHeight))

	sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="20" font-family="sans-serif" font-size="14" text-anchor="middle">%s</text>
`, chartWidth/2, title))

	// Axis frame
	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#333" stroke-width="1"/>
`, marginLeft, marginTop, plotW, plotH))
	sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="%.0f" font-family="sans-serif" font-size="11" text-anchor="middle">time (s)</text>
`, chartWidth/2, chartHeight-10))

	// Intensity polyline
	sb.WriteString(`<polyline fill="none" stroke="#1565c0" stroke-width="1.5" points="`)
	for i, t := range eg.Times {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", x(t), y(eg.Intensity[i])))
	}
	sb.WriteString("\"/>\n")

	// Peak markers, sorted by migration time so labels stack predictably
	ids := make([]string, 0, len(eg.Peaks))
	for id := range eg.Peaks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return eg.Peaks[ids[i]].MigrationTime < eg.Peaks[ids[j]].MigrationTime
	})

	for _, id := range ids {
		p := eg.Peaks[id]
		px, py := x(p.MigrationTime), y(p.Amplitude)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#c62828" stroke-width="0.8" stroke-dasharray="3,3"/>
`, px, py, px, marginTop+plotH))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="10" text-anchor="middle">%s (%.2fs)</text>
`, px, py-5, id, p.MigrationTime))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
