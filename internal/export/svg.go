package export

import (
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"os"
	"strings"
)

var ErrNoData = errors.New("trajectory has fewer than two finite costs")

// TrajectoryToSVG draws a cost trajectory as an SVG line chart, iteration on
// the x axis and cost on the y axis. Non-finite costs break the line.
func TrajectoryToSVG(trajectory []float64, width, height int, strokeColor string) (string, error) {
	finite := 0
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, c := range trajectory {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			continue
		}
		finite++
		minY = math.Min(minY, c)
		maxY = math.Max(maxY, c)
	}
	if finite < 2 {
		return "", ErrNoData
	}

	rangeX := float64(len(trajectory) - 1)
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="`,
		width, height, width, height, html.EscapeString(strokeColor)))

	pen := false
	for i, c := range trajectory {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			pen = false
			continue
		}
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (c-minY)/rangeY*float64(height)

		if !pen {
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f ", x, y))
			pen = true
		} else {
			sb.WriteString(fmt.Sprintf("L%.1f,%.1f ", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String(), nil
}

// WriteSVG renders the trajectory and writes it to w.
func WriteSVG(w io.Writer, trajectory []float64, width, height int, strokeColor string) error {
	svg, err := TrajectoryToSVG(trajectory, width, height, strokeColor)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, svg)
	return err
}

func SaveSVG(path string, trajectory []float64, width, height int, strokeColor string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSVG(f, trajectory, width, height, strokeColor); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
