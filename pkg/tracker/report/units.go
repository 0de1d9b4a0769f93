// Package report renders categorized holdings as an xlsx workbook with a pie
// chart and as a plain-text breakdown.
package report

import "math"

// PixelsPerInch is the screen resolution Excel assumes for drawing objects.
const PixelsPerInch = 96

// CMPerInch is the number of centimetres in one inch.
const CMPerInch = 2.54

// CMToPixels converts a length in centimetres to whole pixels at 96 DPI.
// excelize sizes charts in pixels while layouts are specified in cm.
func CMToPixels(cm float64) uint {
	if cm <= 0 {
		return 0
	}
	return uint(math.Round(cm / CMPerInch * PixelsPerInch))
}
