// Package render draws tracking and pose overlays onto camera frames for
// display consumers.
package render

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/zenithcam/go-topcam/pose"
	"github.com/zenithcam/go-topcam/tracker"
	"gocv.io/x/gocv"
)

// TrackLabels draws each track's ID next to its current position
func TrackLabels(img *gocv.Mat, tracks []tracker.Track, font Font) {

	for _, track := range tracks {
		gocv.PutTextWithParams(img, strconv.Itoa(track.ID), track.Position,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}

// Detections draws a filled circle at each detection centroid, colored by
// the claiming track where the index matches, used to visually confirm the
// segmentation output
func Detections(img *gocv.Mat, detections []image.Point, radius int, clr color.RGBA) {

	for _, det := range detections {
		gocv.Circle(img, det, radius, clr, -1)
	}
}

// TrailStyle defines the parameters used for rendering the trail style
type TrailStyle struct {
	// LineSame defines if the color of the trail line should be the same
	// palette color as the track.  If set to false then use the color
	// specified at LineColor.
	LineSame      bool
	LineColor     color.RGBA
	LineThickness int
	// CircleSame defines if the color of the head circle should be the same
	// palette color as the track.  If set to false then use the color
	// specified at CircleColor.
	CircleSame   bool
	CircleColor  color.RGBA
	CircleRadius int
}

// DefaultTrailStyle returns default trail style settings
func DefaultTrailStyle() TrailStyle {
	return TrailStyle{
		LineSame:      false,
		LineColor:     Yellow,
		LineThickness: 1,
		CircleSame:    true,
		CircleColor:   Pink,
		CircleRadius:  3,
	}
}

// TrackTrails draws the position history of each track as a trail line
// ending in a circle on its current position
func TrackTrails(img *gocv.Mat, tracks []tracker.Track, trail *tracker.Trail,
	style TrailStyle) {

	for _, track := range tracks {

		objClr := TrackColor(track.ID)

		lineClr := objClr
		circleClr := objClr

		if !style.LineSame {
			lineClr = style.LineColor
		}

		if !style.CircleSame {
			circleClr = style.CircleColor
		}

		points := trail.Points(track.ID)

		if len(points) > 2 {
			for i := 1; i < len(points); i++ {
				gocv.Line(img, points[i-1], points[i], lineClr,
					style.LineThickness)

				if i == len(points)-1 {
					gocv.Circle(img, points[i], style.CircleRadius,
						circleClr, -1)
				}
			}
		}
	}
}

// RobotPose draws the robot's position as a circle with an arrow pointing
// along its heading
func RobotPose(img *gocv.Mat, p pose.Pose, arrowLength int, clr color.RGBA) {

	base := image.Pt(int(p.Position.X), int(p.Position.Y))

	tip := image.Pt(
		base.X+int(float64(arrowLength)*math.Cos(p.Heading)),
		base.Y+int(float64(arrowLength)*math.Sin(p.Heading)),
	)

	gocv.Circle(img, base, 6, clr, 2)
	gocv.ArrowedLine(img, base, tip, clr, 2)
}
