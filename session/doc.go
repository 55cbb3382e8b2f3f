// SPDX-License-Identifier: MIT

// Package session is the interactive editing state machine: it turns
// device-space mouse events and key presses into shapes and view changes.
//
// Clicks are gathered in a 4×N homogeneous matrix in device space. When a
// shape has all of its clicks (Point 1, Line 2, Triangle 3, Circle 2 for
// centre and rim) the matrix goes through view.Context.DeviceToModel, the
// shape is added to the scene and drawn. In rubber band mode the canvas is
// switched to XOR and previews are erased by drawing them a second time.
//
// Key bindings:
//
//	p l t c      point, line, triangle, circle mode
//	r            toggle rubber band mode
//	0..9         white black green red cyan magenta yellow gray blue brown
//	arrows       pan the view (up is +y)
//	+ -          zoom in and out around the view origin
//	. ,          rotate counter-clockwise and clockwise
//	e            reset the view
//	s f          save and load the scene file
//
// Any other key prints the help text.
package session
