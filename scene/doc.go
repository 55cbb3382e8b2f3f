// SPDX-License-Identifier: MIT

// Package scene stores an ordered list of shapes (Image) and moves it to
// and from a line-oriented text format:
//
//	Begin Image
//	Begin Shapes
//	Begin Line
//	Begin Line Properties
//		Begin Verticies
//			v1: 5,5
//			v2: 10,10
//		End Verticies
//	End Line Properties
//	Begin Shape Properties
//		Color: 16777215
//		Location: 5,5
//	End Shape Properties
//	End Line
//	End Shapes
//	End Image
//
// Point and Triangle blocks list one and three vertices. A Circle block
// lists its centre as v1 and adds an "r: <radius>" line before
// "End Circle Properties". Colors are decimal 0xRRGGBB values; a shape
// without a Color line is white. Location repeats v1 and is ignored on
// input.
package scene
