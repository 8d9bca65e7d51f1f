// Package penman converts vector artwork into pen and tool motion for
// plotters and CNC devices. It provides 2D affine transforms, adaptive
// flattening of cubic Beziers, a chain of composable drawing sinks, a
// stroke-font engine with string layout, and a text-into-rectangle fitter.
// Device-specific G-code output lives in the gcode subpackage, SVG input
// and SVG font parsing in the svg subpackage.
package penman
