// Package platform supplies the OS-facing collaborators the monitor
// polls: a raw pointer sampler and a shape-handle resolver.
//
// On Windows both are backed by user32 (GetCursorInfo reads position and
// shape handle in one call, GetAsyncKeyState reads button state, and
// LoadCursorW resolves handles against the standard cursor set). On
// other platforms a portable sampler reads the position through robotgo;
// shape identity and button state are not observable there, so the shape
// reports as the default arrow and buttons report up.
package platform
