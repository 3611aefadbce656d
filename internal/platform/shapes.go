package platform

import (
	"fmt"

	"github.com/luuma/cursorwatch/internal/monitor"
)

// standardShapes lists the built-in Windows cursors by IDC_* resource
// ordinal together with their symbolic labels.
var standardShapes = []struct {
	ordinal uint16
	label   string
}{
	{32512, "arrow"},
	{32513, "ibeam"},
	{32514, "wait"},
	{32515, "cross"},
	{32516, "up_arrow"},
	{32640, "size"},
	{32642, "size_nw_se"},
	{32643, "size_ne_sw"},
	{32644, "size_we"},
	{32645, "size_ns"},
	{32646, "size_all"},
	{32648, "no"},
	{32649, "hand"},
	{32650, "app_starting"},
	{32651, "help"},
	{32671, "pin"},
	{32672, "person"},
}

// KnownLabels returns the fixed set of built-in shape labels.
func KnownLabels() []string {
	labels := make([]string, len(standardShapes))
	for i, s := range standardShapes {
		labels[i] = s.label
	}
	return labels
}

// FallbackLabel synthesizes a label for a shape handle that matches no
// built-in cursor. The handle's own identity keeps distinct custom
// shapes distinguishable.
func FallbackLabel(handle monitor.Shape) string {
	return fmt.Sprintf("custom_%#x", uintptr(handle))
}
