package hw

import (
	"os"
	"path/filepath"
)

// Kernel blanking levels written to bl_power.
const (
	blankUnblank   = "0"
	blankPowerdown = "4"
)

// sysfsBacklight controls a kernel backlight device through its sysfs
// directory (e.g. /sys/class/backlight/panel).
type sysfsBacklight struct {
	dir string
}

func (b *sysfsBacklight) SetPower(on bool) error {
	level := blankPowerdown
	if on {
		level = blankUnblank
	}
	return os.WriteFile(filepath.Join(b.dir, "bl_power"), []byte(level), 0o644)
}

// Release drops the retained reference. The backlight device itself is
// owned by the kernel, not by this binding.
func (b *sysfsBacklight) Release() {}
