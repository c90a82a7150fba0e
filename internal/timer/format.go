package timer

import (
	"fmt"
	"time"
)

// formatClock renders a duration as HH:MM:SS, truncating sub-second
// remainder. Hours are not wrapped at 24.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

// ceilSecond rounds a duration up to the next whole second. The countdown
// display uses this so 2.9s remaining still reads 00:00:03.
func ceilSecond(d time.Duration) time.Duration {
	if r := d % time.Second; r > 0 {
		return d + time.Second - r
	}
	return d
}
