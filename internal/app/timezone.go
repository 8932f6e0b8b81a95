package app

import (
	"os"
	"time"
)

// UTCZoneName is the IANA name exported as TZ for child processes and
// libraries that read the variable directly.
const UTCZoneName = "Etc/Universal"

// ForceUTC makes UTC the process-wide local time zone. It must run before
// anything caches time.Local.
func ForceUTC() error {
	if err := os.Setenv("TZ", UTCZoneName); err != nil {
		return err
	}
	time.Local = time.UTC
	return nil
}
