package platform

import "time"

// DefaultAppName identifies the sender when Options.AppName is empty.
const DefaultAppName = "ThemeShot"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName is the sending application as shown by the notification center.
	AppName string
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// Critical asks the platform to keep the notification visible, used for
	// batches that ended with failures.
	Critical bool
	// Timeout is how long the notification stays up; zero uses 5s.
	Timeout time.Duration
}

func (o Options) appName() string {
	if o.AppName == "" {
		return DefaultAppName
	}
	return o.AppName
}

func (o Options) timeoutMillis() int32 {
	if o.Timeout <= 0 {
		return 5000
	}
	return int32(o.Timeout / time.Millisecond)
}
