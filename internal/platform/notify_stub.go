//go:build !linux && !darwin && !windows

package platform

// Notify is a no-op on platforms without a supported notification center,
// so batch runs there simply skip the summary.
func Notify(title, body string, opts Options) error {
	return nil
}
