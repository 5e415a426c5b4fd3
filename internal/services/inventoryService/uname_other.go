//go:build !linux && !freebsd

package inventoryservice

func unameFallback() string {
	return ""
}
