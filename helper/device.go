package helper

import (
	"regexp"
	"strings"
)

// Device classes recognized by the capability probe.
const (
	DeviceSamsung = "samsung"
	DeviceIOS     = "ios"
	DeviceAndroid = "android"
	DeviceOther   = "other"
)

var (
	iosPattern     = regexp.MustCompile(`iphone|ipad|ipod`)
	samsungPattern = regexp.MustCompile(`sm-|galaxy`)
)

// ClassifyDevice buckets a user agent into one handset OS family. Samsung
// wins over android because Samsung agents also carry "android".
func ClassifyDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if samsungPattern.MatchString(ua) {
		return DeviceSamsung
	}
	if iosPattern.MatchString(ua) {
		return DeviceIOS
	}
	if strings.Contains(ua, "android") {
		return DeviceAndroid
	}
	return DeviceOther
}
