package httpadapter

import (
	"github.com/avct/uasurfer"

	"adbroker/internal/core/domain"
)

// deviceFromUserAgent classifies the device behind a User-Agent string.
// Unrecognised agents yield an empty DeviceType.
func deviceFromUserAgent(ua string) domain.DeviceType {
	if ua == "" {
		return ""
	}
	switch uasurfer.Parse(ua).DeviceType {
	case uasurfer.DeviceComputer:
		return domain.DeviceDesktop
	case uasurfer.DevicePhone:
		return domain.DeviceMobile
	case uasurfer.DeviceTablet:
		return domain.DeviceTablet
	case uasurfer.DeviceTV:
		return domain.DeviceSmartTV
	default:
		return ""
	}
}
