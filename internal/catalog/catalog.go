// Package catalog lists the choices the panel's controls are populated with.
// The values mirror what the wallpaper renderer understands; the panel itself
// never validates against them.
package catalog

import (
	"strconv"
	"time"

	"github.com/ytget/wallpanel/internal/model"
)

// Device describes a lock screen the renderer can target.
type Device struct {
	Key    string
	Name   string
	Width  int
	Height int
}

// Option is a value with a human label.
type Option struct {
	Value string
	Label string
}

// Defaults used when the renderer receives nothing better.
const (
	DefaultDevice   = "iphone-15"
	DefaultLang     = "en"
	DefaultWeekends = "off"
)

// Timezone offsets accepted by the renderer, in whole hours.
const (
	MinTimezoneOffset = -12
	MaxTimezoneOffset = 14
)

// Devices in display order, smallest screen first.
var Devices = []Device{
	{Key: "iphone-se", Name: "iPhone SE (2 / 3)", Width: 750, Height: 1334},
	{Key: "iphone-11", Name: "iPhone 11 / XR", Width: 828, Height: 1792},
	{Key: "iphone-12", Name: "iPhone 12 / 13 / 14", Width: 1170, Height: 2532},
	{Key: "iphone-15", Name: "iPhone 14 Pro / 15 / 15 Pro", Width: 1179, Height: 2556},
	{Key: "iphone-15-pro-max", Name: "iPhone Pro Max", Width: 1290, Height: 2796},
}

// Languages the renderer has month names for.
var Languages = []Option{
	{Value: "en", Label: "English"},
	{Value: "ru", Label: "Русский"},
}

// WeekendStyles are the weekend highlight colours; "off" disables highlighting.
var WeekendStyles = []Option{
	{Value: "off", Label: "Off"},
	{Value: "gray", Label: "Gray"},
	{Value: "green", Label: "Green"},
	{Value: "blue", Label: "Blue"},
	{Value: "red", Label: "Red"},
}

// LookupDevice finds a device by key.
func LookupDevice(key string) (Device, bool) {
	for _, d := range Devices {
		if d.Key == key {
			return d, true
		}
	}
	return Device{}, false
}

// DeviceKeys returns device keys in display order.
func DeviceKeys() []string {
	keys := make([]string, 0, len(Devices))
	for _, d := range Devices {
		keys = append(keys, d.Key)
	}
	return keys
}

// Values returns the values of opts in order.
func Values(opts []Option) []string {
	values := make([]string, 0, len(opts))
	for _, o := range opts {
		values = append(values, o.Value)
	}
	return values
}

// TimezoneOffsets returns every whole-hour offset as a string, west to east.
func TimezoneOffsets() []string {
	offsets := make([]string, 0, MaxTimezoneOffset-MinTimezoneOffset+1)
	for h := MinTimezoneOffset; h <= MaxTimezoneOffset; h++ {
		offsets = append(offsets, strconv.Itoa(h))
	}
	return offsets
}

// LocalTimezone returns the offset of t's zone in whole hours, rounded
// toward negative infinity and clamped to the accepted range.
func LocalTimezone(t time.Time) string {
	_, secs := t.Zone()
	h := secs / 3600
	if secs < 0 && secs%3600 != 0 {
		h--
	}
	if h < MinTimezoneOffset {
		h = MinTimezoneOffset
	}
	if h > MaxTimezoneOffset {
		h = MaxTimezoneOffset
	}
	return strconv.Itoa(h)
}

// Defaults returns the initial parameter set for a panel opened at now.
func Defaults(now time.Time) model.ParameterSet {
	return model.ParameterSet{
		Device:   DefaultDevice,
		Lang:     DefaultLang,
		Timezone: LocalTimezone(now),
		Weekends: DefaultWeekends,
	}
}
