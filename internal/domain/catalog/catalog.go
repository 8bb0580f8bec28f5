// Package catalog lists the maintenance services the app knows about along
// with their recommended intervals.
package catalog

import (
	"strings"
)

// BatteryReplacement is the only time-based service in the catalog.
const BatteryReplacement = "Battery Replacement"

// Entry is a known service type.
type Entry struct {
	Name              string `json:"name"`
	Hint              string `json:"hint"`
	DefaultIntervalKm int    `json:"default_interval_km,omitempty"`
	TimeBased         bool   `json:"time_based"`
}

var entries = []Entry{
	{Name: "Engine Oil", Hint: "Change every 10,000 km", DefaultIntervalKm: 10000},
	{Name: BatteryReplacement, Hint: "Car batteries last 2-3 years. Replace earlier if voltage drops.", TimeBased: true},
	{Name: "Shocks/Springs", Hint: "Town: 50k-60k km, off-road: 30k-40k km"},
	{Name: "Brake Pad", Hint: "Replace every 30,000-70,000 km"},
	{Name: "Coolant", Hint: "Replace every 60,000 km", DefaultIntervalKm: 60000},
	{Name: "Spark Plugs", Hint: "Replace every 30,000-90,000 km"},
	{Name: "Wheel Bearing", Hint: "Inspect every 50,000-80,000 km"},
	{Name: "Timing Belt/Chain", Hint: "Inspect/replace every 100,000-160,000 km"},
	{Name: "Wheel Alignment", Hint: "Check every 10,000 km", DefaultIntervalKm: 10000},
	{Name: "Air Filter", Hint: "Replace during engine oil change"},
	{Name: "Air Conditioning", Hint: "Inspect service system (filter/dryer as needed)"},
	{Name: "Oil Change", Hint: "Change every 10,000 km", DefaultIntervalKm: 10000},
	{Name: "Fuel Filter", Hint: "Replace every 30,000-60,000 km"},
	{Name: "Tire Pressure", Hint: "Check regularly"},
	{Name: "Inspection", Hint: "General check as needed / schedule"},
	{Name: "Car Wash", Hint: "As needed"},
	{Name: "Lights", Hint: "Inspect every service"},
	{Name: "Gearbox Oil Change", Hint: "Change every 50,000 km", DefaultIntervalKm: 50000},
}

var byKey = func() map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[normalize(e.Name)] = e
	}
	return m
}()

// All returns a copy of the catalog in display order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup finds a catalog entry ignoring case and repeated whitespace.
func Lookup(name string) (Entry, bool) {
	e, ok := byKey[normalize(name)]
	return e, ok
}

// IsTimeBased reports whether the named service is due on elapsed time only.
func IsTimeBased(name string) bool {
	e, ok := Lookup(name)
	return ok && e.TimeBased
}

// CleanName collapses whitespace in a user-supplied service name.
func CleanName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func normalize(name string) string {
	return strings.ToLower(CleanName(name))
}
