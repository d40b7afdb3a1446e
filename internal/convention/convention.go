// Package convention defines microscope filename conventions and the
// translation of extracted metadata into the canonical CV7000 target
// naming format.
//
// Each convention is a data-plus-behavior record: a matching pattern
// with named capture groups, a channel-label-to-code map, and a
// Translate function turning captured groups into canonical fields.
// Adding a microscope means adding a registry entry; no dispatch logic
// changes.
package convention

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// cv7000Template is the canonical target filename, parameterized by
// experiment name, well ID, site ID and channel code, in that order.
const cv7000Template = "%s_%s_T0001F%sL01A01Z01C%s.tif"

// Fields is the canonical metadata record extracted from a source
// filename.
type Fields struct {
	Experiment string
	Well       string // letter + two-digit number, e.g. "B03"
	Site       string // three digits, e.g. "004"
	Channel    string // two-digit channel code, e.g. "02"
}

// CanonicalName renders the CV7000 destination filename for f.
func CanonicalName(f Fields) string {
	return fmt.Sprintf(cv7000Template, f.Experiment, f.Well, f.Site, f.Channel)
}

// TranslateFunc converts the named capture groups of a matched filename
// into canonical fields, using the convention's channel map.
type TranslateFunc func(groups map[string]string, channels map[string]string) (Fields, error)

// Convention describes one microscope's filename format.
type Convention struct {
	Name      string
	Pattern   *regexp.Regexp // case-insensitive, with named groups
	Channels  map[string]string
	Translate TranslateFunc
}

// Match runs the convention's pattern against filename and returns the
// named capture groups. The boolean is false when the filename does not
// follow the convention.
func (c *Convention) Match(filename string) (map[string]string, bool) {
	m := c.Pattern.FindStringSubmatch(filename)
	if m == nil {
		return nil, false
	}
	groups := make(map[string]string)
	for i, name := range c.Pattern.SubexpNames() {
		if name != "" {
			groups[name] = m[i]
		}
	}
	return groups, true
}

// UnknownChannelError reports a channel label with no code in the
// convention's channel map. It aborts the run: silently mis-tagging a
// channel is worse than stopping.
type UnknownChannelError struct {
	Convention string
	Label      string
}

func (e *UnknownChannelError) Error() string {
	return fmt.Sprintf("unknown %s channel label %q", e.Convention, e.Label)
}

// registry is the closed set of known source conventions.
var registry = map[string]*Convention{
	IC6000.Name: IC6000,
}

// Lookup returns the convention registered under name.
func Lookup(name string) (*Convention, bool) {
	c, ok := registry[strings.ToLower(name)]
	return c, ok
}

// Names lists the registered convention names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
