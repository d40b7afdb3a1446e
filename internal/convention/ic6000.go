package convention

import (
	"fmt"
	"regexp"
	"strings"
)

// IC6000 describes the IN Cell Analyzer 6000 export format. Filenames
// it can parse look like:
//
//	C_13_B - 2(fld 2 wv UV - DAPI).tif
//	20180328_TestAbs_G - 8(fld 4 wv Red - Cy5).tif
var IC6000 = &Convention{
	Name:    "ic6000",
	Pattern: regexp.MustCompile(`(?i)(?P<n>.*_.*)_(?P<w>[A-Z]\D*\d*)\(fld\D*(?P<s>\d*)\D*wv(?P<c>.*)\)\.(tif|png)`),
	Channels: map[string]string{
		"UV-DAPI":     "01",
		"Blue-FITC":   "02",
		"Green-dsRed": "03",
		"Red-Cy5":     "04",
	},
	Translate: translateIC6000,
}

func translateIC6000(groups map[string]string, channels map[string]string) (Fields, error) {
	well := strings.ReplaceAll(groups["w"], " ", "")
	letter, number, found := strings.Cut(well, "-")
	if !found {
		return Fields{}, fmt.Errorf("well %q: expected <letter>-<number>", groups["w"])
	}

	label := strings.ReplaceAll(groups["c"], " ", "")
	code, ok := channels[label]
	if !ok {
		return Fields{}, &UnknownChannelError{Convention: "ic6000", Label: label}
	}

	return Fields{
		Experiment: strings.ReplaceAll(groups["n"], "_", ""),
		Well:       letter + zeroPad(number, 2),
		Site:       zeroPad(groups["s"], 3),
		Channel:    code,
	}, nil
}

// zeroPad left-pads s with zeros to at least width digits. Longer
// values pass through untouched.
func zeroPad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
