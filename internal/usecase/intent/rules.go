package intent

import (
	"regexp"
	"strconv"
	"strings"

	domintent "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/intent"
)

// categoryVocab maps recognized component words (including plurals and common
// synonyms) to canonical category names.
var categoryVocab = map[string]string{
	"regulator":        "regulator",
	"regulators":       "regulator",
	"ldo":              "regulator",
	"capacitor":        "capacitor",
	"capacitors":       "capacitor",
	"cap":              "capacitor",
	"caps":             "capacitor",
	"resistor":         "resistor",
	"resistors":        "resistor",
	"connector":        "connector",
	"connectors":       "connector",
	"header":           "connector",
	"headers":          "connector",
	"sensor":           "sensor",
	"sensors":          "sensor",
	"microcontroller":  "microcontroller",
	"microcontrollers": "microcontroller",
	"mcu":              "microcontroller",
	"mcus":             "microcontroller",
	"transistor":       "transistor",
	"transistors":      "transistor",
	"mosfet":           "transistor",
	"mosfets":          "transistor",
	"diode":            "diode",
	"diodes":           "diode",
	"timer":            "timer",
	"timers":           "timer",
	"oscillator":       "oscillator",
	"oscillators":      "oscillator",
	"crystal":          "oscillator",
	"crystals":         "oscillator",
}

// stopwords are filler tokens excluded from keywords. Unit and qualifier
// words consumed by the voltage, mounting, stock, and price rules are listed
// here too so they do not leak into the text match.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "i": {}, "we": {}, "you": {}, "me": {},
	"my": {}, "need": {}, "needs": {}, "want": {}, "looking": {}, "look": {},
	"for": {}, "find": {}, "show": {}, "give": {}, "get": {}, "some": {},
	"any": {}, "with": {}, "and": {}, "or": {}, "to": {}, "of": {}, "in": {},
	"on": {}, "at": {}, "that": {}, "this": {}, "it": {}, "is": {}, "are": {},
	"please": {}, "something": {}, "parts": {}, "part": {}, "component": {},
	"components": {}, "stock": {}, "available": {}, "under": {}, "below": {},
	"less": {}, "than": {}, "cheaper": {}, "most": {}, "up": {}, "max": {},
	"dollars": {}, "bucks": {}, "usd": {}, "volt": {}, "volts": {}, "v": {},
	"surface": {}, "mount": {}, "mounted": {}, "through": {}, "thru": {},
	"hole": {}, "smd": {}, "smt": {}, "tht": {}, "price": {}, "cost": {},
	"budget": {}, "cheap": {}, "good": {}, "best": {}, "recommend": {},
	"suggest": {}, "can": {}, "could": {}, "what": {}, "which": {}, "do": {},
	"does": {}, "have": {}, "has": {},
}

var (
	voltageRe = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*v(?:olts?)?\b`)
	// Price ceilings require an explicit currency marker so "under 5 volts"
	// is never read as a budget.
	priceRe       = regexp.MustCompile(`(?:under|below|less than|cheaper than|at most|up to)\s+\$(\d+(?:\.\d+)?)`)
	priceWordRe   = regexp.MustCompile(`(?:under|below|less than|cheaper than|at most|up to)\s+(\d+(?:\.\d+)?)\s*(?:dollars|bucks|usd)\b`)
	mountSMDRe    = regexp.MustCompile(`\b(?:smd|smt|surface[ -]?mount(?:ed)?)\b`)
	mountTHTRe    = regexp.MustCompile(`\b(?:tht|through[ -]?hole|thru[ -]?hole)\b`)
	inStockRe     = regexp.MustCompile(`\b(?:in[ -]?stock|available)\b`)
	tokenRe       = regexp.MustCompile(`[a-z0-9][a-z0-9.+-]*`)
	pureNumberRe  = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	voltageTokRe  = regexp.MustCompile(`^\d+(?:\.\d+)?v(?:olts?)?$`)
)

// ParseRules derives an intent from free text using deterministic rules.
// It never fails on inputs that pass request validation: whatever the rules
// cannot interpret simply ends up as plain keywords.
func ParseRules(text string) domintent.Intent {
	lower := strings.ToLower(text)

	attrs := make(map[string]domintent.Constraint)
	if m := voltageRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 {
			attrs[domintent.AttrVoltage] = domintent.NewNumber(v)
		}
	}
	if mountSMDRe.MatchString(lower) {
		if c, err := domintent.NewValue(domintent.MountingSMD); err == nil {
			attrs[domintent.AttrMounting] = c
		}
	} else if mountTHTRe.MatchString(lower) {
		if c, err := domintent.NewValue(domintent.MountingThroughHole); err == nil {
			attrs[domintent.AttrMounting] = c
		}
	}

	var maxPrice *float64
	if m := priceRe.FindStringSubmatch(lower); m == nil {
		m = priceWordRe.FindStringSubmatch(lower)
		if m != nil {
			maxPrice = parsePrice(m[1])
		}
	} else {
		maxPrice = parsePrice(m[1])
	}

	requireInStock := inStockRe.MatchString(lower)

	var category string
	var keywords []string
	for _, tok := range tokenRe.FindAllString(lower, -1) {
		if canonical, ok := categoryVocab[tok]; ok {
			if category == "" {
				category = canonical
			}
			keywords = append(keywords, canonical)
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		if pureNumberRe.MatchString(tok) || voltageTokRe.MatchString(tok) {
			continue
		}
		keywords = append(keywords, tok)
	}

	it, err := domintent.New(keywords, category, attrs, maxPrice, requireInStock, text)
	if err != nil {
		it, _ = domintent.New(nil, "", nil, nil, false, "")
	}
	return it
}

func parsePrice(raw string) *float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}
