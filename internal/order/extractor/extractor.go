package extractor

import (
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"order-intake/internal/order"
	"order-intake/pkg/datenorm"

	"github.com/shopspring/decimal"
)

type implExtractor struct {
	norm *datenorm.Normalizer
}

// New returns an order.Extractor that resolves dates with norm.
// A nil norm falls back to datenorm.Default().
func New(norm *datenorm.Normalizer) order.Extractor {
	if norm == nil {
		norm = datenorm.Default()
	}
	return &implExtractor{norm: norm}
}

// Extract scans text line by line, lets each field matcher claim the lines
// it recognizes, then merges the captured values into a Draft.
func (e *implExtractor) Extract(text string, now time.Time) (order.Draft, error) {
	if !utf8.ValidString(text) || strings.TrimSpace(text) == "" {
		return order.Draft{}, order.ErrMalformedInput
	}

	lines := splitLines(text)
	caps, owner := runMatchers(lines)

	name, ok := firstValue(caps[fieldName])
	if !ok {
		return order.Draft{}, order.ErrNoCustomerName
	}

	d := order.Draft{
		CustomerName: name,
		Items:        make([]order.ItemDraft, 0),
		SourceText:   text,
	}

	if c, ok := bestContact(caps[fieldContact]); ok {
		d.CustomerContact = strPtr(c)
	}
	if a, ok := firstValue(caps[fieldAddress]); ok {
		d.Address = strPtr(a)
	}

	e.mergePickupAt(&d, caps[fieldPickupAt], caps[fieldPickupTime], now)
	d.TotalPrice = lastTotal(caps[fieldTotal], owner)

	for _, c := range caps[fieldItem] {
		d.Items = append(d.Items, *c.item)
	}

	d.PickupType = pickupType(lines, owner, caps, d.Address != nil)
	d.Request = mergeRequest(lines, owner, caps[fieldRequest])

	return d, nil
}

// splitLines keeps byte offsets so captures from different lines can be
// ordered by where they appear in the source.
func splitLines(text string) []line {
	var out []line
	start := 0
	for i, raw := range strings.Split(text, "\n") {
		next := start + len(raw) + 1
		raw = strings.TrimSuffix(raw, "\r")

		trimmed := strings.TrimLeftFunc(raw, unicode.IsSpace)
		off := start + len(raw) - len(trimmed)
		if loc := bulletPrefix.FindStringIndex(trimmed); loc != nil {
			trimmed = trimmed[loc[1]:]
			off += loc[1]
		}
		body := strings.TrimRightFunc(trimmed, unicode.IsSpace)
		if body != "" {
			out = append(out, line{index: i, body: body, pos: off})
		}
		start = next
	}
	return out
}

// runMatchers applies the matcher table in priority order. A line belongs to
// the first matcher that claims it; exclusive captures on a line owned by an
// earlier matcher are discarded.
func runMatchers(lines []line) (map[field][]capture, map[int]field) {
	caps := make(map[field][]capture, len(matchers))
	owner := make(map[int]field)

	for _, m := range matchers {
		var claimed []int
		for _, c := range m.match(lines) {
			_, taken := owner[c.line]
			if c.line >= 0 && taken && c.exclusive {
				continue
			}
			if c.line >= 0 && c.claims && !taken {
				claimed = append(claimed, c.line)
			}
			if c.field != fieldHeader {
				caps[c.field] = append(caps[c.field], c)
			}
		}
		for _, idx := range claimed {
			owner[idx] = m.field
		}
	}

	for f := range caps {
		sort.SliceStable(caps[f], func(i, j int) bool {
			return caps[f][i].pos < caps[f][j].pos
		})
	}
	return caps, owner
}

func firstValue(cs []capture) (string, bool) {
	for _, c := range cs {
		if c.value != "" {
			return c.value, true
		}
	}
	return "", false
}

func bestContact(cs []capture) (string, bool) {
	best := -1
	for i, c := range cs {
		if c.value == "" {
			continue
		}
		if best < 0 || c.rank < cs[best].rank {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return cs[best].value, true
}

// mergePickupAt tries candidates by label rank, then text order. A date
// without a clock time is joined with the first pickup time found on a line
// of its own. When nothing resolves, the instant falls back to now and is
// flagged as defaulted.
func (e *implExtractor) mergePickupAt(d *order.Draft, cs, clocks []capture, now time.Time) {
	ranked := make([]capture, len(cs))
	copy(ranked, cs)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].rank < ranked[j].rank })

	for _, c := range ranked {
		values := []string{c.value}
		if c.dateOnly && len(clocks) > 0 {
			values = []string{c.value + " " + clocks[0].value, c.value}
		}
		for _, v := range values {
			if t, ok := e.norm.NormalizeString(v).Time(); ok {
				d.PickupAt = t
				d.PickupSource = strPtr(v)
				return
			}
		}
	}

	d.PickupAt = now.In(e.norm.Location())
	d.PickupDefaulted = true
	switch {
	case len(ranked) > 0:
		d.PickupSource = strPtr(ranked[0].value)
	case len(clocks) > 0:
		d.PickupSource = strPtr(clocks[0].value)
	}
}

// lastTotal returns the last grand-total amount, or the last unlabelled one
// when no grand total exists. Amounts on lines owned by another field and
// fee or discount amounts never count.
func lastTotal(cs []capture, owner map[int]field) *decimal.Decimal {
	var grand, bare *decimal.Decimal
	for _, c := range cs {
		if f, ok := owner[c.line]; ok && f != fieldTotal {
			continue
		}
		v := c.amount
		switch c.rank {
		case totalGrand:
			grand = &v
		case totalBare:
			bare = &v
		}
	}
	if grand != nil {
		return grand
	}
	return bare
}

// pickupType weighs keyword cues found outside the lines owned by the
// identity, price and item matchers. On date lines only the labels in front
// of the dates count.
func pickupType(lines []line, owner map[int]field, caps map[field][]capture, hasAddress bool) order.PickupType {
	labels := make(map[int]string)
	for f, cs := range caps {
		if !f.labelCarriesCues() {
			continue
		}
		for _, c := range cs {
			labels[c.line] += c.label + " "
		}
	}

	delivery := hasAddress
	pickup := false
	for _, l := range lines {
		body := l.body
		if f, ok := owner[l.index]; ok {
			switch {
			case f.labelCarriesCues():
				body = labels[l.index]
			case !f.carriesCues():
				continue
			}
		}
		if deliveryKeywords.MatchString(body) {
			delivery = true
		}
		if pickupKeywords.MatchString(body) {
			pickup = true
		}
	}

	switch {
	case delivery && pickup:
		return order.PickupTypeUnknown
	case delivery:
		return order.PickupTypeDelivery
	default:
		return order.PickupTypePickup
	}
}

// mergeRequest joins labelled request values and unclaimed lines in text order.
func mergeRequest(lines []line, owner map[int]field, labelled []capture) *string {
	parts := make([]capture, 0, len(labelled))
	for _, c := range labelled {
		if c.value != "" {
			parts = append(parts, c)
		}
	}
	for _, l := range lines {
		if _, ok := owner[l.index]; !ok {
			parts = append(parts, capture{pos: l.pos, value: l.body})
		}
	}
	if len(parts) == 0 {
		return nil
	}

	sort.SliceStable(parts, func(i, j int) bool { return parts[i].pos < parts[j].pos })
	values := make([]string, len(parts))
	for i, p := range parts {
		values[i] = p.value
	}
	return strPtr(strings.Join(values, "\n"))
}

func strPtr(s string) *string {
	return &s
}
