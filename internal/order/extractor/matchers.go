package extractor

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"order-intake/internal/order"
)

type field int

const (
	fieldName field = iota
	fieldContact
	fieldPickupAt
	fieldPickupTime
	fieldTotal
	fieldAddress
	fieldPickupMethod
	fieldRequest
	fieldItem
	fieldHeader
)

// carriesCues reports whether lines owned by f are scanned for pickup or
// delivery keywords.
func (f field) carriesCues() bool {
	switch f {
	case fieldAddress, fieldPickupMethod, fieldRequest:
		return true
	}
	return false
}

// labelCarriesCues reports whether only the label text in front of the
// captured values on lines owned by f is scanned for keywords.
func (f field) labelCarriesCues() bool {
	return f == fieldPickupAt || f == fieldPickupTime
}

// Total capture ranks. Fee ranked captures never become the total.
const (
	totalGrand = iota
	totalBare
	totalFee
)

type line struct {
	index int
	body  string
	pos   int
}

// capture is one value a matcher found. line is -1 for values that are not
// tied to a whole line. claims marks the line as owned by the matcher;
// exclusive captures are dropped when an earlier matcher owns the line.
// label is the text between the previous capture on the line and this one.
type capture struct {
	field     field
	line      int
	pos       int
	value     string
	label     string
	rank      int
	claims    bool
	exclusive bool
	dateOnly  bool
	amount    decimal.Decimal
	item      *order.ItemDraft
}

type matcher struct {
	field field
	match func(lines []line) []capture
}

// matchers is ordered by priority.
var matchers = []matcher{
	{fieldName, matchName},
	{fieldContact, matchContact},
	{fieldPickupAt, matchPickupAt},
	{fieldPickupTime, matchPickupTime},
	{fieldTotal, matchTotal},
	{fieldAddress, matchAddress},
	{fieldPickupMethod, matchPickupMethod},
	{fieldRequest, matchRequest},
	{fieldItem, matchItems},
	{fieldHeader, matchHeader},
}

func matchName(lines []line) []capture {
	var out []capture
	for _, l := range lines {
		if sectionHeader.MatchString(l.body) {
			continue
		}
		m := nameLabel.FindStringSubmatchIndex(l.body)
		if m == nil {
			continue
		}
		out = append(out, capture{
			field:  fieldName,
			line:   l.index,
			pos:    l.pos + m[2],
			value:  cleanName(l.body[m[2]:m[3]]),
			claims: true,
		})
	}
	return out
}

func cleanName(v string) string {
	if loc := dateTime.FindStringIndex(v); loc != nil {
		v = v[:loc[0]]
	}
	v = phoneNumber.ReplaceAllString(v, " ")
	if i := strings.IndexAny(v, "(/,|（"); i >= 0 {
		v = v[:i]
	}
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "고객님")
	v = strings.TrimSuffix(v, "님")
	return strings.TrimSpace(v)
}

// matchContact prefers a phone on a contact-labelled line and otherwise takes
// the first phone anywhere in the text.
func matchContact(lines []line) []capture {
	var out []capture
	for _, l := range lines {
		if m := contactLabel.FindStringSubmatchIndex(l.body); m != nil {
			p, at, found := findPhone(l.body[m[2]:m[3]])
			if found || strings.ContainsAny(l.body[:m[2]], ":：") {
				out = append(out, capture{
					field:  fieldContact,
					line:   l.index,
					pos:    l.pos + m[2] + at,
					value:  p,
					claims: true,
				})
				continue
			}
		}

		phoneOnly := strings.TrimSpace(phoneNumber.ReplaceAllString(l.body, "")) == ""
		for _, sm := range phoneNumber.FindAllStringSubmatchIndex(l.body, -1) {
			out = append(out, capture{
				field:  fieldContact,
				line:   l.index,
				pos:    l.pos + sm[2],
				value:  joinPhone(l.body, sm),
				rank:   1,
				claims: phoneOnly,
			})
		}
	}
	return out
}

func findPhone(s string) (string, int, bool) {
	sm := phoneNumber.FindStringSubmatchIndex(s)
	if sm == nil {
		return "", 0, false
	}
	return joinPhone(s, sm), sm[2], true
}

func joinPhone(s string, sm []int) string {
	return s[sm[2]:sm[3]] + "-" + s[sm[4]:sm[5]] + "-" + s[sm[6]:sm[7]]
}

// matchPickupAt collects every date-like substring. Candidates on lines
// labelled as pickup dates rank first and order timestamps rank last.
func matchPickupAt(lines []line) []capture {
	var out []capture
	for _, l := range lines {
		prev := 0
		for _, loc := range dateTime.FindAllStringIndex(l.body, -1) {
			prefix := l.body[:loc[0]]
			rank := 1
			switch {
			case orderDateLabel.MatchString(prefix):
				rank = 2
			case pickupDateLabel.MatchString(prefix):
				rank = 0
			}
			value := strings.TrimSpace(l.body[loc[0]:loc[1]])
			out = append(out, capture{
				field:    fieldPickupAt,
				line:     l.index,
				pos:      l.pos + loc[0],
				value:    value,
				label:    l.body[prev:loc[0]],
				rank:     rank,
				claims:   true,
				dateOnly: !clockPart.MatchString(value),
			})
			prev = loc[1]
		}
	}
	return out
}

// matchPickupTime takes pickup-labelled lines that carry a clock time but no
// date, such as "픽업시간: 오후 2:00".
func matchPickupTime(lines []line) []capture {
	var out []capture
	for _, l := range lines {
		m := pickupTimeLine.FindStringSubmatchIndex(l.body)
		if m == nil {
			continue
		}
		out = append(out, capture{
			field:     fieldPickupTime,
			line:      l.index,
			pos:       l.pos + m[2],
			value:     strings.TrimSpace(l.body[m[2]:m[3]]),
			label:     l.body[:m[2]],
			claims:    true,
			exclusive: true,
		})
	}
	return out
}

// matchTotal records every amount, ranked by the label between it and the
// previous amount on the line. A line is claimed when nothing but amounts and a price label remain
// on it.
func matchTotal(lines []line) []capture {
	var out []capture
	for _, l := range lines {
		if m := labelledBare.FindStringSubmatchIndex(l.body); m != nil {
			if v, err := decimal.NewFromString(stripCommas(l.body[m[2]:m[3]])); err == nil {
				out = append(out, capture{
					field: fieldTotal, line: l.index, pos: l.pos + m[2],
					value: l.body[m[2]:m[3]], rank: totalGrand, amount: v, claims: true,
				})
			}
			continue
		}

		locs := amount.FindAllStringSubmatchIndex(l.body, -1)
		if len(locs) == 0 {
			continue
		}
		rest := strings.Trim(amount.ReplaceAllString(l.body, ""), priceTrim)
		claims := rest == "" || grandTotalLabel.MatchString(rest) || feeLabel.MatchString(rest)
		prev := 0
		for _, sm := range locs {
			rank := totalRank(l.body[prev:sm[0]])
			prev = sm[1]
			v, ok := parseAmount(l.body, sm)
			if !ok {
				continue
			}
			out = append(out, capture{
				field:  fieldTotal,
				line:   l.index,
				pos:    l.pos + sm[0],
				value:  l.body[sm[0]:sm[1]],
				rank:   rank,
				amount: v,
				claims: claims,
			})
		}
	}
	return out
}

const priceTrim = " :：-=()+"

func totalRank(prefix string) int {
	prefix = strings.Trim(prefix, priceTrim)
	switch {
	case grandTotalLabel.MatchString(prefix):
		return totalGrand
	case feeLabel.MatchString(prefix):
		return totalFee
	}
	return totalBare
}

var (
	tenThousand = decimal.NewFromInt(10000)
	thousand    = decimal.NewFromInt(1000)
)

func parseAmount(s string, sm []int) (decimal.Decimal, bool) {
	group := func(i int) string {
		if sm[2*i] < 0 {
			return ""
		}
		return s[sm[2*i]:sm[2*i+1]]
	}

	switch {
	case group(1) != "":
		return parseDecimal(group(1))
	case group(2) != "":
		man, ok := parseDecimal(group(2))
		if !ok {
			return decimal.Zero, false
		}
		v := man.Mul(tenThousand)
		if cheon := group(3); cheon != "" {
			c, ok := parseDecimal(cheon)
			if !ok {
				return decimal.Zero, false
			}
			v = v.Add(c.Mul(thousand))
		}
		return v, true
	case group(4) != "":
		c, ok := parseDecimal(group(4))
		return c.Mul(thousand), ok
	case group(5) != "":
		return parseDecimal(group(5))
	}
	return decimal.Zero, false
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	v, err := decimal.NewFromString(stripCommas(s))
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

func stripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

func matchAddress(lines []line) []capture {
	var out []capture
	for _, l := range lines {
		if m := addressLabel.FindStringSubmatchIndex(l.body); m != nil {
			out = append(out, capture{
				field: fieldAddress, line: l.index, pos: l.pos + m[2],
				value: strings.TrimSpace(l.body[m[2]:m[3]]), claims: true, exclusive: true,
			})
			continue
		}
		if loc := addressShape.FindStringIndex(l.body); loc != nil {
			out = append(out, capture{
				field: fieldAddress, line: l.index, pos: l.pos + loc[0],
				value: strings.TrimSpace(l.body[loc[0]:]), claims: true, exclusive: true,
			})
		}
	}
	return out
}

// matchPickupMethod only claims the method line; the keyword cues are
// weighed after all lines have an owner.
func matchPickupMethod(lines []line) []capture {
	var out []capture
	for _, l := range lines {
		if m := methodLabel.FindStringSubmatchIndex(l.body); m != nil {
			out = append(out, capture{
				field: fieldPickupMethod, line: l.index, pos: l.pos + m[2],
				value: strings.TrimSpace(l.body[m[2]:m[3]]), claims: true, exclusive: true,
			})
		}
	}
	return out
}

func matchRequest(lines []line) []capture {
	var out []capture
	for _, l := range lines {
		if m := requestLabel.FindStringSubmatchIndex(l.body); m != nil {
			out = append(out, capture{
				field: fieldRequest, line: l.index, pos: l.pos + m[2],
				value: strings.TrimSpace(l.body[m[2]:m[3]]), claims: true, exclusive: true,
			})
		}
	}
	return out
}

// matchItems accepts item-labelled lines, single item-shaped lines and
// comma-separated lines whose every segment is item-shaped.
func matchItems(lines []line) []capture {
	var out []capture
	for _, l := range lines {
		body := l.body
		off := l.pos
		if loc := numberedPrefix.FindStringIndex(body); loc != nil {
			body = body[loc[1]:]
			off += loc[1]
		}

		if m := itemLabel.FindStringSubmatchIndex(body); m != nil {
			value := body[m[2]:m[3]]
			if items, ok := itemSegments(l, off+m[2], value); ok {
				out = append(out, items...)
				continue
			}
			if it, ok := parseItem(value); ok {
				out = append(out, itemCapture(l, off+m[2], it))
				continue
			}
			for _, seg := range splitSegments(value) {
				it := order.ItemDraft{Text: seg.text, Name: seg.text}
				out = append(out, itemCapture(l, off+m[2]+seg.at, it))
			}
			continue
		}

		if items, ok := itemSegments(l, off, body); ok {
			out = append(out, items...)
			continue
		}
		if it, ok := parseItem(body); ok {
			out = append(out, itemCapture(l, off, it))
		}
	}
	return out
}

// itemSegments succeeds only when s holds two or more segments and every
// one of them is item-shaped.
func itemSegments(l line, off int, s string) ([]capture, bool) {
	segs := splitSegments(s)
	if len(segs) < 2 {
		return nil, false
	}
	items := make([]capture, 0, len(segs))
	for _, seg := range segs {
		it, ok := parseItem(seg.text)
		if !ok {
			return nil, false
		}
		items = append(items, itemCapture(l, off+seg.at, it))
	}
	return items, true
}

func itemCapture(l line, pos int, it order.ItemDraft) capture {
	return capture{
		field: fieldItem, line: l.index, pos: pos,
		value: it.Text, item: &it, claims: true, exclusive: true,
	}
}

func parseItem(s string) (order.ItemDraft, bool) {
	s = strings.TrimSpace(s)
	m := itemShape.FindStringSubmatch(s)
	if m == nil {
		return order.ItemDraft{}, false
	}

	name := strings.TrimSpace(m[1])
	if name == "" || grandTotalLabel.MatchString(name) || feeLabel.MatchString(name) || isDigits(name) {
		return order.ItemDraft{}, false
	}

	qty := m[2]
	if qty == "" {
		qty = m[3]
	}
	n, err := strconv.Atoi(qty)
	if err != nil || n <= 0 {
		return order.ItemDraft{}, false
	}
	return order.ItemDraft{Text: s, Name: name, Quantity: &n}, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type segment struct {
	text string
	at   int
}

// splitSegments splits on commas that are not thousands separators.
func splitSegments(s string) []segment {
	var out []segment
	start := 0
	flush := func(end int) {
		raw := s[start:end]
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" {
			out = append(out, segment{text: trimmed, at: start + strings.Index(raw, trimmed)})
		}
	}
	for i := 0; i < len(s); i++ {
		if s[i] != ',' {
			continue
		}
		if i > 0 && i+1 < len(s) && isDigit(s[i-1]) && isDigit(s[i+1]) {
			continue
		}
		flush(i)
		start = i + 1
	}
	flush(len(s))
	return out
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func matchHeader(lines []line) []capture {
	var out []capture
	for _, l := range lines {
		if sectionHeader.MatchString(l.body) {
			out = append(out, capture{field: fieldHeader, line: l.index, pos: l.pos, claims: true, exclusive: true})
		}
	}
	return out
}
